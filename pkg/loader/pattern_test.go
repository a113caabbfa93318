package loader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/pkg/loader"
)

func TestParsePattern(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()
		_, err := loader.ParsePattern("")
		require.ErrorIs(t, err, loader.ErrInvalidPattern)
	})

	t.Run("appends default file name", func(t *testing.T) {
		t.Parallel()
		p, err := loader.ParsePattern("locales/__lng__")
		require.NoError(t, err)
		require.Equal(t, "locales/__lng__/translation.json", p.String())
	})

	t.Run("keeps known extensions", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"a/__lng__.json", "a/__lng__.yaml", "a/__lng__.YML", "a/__lng__.toml"} {
			p, err := loader.ParsePattern(raw)
			require.NoError(t, err)
			require.Equal(t, raw, p.String())
		}
	})

	t.Run("prefix and glob", func(t *testing.T) {
		t.Parallel()
		p, err := loader.ParsePattern("locales/v[1]/__lng__/__ns__.json")
		require.NoError(t, err)
		require.True(t, p.HasPlaceholders())
		require.Equal(t, "locales/v[1]/", p.Prefix())
		require.Equal(t, `locales/v\[1]/*/*.json`, p.Glob())
	})

	t.Run("leading placeholder has empty prefix", func(t *testing.T) {
		t.Parallel()
		p, err := loader.ParsePattern("__lng__.json")
		require.NoError(t, err)
		require.Empty(t, p.Prefix())
	})

	t.Run("no placeholders", func(t *testing.T) {
		t.Parallel()
		p, err := loader.ParsePattern("all.yaml")
		require.NoError(t, err)
		require.False(t, p.HasPlaceholders())
		require.Equal(t, "all.yaml", p.Prefix())
	})
}

func TestPatternMatch(t *testing.T) {
	t.Parallel()

	p, err := loader.ParsePattern("locales/__lng__/__ns__.json")
	require.NoError(t, err)

	tests := []struct {
		name  string
		path  string
		want  map[string]string
		match bool
	}{
		{"language and namespace", "locales/en/common.json", map[string]string{"lng": "en", "ns": "common"}, true},
		{"region tag", "locales/en-US/errors.json", map[string]string{"lng": "en-US", "ns": "errors"}, true},
		{"dotted namespace", "locales/de/app.v2.json", map[string]string{"lng": "de", "ns": "app.v2"}, true},
		{"wrong extension", "locales/en/common.yaml", nil, false},
		{"extra directory", "locales/en/sub/common.json", nil, false},
		{"empty capture", "locales//common.json", nil, false},
		{"wrong prefix", "other/en/common.json", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := p.Match(tt.path)
			require.Equal(t, tt.match, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
