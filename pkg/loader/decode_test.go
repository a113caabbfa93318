package loader_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/pkg/i18next"
	"github.com/dmitrymomot/i18next/pkg/loader"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		tree, err := loader.Decode("en.json", []byte(`{"a": {"b": "c"}, "n": 5, "l": ["x", "y"]}`))
		require.NoError(t, err)
		require.Equal(t, i18next.Tree{
			"a": i18next.Tree{"b": "c"},
			"n": "5",
			"l": []string{"x", "y"},
		}, tree)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		tree, err := loader.Decode("en.yml", []byte("a:\n  b: c\nyes: true\n"))
		require.NoError(t, err)
		require.Equal(t, i18next.Tree{"a": i18next.Tree{"b": "c"}, "yes": "true"}, tree)
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		tree, err := loader.Decode("en.toml", []byte("title = \"Hi\"\n[a]\nb = \"c\"\n"))
		require.NoError(t, err)
		require.Equal(t, i18next.Tree{"title": "Hi", "a": i18next.Tree{"b": "c"}}, tree)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := loader.Decode("en.json", []byte(`{"a": `))
		require.ErrorIs(t, err, i18next.ErrInvalidSource)
		require.Contains(t, err.Error(), "en.json")
	})

	t.Run("document is not an object", func(t *testing.T) {
		t.Parallel()
		_, err := loader.Decode("en.json", []byte(`["a"]`))
		require.ErrorIs(t, err, i18next.ErrInvalidSource)
	})

	t.Run("null document", func(t *testing.T) {
		t.Parallel()
		_, err := loader.Decode("en.json", []byte(`null`))
		require.ErrorIs(t, err, i18next.ErrInvalidSource)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := loader.Decode("en.ini", []byte(`a=b`))
		require.ErrorIs(t, err, i18next.ErrInvalidSource)
	})
}
