package i18next_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

func TestNormalizeTree(t *testing.T) {
	t.Parallel()

	t.Run("converts decoded data", func(t *testing.T) {
		t.Parallel()
		tree, err := i18next.NormalizeTree(map[string]any{
			"text":   "hello",
			"number": 3.5,
			"int":    7,
			"flag":   true,
			"empty":  nil,
			"list":   []any{"a", 1},
			"nested": map[string]any{"deep": "value"},
			"yaml":   map[any]any{1: "one"},
			"plain":  map[string]string{"k": "v"},
		})
		require.NoError(t, err)
		require.Equal(t, i18next.Tree{
			"text":   "hello",
			"number": "3.5",
			"int":    "7",
			"flag":   "true",
			"list":   []string{"a", "1"},
			"nested": i18next.Tree{"deep": "value"},
			"yaml":   i18next.Tree{"1": "one"},
			"plain":  i18next.Tree{"k": "v"},
		}, tree)
	})

	t.Run("keeps lists of objects as index trees", func(t *testing.T) {
		t.Parallel()
		tree, err := i18next.NormalizeTree(map[string]any{
			"steps": []any{map[string]any{"title": "One"}, "two"},
		})
		require.NoError(t, err)
		require.Equal(t, i18next.Tree{
			"0": i18next.Tree{"title": "One"},
			"1": "two",
		}, tree["steps"])
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		t.Parallel()
		_, err := i18next.NormalizeTree(map[string]any{"ch": make(chan int)})
		require.ErrorIs(t, err, i18next.ErrInvalidSource)
	})
}

func TestValue(t *testing.T) {
	t.Parallel()

	require.False(t, i18next.Value{}.Found())
	require.Equal(t, "none", i18next.Value{}.Kind().String())
	require.Equal(t, "a", i18next.StringValue("a").String())
	require.Equal(t, "a\nb", i18next.ListValue([]string{"a", "b"}).String())
	require.Equal(t, "", i18next.TreeValue(i18next.Tree{"a": "b"}).String())
	require.Equal(t, "tree", i18next.TreeValue(nil).Kind().String())
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("installs and merges top-level keys", func(t *testing.T) {
		t.Parallel()
		s := i18next.NewStore()
		s.Merge("en", "", i18next.Tree{"a": "1", "b": i18next.Tree{"x": "1"}})
		s.Merge("en", "", i18next.Tree{"b": i18next.Tree{"y": "2"}, "c": "3"})

		tree, ok := s.Lookup("en")
		require.True(t, ok)
		require.Equal(t, i18next.Tree{
			"a": "1",
			"b": i18next.Tree{"y": "2"},
			"c": "3",
		}, tree)
	})

	t.Run("merges namespaces additively", func(t *testing.T) {
		t.Parallel()
		s := i18next.NewStore()
		s.Merge("en", "common", i18next.Tree{"hello": "Hello"})
		s.Merge("en", "common", i18next.Tree{"bye": "Bye"})
		s.Merge("en", "", i18next.Tree{"root": "Root"})

		tree, ok := s.Lookup("en")
		require.True(t, ok)
		require.Equal(t, i18next.Tree{
			"common": i18next.Tree{"hello": "Hello", "bye": "Bye"},
			"root":   "Root",
		}, tree)
	})

	t.Run("reports unknown languages", func(t *testing.T) {
		t.Parallel()
		s := i18next.NewStore()
		_, ok := s.Lookup("fr")
		require.False(t, ok)
		s.Merge("pl", "", i18next.Tree{})
		s.Merge("de", "", i18next.Tree{})
		require.Equal(t, []string{"de", "pl"}, s.Languages())
	})
}
