package i18next_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	inst, err := i18next.New(
		i18next.WithLanguage("en"),
		i18next.WithFallbackLanguage("en"),
		i18next.WithTranslations("en", "app", map[string]any{
			"hello":   "Hello",
			"welcome": "Welcome, {{name}}!",
			"title":   "$t(app.hello) from app",
		}),
		i18next.WithTranslations("pl", "app", map[string]any{
			"hello": "Cześć",
		}),
	)
	require.NoError(t, err)

	t.Run("panics with nil i18n", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() {
			i18next.NewTranslator(nil, "en", "app")
		})
	})

	t.Run("defaults to current language when empty", func(t *testing.T) {
		t.Parallel()
		tr := i18next.NewTranslator(inst, "", "app")
		require.Equal(t, "en", tr.Language())
		require.Equal(t, "app", tr.Namespace())
	})

	t.Run("translates within namespace", func(t *testing.T) {
		t.Parallel()
		tr := i18next.NewTranslator(inst, "pl", "app")
		require.Equal(t, "Cześć", tr.T("hello"))
		require.True(t, tr.Exists("hello"))
		require.False(t, tr.Exists("welcome"))
	})

	t.Run("falls back like the parent", func(t *testing.T) {
		t.Parallel()
		tr := i18next.NewTranslator(inst, "pl", "app")
		require.Equal(t, "Welcome, Ada!", tr.T("welcome", i18next.M{"name": "Ada"}))
	})

	t.Run("nested references use full keys in the translator language", func(t *testing.T) {
		t.Parallel()
		tr := i18next.NewTranslator(inst, "pl", "app")
		require.Equal(t, "Cześć from app", tr.T("title"))
	})

	t.Run("does not change the parent language", func(t *testing.T) {
		t.Parallel()
		tr := i18next.NewTranslator(inst, "pl", "")
		require.Equal(t, "Cześć", tr.T("app.hello"))
		require.Equal(t, "en", inst.Language())
		require.Equal(t, "Hello", inst.T("app.hello"))
	})

	t.Run("method form", func(t *testing.T) {
		t.Parallel()
		tr := inst.Translator("pl", "app")
		require.Equal(t, "pl", tr.Language())
		require.Equal(t, "app", tr.Namespace())
		require.Equal(t, "Cześć", tr.T("hello"))
	})
}
