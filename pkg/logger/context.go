package logger

import (
	"context"
	"log/slog"
)

type languageKey struct{}

// WithLanguage stores the language serving the current request.
func WithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, languageKey{}, language)
}

// LanguageFromContext returns the language stored by WithLanguage.
func LanguageFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageKey{}).(string)
	return lang, ok && lang != ""
}

// LanguageExtractor adds a "language" attribute for contexts carrying one.
func LanguageExtractor(ctx context.Context) (slog.Attr, bool) {
	if lang, ok := LanguageFromContext(ctx); ok {
		return slog.String("language", lang), true
	}
	return slog.Attr{}, false
}
