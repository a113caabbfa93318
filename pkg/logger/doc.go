// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// # Basic Usage
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "text"},
//		logger.LanguageExtractor,
//	)
//
//	ctx = logger.WithLanguage(ctx, "de")
//	log.InfoContext(ctx, "translated")
//	// time=... level=INFO msg=translated language=de
//
// Logs go to stderr unless Config.Output is set.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of the context. Extractors run
// on every log call, so request-scoped values are always fresh:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// NewLogHandlerDecorator wraps any slog.Handler with extractors.
//
// # Sentry
//
// With Config.Sentry.DSN set, records are sent to both the local handler and
// Sentry. Errors create issues; warnings are stored as logs. If Sentry fails
// to initialize, logging continues locally.
package logger
