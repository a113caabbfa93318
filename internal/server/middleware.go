package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/i18next/pkg/i18next"
	"github.com/dmitrymomot/i18next/pkg/logger"
)

type (
	requestIDKey  struct{}
	translatorKey struct{}
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// stackSize caps the stack trace logged for a recovered panic.
const stackSize = 4096

// RequestID keeps an upstream X-Request-ID or generates one, stores it in the
// request context and echoes it in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// GetRequestID returns the request ID stored by RequestID.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log records.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := GetRequestID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// Recover turns a panic into a 500 response and logs it with a stack trace.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				stack := make([]byte, stackSize)
				stack = stack[:runtime.Stack(stack, false)]
				log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(stack)),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

// Language negotiates the request language with ext, falling back to the
// instance's current language, and stores a Translator for it in the
// request context. The language is also attached to the context for
// logger.LanguageExtractor.
func Language(inst *i18next.I18n, ext Extractor, namespace string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := ext.Extract(r)
			if !ok {
				lang = inst.Language()
			}

			ctx := context.WithValue(r.Context(), translatorKey{}, i18next.NewTranslator(inst, lang, namespace))
			ctx = logger.WithLanguage(ctx, lang)
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator returns the Translator stored by Language, or nil.
func GetTranslator(ctx context.Context) *i18next.Translator {
	tr, _ := ctx.Value(translatorKey{}).(*i18next.Translator)
	return tr
}
