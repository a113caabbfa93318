// Package server exposes an I18n instance over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/i18next/pkg/health"
	"github.com/dmitrymomot/i18next/pkg/i18next"
)

const (
	defaultAddr              = ":8080"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

// Server serves translation lookups.
type Server struct {
	i18n              *i18next.I18n
	logger            *slog.Logger
	router            chi.Router
	extractor         Extractor
	addr              string
	namespace         string
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

// Option configures the Server.
type Option func(*Server)

// WithAddr sets the listen address. Default: ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNamespace prefixes every requested key with "namespace.".
func WithNamespace(ns string) Option {
	return func(s *Server) {
		s.namespace = ns
	}
}

// WithExtractor replaces the language negotiation chain.
func WithExtractor(e Extractor) Option {
	return func(s *Server) {
		s.extractor = e
	}
}

// WithReadHeaderTimeout sets http.Server.ReadHeaderTimeout. Default: 5s.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readHeaderTimeout = d
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown. Default: 10s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New creates a Server for inst. Panics if inst is nil.
func New(inst *i18next.I18n, opts ...Option) *Server {
	if inst == nil {
		panic("server: i18n instance is not provided")
	}

	s := &Server{
		i18n:              inst,
		logger:            slog.New(slog.DiscardHandler),
		addr:              defaultAddr,
		readHeaderTimeout: defaultReadHeaderTimeout,
		shutdownTimeout:   defaultShutdownTimeout,
	}
	s.extractor = NewExtractor(
		FromQuery("lng"),
		FromCookie("lng"),
		FromAcceptLanguage(inst),
	)
	for _, opt := range opts {
		opt(s)
	}

	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID(), s.accessLog, Recover(s.logger))

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
		"translations": s.translationsLoaded,
	}, health.WithLogger(s.logger)))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/languages", s.handleLanguages)
		r.Get("/missing", s.handleMissing)
		r.Delete("/missing", s.handleResetMissing)

		r.Group(func(r chi.Router) {
			r.Use(Language(s.i18n, s.extractor, s.namespace))
			r.Get("/translate", s.handleTranslate)
			r.Post("/translate", s.handleTranslateJSON)
			r.Get("/exists", s.handleExists)
		})
	})

	return r
}

func (s *Server) translationsLoaded(context.Context) error {
	if len(s.i18n.Languages()) == 0 {
		return errors.New("no languages loaded")
	}
	return nil
}

// Run listens on the configured address and serves until ctx is done,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown completed with errors", slog.Any("error", err))
		return err
	}
	s.logger.Info("shutdown completed")
	return nil
}
