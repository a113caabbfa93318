package loader

import "log/slog"

// Option configures a source.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	concurrency int
}

func defaultOptions() *options {
	return &options{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: 8,
	}
}

// WithLogger sets the logger for per-document debug events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency limits how many documents a remote source fetches at once.
// Default: 8.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
