package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

// FS loads translation documents from an fs.FS whose paths match a pattern.
type FS struct {
	fsys    fs.FS
	opts    *options
	pattern Pattern
}

var _ i18next.Source = (*FS)(nil)

// NewFS creates a source reading documents from fsys that match pattern.
//
// Example structure for "__lng__/__ns__.json":
//
//	en/common.json
//	en/errors.json
//	de/common.json
func NewFS(fsys fs.FS, pattern string, opts ...Option) (*FS, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: nil file system", ErrInvalidConfig)
	}
	p, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &FS{fsys: fsys, pattern: p, opts: o}, nil
}

// Open creates a source for an OS path pattern such as
// "./locales/__lng__/__ns__.json". The directory before the first
// placeholder becomes the file system root. A pattern without a known
// file extension, such as "locales/", names a directory holding
// translation.json.
func Open(pattern string, opts ...Option) (*FS, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}

	pattern = filepath.ToSlash(pattern)
	if !hasDecoder(pattern) {
		pattern = path.Join(pattern, defaultFileName)
	}

	static := path.Dir(pattern) + "/"
	if i := strings.Index(pattern, "__"); i >= 0 {
		static = pattern[:i]
	}

	root, rel := ".", pattern
	if i := strings.LastIndexByte(static, '/'); i >= 0 {
		root, rel = pattern[:i], pattern[i+1:]
		if root == "" {
			root = "/"
		}
	}

	return NewFS(os.DirFS(filepath.FromSlash(root)), rel, opts...)
}

// Pattern returns the source's path pattern.
func (s *FS) Pattern() Pattern { return s.pattern }

// Load reads every matching document. It fails with
// i18next.ErrSourceNotFound when nothing matches and with
// i18next.ErrInvalidSource when a document cannot be parsed.
func (s *FS) Load(ctx context.Context, _ string) ([]i18next.Bundle, error) {
	names, err := fs.Glob(s.fsys, s.pattern.Glob())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	var bundles []i18next.Bundle
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := s.pattern.Match(name); !ok {
			continue
		}

		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrReadFailed, name, err)
		}

		b, err := bundlesFor(s.pattern, name, data)
		if err != nil {
			return nil, err
		}
		s.opts.logger.DebugContext(ctx, "translation document loaded",
			slog.String("path", name),
			slog.Int("bundles", len(b)),
		)
		bundles = append(bundles, b...)
	}

	if len(bundles) == 0 {
		return nil, fmt.Errorf("%w: no documents match %q", i18next.ErrSourceNotFound, s.pattern)
	}
	return bundles, nil
}
