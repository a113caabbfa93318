package i18next

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

const (
	// DefaultLanguage is the current language when none is configured.
	DefaultLanguage = "en"
	// DefaultFallbackLanguage is consulted when the current language lacks a key.
	DefaultFallbackLanguage = "dev"
	// DefaultRecursionLimit bounds nested $t(...) expansion per translation call.
	DefaultRecursionLimit = 10
)

// Source yields translation bundles. language is the current language, used
// by sources that cannot derive a language from their own layout.
type Source interface {
	Load(ctx context.Context, language string) ([]Bundle, error)
}

// MissingTranslation records a key that the current or explicit language lacked.
type MissingTranslation struct {
	Language string `json:"language" yaml:"language"`
	Key      string `json:"key" yaml:"key"`
}

// I18n resolves and renders translations. It owns the store, the language
// settings, the nesting limit and the missing-translation log.
// All methods are safe for concurrent use.
type I18n struct {
	store             *Store
	logger            *slog.Logger
	missingKeyHandler func(language, key string)
	postProcessors    map[string]PostProcessor
	language          string
	fallback          string
	missing           []MissingTranslation
	recursionLimit    int
	mu                sync.RWMutex
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance with the given options.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		store:          NewStore(),
		logger:         slog.New(slog.DiscardHandler),
		language:       DefaultLanguage,
		fallback:       DefaultFallbackLanguage,
		recursionLimit: DefaultRecursionLimit,
		postProcessors: map[string]PostProcessor{
			PostProcessSprintf: SprintfPostProcessor,
		},
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return i, nil
}

// Init creates an I18n instance with language as the current language and
// loads every bundle src yields.
func Init(ctx context.Context, language string, src Source, opts ...Option) (*I18n, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	i, err := New(append([]Option{WithLanguage(language)}, opts...)...)
	if err != nil {
		return nil, err
	}

	if err := i.Load(ctx, src); err != nil {
		return nil, err
	}

	return i, nil
}

// WithLanguage sets the current language.
func WithLanguage(language string) Option {
	return func(i *I18n) error {
		if language == "" {
			return ErrEmptyLanguage
		}
		i.language = language
		return nil
	}
}

// WithFallbackLanguage sets the fallback language. An empty value disables fallback.
func WithFallbackLanguage(language string) Option {
	return func(i *I18n) error {
		i.fallback = language
		return nil
	}
}

// WithRecursionLimit sets how many nested $t(...) expansions a single call may perform.
func WithRecursionLimit(n int) Option {
	return func(i *I18n) error {
		if n < 0 {
			return ErrInvalidRecursionLimit
		}
		i.recursionLimit = n
		return nil
	}
}

// WithTranslations merges a translation tree for language (and namespace, if non-empty).
func WithTranslations(language, namespace string, tree map[string]any) Option {
	return func(i *I18n) error {
		if language == "" {
			return ErrEmptyLanguage
		}
		normalized, err := NormalizeTree(tree)
		if err != nil {
			return err
		}
		i.store.Merge(language, namespace, normalized)
		return nil
	}
}

// WithLogger sets the logger used for load and miss events.
func WithLogger(l *slog.Logger) Option {
	return func(i *I18n) error {
		if l != nil {
			i.logger = l
		}
		return nil
	}
}

// WithMissingKeyHandler sets a function called for every missing-translation record.
func WithMissingKeyHandler(handler func(language, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithPostProcessor registers a post-processor selected by the "postProcess" option.
func WithPostProcessor(name string, p PostProcessor) Option {
	return func(i *I18n) error {
		if name == "" || p == nil {
			return fmt.Errorf("i18next: post-processor %q: name and function are required", name)
		}
		i.postProcessors[name] = p
		return nil
	}
}

// Load merges every bundle src yields into the store.
// It fails with ErrSourceNotFound when src yields nothing.
func (i *I18n) Load(ctx context.Context, src Source) error {
	if src == nil {
		return ErrNilSource
	}

	bundles, err := src.Load(ctx, i.Language())
	if err != nil {
		return err
	}
	if len(bundles) == 0 {
		return ErrSourceNotFound
	}

	for _, b := range bundles {
		if err := i.Merge(b); err != nil {
			return err
		}
	}

	i.logger.InfoContext(ctx, "translations loaded",
		slog.Int("bundles", len(bundles)),
		slog.Any("languages", i.Languages()),
	)
	return nil
}

// Merge adds one bundle to the store. Bundles without a language are
// assigned to the current language.
func (i *I18n) Merge(b Bundle) error {
	tree, err := NormalizeTree(b.Tree)
	if err != nil {
		return fmt.Errorf("loading %q: %w", b.Source, err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	language := b.Language
	if language == "" {
		language = i.language
	}
	i.store.Merge(language, b.Namespace, tree)
	return nil
}

// SetLanguage changes the current language. The fallback language is
// changed only when fallback is non-empty.
func (i *I18n) SetLanguage(language, fallback string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.language = language
	if fallback != "" {
		i.fallback = fallback
	}
}

// SetNestingRecursionLimit overrides the nested-reference expansion limit.
func (i *I18n) SetNestingRecursionLimit(n int) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.recursionLimit = max(n, 0)
}

// Language returns the current language.
func (i *I18n) Language() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.language
}

// FallbackLanguage returns the fallback language.
func (i *I18n) FallbackLanguage() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.fallback
}

// RecursionLimit returns the nested-reference expansion limit.
func (i *I18n) RecursionLimit() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.recursionLimit
}

// Languages returns the loaded language codes in lexical order.
func (i *I18n) Languages() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.store.Languages()
}

// T translates key and returns the rendered string. Object results
// (requested with returnObjectTrees) are flattened by Value.String.
func (i *I18n) T(key string, vars ...M) string {
	return i.GetTranslation(key, vars...).String()
}

// GetTranslation resolves key through the explicit language, the current
// language and the fallback language, then renders the result. It never
// fails: when nothing resolves, the "defaultValue" option or the key itself
// is rendered instead.
func (i *I18n) GetTranslation(key string, vars ...M) Value {
	return i.translate(i.Language(), key, mergeVars(vars), &nesting{limit: i.RecursionLimit()})
}

// Exists reports whether key resolves in the current language without
// context, count or fallback.
func (i *I18n) Exists(key string) bool {
	return i.resolveIn(i.Language(), key, &resolveOptions{}).Found()
}

// MissingTranslations returns a copy of the missing-translation log in insertion order.
func (i *I18n) MissingTranslations() []MissingTranslation {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]MissingTranslation, len(i.missing))
	copy(out, i.missing)
	return out
}

// ResetMissing empties the missing-translation log and returns its previous contents.
// The log is never trimmed otherwise.
func (i *I18n) ResetMissing() []MissingTranslation {
	i.mu.Lock()
	defer i.mu.Unlock()

	out := i.missing
	i.missing = nil
	return out
}

// translate runs the fallback chain with current as the current language.
func (i *I18n) translate(current, key string, vars M, n *nesting) Value {
	o := parseOptions(vars)

	attempted := current
	if o.hasLanguage {
		attempted = o.language
	}

	v := i.resolveIn(attempted, key, o)
	if !v.Found() {
		i.recordMissing(attempted, key)

		if !o.hasLanguage {
			if fb := i.FallbackLanguage(); fb != "" && fb != attempted {
				v = i.resolveIn(fb, key, o)
			}
		}
	}

	if !v.Found() && o.hasDefault {
		v = StringValue(o.defaultValue)
	}
	resolved := v.Found()
	if !resolved {
		v = StringValue(key)
	}

	if v.Kind() != KindString {
		return v
	}

	return StringValue(i.render(current, v.String(), vars, o, n, resolved))
}

func (i *I18n) resolveIn(language, key string, o *resolveOptions) Value {
	i.mu.RLock()
	defer i.mu.RUnlock()

	tree, ok := i.store.Lookup(language)
	if !ok {
		return Value{}
	}
	return resolve(tree, key, o)
}

func (i *I18n) recordMissing(language, key string) {
	i.mu.Lock()
	i.missing = append(i.missing, MissingTranslation{Language: language, Key: key})
	handler := i.missingKeyHandler
	i.mu.Unlock()

	i.logger.Debug("translation missing",
		slog.String("language", language),
		slog.String("key", key),
	)

	if handler != nil {
		handler(language, key)
	}
}
