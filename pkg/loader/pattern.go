package loader

import (
	"fmt"
	"path"
	"strings"
)

// Placeholder names with a meaning for the loader. Other placeholders match
// like these but their captures are ignored.
const (
	PlaceholderLanguage  = "lng"
	PlaceholderNamespace = "ns"
)

// defaultFileName is appended to patterns without a known file extension.
const defaultFileName = "translation.json"

// Pattern is a source path template such as "locales/__lng__/__ns__.json".
// A placeholder "__name__" matches one or more characters other than "/".
type Pattern struct {
	raw    string
	tokens []token
}

// token is either a literal run or a placeholder.
type token struct {
	literal     string
	placeholder string
}

// ParsePattern tokenizes a path template. Patterns without a known
// translation file extension get "translation.json" appended as a path element.
func ParsePattern(raw string) (Pattern, error) {
	if raw == "" {
		return Pattern{}, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if !hasDecoder(raw) {
		raw = path.Join(raw, defaultFileName)
	}

	var tokens []token
	rest := raw
	for rest != "" {
		start := strings.Index(rest, "__")
		if start < 0 {
			tokens = append(tokens, token{literal: rest})
			break
		}
		// The name is the shortest non-empty run up to the next "__".
		end := strings.Index(rest[start+3:], "__")
		if end < 0 {
			tokens = append(tokens, token{literal: rest})
			break
		}
		name := rest[start+2 : start+3+end]
		if strings.Contains(name, "/") {
			return Pattern{}, fmt.Errorf("%w: placeholder %q spans a path separator", ErrInvalidPattern, name)
		}
		if start > 0 {
			tokens = append(tokens, token{literal: rest[:start]})
		}
		tokens = append(tokens, token{placeholder: name})
		rest = rest[start+3+end+2:]
	}

	return Pattern{raw: raw, tokens: tokens}, nil
}

// String returns the pattern as written (with the default file name applied).
func (p Pattern) String() string { return p.raw }

// HasPlaceholders reports whether the pattern contains any placeholder.
func (p Pattern) HasPlaceholders() bool {
	for _, t := range p.tokens {
		if t.placeholder != "" {
			return true
		}
	}
	return false
}

// Prefix returns the literal text before the first placeholder.
func (p Pattern) Prefix() string {
	if len(p.tokens) == 0 || p.tokens[0].placeholder != "" {
		return ""
	}
	return p.tokens[0].literal
}

// Glob converts the pattern to a path.Match expression, replacing each
// placeholder with "*".
func (p Pattern) Glob() string {
	var b strings.Builder
	for _, t := range p.tokens {
		if t.placeholder != "" {
			b.WriteByte('*')
			continue
		}
		for i := 0; i < len(t.literal); i++ {
			c := t.literal[i]
			if strings.IndexByte(`*?[\`, c) >= 0 {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Match reports whether name fits the pattern and returns the placeholder
// captures. Placeholders take the longest capture that lets the rest match.
func (p Pattern) Match(name string) (map[string]string, bool) {
	captures := make(map[string]string)
	if !matchTokens(p.tokens, name, captures) {
		return nil, false
	}
	return captures, true
}

func matchTokens(tokens []token, s string, captures map[string]string) bool {
	if len(tokens) == 0 {
		return s == ""
	}

	t := tokens[0]
	if t.placeholder == "" {
		if !strings.HasPrefix(s, t.literal) {
			return false
		}
		return matchTokens(tokens[1:], s[len(t.literal):], captures)
	}

	limit := strings.IndexByte(s, '/')
	if limit < 0 {
		limit = len(s)
	}
	for n := limit; n >= 1; n-- {
		if matchTokens(tokens[1:], s[n:], captures) {
			captures[t.placeholder] = s[:n]
			return true
		}
	}
	return false
}
