package i18next

import (
	"strings"
)

const (
	nestingOpen  = "$t("
	nestingClose = ")"
)

// nesting counts $t(...) expansions for one top-level translation call.
// It is shared by every recursive call of that chain, so both deep chains
// and reference cycles stop after limit expansions.
type nesting struct {
	limit int
	used  int
}

func (n *nesting) acquire() bool {
	if n.used >= n.limit {
		return false
	}
	n.used++
	return true
}

// render expands nested references, applies the post-processor and
// interpolates variables, in that order. The post-processor only runs on
// resolved values, never on a key echoed back for a miss.
func (i *I18n) render(current, s string, vars M, o *resolveOptions, n *nesting, resolved bool) string {
	if strings.Contains(s, nestingOpen) && n.acquire() {
		s = i.expandNested(current, s, vars, n)
	}

	if resolved && s != "" && o.postProcess != "" {
		i.mu.RLock()
		p, ok := i.postProcessors[o.postProcess]
		i.mu.RUnlock()
		if ok {
			s = p(s, vars)
		}
	}

	return Interpolate(s, vars)
}

// expandNested replaces every $t(key) in s with the translation of key.
// Identical references are translated once and replaced everywhere.
func (i *I18n) expandNested(current, s string, vars M, n *nesting) string {
	refs := scanNested(s)
	done := make(map[string]bool, len(refs))

	for _, ref := range refs {
		if done[ref.raw] {
			continue
		}
		done[ref.raw] = true

		nested := i.translate(current, ref.key, vars, n)
		s = strings.ReplaceAll(s, ref.raw, nested.String())
	}

	return s
}

// nestedRef is one "$t(key)" occurrence.
type nestedRef struct {
	raw string
	key string
}

// scanNested finds "$t(" ... ")" references in order. A reference ends at the
// first ")" after its opening, so keys containing ")" cannot be referenced.
// An opening without a closing parenthesis is not a reference.
func scanNested(s string) []nestedRef {
	var refs []nestedRef

	for {
		start := strings.Index(s, nestingOpen)
		if start < 0 {
			return refs
		}
		rest := s[start+len(nestingOpen):]
		end := strings.Index(rest, nestingClose)
		if end < 0 {
			return refs
		}
		refs = append(refs, nestedRef{
			raw: s[start : start+len(nestingOpen)+end+len(nestingClose)],
			key: rest[:end],
		})
		s = rest[end+len(nestingClose):]
	}
}
