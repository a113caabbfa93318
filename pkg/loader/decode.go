package loader

import (
	"encoding/json"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

// unmarshalFunc decodes a document into v.
type unmarshalFunc func(data []byte, v any) error

var decoders = map[string]unmarshalFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

func hasDecoder(name string) bool {
	_, ok := decoders[strings.ToLower(path.Ext(name))]
	return ok
}

// Decode parses a translation document, choosing the format by the extension
// of name (.json, .yaml, .yml, .toml). The document must be an object.
// Errors wrap i18next.ErrInvalidSource and name the document.
func Decode(name string, data []byte) (i18next.Tree, error) {
	unmarshal, ok := decoders[strings.ToLower(path.Ext(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q: unsupported format", i18next.ErrInvalidSource, name)
	}

	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", i18next.ErrInvalidSource, name, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %q: document is empty", i18next.ErrInvalidSource, name)
	}

	tree, err := i18next.NormalizeTree(raw)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	return tree, nil
}

// bundlesFor turns one decoded document into bundles. With placeholders the
// document belongs to the captured language and namespace (an uncaptured
// language is left empty for the caller's current language). Without
// placeholders the document's top-level keys are language codes.
func bundlesFor(p Pattern, name string, data []byte) ([]i18next.Bundle, error) {
	tree, err := Decode(name, data)
	if err != nil {
		return nil, err
	}

	if p.HasPlaceholders() {
		captures, ok := p.Match(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q does not match %q", ErrInvalidPattern, name, p)
		}
		return []i18next.Bundle{{
			Tree:      tree,
			Language:  captures[PlaceholderLanguage],
			Namespace: captures[PlaceholderNamespace],
			Source:    name,
		}}, nil
	}

	bundles := make([]i18next.Bundle, 0, len(tree))
	for _, language := range slices.Sorted(maps.Keys(tree)) {
		sub, ok := tree[language].(i18next.Tree)
		if !ok {
			return nil, fmt.Errorf("%w: %q: language %q is not an object", i18next.ErrInvalidSource, name, language)
		}
		bundles = append(bundles, i18next.Bundle{Tree: sub, Language: language, Source: name})
	}
	return bundles, nil
}
