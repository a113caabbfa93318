// Package i18next resolves dotted translation keys against nested per-language
// trees and renders the result with i18next-style rules: context and plural
// variants, language fallback, nested $t(...) references, a sprintf
// post-processor and {{name}} / __name__ interpolation.
//
// # Basic Usage
//
// Build an instance from in-memory trees:
//
//	inst, err := i18next.New(
//		i18next.WithLanguage("de"),
//		i18next.WithFallbackLanguage("en"),
//		i18next.WithTranslations("en", "", map[string]any{
//			"welcome": "Hi {{name}}",
//			"item":        "one item",
//			"item_plural": "{{count}} items",
//		}),
//		i18next.WithTranslations("de", "", map[string]any{
//			"welcome": "Hallo {{name}}",
//		}),
//	)
//
//	inst.T("welcome", i18next.M{"name": "Ada"})  // "Hallo Ada"
//	inst.T("item", i18next.M{"count": 5})        // "5 items" (from the fallback language)
//
// Or load them through a Source (see pkg/loader):
//
//	src, _ := loader.Open("locales/__lng__/__ns__.json")
//	inst, err := i18next.Init(ctx, "en", src)
//
// Init fails with ErrSourceNotFound when the source yields nothing and with
// ErrInvalidSource when a file cannot be parsed.
//
// # Resolution
//
// A key is split on "." and walked through the tree. For the last segment,
// a "<key>_<context>" sibling is preferred when the "context" option is set;
// then, with a "count" option, "<key>_0" (count 0), "<key>_plural_<count>"
// and "<key>_plural" (count != 1) are tried in that order.
//
// Lookups run against the "lng" option when present (and nothing else),
// otherwise the current language followed by the fallback language. A miss
// in the first language is appended to the missing-translation log even if
// the fallback succeeds. When nothing resolves, the "defaultValue" option or
// the key itself is returned.
//
// Lists are joined with newlines. Subtrees are only returned with the
// "returnObjectTrees" option; otherwise they count as missing.
//
// # Rendering
//
// "$t(other.key)" references are replaced by the translation of other.key,
// recursively. One call performs at most RecursionLimit expansions; the
// remaining references are left as they are. A reference ends at the first
// ")", so keys containing ")" cannot be referenced.
//
// With M{"postProcess": "sprintf", "sprintf": []any{"a", 2}} the string is
// formatted printf-style. Finally every string or number option replaces its
// {{name}} and __name__ placeholders.
//
// # Thread Safety
//
// I18n guards its state with a RWMutex. The missing-translation log grows
// until ResetMissing is called.
package i18next
