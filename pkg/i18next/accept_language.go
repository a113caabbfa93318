package i18next

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchLanguage returns the entry of available that best serves an
// Accept-Language header, honoring quality values and regional variants
// ("en-GB" matches "en"). Entries that are not valid BCP 47 tags are never
// matched. When nothing matches, the first available language is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func MatchLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		// Drop the entry cut in half.
		if idx := strings.LastIndexByte(header, ','); idx > 0 {
			header = header[:idx]
		}
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for _, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		names = append(names, a)
	}
	if len(supported) == 0 {
		return available[0]
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return available[0]
	}
	return names[index]
}

// MatchLanguage picks the loaded language that best serves an Accept-Language header.
// With no match, the current language is returned.
func (i *I18n) MatchLanguage(header string) string {
	current := i.Language()
	available := []string{current}
	for _, lang := range i.Languages() {
		if lang != current {
			available = append(available, lang)
		}
	}
	return MatchLanguage(header, available)
}
