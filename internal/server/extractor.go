package server

import (
	"net/http"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

// ExtractorSource reads a language candidate from a request.
type ExtractorSource func(r *http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false) if all sources miss.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		if src == nil {
			continue
		}
		if v, ok := src(r); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads a plain cookie.
func FromCookie(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader reads a request header verbatim.
func FromHeader(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromAcceptLanguage matches the Accept-Language header against the
// languages loaded into inst.
func FromAcceptLanguage(inst *i18next.I18n) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" {
			return "", false
		}
		return inst.MatchLanguage(header), true
	}
}
