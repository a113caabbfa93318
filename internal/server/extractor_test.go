package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18next/internal/server"
	"github.com/dmitrymomot/i18next/pkg/i18next"
)

func TestExtractor(t *testing.T) {
	t.Parallel()

	inst, err := i18next.New(
		i18next.WithLanguage("en"),
		i18next.WithTranslations("pl", "", map[string]any{"a": "b"}),
	)
	require.NoError(t, err)

	ext := server.NewExtractor(
		server.FromQuery("lang"),
		server.FromHeader("X-Language"),
		server.FromCookie("lang"),
		nil,
		server.FromAcceptLanguage(inst),
	)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		want   string
		wantOK bool
	}{
		{"nothing", func(*http.Request) {}, "", false},
		{"query", func(r *http.Request) { r.URL.RawQuery = "lang=de" }, "de", true},
		{"header", func(r *http.Request) { r.Header.Set("X-Language", "fr") }, "fr", true},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "it"}) }, "it", true},
		{"accept-language match", func(r *http.Request) { r.Header.Set("Accept-Language", "pl-PL,pl;q=0.9") }, "pl", true},
		{"accept-language without match", func(r *http.Request) { r.Header.Set("Accept-Language", "ja") }, "en", true},
		{"query before header", func(r *http.Request) {
			r.URL.RawQuery = "lang=de"
			r.Header.Set("X-Language", "fr")
		}, "de", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			got, ok := ext.Extract(req)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
