package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/i18next/pkg/i18next"
)

// maxBodySize caps POST /v1/translate bodies.
const maxBodySize = 1 << 20

// TranslationResponse is the body of /v1/translate.
type TranslationResponse struct {
	Value    any    `json:"value"`
	Key      string `json:"key"`
	Language string `json:"language"`
	Kind     string `json:"kind"`
}

// TranslateRequest is the body of POST /v1/translate.
type TranslateRequest struct {
	Vars i18next.M `json:"vars,omitempty"`
	Key  string    `json:"key"`
}

// ExistsResponse is the body of /v1/exists.
type ExistsResponse struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Exists   bool   `json:"exists"`
}

// LanguagesResponse is the body of /v1/languages.
type LanguagesResponse struct {
	Current   string   `json:"current"`
	Fallback  string   `json:"fallback"`
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleTranslate serves GET /v1/translate?key=...; every other query
// parameter becomes a variable. Repeated "sprintf" parameters form the
// argument list.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := q.Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}
	s.translate(w, r, key, queryVars(q))
}

// handleTranslateJSON serves POST /v1/translate with a TranslateRequest body,
// which keeps numeric counts and sprintf argument types intact.
func (s *Server) handleTranslateJSON(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}
	s.translate(w, r, req.Key, req.Vars)
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request, key string, vars i18next.M) {
	tr := GetTranslator(r.Context())
	if tr == nil {
		tr = i18next.NewTranslator(s.i18n, "", s.namespace)
	}

	v := tr.GetTranslation(key, vars)
	resp := TranslationResponse{
		Key:      key,
		Language: tr.Language(),
		Kind:     v.Kind().String(),
	}
	switch v.Kind() {
	case i18next.KindList:
		resp.Value = v.List()
	case i18next.KindTree:
		resp.Value = v.Tree()
	default:
		resp.Value = v.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExists(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	tr := GetTranslator(r.Context())
	if tr == nil {
		tr = i18next.NewTranslator(s.i18n, "", s.namespace)
	}
	writeJSON(w, http.StatusOK, ExistsResponse{
		Key:      key,
		Language: tr.Language(),
		Exists:   tr.Exists(key),
	})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{
		Current:   s.i18n.Language(),
		Fallback:  s.i18n.FallbackLanguage(),
		Languages: s.i18n.Languages(),
	})
}

func (s *Server) handleMissing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.i18n.MissingTranslations()))
}

// handleResetMissing drains the missing-translation log and returns what it held.
func (s *Server) handleResetMissing(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.i18n.ResetMissing()))
}

// queryVars converts query parameters to translation variables. The
// negotiated language is already the translator's, so "lng" is dropped to
// keep fallback enabled.
func queryVars(q url.Values) i18next.M {
	vars := make(i18next.M, len(q))
	for name, values := range q {
		switch name {
		case "key", "lng":
			continue
		case i18next.OptReturnObjectTrees:
			b, err := strconv.ParseBool(values[0])
			if err == nil {
				vars[name] = b
			}
		case i18next.OptSprintf:
			if len(values) > 1 {
				vars[name] = values
			} else {
				vars[name] = values[0]
			}
		default:
			vars[name] = values[0]
		}
	}
	return vars
}

func nonNil(m []i18next.MissingTranslation) []i18next.MissingTranslation {
	if m == nil {
		return []i18next.MissingTranslation{}
	}
	return m
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
