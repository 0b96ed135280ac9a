package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleVerb returns the definition of a single infinitive. Reflexive
// spellings resolve to their base form.
func (s *Server) handleVerb(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	desc, ok := s.store.Definition(word)
	if !ok {
		jsonError(w, "verb not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"verb":       word,
		"definition": desc,
	})
}

// handleIndex lists every defined verb starting with a letter.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	letter := strings.ToLower(chi.URLParam(r, "letter"))
	if len([]rune(letter)) != 1 {
		jsonError(w, "index takes a single letter", http.StatusBadRequest)
		return
	}

	verbs := s.store.ByLetter(letter)
	writeJSON(w, http.StatusOK, map[string]any{
		"letter": letter,
		"verbs":  verbs,
		"count":  len(verbs),
	})
}

// handleAutocomplete lists defined verbs matching a prefix, capped.
func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	prefix := strings.ToLower(chi.URLParam(r, "prefix"))

	verbs := s.store.ByPrefix(prefix, s.cfg.AutocompleteLimit)
	writeJSON(w, http.StatusOK, map[string]any{
		"prefix": prefix,
		"verbs":  verbs,
		"count":  len(verbs),
	})
}

// writeJSON answers with a JSON body and the permissive CORS header the
// dictionary frontend relies on.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
