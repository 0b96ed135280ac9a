package definitions

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/oriolrp/verbdefs/internal/infinitives"
)

// Store serves built definitions to the query API.
type Store struct {
	defs  map[string]string
	verbs []string // sorted, for letter and prefix scans
}

// LoadStore reads a definitions JSON file produced by WriteJSON.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	var defs map[string]string
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return NewStore(defs), nil
}

// NewStore wraps an in-memory mapping.
func NewStore(defs map[string]string) *Store {
	verbs := make([]string, 0, len(defs))
	for v := range defs {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)

	return &Store{defs: defs, verbs: verbs}
}

// Count returns the number of defined verbs.
func (s *Store) Count() int {
	return len(s.verbs)
}

// Definition returns the description for an infinitive. The lookup is
// case-insensitive and accepts reflexive forms (rentar-se finds rentar).
func (s *Store) Definition(word string) (string, bool) {
	key := infinitives.StripReflexive(strings.ToLower(strings.TrimSpace(word)))
	desc, ok := s.defs[key]
	return desc, ok
}

// ByPrefix returns up to limit verbs starting with prefix, alphabetically.
// A limit of zero or less means no cap.
func (s *Store) ByPrefix(prefix string, limit int) []string {
	var out []string
	for i := sort.SearchStrings(s.verbs, prefix); i < len(s.verbs); i++ {
		if !strings.HasPrefix(s.verbs[i], prefix) {
			break
		}
		out = append(out, s.verbs[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// ByLetter returns every verb starting with the given letter.
func (s *Store) ByLetter(letter string) []string {
	return s.ByPrefix(letter, 0)
}
