// Package infinitives loads and normalizes the list of target verb base
// forms that definitions are built for.
package infinitives

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Set is a membership view over the target infinitives.
type Set map[string]bool

// Wiktionary titles reflexive verbs with the pronoun attached
// (apoltronar-se, asseure's); our infinitive list does not.
const (
	shortReflexive = "'s"
	longReflexive  = "-se"
)

// StripReflexive removes a trailing reflexive pronoun from an infinitive.
func StripReflexive(infinitive string) string {
	if strings.HasSuffix(infinitive, shortReflexive) {
		return strings.TrimSuffix(infinitive, shortReflexive)
	}
	if strings.HasSuffix(infinitive, longReflexive) {
		return strings.TrimSuffix(infinitive, longReflexive)
	}
	return infinitive
}

// Load reads the infinitive list file: one verb per line, lower-cased and
// trimmed. It returns the infinitives in file order plus a membership set.
func Load(path string) ([]string, Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open infinitives: %w", err)
	}
	defer f.Close()

	ordered, set, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ordered, set, nil
}

// Read consumes an infinitive list from r. Blank lines are skipped.
func Read(r io.Reader) ([]string, Set, error) {
	scanner := bufio.NewScanner(r)

	var ordered []string
	set := make(Set)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if !set[word] {
			ordered = append(ordered, word)
		}
		set[word] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return ordered, set, nil
}
