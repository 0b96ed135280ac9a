package infinitives

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reflexives is the set of verbs that take a reflexive pronoun.
type Reflexives map[string]bool

// LoadReflexives reads the reflexive verb list: one lemma per line.
func LoadReflexives(path string) (Reflexives, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reflexives: %w", err)
	}
	defer f.Close()

	refs, err := ReadReflexives(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return refs, nil
}

// ReadReflexives consumes a reflexive verb list from r.
func ReadReflexives(r io.Reader) (Reflexives, error) {
	scanner := bufio.NewScanner(r)

	refs := make(Reflexives)
	for scanner.Scan() {
		lemma := strings.TrimSpace(scanner.Text())
		if lemma == "" {
			continue
		}
		refs[lemma] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// Reflexive returns the pronominal form of a lemma when it is a known
// reflexive verb, attaching 's after a final e and -se otherwise. Other
// lemmas come back unchanged.
func (r Reflexives) Reflexive(lemma string) string {
	if !r[lemma] {
		return lemma
	}
	if strings.HasSuffix(lemma, "e") {
		return lemma + shortReflexive
	}
	return lemma + longReflexive
}
