package infinitives

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// infinitivePostags are the dictionary descriptors that mark infinitive
// forms (main, auxiliary and semi-auxiliary verbs).
var infinitivePostags = map[string]bool{
	"VMN00000": true,
	"VAN00000": true,
	"VSN00000": true,
}

// LemmasFromDictionary reads "form lemma postag" dictionary entries and
// returns the lemma of every infinitive form, in file order. Short or
// malformed entries are skipped.
func LemmasFromDictionary(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)

	var lemmas []string
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		if !infinitivePostags[fields[2]] {
			continue
		}
		lemmas = append(lemmas, fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	return lemmas, nil
}
