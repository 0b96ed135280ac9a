package definitions

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// WriteText writes the line-pair definitions file: each defined infinitive
// on one line and its description on the next, in infinitive-list order.
// Undefined infinitives are omitted.
func WriteText(path string, mapping map[string]string, ordered []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, verb := range ordered {
		desc, ok := mapping[verb]
		if !ok {
			continue
		}
		fmt.Fprintln(w, verb)
		fmt.Fprintln(w, desc)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteJSON writes the whole mapping as one JSON object.
func WriteJSON(path string, mapping map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := json.NewEncoder(f).Encode(mapping); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
