package definitions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteText(t *testing.T) {
	mapping := map[string]string{
		"abaltir": "<ol><li>Endormiscar.</li>",
		"cantar":  "<ol><li>Fer sons melodiosos.</li>",
	}
	ordered := []string{"abaltir", "ballar", "cantar"}

	path := filepath.Join(t.TempDir(), "definitions.txt")
	if err := WriteText(path, mapping, ordered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	want := "abaltir\n<ol><li>Endormiscar.</li>\ncantar\n<ol><li>Fer sons melodiosos.</li>\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	mapping := map[string]string{
		"abaltir": "<ol><li>Endormiscar.</li>",
	}

	path := filepath.Join(t.TempDir(), "definitions.json")
	if err := WriteJSON(path, mapping); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["abaltir"] != mapping["abaltir"] {
		t.Errorf("expected %q, got %q", mapping["abaltir"], got["abaltir"])
	}
}

func TestLoadStore_MissingFile(t *testing.T) {
	if _, err := LoadStore(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing definitions file")
	}
}
