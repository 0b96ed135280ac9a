package infinitives

import (
	"strings"
	"testing"
)

func TestStripReflexive(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"apoltronar-se", "apoltronar"},
		{"asseure's", "asseure"},
		{"cantar", "cantar"},
		{"se", "se"},
	}
	for _, c := range cases {
		if got := StripReflexive(c.in); got != c.want {
			t.Errorf("StripReflexive(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestRead(t *testing.T) {
	input := "Abaltir\n cantar \n\nballar\ncantar\n"
	ordered, set, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"abaltir", "cantar", "ballar"}
	if len(ordered) != len(want) {
		t.Fatalf("expected %d infinitives, got %d: %q", len(want), len(ordered), ordered)
	}
	for i := range want {
		if ordered[i] != want[i] {
			t.Errorf("ordered[%d]: expected %q, got %q", i, want[i], ordered[i])
		}
	}
	for _, w := range want {
		if !set[w] {
			t.Errorf("expected %q in set", w)
		}
	}
}

func TestLemmasFromDictionary(t *testing.T) {
	input := strings.Join([]string{
		"cantaria cantar VMIC1S00",
		"cantar cantar VMN00000",
		"ser ser VSN00000",
		"haver haver VAN00000",
		"entrada curta",
	}, "\n")

	lemmas, err := LemmasFromDictionary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"cantar", "ser", "haver"}
	if len(lemmas) != len(want) {
		t.Fatalf("expected %d lemmas, got %d: %q", len(want), len(lemmas), lemmas)
	}
	for i := range want {
		if lemmas[i] != want[i] {
			t.Errorf("lemmas[%d]: expected %q, got %q", i, want[i], lemmas[i])
		}
	}
}

func TestReflexive(t *testing.T) {
	refs := Reflexives{"asseure": true, "rentar": true}

	cases := []struct {
		in   string
		want string
	}{
		{"asseure", "asseure's"},
		{"rentar", "rentar-se"},
		{"cantar", "cantar"},
	}
	for _, c := range cases {
		if got := refs.Reflexive(c.in); got != c.want {
			t.Errorf("Reflexive(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}

func TestReadReflexives(t *testing.T) {
	refs, err := ReadReflexives(strings.NewReader("asseure\n\n rentar \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 reflexives, got %d", len(refs))
	}
	if !refs["asseure"] || !refs["rentar"] {
		t.Errorf("unexpected set contents: %v", refs)
	}
}
