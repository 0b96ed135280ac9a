package wikitext

import "testing"

func TestAlternativeForm(t *testing.T) {
	got := AlternativeForm("{{es-verb|t|present=acenso}} {{forma-a|ca|complànyer}}")
	if got != "complànyer" {
		t.Errorf("expected %q, got %q", "complànyer", got)
	}
}

func TestAlternativeForm_OtherLanguage(t *testing.T) {
	got := AlternativeForm("{{es-verb|t|present=acenso}} {{forma-a|es|cantar}}")
	if got != "" {
		t.Errorf("expected no match for an es variant, got %q", got)
	}
}

func TestAlternativeForm_NoTemplate(t *testing.T) {
	if got := AlternativeForm("# Endormiscar."); got != "" {
		t.Errorf("expected no match, got %q", got)
	}
}

func TestAlternativeForm_CatalanLetters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{{forma-a|ca|atènyer}}", "atènyer"},
		{"{{forma-a|ca|reduïr}}", ""}, // ï is outside the accepted alphabet
		{"{{forma-a|ca|col·locar}}", "col·locar"},
		{"{{forma-a|ca|caçar}}", "caçar"},
	}
	for _, c := range cases {
		if got := AlternativeForm(c.in); got != c.want {
			t.Errorf("AlternativeForm(%q): expected %q, got %q", c.in, c.want, got)
		}
	}
}
