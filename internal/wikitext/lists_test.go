package wikitext

import "testing"

// convertAll feeds lines through ConvertLine followed by an end-of-input
// sentinel, the way a section drives the converter.
func convertAll(lines []string) []string {
	var state ListState
	var out []string
	for _, line := range append(lines, "") {
		var html string
		html, state = ConvertLine(line, state)
		out = append(out, html)
	}
	return out
}

func TestConvertLine_OrderedList(t *testing.T) {
	got := convertAll([]string{
		"abaltir",
		"#  Endormiscar, mig dormir.",
		"#  Endormiscar-se.",
	})

	want := []string{
		"abaltir",
		"<ol><li>Endormiscar, mig dormir.</li>",
		"<li>Endormiscar-se.</li>",
		"</ol>",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestConvertLine_OrderedWithDescriptionList(t *testing.T) {
	got := convertAll([]string{
		"arrambar",
		"# Posar coses juntes a un costat.",
		"#  Acostar-se molt a una cosa fins a tocar-la.",
		"#: «Vaig arrambar-me d'esquena a la paret»",
		"#: «Alerta, no t'arrambis pel balcó que pots caure»",
		"#  Llançar la pilota de manera que es desplaci arran de paret.",
	})

	want := []string{
		"arrambar",
		"<ol><li>Posar coses juntes a un costat.</li>",
		"<li>Acostar-se molt a una cosa fins a tocar-la.</li>",
		"<dl><dd>«Vaig arrambar-me d'esquena a la paret»</dd>",
		"<dd>«Alerta, no t'arrambis pel balcó que pots caure»</dd>",
		"</dl><li>Llançar la pilota de manera que es desplaci arran de paret.</li>",
		"</ol>",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestConvertLine_BareMarkerClosesList(t *testing.T) {
	var state ListState
	_, state = ConvertLine("# primer", state)
	if !state.ListOpen {
		t.Fatal("expected list to be open after an item")
	}

	html, state := ConvertLine("#", state)
	if html != "</ol>#" {
		t.Errorf("expected %q, got %q", "</ol>#", html)
	}
	if state.ListOpen {
		t.Error("expected a bare marker to close the open list")
	}
}

func TestConvertLine_EmptyDescriptionCancels(t *testing.T) {
	var state ListState
	_, state = ConvertLine("#: cita", state)
	if !state.DescriptionOpen {
		t.Fatal("expected description list to be open")
	}

	html, state := ConvertLine("#:", state)
	if html != "" {
		t.Errorf("expected empty output for a bare #: marker, got %q", html)
	}
	if state.DescriptionOpen {
		t.Error("expected a bare #: marker to cancel the description list")
	}
}

func TestConvertLine_DescriptionDoesNotCloseOrderedList(t *testing.T) {
	var state ListState
	_, state = ConvertLine("# item", state)
	html, state := ConvertLine("#: cita", state)

	if html != "<dl><dd>cita</dd>" {
		t.Errorf("expected %q, got %q", "<dl><dd>cita</dd>", html)
	}
	if !state.ListOpen {
		t.Error("a #: line must not close the open ordered list")
	}
	if !state.DescriptionOpen {
		t.Error("expected description list to be open")
	}
}
