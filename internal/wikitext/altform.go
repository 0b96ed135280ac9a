package wikitext

import "regexp"

// alternativeFormRe captures the target of a Catalan alternative-form
// template. The word must consist of lowercase Catalan letters only, so
// other languages' variants ({{forma-a|es|...}}) never match.
var alternativeFormRe = regexp.MustCompile(`\{\{forma-a\|ca\|([a-zàéèíóòú·ç]*)\}\}`)

// AlternativeForm extracts the referenced infinitive from a
// {{forma-a|ca|word}} template on a raw, untransformed line. It returns ""
// when the line carries no such reference. It must run before template
// removal, which would otherwise strip the marker.
func AlternativeForm(raw string) string {
	m := alternativeFormRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}
