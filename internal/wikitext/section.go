// Package wikitext turns the Verb section of a wiktionary page into a clean,
// minimally formatted HTML description.
package wikitext

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	verbHeadingRe = regexp.MustCompile(`===[ ]*Verb[ ]*===`)
	hasLetterRe   = regexp.MustCompile(`[a-zA-Z]`)
)

// crossSectionMarker starts the synonym/translation blocks ({{-sin-}},
// {{-trad-}}, ...) that follow the definitions proper.
const crossSectionMarker = "{{-"

// ExtractDescription locates the Verb section of a page's revision text and
// converts it line by line into an HTML description. infinitives is the set
// of known verb base forms; an alternative-form reference is only surfaced
// when its target belongs to it. The result is "" when the page has no
// usable Verb section.
func ExtractDescription(pageText string, infinitives map[string]bool) string {
	heading := verbHeadingRe.FindStringIndex(pageText)
	if heading == nil {
		return ""
	}

	next := strings.Index(pageText[heading[1]:], "==")
	if next < 0 {
		return ""
	}

	section := pageText[heading[1] : heading[1]+next]
	section = RemoveGallerySections(section)

	var (
		desc        strings.Builder
		state       ListState
		alternative string
	)

	for _, line := range splitLines(section) {
		if strings.Contains(strings.ToLower(line), crossSectionMarker) {
			break
		}

		if alternative == "" {
			alternative = AlternativeForm(line)
		}

		line = RemoveTemplates(line)
		line = RemoveInternalLinks(line)
		line = RemoveEmphasis(line)
		line = RemoveXMLTags(line)
		line, state = ConvertLine(line, state)

		// Lines reduced to punctuation or structure carry no content.
		if !hasLetterRe.MatchString(line) {
			continue
		}

		desc.WriteString(line)
	}

	if alternative != "" && infinitives[alternative] {
		fmt.Fprintf(&desc,
			"<p style='font-weight: 300'>Forma alternativa a <a href='/conjugador-de-verbs/verb/%s'>%s</a></p>",
			alternative, alternative)
	}

	return desc.String()
}

// splitLines splits a section into lines keeping each line's terminator,
// the way a sequential reader would hand them out.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
