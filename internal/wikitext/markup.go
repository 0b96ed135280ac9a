package wikitext

import (
	"regexp"
	"strings"
)

const (
	galleryStart = "<gallery>"
	galleryEnd   = "</gallery>"

	templateStart = "{{"
	templateEnd   = "}}"

	linkOpen  = "[["
	linkClose = "]]"

	boldMarker   = "'''"
	italicMarker = "''"
)

var (
	refSpanRe = regexp.MustCompile(`(<ref>)(.*)(</ref>)`)
	anyTagRe  = regexp.MustCompile(`<[^>]*>`)
)

// RemoveGallerySections deletes the first <gallery>...</gallery> span,
// which may stretch across embedded newlines. Only the first span is
// removed; callers apply this once per section.
func RemoveGallerySections(text string) string {
	start := strings.Index(text, galleryStart)
	if start < 0 {
		return text
	}

	end := strings.Index(text[start:], galleryEnd)
	if end < 0 {
		return text
	}
	end += start

	return text[:start] + text[end+len(galleryEnd):]
}

// RemoveTemplates strips every balanced {{...}} template from the line,
// nested templates included. Unbalanced markup leaves the line untouched.
func RemoveTemplates(line string) string {
	for {
		stripped, ok := removeFirstTemplate(line)
		if !ok || stripped == line {
			return line
		}
		line = stripped
	}
}

// removeFirstTemplate scans left to right with a nesting counter and cuts
// the span from the first {{ to the }} that returns the depth to zero.
func removeFirstTemplate(line string) (string, bool) {
	startPos, endPos := -1, -1
	pos := 0
	opened := 0

	for {
		start := indexFrom(line, templateStart, pos)
		end := indexFrom(line, templateEnd, pos)
		if start < 0 && end < 0 {
			break
		}

		if startPos >= 0 && opened == 0 {
			break
		}

		switch {
		case end < 0 || (start >= 0 && start < end):
			pos = start + len(templateStart)
			opened++
			if startPos < 0 {
				startPos = start
			}
		default:
			// A dangling }} before any {{ means malformed markup.
			if opened == 0 && startPos < 0 {
				return line, false
			}
			pos = end + len(templateEnd)
			endPos = pos
			opened--
		}
	}

	if startPos < 0 || endPos < 0 {
		return line, false
	}

	return line[:startPos] + line[endPos:], true
}

// RemoveInternalLinks replaces every [[link]] or [[link|text]] span with its
// display text: the part after the last | inside the span, or the whole
// bracketed content when there is no separator.
func RemoveInternalLinks(line string) string {
	for {
		start := strings.Index(line, linkOpen)
		if start < 0 {
			return line
		}

		rest := line[start+len(linkOpen):]
		end := strings.Index(rest, linkClose)
		if end < 0 {
			return line
		}

		content := rest[:end]
		text := content
		if sep := strings.LastIndex(content, "|"); sep >= 0 {
			text = content[sep+1:]
		}

		line = line[:start] + text + rest[end+len(linkClose):]
	}
}

// RemoveEmphasis deletes wiki bold (''') and italic ('') markers, keeping
// the emphasized text.
func RemoveEmphasis(line string) string {
	line = strings.ReplaceAll(line, boldMarker, "")
	return strings.ReplaceAll(line, italicMarker, "")
}

// RemoveXMLTags rewrites <ref>...</ref> spans to a leading space plus
// <i>...</i> and deletes every other tag, preserving inner text.
func RemoveXMLTags(line string) string {
	line = refSpanRe.ReplaceAllString(line, " {I}${2}{/I}")
	line = anyTagRe.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "{I}", "<i>")
	return strings.ReplaceAll(line, "{/I}", "</i>")
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return i + from
}
