package wikitext

import "strings"

// ListState tracks which list elements are open while converting the lines
// of one section. A fresh zero value is used per section.
type ListState struct {
	ListOpen        bool
	DescriptionOpen bool
}

// ConvertLine rewrites a single wiki list line ("#" items, "#:" descriptions)
// into ordered-list / description-list HTML, threading the open/close state
// to the next line. Ordered-list handling runs first, description-list
// handling on its output.
func ConvertLine(line string, state ListState) (string, ListState) {
	line, state.ListOpen = convertOrdered(line, state.ListOpen)
	line, state.DescriptionOpen = convertDescription(line, state.DescriptionOpen)
	return line, state
}

func convertOrdered(line string, open bool) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if len(trimmed) > 1 && trimmed[0] == '#' && trimmed[1] != ':' {
		text := strings.TrimSpace(trimmed[1:])
		if text == "" {
			// A bare "#" cancels the list instead of opening an item.
			return "", false
		}

		item := ""
		if !open {
			item = "<ol>"
			open = true
		}
		return item + "<li>" + text + "</li>", open
	}

	// "#:" continuation lines must not close an open ordered list.
	if open && !strings.HasPrefix(trimmed, "#:") {
		return "</ol>" + line, false
	}

	return line, open
}

func convertDescription(line string, open bool) (string, bool) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "#:") {
		text := strings.TrimSpace(trimmed[2:])
		if text == "" {
			return "", false
		}

		item := ""
		if !open {
			item = "<dl>"
			open = true
		}
		return item + "<dd>" + text + "</dd>", open
	}

	if open {
		return "</dl>" + line, false
	}

	return line, false
}
