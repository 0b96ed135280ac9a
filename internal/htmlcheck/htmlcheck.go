// Package htmlcheck inspects produced HTML fragments for list elements left
// open when a section ended mid-list.
package htmlcheck

import (
	"strings"

	"golang.org/x/net/html"
)

// tracked are the elements the list converter opens and closes explicitly.
var tracked = map[string]bool{
	"ol": true,
	"dl": true,
}

// UnclosedTags tokenizes an HTML fragment and returns the tracked elements
// that were opened but never closed, outermost first. Stray closing tags
// without a matching open are ignored.
func UnclosedTags(fragment string) []string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			return open
		case html.StartTagToken:
			name, _ := z.TagName()
			if tracked[string(name)] {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if !tracked[string(name)] {
				continue
			}
			for i := len(open) - 1; i >= 0; i-- {
				if open[i] == string(name) {
					open = append(open[:i], open[i+1:]...)
					break
				}
			}
		}
	}
}
