// Package markdown renders the markdown subset used by the content files
// (service descriptions, city landing content). It is a line-oriented
// transformer, not a full markdown implementation: headings, list items
// with an optional bold lead, bold spans and paragraphs. Anything fancier
// belongs in the content files as plain HTML does not occur there.
package markdown

import (
	"regexp"
	"strings"
)

var (
	boldLeadItemRegex = regexp.MustCompile(`^- \*\*(.+?)\*\*:?\s*(.*)$`)
	boldSpanRegex     = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// ToHTML converts a block of subset markdown to HTML. Consecutive list
// items are grouped into a single <ul>; blank lines are dropped.
func ToHTML(src string) string {
	var b strings.Builder
	inList := false

	closeList := func() {
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}
	}

	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			closeList()
		case strings.HasPrefix(trimmed, "### "):
			closeList()
			b.WriteString("<h3>" + strings.TrimPrefix(trimmed, "### ") + "</h3>\n")
		case strings.HasPrefix(trimmed, "## "):
			closeList()
			b.WriteString("<h2>" + strings.TrimPrefix(trimmed, "## ") + "</h2>\n")
		case strings.HasPrefix(trimmed, "- "):
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			if m := boldLeadItemRegex.FindStringSubmatch(trimmed); m != nil {
				b.WriteString("<li><strong>" + m[1] + "</strong>")
				if m[2] != "" {
					b.WriteString(": " + renderInline(m[2]))
				}
				b.WriteString("</li>\n")
			} else {
				b.WriteString("<li>" + renderInline(strings.TrimPrefix(trimmed, "- ")) + "</li>\n")
			}
		default:
			closeList()
			b.WriteString("<p>" + renderInline(trimmed) + "</p>\n")
		}
	}
	closeList()

	return strings.TrimSuffix(b.String(), "\n")
}

// renderInline handles **bold** spans inside a line.
func renderInline(s string) string {
	return boldSpanRegex.ReplaceAllString(s, "<strong>$1</strong>")
}
