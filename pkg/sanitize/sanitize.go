// Package sanitize neutralizes markup-significant characters in free-text
// form fields before they are interpolated into notification HTML.
//
// This is deliberately not a general-purpose HTML sanitizer: it replaces
// exactly the four characters the website has always replaced, and nothing
// else. html.EscapeString is not used because it also escapes '&', which
// would change the rendered output for inputs that already contain entities.
package sanitize

import "strings"

var replacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Text replaces <, >, " and ' with their HTML entity equivalents in a
// single left-to-right pass.
func Text(s string) string {
	return replacer.Replace(s)
}
