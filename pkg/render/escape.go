package render

import "strings"

// htmlEscaper rewrites the five HTML-significant characters in a single
// pass, so an ampersand introduced by one replacement is never escaped
// again by another.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Escape replaces HTML-significant characters in text with entity forms.
// Every string sourced from the input document must pass through here
// before it is embedded in the report.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return htmlEscaper.Replace(text)
}
