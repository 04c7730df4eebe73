package compose

import "regexp"

// Replace substitutes every literal occurrence of find in html and reports
// how many were found. The replacement is inserted verbatim; no pattern or
// group syntax is interpreted in either argument. An empty find matches
// nothing.
func Replace(html, find, replacement string, caseSensitive bool) (string, int) {
	if find == "" {
		return html, 0
	}

	pattern := regexp.QuoteMeta(find)
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re := regexp.MustCompile(pattern)

	n := len(re.FindAllStringIndex(html, -1))
	if n == 0 {
		return html, 0
	}
	return re.ReplaceAllLiteralString(html, replacement), n
}

// ReplaceBody wraps replaced page HTML for a body replace command.
func ReplaceBody(updated string) string {
	return "<div>" + updated + "</div>"
}
