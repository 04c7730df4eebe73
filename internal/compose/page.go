package compose

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <title>%[1]s</title>
  <meta charset="utf-8">
</head>
<body>
  <h1>%[1]s</h1>
  %[2]s
  <hr>
  <p><em>Created via %[3]s on %[4]s</em></p>
</body>
</html>`

// UpdateBody renders the replacement body for a page update. The existing
// title is repeated as an h1 when preserveTitle is set.
func (c *Composer) UpdateBody(title, text string, preserveTitle bool, now time.Time) string {
	var b strings.Builder
	b.WriteString("<div>")
	if preserveTitle {
		b.WriteString("<h1>" + html.EscapeString(title) + "</h1>")
	}
	b.WriteString(c.enc.Encode(text))
	b.WriteString("<hr>")
	fmt.Fprintf(&b, "<p><em>Updated via %s on %s</em></p>", html.EscapeString(c.label), Timestamp(now))
	b.WriteString("</div>")
	return b.String()
}

// AppendBody renders content to append to a page, optionally preceded by a
// separator and an "Added on" stamp.
func (c *Composer) AppendBody(text string, addTimestamp, addSeparator bool, now time.Time) string {
	var b strings.Builder
	if addSeparator {
		b.WriteString("<hr>")
	}
	if addTimestamp {
		fmt.Fprintf(&b, "<p><em>Added on %s</em></p>", Timestamp(now))
	}
	b.WriteString(c.enc.Encode(text))
	return b.String()
}

// PageDocument renders the complete document posted to create a page,
// encoding text as the body.
func (c *Composer) PageDocument(title, text string, now time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingTitle
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrMissingContent
	}
	return c.PageHTML(title, c.enc.Encode(text), now)
}

// PageHTML renders a complete page document around a body that is already
// HTML, such as the output of TreeFragment.
func (c *Composer) PageHTML(title, body string, now time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrMissingTitle
	}
	if strings.TrimSpace(body) == "" {
		return "", ErrMissingContent
	}
	return fmt.Sprintf(pageTemplate,
		html.EscapeString(title),
		body,
		html.EscapeString(c.label),
		Timestamp(now),
	), nil
}
