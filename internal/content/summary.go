package content

import (
	"io"
	"strings"
)

// DefaultSummaryLength is the excerpt length used when none is given.
const DefaultSummaryLength = 300

// Ellipsis marks an excerpt that was cut short.
const Ellipsis = "..."

// Summarize returns at most maxLength characters of the fragment's body
// text, followed by Ellipsis when the text was cut. A maxLength of zero or
// less selects DefaultSummaryLength. Empty input, a body without text and a
// parse failure each yield their fixed message.
func Summarize(html string, maxLength int) string {
	if html == "" {
		return MsgNothingToSummarize
	}
	return summarizeFrom(strings.NewReader(html), maxLength)
}

func summarizeFrom(r io.Reader, maxLength int) string {
	doc, err := parseDocument(r, "summarize")
	if err != nil {
		return MsgSummaryFailed
	}
	text := bodyText(doc)
	if text == "" {
		return MsgNoBodyText
	}
	return Truncate(text, maxLength)
}

// Truncate cuts text to maxLength runes and appends Ellipsis if anything
// was removed.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultSummaryLength
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + Ellipsis
}
