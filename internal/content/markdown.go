package content

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Markdown converts an HTML fragment to Markdown. Scripts and styles are
// removed first and runs of blank lines are collapsed to one.
func Markdown(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	doc, err := parseDocument(strings.NewReader(html), "markdown")
	if err != nil {
		return "", err
	}
	body, err := doc.Find("body").Html()
	if err != nil {
		return "", &ExtractionError{Op: "markdown", Err: err}
	}

	md, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", &ExtractionError{Op: "markdown", Err: err}
	}
	return collapseBlankLines(md), nil
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank <= 1 {
				result = append(result, "")
			}
			continue
		}
		blank = 0
		result = append(result, line)
	}
	return strings.TrimSpace(strings.Join(result, "\n"))
}
