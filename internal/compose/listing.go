package compose

import (
	"fmt"
	"strings"
	"time"
)

// PageInfo is the listing metadata of a page.
type PageInfo struct {
	Title    string    `json:"title"`
	ID       string    `json:"id"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// DefaultListLimit is how many pages FormatPageList shows.
const DefaultListLimit = 10

// FormatPageInfo renders one listing entry. A non-negative index adds a
// 1-based "N. " prefix.
func FormatPageInfo(p PageInfo, index int) string {
	prefix := ""
	if index >= 0 {
		prefix = fmt.Sprintf("%d. ", index+1)
	}
	return fmt.Sprintf("%s**%s**\n   ID: %s\n   Created: %s\n   Modified: %s",
		prefix, p.Title, p.ID, p.Created.Format(DateLayout), p.Modified.Format(DateLayout))
}

// FormatPageList renders up to limit numbered entries separated by blank
// lines and notes how many were left out.
func FormatPageList(pages []PageInfo, limit int) string {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	shown := pages
	if len(shown) > limit {
		shown = shown[:limit]
	}

	entries := make([]string, len(shown))
	for i, p := range shown {
		entries[i] = FormatPageInfo(p, i)
	}
	out := strings.Join(entries, "\n\n")
	if rest := len(pages) - len(shown); rest > 0 {
		out += fmt.Sprintf("\n\n... and %d more pages.", rest)
	}
	return out
}
