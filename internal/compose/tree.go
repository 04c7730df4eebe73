package compose

import (
	"fmt"
	"html"
	"strings"

	"github.com/dgallion1/notegest/internal/doctree"
)

// TreeFragment renders an imported document as a page body fragment.
// Section titles become headings one level below their depth, starting at
// h2 and capped at h6, since the page title itself is the h1.
func (c *Composer) TreeFragment(tree *doctree.DocTree) string {
	var parts []string
	tree.Walk(func(n *doctree.DocNode, depth int) {
		if n.Title != "" {
			level := min(depth+1, 6)
			parts = append(parts, fmt.Sprintf("<h%d>%s</h%d>", level, html.EscapeString(n.Title), level))
		}
		if strings.TrimSpace(n.Text) != "" {
			parts = append(parts, c.enc.Encode(n.Text))
		}
		if len(n.Table) > 0 {
			parts = append(parts, c.Table(n.Table, ""))
		}
	})
	return strings.Join(parts, "\n")
}
