package doctree

// DocTree is the root of an imported document.
type DocTree struct {
	Title    string     // Document title (from metadata or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading (empty for leaf text)
	Text     string     // Text content of this node (may be empty for container nodes)
	Page     int        // Source page (0 if N/A)
	Table    [][]string // Tabular content, first row is the header (nil if N/A)
	Children []*DocNode // Subsections
}

// Walk visits every node depth-first in document order. depth starts at 1
// for the tree's direct children.
func (t *DocTree) Walk(fn func(n *DocNode, depth int)) {
	var walk func(nodes []*DocNode, depth int)
	walk = func(nodes []*DocNode, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(t.Children, 1)
}
