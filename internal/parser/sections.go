package parser

import (
	"strings"

	"github.com/dgallion1/notegest/internal/doctree"
)

// sections assembles a DocTree from a flat stream of headings and text
// blocks, nesting each heading under the nearest shallower one.
type sections struct {
	root  *doctree.DocNode
	stack []sectionEntry
	text  strings.Builder
}

type sectionEntry struct {
	node  *doctree.DocNode
	level int
}

func newSections() *sections {
	root := &doctree.DocNode{}
	return &sections{root: root, stack: []sectionEntry{{node: root, level: 0}}}
}

func (s *sections) top() *doctree.DocNode {
	return s.stack[len(s.stack)-1].node
}

func (s *sections) heading(level int, title string) {
	s.flush()
	node := &doctree.DocNode{Title: title}
	for len(s.stack) > 1 && s.stack[len(s.stack)-1].level >= level {
		s.stack = s.stack[:len(s.stack)-1]
	}
	parent := s.top()
	parent.Children = append(parent.Children, node)
	s.stack = append(s.stack, sectionEntry{node: node, level: level})
}

// block adds a text block to the current section. Blank blocks are ignored.
func (s *sections) block(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if s.text.Len() > 0 {
		s.text.WriteString("\n\n")
	}
	s.text.WriteString(text)
}

// table adds a table as a child of the current section.
func (s *sections) table(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	s.flush()
	parent := s.top()
	parent.Children = append(parent.Children, &doctree.DocNode{Table: rows})
}

func (s *sections) flush() {
	t := strings.TrimSpace(s.text.String())
	s.text.Reset()
	if t == "" {
		return
	}
	top := s.top()
	// Text after a child table stays after it as an untitled node.
	if len(top.Children) > 0 {
		top.Children = append(top.Children, &doctree.DocNode{Text: t})
		return
	}
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}

// tree finishes the document. Text that preceded the first heading becomes
// a leading untitled node.
func (s *sections) tree(title string) *doctree.DocTree {
	s.flush()
	tree := &doctree.DocTree{Title: title, Children: s.root.Children}
	if s.root.Text != "" {
		lead := &doctree.DocNode{Text: s.root.Text}
		tree.Children = append([]*doctree.DocNode{lead}, tree.Children...)
	}
	return tree
}
