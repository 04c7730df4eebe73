package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/notegest/internal/doctree"
)

// MarkdownParser handles Markdown files using goldmark. Headings open
// sections. Other blocks are written back as the subset of markdown the
// page encoder understands, so emphasis, code and lists survive import.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	s := newSections()
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			s.heading(h.Level, inlineText(h, src, false))
			continue
		}
		s.block(blockText(n, src))
	}
	return s.tree(baseTitle(filename)), nil
}

func blockText(n ast.Node, src []byte) string {
	switch b := n.(type) {
	case *ast.List:
		var items []string
		num := b.Start
		for item := b.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "- "
			if b.IsOrdered() {
				marker = fmt.Sprintf("%d. ", num)
				num++
			}
			items = append(items, marker+childBlocks(item, src, "\n"))
		}
		return strings.Join(items, "\n")

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return "```\n" + strings.TrimRight(rawLines(n, src), "\n") + "\n```"

	case *ast.Blockquote:
		lines := strings.Split(childBlocks(b, src, "\n"), "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")

	case *ast.ThematicBreak:
		return "---"

	case *ast.HTMLBlock:
		return strings.TrimSpace(rawLines(n, src))
	}
	return inlineText(n, src, true)
}

func childBlocks(n ast.Node, src []byte, sep string) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := blockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, sep)
}

func rawLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

// inlineText flattens a node's inline children. With marks set, emphasis,
// code spans and links are written back in markdown syntax.
func inlineText(n ast.Node, src []byte, marks bool) string {
	var buf bytes.Buffer
	writeInline(&buf, n, src, marks)
	return strings.TrimSpace(buf.String())
}

func writeInline(buf *bytes.Buffer, n ast.Node, src []byte, marks bool) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(src))
			if v.HardLineBreak() || v.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(v.Value)
		case *ast.AutoLink:
			buf.Write(v.URL(src))
		case *ast.CodeSpan:
			wrapInline(buf, v, src, marks, "`", "`")
		case *ast.Emphasis:
			mark := strings.Repeat("*", v.Level)
			wrapInline(buf, v, src, marks, mark, mark)
		case *ast.Link:
			wrapInline(buf, v, src, marks, "[", "]("+string(v.Destination)+")")
		default:
			writeInline(buf, c, src, marks)
		}
	}
}

func wrapInline(buf *bytes.Buffer, n ast.Node, src []byte, marks bool, opening, closing string) {
	if marks {
		buf.WriteString(opening)
	}
	writeInline(buf, n, src, marks)
	if marks {
		buf.WriteString(closing)
	}
}
