package doctree

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TableMarker introduces every table in the rendered text.
const TableMarker = "Table content:"

// BlockKind identifies the source element group of a Block.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockList
	BlockTable
)

// Block is one unit of extracted text.
type Block struct {
	Kind    BlockKind
	Level   int        // Heading level 1-6 (BlockHeading only)
	Text    string     // Trimmed text (BlockHeading, BlockParagraph)
	Ordered bool       // BlockList only
	Items   []ListItem // BlockList only, empty items already dropped
	Rows    [][]string // BlockTable only, blank rows already dropped
}

// ListItem is a non-empty list entry. Index is 1-based within its list and
// counts the empty items that were dropped.
type ListItem struct {
	Index int
	Text  string
}

// TextDoc is the readable-text rendering of an HTML document: all headings,
// then all paragraphs, then all lists, then all tables.
type TextDoc struct {
	Blocks []Block
	Body   string // whitespace-collapsed body text, used when Blocks render empty
}

// String renders the document as plain text.
func (d *TextDoc) String() string {
	var b strings.Builder
	for _, blk := range d.Blocks {
		switch blk.Kind {
		case BlockHeading:
			b.WriteString("\n")
			b.WriteString(blk.Text)
			b.WriteString("\n")
			b.WriteString(strings.Repeat("-", utf8.RuneCountInString(blk.Text)))
			b.WriteString("\n")
		case BlockParagraph:
			b.WriteString(blk.Text)
			b.WriteString("\n\n")
		case BlockList:
			b.WriteString("\n")
			for _, item := range blk.Items {
				if blk.Ordered {
					b.WriteString(strconv.Itoa(item.Index) + ". ")
				} else {
					b.WriteString("- ")
				}
				b.WriteString(item.Text)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		case BlockTable:
			b.WriteString("\n" + TableMarker + "\n")
			for _, row := range blk.Rows {
				b.WriteString(strings.Join(row, " | "))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		text = d.Body
	}
	return strings.TrimSpace(text)
}
