// Package content converts between the HTML dialect served by the notes API
// and readable text, and renders markdown-like text back into HTML.
//
// Every function here is a pure transformation of its arguments and is safe
// for concurrent use.
package content

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dgallion1/notegest/internal/doctree"
)

// ReadableText renders an HTML fragment as plain text for terminal or chat
// display. It never fails: a document that cannot be parsed yields
// MsgReadableTextFailed.
func ReadableText(html string) string {
	if html == "" {
		return ""
	}
	return readableTextFrom(strings.NewReader(html))
}

func readableTextFrom(r io.Reader) string {
	td, err := extractFrom(r)
	if err != nil {
		return MsgReadableTextFailed
	}
	return td.String()
}

// Extract parses an HTML fragment into a TextDoc. Headings, paragraphs,
// lists and tables are each collected in document order, and the groups are
// emitted in that fixed sequence rather than interleaved by position.
func Extract(html string) (*doctree.TextDoc, error) {
	return extractFrom(strings.NewReader(html))
}

func extractFrom(r io.Reader) (*doctree.TextDoc, error) {
	doc, err := parseDocument(r, "extract")
	if err != nil {
		return nil, err
	}

	td := &doctree.TextDoc{}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		td.Blocks = append(td.Blocks, doctree.Block{
			Kind:  doctree.BlockHeading,
			Level: headingLevel(goquery.NodeName(s)),
			Text:  text,
		})
	})

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		td.Blocks = append(td.Blocks, doctree.Block{Kind: doctree.BlockParagraph, Text: text})
	})

	// Nested lists are matched both here and through their ancestor's items.
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		blk := doctree.Block{
			Kind:    doctree.BlockList,
			Ordered: goquery.NodeName(list) == "ol",
		}
		list.Find("li").Each(func(i int, item *goquery.Selection) {
			text := strings.TrimSpace(item.Text())
			if text == "" {
				return
			}
			blk.Items = append(blk.Items, doctree.ListItem{Index: i + 1, Text: text})
		})
		td.Blocks = append(td.Blocks, blk)
	})

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		blk := doctree.Block{Kind: doctree.BlockTable}
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td, th").Map(func(_ int, cell *goquery.Selection) string {
				return strings.TrimSpace(cell.Text())
			})
			if strings.TrimSpace(strings.Join(cells, " | ")) == "" {
				return
			}
			blk.Rows = append(blk.Rows, cells)
		})
		td.Blocks = append(td.Blocks, blk)
	})

	td.Body = bodyText(doc)
	return td, nil
}

// parseDocument builds a goquery document and strips script and style
// subtrees. A parser panic is reported as an ExtractionError.
func parseDocument(r io.Reader, op string) (doc *goquery.Document, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc = nil
			err = &ExtractionError{Op: op, Err: fmt.Errorf("parser panic: %v", p)}
		}
	}()

	doc, err = goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ExtractionError{Op: op, Err: err}
	}
	doc.Find("script, style").Remove()
	return doc, nil
}

// bodyText returns the body's text content, trimmed, with every whitespace
// run collapsed to a single space.
func bodyText(doc *goquery.Document) string {
	return collapseWhitespace(doc.Find("body").Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}
