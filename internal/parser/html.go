package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dgallion1/notegest/internal/doctree"
)

// HTMLParser handles HTML files. Headings open sections, list items keep a
// bullet marker and tables become table nodes.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := baseTitle(filename)
	if t := nodeText(doc.Find("title").First()); t != "" {
		title = t
	}

	doc.Find("script, style, nav, footer, header").Remove()

	s := newSections()
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				s.heading(level, nodeText(goquery.NewDocumentFromNode(n).Selection))
				return
			}
			switch n.Data {
			case "p", "blockquote":
				s.block(nodeText(goquery.NewDocumentFromNode(n).Selection))
				return
			case "pre":
				if t := strings.TrimSpace(goquery.NewDocumentFromNode(n).Text()); t != "" {
					s.block("```\n" + t + "\n```")
				}
				return
			case "li":
				if t := nodeText(goquery.NewDocumentFromNode(n).Selection); t != "" {
					s.block(listMarker(n) + t)
				}
				return
			case "table":
				s.table(tableRows(goquery.NewDocumentFromNode(n).Selection))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, body := range doc.Find("body").Nodes {
		walk(body)
	}
	return s.tree(title), nil
}

// tableRows returns the trimmed cell text of every non-empty row.
func tableRows(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td, th").Map(func(_ int, cell *goquery.Selection) string {
			return nodeText(cell)
		})
		if strings.TrimSpace(strings.Join(cells, "")) == "" {
			return
		}
		rows = append(rows, cells)
	})
	return rows
}

// listMarker returns "N. " for the Nth item of an ordered list and "- "
// otherwise.
func listMarker(li *html.Node) string {
	if li.Parent == nil || li.Parent.Data != "ol" {
		return "- "
	}
	n := 0
	for c := li.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			n++
		}
		if c == li {
			break
		}
	}
	return fmt.Sprintf("%d. ", n)
}

// nodeText is the selection's text with whitespace runs collapsed.
func nodeText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
