package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.txt", "*parser.TextParser"},
		{"a.MD", "*parser.MarkdownParser"},
		{"a.markdown", "*parser.MarkdownParser"},
		{"a.csv", "*parser.CSVParser"},
		{"a.htm", "*parser.HTMLParser"},
		{"a.pdf", "*parser.PDFParser"},
		{"a.docx", "*parser.DOCXParser"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename, Options{})
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.filename, err)
			continue
		}
		if got := fmt.Sprintf("%T", p); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.filename, tt.want, got)
		}
		if !IsSupportedExtension(tt.filename) {
			t.Errorf("%s: expected supported extension", tt.filename)
		}
	}
}

func TestForFile_PDFFallbackOption(t *testing.T) {
	p, err := ForFile("scan.pdf", Options{FallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pdf, ok := p.(*PDFParser); !ok || !pdf.FallbackPdftotext {
		t.Errorf("expected PDF parser with fallback enabled, got %#v", p)
	}
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("image.png", Options{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if IsSupportedExtension("image.png") {
		t.Error("expected .png to be unsupported")
	}
}

func TestCSVParser_Table(t *testing.T) {
	input := "name, qty\n\"Smith, J\",2\nLee, 3 \n"

	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(input), "orders.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "orders" {
		t.Errorf("expected title %q, got %q", "orders", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}

	rows := tree.Children[0].Table
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "qty" || rows[1][0] != "Smith, J" || rows[2][1] != "3" {
		t.Errorf("unexpected rows: %q", rows)
	}
}

func TestCSVParser_Empty(t *testing.T) {
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}

func TestPagesTree(t *testing.T) {
	tree := pagesTree("scan", "first page\n\nsecond para\f\f  \fthird page")
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(tree.Children))
	}
	if tree.Children[0].Page != 1 || tree.Children[0].Text != "first page\n\nsecond para" {
		t.Errorf("unexpected first page: %+v", tree.Children[0])
	}
	if tree.Children[1].Page != 4 || tree.Children[1].Title != "Page 4" {
		t.Errorf("unexpected second page: %+v", tree.Children[1])
	}
}

func TestDocxHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 3", 3},
		{"Heading 7", 0},
		{"Normal", 0},
	}
	for _, tt := range tests {
		if got := headingFromStyle(tt.style); got != tt.want {
			t.Errorf("style %q: expected %d, got %d", tt.style, tt.want, got)
		}
	}
}
