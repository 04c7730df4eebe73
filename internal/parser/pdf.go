package parser

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/notegest/internal/doctree"
)

// PDFParser handles PDF files. It tries the Go library first,
// then falls back to pdftotext if enabled.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	tmp, size, cleanup, err := spool(r, "notegest-pdf-*.pdf")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	text, err := extractPDFText(tmp, size)
	if err != nil && p.FallbackPdftotext {
		text, err = extractPdftotext(tmp.Name())
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return pagesTree(baseTitle(filename), text), nil
}

// pagesTree makes one "Page N" section per form-feed separated page, with
// the page's paragraphs as its text.
func pagesTree(title, text string) *doctree.DocTree {
	tree := &doctree.DocTree{Title: title}
	for i, page := range strings.Split(text, "\f") {
		paragraphs, _ := splitParagraphs(strings.NewReader(page))
		if len(paragraphs) == 0 {
			continue
		}
		tree.Children = append(tree.Children, &doctree.DocNode{
			Title: fmt.Sprintf("Page %d", i+1),
			Text:  strings.Join(paragraphs, "\n\n"),
			Page:  i + 1,
		})
	}
	return tree
}

func extractPDFText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdflib.NewReader(r, size)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if i > 1 {
			buf.WriteString("\f")
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
