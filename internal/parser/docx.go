package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/notegest/internal/doctree"
)

// DOCXParser handles .docx files. Paragraphs styled "Heading N" open
// sections.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	tmp, size, cleanup, err := spool(r, "notegest-docx-*.docx")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	doc, err := docx.Parse(tmp, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	s := newSections()
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			s.heading(level, text)
			continue
		}
		s.block(text)
	}
	return s.tree(baseTitle(filename)), nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	return headingFromStyle(para.Properties.Style.Val)
}

// headingFromStyle maps "Heading1" or "heading 1" style names to a level.
func headingFromStyle(name string) int {
	style := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	var level int
	if _, err := fmt.Sscanf(strings.TrimPrefix(style, "heading"), "%d", &level); err != nil || level < 1 || level > 6 {
		return 0
	}
	return level
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
