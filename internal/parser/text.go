package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/notegest/internal/doctree"
)

// TextParser handles plain text files. Each blank-line separated paragraph
// becomes one node.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	paragraphs, err := splitParagraphs(r)
	if err != nil {
		return nil, err
	}

	tree := &doctree.DocTree{Title: baseTitle(filename)}
	for _, para := range paragraphs {
		tree.Children = append(tree.Children, &doctree.DocNode{Text: para})
	}
	return tree, nil
}

// splitParagraphs groups lines into paragraphs separated by blank or
// whitespace-only lines.
func splitParagraphs(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return paragraphs, nil
}
