package doctree

import (
	"strings"
	"testing"
)

func TestTextDoc_HeadingUnderline(t *testing.T) {
	for _, title := range []string{"A", "Title", "Quarterly results", "Ünïcödé"} {
		d := &TextDoc{Blocks: []Block{{Kind: BlockHeading, Level: 1, Text: title}}}
		got := d.String()
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines for %q, got %q", title, got)
		}
		if lines[0] != title {
			t.Errorf("expected heading %q, got %q", title, lines[0])
		}
		want := strings.Repeat("-", len([]rune(title)))
		if lines[1] != want {
			t.Errorf("expected underline %q, got %q", want, lines[1])
		}
	}
}

func TestTextDoc_GroupRendering(t *testing.T) {
	d := &TextDoc{Blocks: []Block{
		{Kind: BlockHeading, Level: 2, Text: "Title"},
		{Kind: BlockParagraph, Text: "Body"},
		{Kind: BlockList, Items: []ListItem{{Index: 1, Text: "x"}, {Index: 2, Text: "y"}}},
		{Kind: BlockList, Ordered: true, Items: []ListItem{{Index: 1, Text: "one"}, {Index: 3, Text: "three"}}},
		{Kind: BlockTable, Rows: [][]string{{"A", "B"}, {"1", "2"}}},
	}}

	want := "Title\n-----\nBody\n\n\n- x\n- y\n\n\n1. one\n3. three\n\n\nTable content:\nA | B\n1 | 2"
	if got := d.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTextDoc_FallsBackToBody(t *testing.T) {
	d := &TextDoc{Body: "just some text"}
	if got := d.String(); got != "just some text" {
		t.Errorf("expected body fallback, got %q", got)
	}

	// An empty list still renders only blank lines, so the body wins.
	d = &TextDoc{Blocks: []Block{{Kind: BlockList}}, Body: "body"}
	if got := d.String(); got != "body" {
		t.Errorf("expected body fallback for blank blocks, got %q", got)
	}
}

func TestTextDoc_Empty(t *testing.T) {
	d := &TextDoc{}
	if got := d.String(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestDocTree_WalkDepth(t *testing.T) {
	tree := &DocTree{Children: []*DocNode{
		{Title: "a", Children: []*DocNode{{Title: "a1", Children: []*DocNode{{Title: "a1x"}}}}},
		{Title: "b"},
	}}

	var got []string
	tree.Walk(func(n *DocNode, depth int) {
		got = append(got, strings.Repeat(">", depth)+n.Title)
	})

	want := []string{">a", ">>a1", ">>>a1x", ">b"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, got)
	}
}
