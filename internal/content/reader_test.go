package content

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/dgallion1/notegest/internal/doctree"
)

func TestReadableText_HeadingParagraphList(t *testing.T) {
	input := "<h1>Title</h1><p>Body</p><ul><li>x</li><li>y</li></ul>"
	want := "Title\n-----\nBody\n\n\n- x\n- y"

	if got := ReadableText(input); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReadableText_GroupsByElementType(t *testing.T) {
	// Paragraph precedes the heading in the source, but headings are emitted first.
	input := "<p>First paragraph</p><h2>Later heading</h2><p>Second paragraph</p>"
	got := ReadableText(input)

	heading := strings.Index(got, "Later heading")
	first := strings.Index(got, "First paragraph")
	second := strings.Index(got, "Second paragraph")
	if heading < 0 || first < 0 || second < 0 {
		t.Fatalf("missing content in %q", got)
	}
	if !(heading < first && first < second) {
		t.Errorf("expected heading, then paragraphs in source order, got %q", got)
	}
}

func TestReadableText_HeadingUnderlineMatchesLength(t *testing.T) {
	tests := []string{"A", "Meeting notes", "Café résumé"}
	for _, title := range tests {
		got := ReadableText("<h3>  " + title + "  </h3>")
		want := title + "\n" + strings.Repeat("-", len([]rune(title)))
		if got != want {
			t.Errorf("heading %q: expected %q, got %q", title, want, got)
		}
	}
}

func TestReadableText_OrderedListRenumbers(t *testing.T) {
	input := `<ol start="7"><li>alpha</li><li>beta</li><li>gamma</li></ol>`
	want := "1. alpha\n2. beta\n3. gamma"
	if got := ReadableText(input); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReadableText_EmptyListItemsKeepNumbering(t *testing.T) {
	input := `<ol><li>a</li><li>   </li><li>c</li></ol>`
	want := "1. a\n3. c"
	if got := ReadableText(input); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReadableText_Table(t *testing.T) {
	input := `<table><tr><th>A</th><th>B</th></tr><tr><td> 1 </td><td>2</td></tr><tr><td></td></tr></table>`
	want := "Table content:\nA | B\n1 | 2"
	if got := ReadableText(input); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReadableText_ScriptAndStyleRemoved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"structured", `<script>alert(1)</script><style>p{color:red}</style><p>Hello</p>`, "Hello"},
		{"fallback", `<div><script>alert(1)</script>plain <style>.x{}</style>words</div>`, "plain words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadableText(tt.input)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if strings.Contains(got, "alert") || strings.Contains(got, "color") {
				t.Errorf("script or style text leaked into %q", got)
			}
		})
	}
}

func TestReadableText_FallbackCollapsesWhitespace(t *testing.T) {
	input := "<div>  some   text\n\t here </div><span>and more</span>"
	want := "some text here and more"
	if got := ReadableText(input); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReadableText_SkipsEmptyBlocks(t *testing.T) {
	input := "<h1>  </h1><p></p><p>kept</p>"
	if got := ReadableText(input); got != "kept" {
		t.Errorf("expected %q, got %q", "kept", got)
	}
}

func TestReadableText_EmptyInput(t *testing.T) {
	if got := ReadableText(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestReadableText_ParseFailure(t *testing.T) {
	got := readableTextFrom(iotest.ErrReader(errors.New("boom")))
	if got != MsgReadableTextFailed {
		t.Errorf("expected %q, got %q", MsgReadableTextFailed, got)
	}
}

func TestExtract_ParseFailureIsTyped(t *testing.T) {
	_, err := extractFrom(iotest.ErrReader(errors.New("boom")))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrContentExtraction) {
		t.Errorf("expected ErrContentExtraction, got %v", err)
	}
	var extErr *ExtractionError
	if !errors.As(err, &extErr) || extErr.Op != "extract" {
		t.Errorf("expected ExtractionError with op %q, got %v", "extract", err)
	}
}

func TestExtract_Blocks(t *testing.T) {
	td, err := Extract(`<h3>Agenda <b>today</b></h3><ol><li>one</li></ol><ul><li>dot</li></ul>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(td.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(td.Blocks))
	}

	h := td.Blocks[0]
	if h.Kind != doctree.BlockHeading || h.Level != 3 || h.Text != "Agenda today" {
		t.Errorf("unexpected heading block: %+v", h)
	}
	if !td.Blocks[1].Ordered {
		t.Error("expected first list to be ordered")
	}
	if td.Blocks[2].Ordered {
		t.Error("expected second list to be unordered")
	}
}
