package content

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestSummarize(t *testing.T) {
	long := strings.Repeat("a", 400)
	exact := strings.Repeat("b", 300)

	tests := []struct {
		name      string
		html      string
		maxLength int
		want      string
	}{
		{"empty input", "", 300, MsgNothingToSummarize},
		{"no body text", "<p>   </p>", 300, MsgNoBodyText},
		{"short text collapsed", "<p>Hello   world</p>\n<p>again</p>", 300, "Hello world again"},
		{"exact length", "<p>" + exact + "</p>", 300, exact},
		{"truncated", "<p>" + long + "</p>", 300, strings.Repeat("a", 300) + Ellipsis},
		{"custom length", "<p>one two three</p>", 7, "one two" + Ellipsis},
		{"default length", "<p>" + long + "</p>", 0, strings.Repeat("a", DefaultSummaryLength) + Ellipsis},
		{"script removed", "<script>alert(1)</script><p>hi</p><style>p{}</style>", 300, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.html, tt.maxLength); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSummarize_TruncatedLength(t *testing.T) {
	got := Summarize("<div>"+strings.Repeat("word ", 200)+"</div>", 50)
	if n := len([]rune(got)); n != 50+len(Ellipsis) {
		t.Errorf("expected %d characters, got %d", 50+len(Ellipsis), n)
	}
}

func TestSummarize_ParseFailure(t *testing.T) {
	got := summarizeFrom(iotest.ErrReader(errors.New("boom")), 300)
	if got != MsgSummaryFailed {
		t.Errorf("expected %q, got %q", MsgSummaryFailed, got)
	}
}

func TestTruncate_Runes(t *testing.T) {
	got := Truncate(strings.Repeat("é", 10), 5)
	want := strings.Repeat("é", 5) + Ellipsis
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
