package content

import (
	"regexp"
	"strings"
)

var (
	fullDocumentRe = regexp.MustCompile(`(?i)<html[\s>]|<!doctype\s+html`)

	fenceRe    = regexp.MustCompile("(?s)```(.*?)```")
	codeSpanRe = regexp.MustCompile("`([^`]+)`")

	h3Re = regexp.MustCompile(`(?m)^### (.+)$`)
	h2Re = regexp.MustCompile(`(?m)^## (.+)$`)
	h1Re = regexp.MustCompile(`(?m)^# (.+)$`)

	boldStarRe  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderRe = regexp.MustCompile(`__(.*?)__`)
	emStarRe    = regexp.MustCompile(`\*(.*?)\*`)
	emUnderRe   = regexp.MustCompile(`_(.*?)_`)

	linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	hrRe   = regexp.MustCompile(`(?m)^---+$`)

	// '>' is already escaped when this runs.
	quoteRe = regexp.MustCompile(`(?m)^&gt; (.+)$`)

	bulletRe   = regexp.MustCompile(`(?m)^[*\-+] (.+)$`)
	numberedRe = regexp.MustCompile(`(?m)^(\d+)\. (.+)$`)

	blockOpenRe  = regexp.MustCompile(`^<(h[1-6]|li|hr|blockquote|pre|code)`)
	blockCloseRe = regexp.MustCompile(`^</(h[1-6]|li|hr|blockquote|pre|code)>`)

	bulletRunRe  = regexp.MustCompile(`(?s)(<li>.*?</li>(?:\s*<li>.*?</li>)*)`)
	orderedRunRe = regexp.MustCompile(`(?s)(<li value="\d+">.*?</li>(?:\s*<li value="\d+">.*?</li>)*)`)
	quoteRunRe   = regexp.MustCompile(`(?s)(<blockquote>.*?</blockquote>(?:\s*<blockquote>.*?</blockquote>)*)`)

	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// EncoderOptions adjusts the markup rules. The zero value reproduces the
// notes client's historical output exactly.
type EncoderOptions struct {
	// OrderedLists renders "N. text" lines as <li value="N"> inside <ol>
	// instead of folding them into the surrounding <ul>.
	OrderedLists bool

	// SanitizeLinks runs the generated fragment through an HTML sanitizer,
	// dropping script URLs and attributes smuggled in through link targets.
	SanitizeLinks bool
}

// Encoder converts markdown-like text into an HTML fragment.
type Encoder struct {
	opts EncoderOptions
}

// NewEncoder returns an Encoder with the given options.
func NewEncoder(opts EncoderOptions) *Encoder {
	return &Encoder{opts: opts}
}

var defaultEncoder = NewEncoder(EncoderOptions{})

// ToHTML encodes text with the default options.
func ToHTML(text string) string {
	return defaultEncoder.Encode(text)
}

// IsFullDocument reports whether text is already a complete HTML document.
func IsFullDocument(text string) bool {
	return fullDocumentRe.MatchString(text)
}

// Encode converts text to HTML. Full HTML documents are returned unchanged.
//
// Escaping runs once before any tag-producing rule. Link targets and labels
// are inserted as matched, so a URL containing a double quote can add
// attributes to the generated anchor unless SanitizeLinks is set.
func (e *Encoder) Encode(text string) string {
	if text == "" {
		return ""
	}
	if IsFullDocument(text) {
		return text
	}

	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = htmlEscaper.Replace(s)

	s = fenceRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := fenceRe.FindStringSubmatch(m)[1]
		return "<pre><code>" + strings.TrimSpace(inner) + "</code></pre>"
	})
	s = codeSpanRe.ReplaceAllString(s, "<code>${1}</code>")

	s = h3Re.ReplaceAllString(s, "<h3>${1}</h3>")
	s = h2Re.ReplaceAllString(s, "<h2>${1}</h2>")
	s = h1Re.ReplaceAllString(s, "<h1>${1}</h1>")

	s = boldStarRe.ReplaceAllString(s, "<strong>${1}</strong>")
	s = boldUnderRe.ReplaceAllString(s, "<strong>${1}</strong>")
	s = emStarRe.ReplaceAllString(s, "<em>${1}</em>")
	s = emUnderRe.ReplaceAllString(s, "<em>${1}</em>")

	s = linkRe.ReplaceAllString(s, `<a href="${2}">${1}</a>`)
	s = hrRe.ReplaceAllString(s, "<hr>")
	s = quoteRe.ReplaceAllString(s, "<blockquote>${1}</blockquote>")

	s = bulletRe.ReplaceAllString(s, "<li>${1}</li>")
	if e.opts.OrderedLists {
		s = numberedRe.ReplaceAllString(s, `<li value="${1}">${2}</li>`)
	} else {
		s = numberedRe.ReplaceAllString(s, "<li>${2}</li>")
	}

	s = wrapLines(s)

	s = bulletRunRe.ReplaceAllString(s, "<ul>${1}</ul>")
	if e.opts.OrderedLists {
		s = orderedRunRe.ReplaceAllString(s, "<ol>${1}</ol>")
	}
	s = quoteRunRe.ReplaceAllString(s, "<blockquote>${1}</blockquote>")

	if e.opts.SanitizeLinks {
		s = Sanitize(s)
	}
	return s
}

// wrapLines drops blank lines, keeps lines that open or close a generated
// block element, and wraps everything else in <p>.
func wrapLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if blockOpenRe.MatchString(trimmed) || blockCloseRe.MatchString(trimmed) {
			out = append(out, trimmed)
			continue
		}
		out = append(out, "<p>"+trimmed+"</p>")
	}
	return strings.Join(out, "\n")
}
