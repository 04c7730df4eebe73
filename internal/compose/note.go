package compose

import (
	"fmt"
	"strings"
	"time"
)

// NoteType selects the icon and colour of a note callout.
type NoteType string

const (
	NoteTypeNote      NoteType = "note"
	NoteTypeTodo      NoteType = "todo"
	NoteTypeImportant NoteType = "important"
	NoteTypeQuestion  NoteType = "question"
)

// NoteTypes lists the accepted note types.
var NoteTypes = []NoteType{NoteTypeNote, NoteTypeTodo, NoteTypeImportant, NoteTypeQuestion}

type noteStyle struct {
	icon       string
	background string
}

var noteStyles = map[NoteType]noteStyle{
	NoteTypeNote:      {icon: "📝", background: "#e3f2fd"},
	NoteTypeTodo:      {icon: "✅", background: "#e8f5e8"},
	NoteTypeImportant: {icon: "🚨", background: "#ffebee"},
	NoteTypeQuestion:  {icon: "❓", background: "#fff3e0"},
}

// ParseNoteType maps a name to a NoteType. The empty string selects
// NoteTypeNote.
func ParseNoteType(s string) (NoteType, error) {
	if s == "" {
		return NoteTypeNote, nil
	}
	t := NoteType(strings.ToLower(s))
	if _, ok := noteStyles[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNoteType, s)
	}
	return t, nil
}

// Label returns the type name with its first letter upper-cased.
func (t NoteType) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Note renders a highlighted callout carrying the encoded note text.
func (c *Composer) Note(text string, kind NoteType, now time.Time) (string, error) {
	style, ok := noteStyles[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNoteType, kind)
	}
	return fmt.Sprintf(
		`<div style="border-left: 4px solid #2196f3; background-color: %s; padding: 10px; margin: 10px 0;">`+
			`<p><strong>%s %s</strong> - <em>%s</em></p>`+
			`<p>%s</p>`+
			`</div>`,
		style.background, style.icon, kind.Label(), Timestamp(now), c.enc.Encode(text),
	), nil
}
