package compose

import (
	"fmt"
	"strings"
)

// Target is the page element a PatchCommand changes.
type Target string

const (
	TargetBody  Target = "body"
	TargetTitle Target = "title"
)

// Action is what a PatchCommand does to its target.
type Action string

const (
	ActionReplace Action = "replace"
	ActionAppend  Action = "append"
	ActionPrepend Action = "prepend"
)

// PatchCommand is one element of the JSON array sent to the page content
// PATCH endpoint.
type PatchCommand struct {
	Target  Target `json:"target"`
	Action  Action `json:"action"`
	Content string `json:"content"`
}

// Position is where inserted content lands on a page.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// ParsePosition maps a name to a Position. The empty string selects
// PositionBottom.
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToLower(s)) {
	case "", PositionBottom:
		return PositionBottom, nil
	case PositionTop:
		return PositionTop, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// Action returns prepend for PositionTop and append otherwise.
func (p Position) Action() Action {
	if p == PositionTop {
		return ActionPrepend
	}
	return ActionAppend
}

// ReplaceBodyCommand replaces the whole page body.
func ReplaceBodyCommand(html string) PatchCommand {
	return PatchCommand{Target: TargetBody, Action: ActionReplace, Content: html}
}

// AppendCommand appends to the page body.
func AppendCommand(html string) PatchCommand {
	return PatchCommand{Target: TargetBody, Action: ActionAppend, Content: html}
}

// PositionCommand inserts into the page body at pos.
func PositionCommand(pos Position, html string) PatchCommand {
	return PatchCommand{Target: TargetBody, Action: pos.Action(), Content: html}
}

// TitleCommand replaces the page title. The title is sent as plain text.
func TitleCommand(title string) PatchCommand {
	return PatchCommand{Target: TargetTitle, Action: ActionReplace, Content: title}
}
