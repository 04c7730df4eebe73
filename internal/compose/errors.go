package compose

import "errors"

var (
	// ErrTableTooShort is returned when table data lacks a header row and at
	// least one data row.
	ErrTableTooShort = errors.New("table data must have at least a header row and one data row")

	// ErrUnknownNoteType is returned for a note type outside NoteTypes.
	ErrUnknownNoteType = errors.New("unknown note type")

	// ErrUnknownPosition is returned for a position other than top or bottom.
	ErrUnknownPosition = errors.New("unknown position")

	// ErrMissingTitle is returned when a new page has no title.
	ErrMissingTitle = errors.New("title cannot be empty")

	// ErrMissingContent is returned when a new page has no content.
	ErrMissingContent = errors.New("content cannot be empty")
)
