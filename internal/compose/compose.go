// Package compose builds the HTML payloads and PATCH commands that wrap
// encoder output before it is written back to the notes API.
//
// Nothing here performs I/O. Functions that stamp the current time take it
// as an argument.
package compose

import (
	"time"

	"github.com/dgallion1/notegest/internal/content"
)

const (
	// TimestampLayout formats the "Updated on" and "Added on" stamps.
	TimestampLayout = "1/2/2006, 3:04:05 PM"

	// DateLayout formats dates in page listings.
	DateLayout = "1/2/2006"

	// DefaultLabel names the writer in generated footers.
	DefaultLabel = "notegest"
)

// Composer renders payloads with a fixed footer label and encoder.
type Composer struct {
	label string
	enc   *content.Encoder
}

// New returns a Composer. An empty label selects DefaultLabel and a nil
// encoder selects the default encoder options.
func New(label string, enc *content.Encoder) *Composer {
	if label == "" {
		label = DefaultLabel
	}
	if enc == nil {
		enc = content.NewEncoder(content.EncoderOptions{})
	}
	return &Composer{label: label, enc: enc}
}

// Timestamp formats t with TimestampLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
