package content

import "errors"

// ErrContentExtraction is reported when the parser cannot produce a tree.
var ErrContentExtraction = errors.New("content extraction failed")

// Fixed results returned in place of errors at the string boundary.
const (
	MsgReadableTextFailed = "Error: Could not extract readable text from HTML content."
	MsgNothingToSummarize = "No content to summarize."
	MsgNoBodyText         = "No text content found in HTML body."
	MsgSummaryFailed      = "Could not extract text summary."
)

// ExtractionError records which operation failed to parse its input.
// It matches ErrContentExtraction under errors.Is.
type ExtractionError struct {
	Op  string
	Err error
}

func (e *ExtractionError) Error() string {
	return e.Op + ": " + ErrContentExtraction.Error() + ": " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() []error {
	return []error{ErrContentExtraction, e.Err}
}
