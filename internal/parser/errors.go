package parser

import "errors"

// ErrUnsupportedFormat is returned by ForFile for an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")
