// Package ocr wraps the Tesseract engine behind an explicit result type:
// extraction either succeeds with text and a confidence estimate, or
// collapses to an empty result. It never panics and never returns an
// error to the caller; an unreadable document is a downstream signal,
// not a fault.
package ocr

import "context"

// Result is the outcome of one extraction run. A zero Result means the
// document produced no usable text; Confidence 0.0 always accompanies it.
type Result struct {
	Text       string
	Confidence float64
}

// Empty reports whether extraction produced no usable text.
func (r Result) Empty() bool {
	return r.Text == ""
}

// Failure is the canonical empty outcome.
func Failure() Result {
	return Result{}
}

// Extractor converts a stored document into plain text.
type Extractor interface {
	Extract(ctx context.Context, documentPath string) Result
}
