package documents

import "errors"

var (
	// ErrNotFound is returned when no document matches the query.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput is returned for unusable upload parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotExtracted is returned when a document has no extracted text yet.
	ErrNotExtracted = errors.New("document text not extracted")
)
