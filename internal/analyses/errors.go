package analyses

import "errors"

var (
	// ErrDocumentNotFound is returned when the target document does not
	// exist for the caller.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentNotReadable is returned when no text could be extracted
	// from the document.
	ErrDocumentNotReadable = errors.New("document text could not be extracted")
)

// Error codes used in HTTP responses.
const (
	CodeValidation          = "validation_error"
	CodeNotFound            = "not_found"
	CodeDocumentNotReadable = "document_not_readable"
	CodeInternal            = "internal_error"
)
