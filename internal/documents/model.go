package documents

import "time"

// Document represents an uploaded resume file owned by a user. The stored
// object and its derived plain-text extraction live in object storage; only
// metadata is persisted here.
type Document struct {
	ID               string
	UserID           string
	FileName         string
	OriginalFilename string
	MimeType         string
	ContentType      string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
}
