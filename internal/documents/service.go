package documents

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/extract"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/storage/object"
	"resume-match/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Store           object.ObjectStore
	Repo            DocumentsRepo
	StorageProvider string
}

// Upload saves the file to object storage, records the document, and
// extracts its plain text. Extraction failure does not fail the upload; the
// text is re-extracted on demand at analysis time.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:              uuid.NewString(),
		UserID:          userID,
		FileName:        fileName,
		MimeType:        mimeType,
		SizeBytes:       size,
		StorageProvider: s.StorageProvider,
		StorageKey:      storageKey,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	if extractedDoc, err := s.extract(ctx, doc); err != nil {
		metrics.IncExtractionFailed()
		telemetry.Warn("document.extract.failed", map[string]any{
			"document_id": doc.ID,
			"mime_type":   doc.MimeType,
			"err":         err.Error(),
		})
	} else {
		metrics.IncExtractionCompleted()
		doc = extractedDoc
	}

	return doc, nil
}

// CreateFromS3 records a document that was uploaded directly via a presigned
// URL. No extraction happens here; the object may still be in flight.
func (s *Service) CreateFromS3(ctx context.Context, userID, s3Key, originalFileName, contentType string, sizeBytes int64) (Document, error) {
	if s3Key == "" || originalFileName == "" || sizeBytes <= 0 {
		return Document{}, ErrInvalidInput
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userID,
		FileName:         originalFileName,
		OriginalFilename: originalFileName,
		MimeType:         contentType,
		ContentType:      contentType,
		SizeBytes:        sizeBytes,
		StorageProvider:  "s3",
		StorageKey:       s3Key,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Current returns the most recent document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// Get returns a document by ID for a user.
func (s *Service) Get(ctx context.Context, userID, documentID string) (Document, error) {
	if userID == "" || documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, documentID)
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Text returns the extracted plain text for a document, extracting on demand
// when the stored copy is missing.
func (s *Service) Text(ctx context.Context, doc Document) (string, error) {
	if doc.ExtractedTextKey != "" {
		body, err := s.Store.Open(ctx, doc.ExtractedTextKey)
		if err == nil {
			defer body.Close()
			raw, err := io.ReadAll(body)
			if err != nil {
				return "", err
			}
			return string(raw), nil
		}
		telemetry.Warn("document.text.reopen_failed", map[string]any{
			"document_id": doc.ID,
			"err":         err.Error(),
		})
	}

	updated, err := s.extract(ctx, doc)
	if err != nil {
		metrics.IncExtractionFailed()
		return "", err
	}
	metrics.IncExtractionCompleted()

	body, err := s.Store.Open(ctx, updated.ExtractedTextKey)
	if err != nil {
		return "", err
	}
	defer body.Close()
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *Service) extract(ctx context.Context, doc Document) (Document, error) {
	if strings.TrimSpace(doc.StorageKey) == "" {
		return Document{}, ErrNotExtracted
	}

	if _, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName); err != nil {
		return Document{}, err
	}

	extractedKey := doc.StorageKey + ".extracted.txt"
	now := time.Now().UTC()
	if err := s.Repo.UpdateExtraction(ctx, doc.UserID, doc.ID, extractedKey, now); err != nil {
		return Document{}, err
	}
	doc.ExtractedTextKey = extractedKey
	doc.ExtractedAt = &now
	return doc, nil
}
