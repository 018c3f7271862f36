package documents

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no text is stored under a document id.
	ErrNotFound = errors.New("document not found")
	// ErrExtractionFailed is returned when OCR produced no usable text.
	ErrExtractionFailed = errors.New("text extraction failed")
)

// DocumentID is an opaque token referencing extracted text.
type DocumentID string

// Document is the extracted text of one upload.
type Document struct {
	ID        DocumentID `json:"document_id"`
	Filename  string     `json:"filename"`
	MimeType  string     `json:"mime_type,omitempty"`
	Text      string     `json:"text"`
	SourceKey string     `json:"source_key,omitempty"` // object key of the original upload, if kept
	CreatedAt time.Time  `json:"created_at"`
}
