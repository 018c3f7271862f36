package documents

import (
	"context"
	"io"
)

// Repository stores extracted text keyed by document id.
// Get must return ErrNotFound (wrapped) for ids that were never saved.
type Repository interface {
	Save(ctx context.Context, d *Document) error
	Get(ctx context.Context, id DocumentID) (*Document, error)
}

// Extractor turns raw upload bytes into text. Unreadable input yields ErrExtractionFailed.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte, mimeType string) (string, error)
}

// SourceStore keeps the original uploaded bytes.
type SourceStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string) (string, error)
}
