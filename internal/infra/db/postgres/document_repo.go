package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Save inserts or replaces a document
func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	const q = `
INSERT INTO legal_documents
  (id, filename, mime_type, text_content, source_key, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (id) DO UPDATE SET
  filename=EXCLUDED.filename,
  mime_type=EXCLUDED.mime_type,
  text_content=EXCLUDED.text_content,
  source_key=EXCLUDED.source_key;
`
	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q, string(d.ID), stringOrDash(d.Filename), stringOrDash(d.MimeType), d.Text, d.SourceKey, createdAt)
	return err
}

// Get returns the document or domain.ErrNotFound.
func (r *DocumentRepository) Get(ctx context.Context, id domain.DocumentID) (*domain.Document, error) {
	const q = `
SELECT id, filename, mime_type, text_content, source_key, created_at
FROM legal_documents
WHERE id=$1 LIMIT 1;
`
	var d domain.Document
	err := r.db.QueryRowContext(ctx, q, string(id)).Scan(&d.ID, &d.Filename, &d.MimeType, &d.Text, &d.SourceKey, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
