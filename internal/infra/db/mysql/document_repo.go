package mysql

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

// Save inserts a document; saving the same id again replaces its text.
func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	const q = `
INSERT INTO legal_documents
  (id, filename, mime_type, text_content, source_key, created_at)
VALUES (?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  filename=VALUES(filename), mime_type=VALUES(mime_type), text_content=VALUES(text_content), source_key=VALUES(source_key);
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
WHERE id=? LIMIT 1;
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
