package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/analyst"
)

type AnalystRepository struct {
	db *sql.DB
}

func NewAnalystRepository(db *sql.DB) *AnalystRepository {
	return &AnalystRepository{db: db}
}

// Save inserts or updates an analysis record
func (r *AnalystRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO legal_analyses
  (id, document_id, analysis_type, result_text, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE SET
  document_id=EXCLUDED.document_id,
  analysis_type=EXCLUDED.analysis_type,
  result_text=EXCLUDED.result_text;
`
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q, string(a.ID), stringOrDash(a.DocumentID), stringOrDash(a.Type), a.Result, createdAt)
	return err
}

// Paginate returns a page of analysis records ordered by created_at desc
func (r *AnalystRepository) Paginate(ctx context.Context, documentID string, page, pageSize int) ([]*domain.Analysis, error) {
	if page <= 0 { page = 1 }
	if pageSize <= 0 { pageSize = 20 }
	offset := (page - 1) * pageSize

	const q = `
SELECT id, document_id, analysis_type, result_text, created_at
FROM legal_analyses
WHERE document_id=$1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3;
`
	rows, err := r.db.QueryContext(ctx, q, documentID, pageSize, offset)
	if err != nil { return nil, err }
	defer rows.Close()

	out := []*domain.Analysis{}
	for rows.Next() {
		var a domain.Analysis
		if err := rows.Scan(&a.ID, &a.DocumentID, &a.Type, &a.Result, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// LatestByType returns the latest analysis of one type for a document
func (r *AnalystRepository) LatestByType(ctx context.Context, documentID, analysisType string) (*domain.Analysis, error) {
	const q = `
SELECT id, document_id, analysis_type, result_text, created_at
FROM legal_analyses
WHERE document_id=$1 AND analysis_type=$2
ORDER BY created_at DESC, id DESC
LIMIT 1;`
	var a domain.Analysis
	err := r.db.QueryRowContext(ctx, q, documentID, analysisType).Scan(&a.ID, &a.DocumentID, &a.Type, &a.Result, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) { return nil, nil }
	if err != nil { return nil, err }
	return &a, nil
}
