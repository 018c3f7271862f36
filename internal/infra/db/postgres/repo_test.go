package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/automaton-legal/internal/domain/analyst"
	"github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

func TestDocumentRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (id) DO UPDATE")).
		WithArgs("d1", "lease.txt", "text/plain", "Lease", "", at).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id=$1")).
		WithArgs("d2").
		WillReturnError(sql.ErrNoRows)

	repo := NewDocumentRepository(db)
	require.NoError(t, repo.Save(context.Background(), &documents.Document{
		ID: "d1", Filename: "lease.txt", MimeType: "text/plain", Text: "Lease", CreatedAt: at,
	}))
	_, err = repo.Get(context.Background(), "d2")
	require.ErrorIs(t, err, documents.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalystSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO legal_analyses")).
		WithArgs("a1", "d1", "summary", "short", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewAnalystRepository(db).Save(context.Background(), &analyst.Analysis{
		ID: "a1", DocumentID: "d1", Type: "summary", Result: "short", CreatedAt: at,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
