package mysql

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

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestDocumentSave(t *testing.T) {
	db, mock := newMock(t)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO legal_documents")).
		WithArgs("d1", "nda.pdf", "-", "text", "", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewDocumentRepository(db).Save(context.Background(), &documents.Document{
		ID: "d1", Filename: "nda.pdf", Text: "text", CreatedAt: at,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentGet(t *testing.T) {
	db, mock := newMock(t)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM legal_documents")).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "filename", "mime_type", "text_content", "source_key", "created_at"}).
			AddRow("d1", "nda.pdf", "application/pdf", "Agreement text", "uploads/d1/nda.pdf", at))

	d, err := NewDocumentRepository(db).Get(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "Agreement text", d.Text)
	assert.Equal(t, "uploads/d1/nda.pdf", d.SourceKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentGetMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM legal_documents")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := NewDocumentRepository(db).Get(context.Background(), "nope")
	require.ErrorIs(t, err, documents.ErrNotFound)
}

func TestAnalystPaginate(t *testing.T) {
	db, mock := newMock(t)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM legal_analyses")).
		WithArgs("d1", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "document_id", "analysis_type", "result_text", "created_at"}).
			AddRow("a1", "d1", "risk", "[]", at))

	list, err := NewAnalystRepository(db).Paginate(context.Background(), "d1", 2, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, analyst.AnalysisID("a1"), list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalystLatestNone(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM legal_analyses")).
		WithArgs("d1", "ambiguity").
		WillReturnError(sql.ErrNoRows)

	a, err := NewAnalystRepository(db).LatestByType(context.Background(), "d1", "ambiguity")
	require.NoError(t, err)
	assert.Nil(t, a)
}
