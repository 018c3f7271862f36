package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

func newRepo(t *testing.T, ttl time.Duration) (*DocumentRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewDocumentRepository(rdb, ttl), mr
}

func TestSaveGetRoundTrip(t *testing.T) {
	repo, mr := newRepo(t, 0)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &domain.Document{
		ID:        "d1",
		Filename:  "nda.pdf",
		MimeType:  "application/pdf",
		Text:      "Mutual non-disclosure agreement.",
		SourceKey: "uploads/d1/nda.pdf",
		CreatedAt: at,
	}))
	assert.True(t, mr.Exists(keyPrefix+"d1"))
	assert.Zero(t, mr.TTL(keyPrefix+"d1"))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentID("d1"), got.ID)
	assert.Equal(t, "Mutual non-disclosure agreement.", got.Text)
	assert.Equal(t, "uploads/d1/nda.pdf", got.SourceKey)
	assert.True(t, at.Equal(got.CreatedAt))
}

func TestGetMissing(t *testing.T) {
	repo, _ := newRepo(t, 0)
	_, err := repo.Get(context.Background(), "never-stored")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTTLApplied(t *testing.T) {
	repo, mr := newRepo(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &domain.Document{ID: "d2", Text: "short lived"}))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"d2"))

	mr.FastForward(2 * time.Hour)
	_, err := repo.Get(ctx, "d2")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorruptValue(t *testing.T) {
	repo, mr := newRepo(t, 0)
	require.NoError(t, mr.Set(keyPrefix+"bad", "{not json"))

	_, err := repo.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestCheck(t *testing.T) {
	repo, mr := newRepo(t, 0)
	require.NoError(t, repo.Check(context.Background()))

	mr.Close()
	assert.Error(t, repo.Check(context.Background()))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := Connect(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	require.NoError(t, rdb.Close())

	mr.Close()
	_, err = Connect(context.Background(), mr.Addr(), "", 0)
	assert.Error(t, err)
}
