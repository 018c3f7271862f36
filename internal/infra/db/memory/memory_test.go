package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/automaton-legal/internal/domain/analyst"
	"github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

func TestDocumentRepository(t *testing.T) {
	r := NewDocumentRepository()
	ctx := context.Background()

	_, err := r.Get(ctx, "d1")
	require.ErrorIs(t, err, documents.ErrNotFound)

	d := &documents.Document{ID: "d1", Text: "v1"}
	require.NoError(t, r.Save(ctx, d))
	d.Text = "mutated after save"

	got, err := r.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Text)

	require.NoError(t, r.Save(ctx, &documents.Document{ID: "d1", Text: "v2"}))
	got, _ = r.Get(ctx, "d1")
	assert.Equal(t, "v2", got.Text)
}

func TestAnalystRepository(t *testing.T) {
	r := NewAnalystRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, typ := range []string{"summary", "ambiguity", "ambiguity", "risk"} {
		require.NoError(t, r.Save(ctx, &analyst.Analysis{
			ID:         analyst.AnalysisID(string(rune('a' + i))),
			DocumentID: "doc",
			Type:       typ,
			Result:     typ + "-result",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, r.Save(ctx, &analyst.Analysis{ID: "z", DocumentID: "other", Type: "summary", CreatedAt: base}))

	page1, err := r.Paginate(ctx, "doc", 1, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	assert.Equal(t, analyst.AnalysisID("d"), page1[0].ID)
	assert.Equal(t, analyst.AnalysisID("b"), page1[2].ID)

	page2, err := r.Paginate(ctx, "doc", 2, 3)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, analyst.AnalysisID("a"), page2[0].ID)

	empty, err := r.Paginate(ctx, "doc", 5, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)

	latest, err := r.LatestByType(ctx, "doc", "ambiguity")
	require.NoError(t, err)
	assert.Equal(t, analyst.AnalysisID("c"), latest.ID)

	none, err := r.LatestByType(ctx, "doc", "framework")
	require.NoError(t, err)
	assert.Nil(t, none)
}
