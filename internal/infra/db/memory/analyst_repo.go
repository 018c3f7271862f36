package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/analyst"
)

type AnalystRepository struct {
	mu   sync.RWMutex
	byID map[domain.AnalysisID]domain.Analysis
}

func NewAnalystRepository() *AnalystRepository {
	return &AnalystRepository{byID: make(map[domain.AnalysisID]domain.Analysis)}
}

func (r *AnalystRepository) Save(_ context.Context, a *domain.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = *a
	return nil
}

func (r *AnalystRepository) Paginate(_ context.Context, documentID string, page, pageSize int) ([]*domain.Analysis, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	all := r.forDocument(documentID, "")
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []*domain.Analysis{}, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *AnalystRepository) LatestByType(_ context.Context, documentID, analysisType string) (*domain.Analysis, error) {
	all := r.forDocument(documentID, analysisType)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

// forDocument returns copies ordered newest first, id desc on ties.
func (r *AnalystRepository) forDocument(documentID, analysisType string) []*domain.Analysis {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Analysis, 0)
	for _, a := range r.byID {
		if a.DocumentID != documentID || (analysisType != "" && a.Type != analysisType) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
