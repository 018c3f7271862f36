package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

// DocumentRepository keeps documents in process memory. Contents are lost on restart.
type DocumentRepository struct {
	mu   sync.RWMutex
	docs map[domain.DocumentID]domain.Document
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{docs: make(map[domain.DocumentID]domain.Document)}
}

func (r *DocumentRepository) Save(_ context.Context, d *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[d.ID] = *d
	return nil
}

func (r *DocumentRepository) Get(_ context.Context, id domain.DocumentID) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return &d, nil
}
