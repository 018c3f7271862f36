package analyst

import "context"

// Repository port for persisting and querying analyses
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	Paginate(ctx context.Context, documentID string, page, pageSize int) ([]*Analysis, error)
	LatestByType(ctx context.Context, documentID, analysisType string) (*Analysis, error)
}
