package analyses

import "context"

// Repo defines persistence operations for the analysis history.
type Repo interface {
	Save(ctx context.Context, analysis Analysis) error
	List(ctx context.Context) ([]Analysis, error)
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	Clear(ctx context.Context) error
}
