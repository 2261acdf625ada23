package exports

import "context"

// Repo defines persistence operations for export history.
type Repo interface {
	Create(ctx context.Context, export Export) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Export, error)
}
