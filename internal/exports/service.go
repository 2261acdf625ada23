package exports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service records and lists export history.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Record stores a committed export, filling ID and CreatedAt when unset.
func (s *Service) Record(ctx context.Context, export Export) (Export, error) {
	if export.UserID == "" || export.Format == "" {
		return Export{}, ErrInvalidInput
	}
	if export.ID == "" {
		export.ID = uuid.NewString()
	}
	if export.CreatedAt.IsZero() {
		export.CreatedAt = s.Now().UTC()
	}
	if err := s.Repo.Create(ctx, export); err != nil {
		return Export{}, err
	}
	return export, nil
}

// List returns exports for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Export, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
