package health

import (
	"context"
	"database/sql"
	"time"

	"resume-tailor/internal/shared/storage/db"
)

// Status is the /healthz payload.
type Status struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB      *sql.DB
	Timeout time.Duration
}

// NewService constructs a new health service. A nil database means the
// in-memory repositories are in use.
func NewService(database *sql.DB) *Service {
	return &Service{DB: database, Timeout: 2 * time.Second}
}

// Check pings the database when there is one.
func (s *Service) Check(ctx context.Context) Status {
	if s.DB == nil {
		return Status{OK: true, Database: "memory"}
	}
	if err := db.Ping(ctx, s.DB, s.Timeout); err != nil {
		return Status{OK: false, Database: "down"}
	}
	return Status{OK: true, Database: "up"}
}
