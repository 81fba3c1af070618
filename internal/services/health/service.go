package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Status is the payload served by /healthz.
type Status struct {
	OK bool   `json:"ok"`
	DB string `json:"db"`
}

// Service encapsulates health-related checks.
type Service struct {
	// DB is nil when the process runs on in-memory repositories.
	DB          *sql.DB
	PingTimeout time.Duration
}

// NewService constructs a new health service.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db, PingTimeout: 2 * time.Second}
}

// Status pings the pool when one is configured.
func (s *Service) Status(ctx context.Context) (Status, error) {
	if s == nil || s.DB == nil {
		return Status{OK: true, DB: "memory"}, nil
	}
	timeout := s.PingTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		return Status{OK: false, DB: "down"}, fmt.Errorf("ping database: %w", err)
	}
	return Status{OK: true, DB: "up"}, nil
}
