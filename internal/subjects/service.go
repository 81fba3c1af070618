package subjects

import (
	"context"
	"errors"
)

// Service exposes subject queries.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns all subjects ordered by date of birth descending.
func (s *Service) List(ctx context.Context) ([]Subject, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("subjects service not configured")
	}
	return s.Repo.List(ctx)
}
