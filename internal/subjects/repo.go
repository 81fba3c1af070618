package subjects

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no subject has the requested id.
var ErrNotFound = errors.New("subject not found")

// Repo defines read access to subjects.
type Repo interface {
	// List returns every subject, youngest first.
	List(ctx context.Context) ([]Subject, error)
	GetByID(ctx context.Context, id int64) (Subject, error)
}
