package subjects

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int64]Subject
}

// NewMemoryRepo constructs a MemoryRepo holding the given subjects.
func NewMemoryRepo(seed ...Subject) *MemoryRepo {
	r := &MemoryRepo{data: make(map[int64]Subject, len(seed))}
	for _, s := range seed {
		r.data[s.ID] = s
	}
	return r
}

// List returns subjects newest-born first.
func (r *MemoryRepo) List(ctx context.Context) ([]Subject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Subject, 0, len(r.data))
	for _, s := range r.data {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].DateOfBirth != out[j].DateOfBirth {
			return out[i].DateOfBirth.After(out[j].DateOfBirth)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetByID returns the subject with the given id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Subject, error) {
	if err := ctx.Err(); err != nil {
		return Subject{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[id]
	if !ok {
		return Subject{}, ErrNotFound
	}
	return s, nil
}

var _ Repo = (*MemoryRepo)(nil)
