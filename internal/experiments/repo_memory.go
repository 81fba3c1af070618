package experiments

import (
	"context"
	"errors"
	"strings"
	"sync"

	"marine-api/internal/subjects"
)

// SubjectLookup resolves subjects for species joins and referential checks.
type SubjectLookup interface {
	GetByID(ctx context.Context, id int64) (subjects.Subject, error)
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu       sync.RWMutex
	subjects SubjectLookup
	types    map[int64]ExperimentType
	data     map[int64]Experiment
	nextID   int64
}

// NewMemoryRepo constructs a MemoryRepo over the given subjects and types, holding seed.
func NewMemoryRepo(subjectLookup SubjectLookup, types []ExperimentType, seed ...Experiment) *MemoryRepo {
	r := &MemoryRepo{
		subjects: subjectLookup,
		types:    make(map[int64]ExperimentType, len(types)),
		data:     make(map[int64]Experiment, len(seed)),
	}
	for _, t := range types {
		r.types[t.ID] = t
	}
	for _, e := range seed {
		r.data[e.ID] = e
		if e.ID > r.nextID {
			r.nextID = e.ID
		}
	}
	return r
}

// List joins stored experiments with species and type, then filters and orders them.
func (r *MemoryRepo) List(ctx context.Context, f Filter) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	stored := make([]Experiment, 0, len(r.data))
	for _, e := range r.data {
		stored = append(stored, e)
	}
	r.mu.RUnlock()

	rows := make([]Row, 0, len(stored))
	for _, e := range stored {
		subject, err := r.subjects.GetByID(ctx, e.SubjectID)
		if err != nil {
			return nil, err
		}
		t, ok := r.types[e.TypeID]
		if !ok {
			return nil, ErrTypeNotFound
		}
		rows = append(rows, Row{
			ID:        e.ID,
			SubjectID: e.SubjectID,
			Species:   subject.SpeciesName,
			Date:      e.Date,
			TypeName:  t.Name,
			Score:     e.Score,
			MaxScore:  t.MaxScore,
		})
	}
	return Apply(rows, f), nil
}

// TypeByName resolves a canonical type name.
func (r *MemoryRepo) TypeByName(ctx context.Context, name string) (ExperimentType, error) {
	if err := ctx.Err(); err != nil {
		return ExperimentType{}, err
	}
	for _, t := range r.types {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return ExperimentType{}, ErrTypeNotFound
}

// Insert stores e under the next id after checking its subject and type exist.
func (r *MemoryRepo) Insert(ctx context.Context, e Experiment) (Experiment, error) {
	if err := ctx.Err(); err != nil {
		return Experiment{}, err
	}
	if _, err := r.subjects.GetByID(ctx, e.SubjectID); err != nil {
		if errors.Is(err, subjects.ErrNotFound) {
			return Experiment{}, ErrSubjectNotFound
		}
		return Experiment{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[e.TypeID]; !ok {
		return Experiment{}, ErrTypeNotFound
	}
	r.nextID++
	e.ID = r.nextID
	r.data[e.ID] = e
	return e, nil
}

// Delete removes the experiment with the given id.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) (Deleted, error) {
	if err := ctx.Err(); err != nil {
		return Deleted{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.data[id]
	if !ok {
		return Deleted{}, ErrNotFound
	}
	delete(r.data, id)
	return Deleted{ID: e.ID, Date: e.Date}, nil
}

var _ Repo = (*MemoryRepo)(nil)
