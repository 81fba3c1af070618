package experiments

import "context"

// Repo defines persistence operations for experiments.
type Repo interface {
	// List returns rows matching f, ordered by date descending then id.
	List(ctx context.Context, f Filter) ([]Row, error)
	// TypeByName resolves a canonical type name.
	TypeByName(ctx context.Context, name string) (ExperimentType, error)
	// Insert stores e and returns it with the assigned id.
	Insert(ctx context.Context, e Experiment) (Experiment, error)
	// Delete removes the experiment in a single statement and returns what was removed.
	Delete(ctx context.Context, id int64) (Deleted, error)
}
