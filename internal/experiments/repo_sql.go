package experiments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marine-api/internal/shared/storage/db"
)

// SQLRepo implements Repo on Postgres or SQLite.
type SQLRepo struct {
	DB     *sql.DB
	Driver db.Driver
}

// List runs the listing query and applies the percentage filter to scanned rows.
func (r *SQLRepo) List(ctx context.Context, f Filter) ([]Row, error) {
	query, args := ListQuery(f, r.Driver)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list experiments: %w", err)
	}
	defer rows.Close()

	out := []Row{}
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ID,
			&row.SubjectID,
			&row.Species,
			&row.Date,
			&row.TypeName,
			&row.Score,
			&row.MaxScore,
		); err != nil {
			return nil, fmt.Errorf("scan experiment: %w", err)
		}
		if f.Keep(row) {
			out = append(out, row)
		}
	}
	return out, rows.Err()
}

// TypeByName resolves a canonical type name to its reference row.
func (r *SQLRepo) TypeByName(ctx context.Context, name string) (ExperimentType, error) {
	query := `
SELECT experiment_type_id, type_name, max_score
FROM experiment_type
WHERE type_name = ` + r.Driver.Placeholder(1)

	var t ExperimentType
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name, &t.MaxScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ExperimentType{}, ErrTypeNotFound
		}
		return ExperimentType{}, fmt.Errorf("get experiment type %q: %w", name, err)
	}
	return t, nil
}

// Insert stores a new experiment and returns the persisted row.
func (r *SQLRepo) Insert(ctx context.Context, e Experiment) (Experiment, error) {
	p := r.Driver.Placeholder
	query := `
INSERT INTO experiment (subject_id, experiment_type_id, score, experiment_date)
VALUES (` + p(1) + `, ` + p(2) + `, ` + p(3) + `, ` + p(4) + `)
RETURNING experiment_id, subject_id, experiment_type_id, score, experiment_date`

	var out Experiment
	err := r.DB.QueryRowContext(ctx, query, e.SubjectID, e.TypeID, e.Score, e.Date).Scan(
		&out.ID,
		&out.SubjectID,
		&out.TypeID,
		&out.Score,
		&out.Date,
	)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return Experiment{}, ErrSubjectNotFound
		}
		return Experiment{}, fmt.Errorf("insert experiment: %w", err)
	}
	return out, nil
}

// Delete removes an experiment with a single DELETE ... RETURNING statement.
func (r *SQLRepo) Delete(ctx context.Context, id int64) (Deleted, error) {
	query := `
DELETE FROM experiment
WHERE experiment_id = ` + r.Driver.Placeholder(1) + `
RETURNING experiment_id, experiment_date`

	var out Deleted
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&out.ID, &out.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Deleted{}, ErrNotFound
		}
		return Deleted{}, fmt.Errorf("delete experiment %d: %w", id, err)
	}
	return out, nil
}

var _ Repo = (*SQLRepo)(nil)
