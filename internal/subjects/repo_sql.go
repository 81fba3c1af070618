package subjects

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

const selectSubjects = `
SELECT s.subject_id, s.subject_name, sp.species_name, s.date_of_birth
FROM subject s
JOIN species sp ON sp.species_id = s.species_id`

// List returns subjects ordered by date of birth, newest first.
func (r *SQLRepo) List(ctx context.Context) ([]Subject, error) {
	query := selectSubjects + `
ORDER BY s.date_of_birth DESC, s.subject_id ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	out := []Subject{}
	for rows.Next() {
		var s Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.SpeciesName, &s.DateOfBirth); err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches a single subject.
func (r *SQLRepo) GetByID(ctx context.Context, id int64) (Subject, error) {
	query := selectSubjects + `
WHERE s.subject_id = ` + r.Driver.Placeholder(1)

	var s Subject
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.SpeciesName, &s.DateOfBirth)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subject{}, ErrNotFound
		}
		return Subject{}, fmt.Errorf("get subject %d: %w", id, err)
	}
	return s, nil
}

var _ Repo = (*SQLRepo)(nil)
