package experiments

import (
	"marine-api/internal/score"
	"marine-api/internal/shared/civil"
)

// ExperimentType is reference data resolved by canonical (lowercase) name.
type ExperimentType struct {
	ID       int64
	Name     string
	MaxScore int
}

// Experiment is a persisted experiment record.
type Experiment struct {
	ID        int64
	SubjectID int64
	TypeID    int64
	Score     int
	Date      civil.Date
}

// Row is an experiment joined with its subject's species and its type.
type Row struct {
	ID        int64
	SubjectID int64
	Species   string
	Date      civil.Date
	TypeName  string
	Score     int
	MaxScore  int
}

// Percentage normalizes the raw score against the type maximum.
func (r Row) Percentage() score.Percentage {
	return score.MustNormalize(r.Score, r.MaxScore)
}

// Deleted identifies a removed experiment.
type Deleted struct {
	ID   int64
	Date civil.Date
}
