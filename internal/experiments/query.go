package experiments

import (
	"sort"
	"strconv"
	"strings"

	"marine-api/internal/shared/storage/db"
	"marine-api/internal/validate"
)

// Filter narrows an experiment listing. The zero value matches every experiment.
type Filter struct {
	// Type is a canonical type name; empty means any type.
	Type string
	// ScoreOver keeps experiments whose percentage is strictly greater; nil disables it.
	ScoreOver *int
}

// ParseFilter validates the raw "type" and "score_over" query values. Absent values are nil.
func ParseFilter(typeParam, scoreParam any) (Filter, error) {
	var f Filter
	if !validate.IsValidType(typeParam) {
		return Filter{}, invalidFilter("type")
	}
	if s, ok := typeParam.(string); ok {
		f.Type, _ = validate.CanonicalType(s)
	}

	if !validate.IsValidScoreFilter(scoreParam) {
		return Filter{}, invalidFilter("score_over")
	}
	if scoreParam != nil {
		n, err := strconv.Atoi(literalString(scoreParam))
		if err != nil {
			return Filter{}, invalidFilter("score_over")
		}
		f.ScoreOver = &n
	}
	return f, nil
}

// Keep reports whether r satisfies every filter.
func (f Filter) Keep(r Row) bool {
	if f.Type != "" && !strings.EqualFold(r.TypeName, f.Type) {
		return false
	}
	if f.ScoreOver != nil && !r.Percentage().Above(*f.ScoreOver) {
		return false
	}
	return true
}

// ListQuery builds the listing statement for driver d. The type filter is pushed into SQL;
// the percentage filter is applied with Keep so filtering and rendering share one computation.
func ListQuery(f Filter, d db.Driver) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString(`
SELECT e.experiment_id, e.subject_id, sp.species_name, e.experiment_date, et.type_name, e.score, et.max_score
FROM experiment e
JOIN subject s ON s.subject_id = e.subject_id
JOIN species sp ON sp.species_id = s.species_id
JOIN experiment_type et ON et.experiment_type_id = e.experiment_type_id`)

	if f.Type != "" {
		args = append(args, strings.ToLower(f.Type))
		b.WriteString("\nWHERE LOWER(et.type_name) = " + d.Placeholder(len(args)))
	}

	b.WriteString("\nORDER BY e.experiment_date DESC, e.experiment_id ASC")
	return b.String(), args
}

// Apply filters rows and orders them by date descending, ties by insertion (id) order.
func Apply(rows []Row, f Filter) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Keep(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
