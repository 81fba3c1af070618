package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marine-api/internal/shared/civil"
	"marine-api/internal/shared/metrics"
	"marine-api/internal/shared/telemetry"
	"marine-api/internal/validate"
)

// Body keys accepted by Create.
const (
	KeySubjectID      = "subject_id"
	KeyExperimentType = "experiment_type"
	KeyScore          = "score"
	KeyExperimentDate = "experiment_date"
)

// Service orchestrates experiment listing, creation, and deletion.
type Service struct {
	Repo Repo
	// Now supplies the default experiment date.
	Now func() time.Time
}

// NewService constructs a Service. A nil clock falls back to time.Now.
func NewService(repo Repo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{Repo: repo, Now: now}
}

// List returns experiments matching f, newest first.
func (s *Service) List(ctx context.Context, f Filter) ([]Row, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("experiments service not configured")
	}
	return s.Repo.List(ctx, f)
}

// Create validates an untrusted request body and stores the experiment it describes.
// Values are the decoded JSON scalars; numbers are expected as json.Number. A null value
// counts as a missing key. Nothing is written unless every check passes.
func (s *Service) Create(ctx context.Context, body map[string]any) (Experiment, error) {
	if s == nil || s.Repo == nil {
		return Experiment{}, errors.New("experiments service not configured")
	}

	for _, key := range []string{KeyScore, KeyExperimentType, KeySubjectID} {
		if body[key] == nil {
			metrics.IncValidationFailure(key)
			return Experiment{}, missingField(key)
		}
	}

	rawSubject := body[KeySubjectID]
	rawType := body[KeyExperimentType]
	rawScore := body[KeyScore]
	rawDate := body[KeyExperimentDate]

	if !validate.IsValidSubjectID(rawSubject) {
		return Experiment{}, s.reject(KeySubjectID)
	}
	if !validate.IsValidType(rawType) {
		return Experiment{}, s.reject(KeyExperimentType)
	}
	if !validate.IsValidScore(rawScore) {
		return Experiment{}, s.reject(KeyScore)
	}
	if !validate.IsValidDate(rawDate) {
		return Experiment{}, s.reject(KeyExperimentDate)
	}

	subjectID, err := literalInt(rawSubject)
	if err != nil {
		return Experiment{}, s.reject(KeySubjectID)
	}
	raw, err := literalInt(rawScore)
	if err != nil {
		return Experiment{}, s.reject(KeyScore)
	}
	typeName, _ := validate.CanonicalType(rawType.(string))

	date := civil.DateOf(s.Now())
	if rawDate != nil {
		if date, err = civil.ParseDate(rawDate.(string)); err != nil {
			return Experiment{}, s.reject(KeyExperimentDate)
		}
	}

	t, err := s.Repo.TypeByName(ctx, typeName)
	if err != nil {
		// The name already matched the closed type set, so a miss means the reference data is broken.
		return Experiment{}, fmt.Errorf("resolve experiment type %q: %w", typeName, err)
	}
	if raw > int64(t.MaxScore) {
		return Experiment{}, s.reject(KeyScore)
	}

	created, err := s.Repo.Insert(ctx, Experiment{
		SubjectID: subjectID,
		TypeID:    t.ID,
		Score:     int(raw),
		Date:      date,
	})
	if err != nil {
		if errors.Is(err, ErrSubjectNotFound) {
			return Experiment{}, &NotFoundError{ID: literalString(rawSubject), err: ErrSubjectNotFound}
		}
		return Experiment{}, err
	}

	metrics.IncExperimentCreated(t.Name)
	telemetry.Info("experiment.created", map[string]any{
		"experiment_id":   created.ID,
		"subject_id":      created.SubjectID,
		"experiment_type": t.Name,
		"score":           created.Score,
		"experiment_date": created.Date.String(),
	})
	return created, nil
}

// Delete removes the experiment identified by rawID, the unparsed path segment.
func (s *Service) Delete(ctx context.Context, rawID string) (Deleted, error) {
	if s == nil || s.Repo == nil {
		return Deleted{}, errors.New("experiments service not configured")
	}
	if !validate.IsValidID(rawID) {
		return Deleted{}, ErrInvalidID
	}
	id, err := literalInt(rawID)
	if err != nil {
		return Deleted{}, ErrInvalidID
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Deleted{}, &NotFoundError{ID: rawID, err: ErrNotFound}
		}
		return Deleted{}, err
	}

	metrics.IncExperimentDeleted()
	telemetry.Info("experiment.deleted", map[string]any{
		"experiment_id":   deleted.ID,
		"experiment_date": deleted.Date.String(),
	})
	return deleted, nil
}

func (s *Service) reject(field string) error {
	metrics.IncValidationFailure(field)
	return invalidField(field)
}
