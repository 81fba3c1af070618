package experiments

// ExperimentResponse is the wire shape of a listed experiment.
type ExperimentResponse struct {
	ExperimentID   int64  `json:"experiment_id"`
	SubjectID      int64  `json:"subject_id"`
	Species        string `json:"species"`
	ExperimentDate string `json:"experiment_date"`
	ExperimentType string `json:"experiment_type"`
	Score          string `json:"score"`
}

// CreatedResponse is returned by POST /experiment.
type CreatedResponse struct {
	ExperimentID     int64  `json:"experiment_id"`
	SubjectID        int64  `json:"subject_id"`
	ExperimentTypeID int64  `json:"experiment_type_id"`
	ExperimentDate   string `json:"experiment_date"`
	Score            int    `json:"score"`
}

// DeletedResponse is returned by DELETE /experiment/:id.
type DeletedResponse struct {
	ExperimentID   int64  `json:"experiment_id"`
	ExperimentDate string `json:"experiment_date"`
}

func toResponse(r Row) ExperimentResponse {
	return ExperimentResponse{
		ExperimentID:   r.ID,
		SubjectID:      r.SubjectID,
		Species:        r.Species,
		ExperimentDate: r.Date.String(),
		ExperimentType: r.TypeName,
		Score:          r.Percentage().String(),
	}
}

func toResponses(rows []Row) []ExperimentResponse {
	out := make([]ExperimentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toResponse(r))
	}
	return out
}

func toCreatedResponse(e Experiment) CreatedResponse {
	return CreatedResponse{
		ExperimentID:     e.ID,
		SubjectID:        e.SubjectID,
		ExperimentTypeID: e.TypeID,
		ExperimentDate:   e.Date.String(),
		Score:            e.Score,
	}
}

func toDeletedResponse(d Deleted) DeletedResponse {
	return DeletedResponse{ExperimentID: d.ID, ExperimentDate: d.Date.String()}
}
