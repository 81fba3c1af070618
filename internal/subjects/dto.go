package subjects

// SubjectResponse is the wire shape of a subject.
type SubjectResponse struct {
	SubjectID   int64  `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	SpeciesName string `json:"species_name"`
	DateOfBirth string `json:"date_of_birth"`
}

func toResponse(s Subject) SubjectResponse {
	return SubjectResponse{
		SubjectID:   s.ID,
		SubjectName: s.Name,
		SpeciesName: s.SpeciesName,
		DateOfBirth: s.DateOfBirth.String(),
	}
}

func toResponses(list []Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toResponse(s))
	}
	return out
}
