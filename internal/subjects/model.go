package subjects

import "marine-api/internal/shared/civil"

// Subject is a tracked individual that experiments are performed on.
type Subject struct {
	ID          int64
	Name        string
	SpeciesName string
	DateOfBirth civil.Date
}
