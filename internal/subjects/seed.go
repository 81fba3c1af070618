package subjects

import (
	"time"

	"marine-api/internal/shared/civil"
)

// ReferenceSubjects mirrors the rows seeded by the 00002 migration.
func ReferenceSubjects() []Subject {
	return []Subject{
		{ID: 1, Name: "Flounder", SpeciesName: "Tuna", DateOfBirth: civil.Date{Year: 2023, Month: time.January, Day: 15}},
		{ID: 2, Name: "Triton", SpeciesName: "Orca", DateOfBirth: civil.Date{Year: 2022, Month: time.June, Day: 12}},
		{ID: 3, Name: "Moana", SpeciesName: "Tiger shark", DateOfBirth: civil.Date{Year: 2018, Month: time.November, Day: 10}},
		{ID: 4, Name: "Cindi", SpeciesName: "Orca", DateOfBirth: civil.Date{Year: 2014, Month: time.February, Day: 3}},
		{ID: 5, Name: "Poseidon", SpeciesName: "Tiger shark", DateOfBirth: civil.Date{Year: 2021, Month: time.August, Day: 8}},
	}
}
