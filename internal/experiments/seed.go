package experiments

import (
	"time"

	"marine-api/internal/shared/civil"
)

// ReferenceTypes mirrors the experiment_type rows seeded by the 00002 migration.
func ReferenceTypes() []ExperimentType {
	return []ExperimentType{
		{ID: 1, Name: "intelligence", MaxScore: 30},
		{ID: 2, Name: "obedience", MaxScore: 10},
		{ID: 3, Name: "aggression", MaxScore: 10},
	}
}

// ReferenceExperiments mirrors the experiment rows seeded by the 00002 migration.
func ReferenceExperiments() []Experiment {
	jan6 := civil.Date{Year: 2024, Month: time.January, Day: 6}
	feb := func(day int) civil.Date { return civil.Date{Year: 2024, Month: time.February, Day: day} }
	return []Experiment{
		{ID: 1, SubjectID: 1, TypeID: 1, Score: 7, Date: jan6},
		{ID: 2, SubjectID: 2, TypeID: 1, Score: 27, Date: jan6},
		{ID: 3, SubjectID: 3, TypeID: 1, Score: 26, Date: jan6},
		{ID: 4, SubjectID: 4, TypeID: 1, Score: 29, Date: jan6},
		{ID: 5, SubjectID: 5, TypeID: 1, Score: 17, Date: jan6},
		{ID: 6, SubjectID: 4, TypeID: 2, Score: 2, Date: feb(2)},
		{ID: 7, SubjectID: 2, TypeID: 2, Score: 8, Date: feb(8)},
		{ID: 8, SubjectID: 2, TypeID: 3, Score: 1, Date: feb(6)},
		{ID: 9, SubjectID: 4, TypeID: 3, Score: 10, Date: feb(10)},
		{ID: 10, SubjectID: 5, TypeID: 2, Score: 6, Date: feb(12)},
	}
}
