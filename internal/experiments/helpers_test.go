package experiments

import (
	"testing"
	"time"

	"marine-api/internal/shared/civil"
	"marine-api/internal/subjects"
)

func date(t testing.TB, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func fixedClock(s string) func() time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}

func newReferenceMemoryRepo() *MemoryRepo {
	return NewMemoryRepo(
		subjects.NewMemoryRepo(subjects.ReferenceSubjects()...),
		ReferenceTypes(),
		ReferenceExperiments()...,
	)
}
