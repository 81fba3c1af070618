// Package score converts raw experiment scores into percentages of the type maximum.
package score

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMax is returned when the type maximum is not positive.
var ErrInvalidMax = errors.New("score: max score must be positive")

// Percentage is a score normalized against its type maximum, rounded to two decimals.
type Percentage float64

// Normalize returns round(raw/max*100, 2).
func Normalize(raw, max int) (Percentage, error) {
	if max <= 0 {
		return 0, ErrInvalidMax
	}
	value := float64(raw) / float64(max) * 100
	return Percentage(math.Round(value*100) / 100), nil
}

// MustNormalize is Normalize for maxima already validated by the store schema.
func MustNormalize(raw, max int) Percentage {
	p, err := Normalize(raw, max)
	if err != nil {
		panic(err)
	}
	return p
}

// Above reports whether p is strictly greater than threshold.
func (p Percentage) Above(threshold int) bool {
	return float64(p) > float64(threshold)
}

// String renders the percentage with exactly two decimals, e.g. "23.33%".
func (p Percentage) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
