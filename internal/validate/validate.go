// Package validate holds the input predicates for experiment requests.
//
// Every predicate inspects the wire form of a value (a query-string value, or a JSON scalar
// decoded with json.Decoder.UseNumber) before any numeric coercion happens, so representations
// like "4.0", "-4" or 1e2 are rejected even though they parse as numbers. Absent values are
// passed as nil.
package validate

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExperimentTypes is the closed set of canonical experiment type names.
var ExperimentTypes = []string{"intelligence", "obedience", "aggression"}

const (
	minScore = 0
	maxScore = 100
)

// IsValidType accepts nil (no filter) or a string naming one of ExperimentTypes, ignoring case.
func IsValidType(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, ok = CanonicalType(s)
	return ok
}

// CanonicalType returns the lowercase canonical name for s, if s names a known type.
func CanonicalType(s string) (string, bool) {
	for _, t := range ExperimentTypes {
		if strings.EqualFold(s, t) {
			return t, true
		}
	}
	return "", false
}

// IsValidScoreFilter accepts nil, or a digits-only literal in [0, 100].
func IsValidScoreFilter(value any) bool {
	if value == nil {
		return true
	}
	lit, ok := literal(value)
	if !ok {
		return false
	}
	return inRange(lit, minScore, maxScore)
}

// IsValidSubjectID accepts a non-empty digits-only literal that fits in an int64.
func IsValidSubjectID(value any) bool {
	lit, ok := literal(value)
	if !ok || !isDigits(lit) {
		return false
	}
	_, err := strconv.ParseInt(lit, 10, 64)
	return err == nil
}

// IsValidScore accepts a JSON integer literal in [0, 100]. Strings are rejected.
func IsValidScore(value any) bool {
	var lit string
	switch v := value.(type) {
	case json.Number:
		lit = string(v)
	case int:
		lit = strconv.Itoa(v)
	case int64:
		lit = strconv.FormatInt(v, 10)
	default:
		return false
	}
	return inRange(lit, minScore, maxScore)
}

// IsValidDate accepts nil (defaulted later) or a YYYY-MM-DD string naming a real calendar date.
func IsValidDate(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	return isCalendarDate(s)
}

// IsValidID reports whether a path identifier is a digits-only literal that fits in an int64.
func IsValidID(raw string) bool {
	return IsValidSubjectID(raw)
}

func literal(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, v != ""
	case json.Number:
		return string(v), v != ""
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

func inRange(lit string, lo, hi int) bool {
	if !isDigits(lit) {
		return false
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
