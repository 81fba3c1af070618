package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidType(t *testing.T) {
	valid := []any{nil, "intelligence", "obedience", "aggression", "Intelligence", "oBeDiEnCe", "AgGrEssIoN"}
	for _, v := range valid {
		assert.Truef(t, IsValidType(v), "expected %v to be valid", v)
	}

	invalid := []any{"intelligance", "____", json.Number("3"), true, "None", "agression", "threp", "", "aggre", "Ob", json.Number("34")}
	for _, v := range invalid {
		assert.Falsef(t, IsValidType(v), "expected %v to be invalid", v)
	}
}

func TestCanonicalTypeLowercases(t *testing.T) {
	name, ok := CanonicalType("AgGrEssIoN")
	assert.True(t, ok)
	assert.Equal(t, "aggression", name)

	_, ok = CanonicalType("aggress")
	assert.False(t, ok)
}

func TestIsValidScoreFilter(t *testing.T) {
	for _, v := range []any{nil, "0", "1", "50", "90", "100", json.Number("80")} {
		assert.Truef(t, IsValidScoreFilter(v), "expected %v to be valid", v)
	}
	for _, v := range []any{"three", "-17", "1010", "2.34", "-1.2", "", "101", " 5", "5 ", "1e2", true} {
		assert.Falsef(t, IsValidScoreFilter(v), "expected %v to be invalid", v)
	}
}

func TestIsValidSubjectID(t *testing.T) {
	for _, v := range []any{"4", json.Number("3"), "0", 7, int64(12)} {
		assert.Truef(t, IsValidSubjectID(v), "expected %v to be valid", v)
	}
	for _, v := range []any{nil, "", "three", "-4", "4.0", json.Number("1.2"), json.Number("-4"), json.Number("0.37"),
		json.Number("-34.1"), json.Number("2.36"), 4.0, true, "99999999999999999999"} {
		assert.Falsef(t, IsValidSubjectID(v), "expected %v to be invalid", v)
	}
}

func TestIsValidScore(t *testing.T) {
	for _, v := range []any{json.Number("0"), json.Number("7"), json.Number("100"), 31} {
		assert.Truef(t, IsValidScore(v), "expected %v to be valid", v)
	}
	for _, v := range []any{nil, "7", "three", json.Number("-1"), json.Number("4.1"), json.Number("101"), 4.0} {
		assert.Falsef(t, IsValidScore(v), "expected %v to be invalid", v)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate(nil))
	assert.True(t, IsValidDate("2024-03-01"))
	for _, v := range []any{"21-2", "2040-02-30", "1990 06 03", "3rd Jan 1817", "three", json.Number("17"), json.Number("2.1")} {
		assert.Falsef(t, IsValidDate(v), "expected %v to be invalid", v)
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("3"))
	assert.False(t, IsValidID("three"))
	assert.False(t, IsValidID("-3"))
	assert.False(t, IsValidID(""))
}
