package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFormatsTwoDecimals(t *testing.T) {
	cases := []struct {
		raw, max int
		want     string
	}{
		{7, 30, "23.33%"},
		{17, 30, "56.67%"},
		{29, 30, "96.67%"},
		{27, 30, "90.00%"},
		{6, 10, "60.00%"},
		{10, 10, "100.00%"},
		{0, 10, "0.00%"},
		{1, 3, "33.33%"},
		{2, 3, "66.67%"},
	}
	for _, tc := range cases {
		p, err := Normalize(tc.raw, tc.max)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, p.String(), "Normalize(%d, %d)", tc.raw, tc.max)
	}
}

func TestNormalizeRejectsNonPositiveMax(t *testing.T) {
	_, err := Normalize(3, 0)
	assert.ErrorIs(t, err, ErrInvalidMax)
	_, err = Normalize(3, -10)
	assert.ErrorIs(t, err, ErrInvalidMax)
	assert.Panics(t, func() { MustNormalize(1, 0) })
}

func TestAboveIsStrict(t *testing.T) {
	p := MustNormalize(27, 30)
	assert.False(t, p.Above(90))
	assert.True(t, p.Above(89))

	full := MustNormalize(10, 10)
	assert.False(t, full.Above(100))
}

func TestFilterAndRenderShareValue(t *testing.T) {
	// 86.666... rounds to 86.67 for both comparison and display.
	p := MustNormalize(26, 30)
	assert.Equal(t, "86.67%", p.String())
	assert.True(t, p.Above(86))
	assert.False(t, p.Above(87))
}
