package rangemap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		s           string
		expected    Range
		expectedErr bool
	}{
		"Normal":       {s: "5-6", expected: Range{From: 5, To: 6}},
		"SingleKey":    {s: "7-7", expected: Range{From: 7, To: 7}},
		"Negative":     {s: "-4--2", expected: Range{From: -4, To: -2}},
		"AcrossZero":   {s: "-5-10", expected: Range{From: -5, To: 10}},
		"NonInteger":   {s: "0.5-1", expectedErr: true},
		"NoHyphen":     {s: "5", expectedErr: true},
		"Inverted":     {s: "7-3", expectedErr: true},
		"Empty":        {s: "", expectedErr: true},
		"TrailingJunk": {s: "1-2x", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rng, err := ParseRange(tc.s)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRange))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, rng)
		})
	}
}

func TestNewRange(t *testing.T) {
	rng, err := NewRange(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rng.Size())

	_, err = NewRange(2, 1)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	assert.Panics(t, func() { MustRange(2, 1) })
}

func TestRangePredicates(t *testing.T) {
	a := MustRange(1, 4)
	b := MustRange(5, 9)
	c := MustRange(3, 6)

	assert.True(t, a.Adjacent(b))
	assert.False(t, b.Adjacent(a))
	assert.True(t, a.EntirelyBefore(b))
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(b))
	assert.False(t, a.Overlaps(b))
	assert.True(t, MustRange(2, 3).CoveredBy(a))
	assert.True(t, MustRange(2, 3).InMiddleOf(a))
	assert.False(t, MustRange(1, 3).InMiddleOf(a))
	assert.True(t, MustRange(1, 3).OverlapsStartOf(a))
	assert.True(t, MustRange(2, 4).OverlapsEndOf(a))
	assert.True(t, a.Contains(4))
	assert.False(t, a.Contains(5))
	assert.True(t, a.Less(b))
	assert.Equal(t, "1-4", a.String())
	assert.True(t, Range{}.IsZero())
}
