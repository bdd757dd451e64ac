// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in          string
		wantStart   int
		wantStop    int
		wantBounded bool
	}{
		{"5", 5, 5, true},
		{"1", 1, 1, true},
		{"5-", 5, 0, false},
		{"1-", 1, 0, false},
		{"5-9", 5, 9, true},
		{"10-20", 10, 20, true},
		{"9-5", 9, 5, true},
		{"123456789", 123456789, 123456789, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start())
			stop, bounded := r.Stop().Page()
			assert.Equal(t, tt.wantBounded, bounded)
			if bounded {
				assert.Equal(t, tt.wantStop, stop)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "0", "-5", "5-3a", "05", "5-05", "5-0", "a", "5--", "5-6-7", " 5", "5 ", "1,2", "+3",
		"99999999999999999999999",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want *ValidationError, got %T", err)
			assert.Equal(t, in, ve.Input)
			assert.Contains(t, err.Error(), "START[-][STOP]")
		})
	}
}

func TestRangeString(t *testing.T) {
	for _, in := range []string{"5", "5-", "5-9"} {
		assert.Equal(t, in, MustParse(in).String())
	}
}

func TestStopReached(t *testing.T) {
	assert.True(t, At(3).Reached(3))
	assert.False(t, At(3).Reached(2))
	assert.False(t, At(3).Reached(4))

	u := Unbounded()
	assert.False(t, u.Bounded())
	for _, p := range []int{0, 1, 2, 1 << 30} {
		assert.False(t, u.Reached(p), "unbounded stop must never be reached (page %d)", p)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("0") })
}
