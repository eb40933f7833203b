package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"17:00", 1020},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestToMinutesRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "9:00:00", "24:00", "12:60", "ab:cd", "1200", "-1:30"} {
		_, err := ToMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestToTimeString(t *testing.T) {
	assert.Equal(t, "00:00", ToTimeString(0))
	assert.Equal(t, "09:05", ToTimeString(545))
	assert.Equal(t, "17:00", ToTimeString(1020))
	assert.Equal(t, "23:59", ToTimeString(1439))
}

func TestToMinutesRoundTrips(t *testing.T) {
	for _, s := range []string{"00:00", "07:45", "12:00", "23:59"} {
		m, err := ToMinutes(s)
		require.NoError(t, err)
		assert.Equal(t, s, ToTimeString(m))
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Back-to-back intervals share a boundary but never overlap.
	assert.False(t, Overlaps(540, 570, 570, 600))
	assert.False(t, Overlaps(570, 600, 540, 570))

	assert.True(t, Overlaps(540, 570, 560, 590))
	assert.True(t, Overlaps(560, 590, 540, 570))
	assert.True(t, Overlaps(540, 600, 550, 560)) // containment
	assert.True(t, Overlaps(550, 560, 540, 600))
	assert.True(t, Overlaps(540, 570, 540, 570)) // identical

	assert.False(t, Overlaps(540, 570, 600, 630))
}
