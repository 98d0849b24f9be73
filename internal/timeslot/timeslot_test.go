package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Canonicalizes(t *testing.T) {
	cases := map[string]TimeOfDay{
		"9":     "09:00",
		"09":    "09:00",
		"9:30":  "09:30",
		"09:30": "09:30",
		"0:05":  "00:05",
		"23:59": "23:59",
		" 8:15": "08:15",
	}

	for raw, want := range cases {
		got, err := Parse(raw)
		require.NoError(t, err, "parse %q", raw)
		assert.Equal(t, want, got, "parse %q", raw)
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{
		"", "24:00", "12:60", "-1:00", "9:5", "09:300", "abc", "12:ab", "12:",
	} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidTime, "parse %q", raw)
	}
}

func TestDeriveEnd(t *testing.T) {
	assert.Equal(t, TimeOfDay("10:00"), DeriveEnd("09:00"))
	assert.Equal(t, TimeOfDay("10:15"), DeriveEnd("09:15"))

	// Hour wraps at midnight, minute is untouched.
	assert.Equal(t, TimeOfDay("00:30"), DeriveEnd("23:30"))
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("09:00", "09:01"))
	assert.ErrorIs(t, ValidateRange("09:00", "09:00"), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange("10:00", "09:00"), ErrInvalidRange)
}

func TestOverlaps(t *testing.T) {
	// Partial overlap, containment and identity all conflict.
	assert.True(t, Overlaps("09:00", "10:00", "09:30", "10:30"))
	assert.True(t, Overlaps("09:00", "12:00", "10:00", "11:00"))
	assert.True(t, Overlaps("09:00", "10:00", "09:00", "10:00"))

	// Back-to-back intervals sharing an endpoint never conflict.
	assert.False(t, Overlaps("09:00", "10:00", "10:00", "11:00"))
	assert.False(t, Overlaps("10:00", "11:00", "09:00", "10:00"))

	assert.False(t, Overlaps("09:00", "10:00", "11:00", "12:00"))
}

func TestOverlaps_Symmetric(t *testing.T) {
	pairs := [][4]TimeOfDay{
		{"09:00", "10:00", "09:30", "10:30"},
		{"09:00", "10:00", "10:00", "11:00"},
		{"08:00", "12:00", "09:00", "10:00"},
		{"09:00", "10:00", "14:00", "15:00"},
	}

	for _, p := range pairs {
		assert.Equal(t,
			Overlaps(p[0], p[1], p[2], p[3]),
			Overlaps(p[2], p[3], p[0], p[1]),
			"overlap verdict must not depend on argument order: %v", p,
		)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", d.Format(DateLayout))

	for _, raw := range []string{"", "2025-13-01", "01.06.2025", "2025-06-32"} {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, "parse %q", raw)
	}
}
