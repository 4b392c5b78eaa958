package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateTime(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc3339 passthrough", "2025-03-14T09:00:00-07:00", "2025-03-14T09:00:00-07:00"},
		{"utc passthrough", "2025-03-14T16:00:00Z", "2025-03-14T16:00:00Z"},
		{"naive datetime", "2025-03-14T09:00:00", "2025-03-14T09:00:00-07:00"},
		{"naive without seconds", "2025-03-14T09:00", "2025-03-14T09:00:00-07:00"},
		{"space separated", "2025-03-14 09:00", "2025-03-14T09:00:00-07:00"},
		{"bare date", "2025-03-14", "2025-03-14T00:00:00-07:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDateTime(tc.input, loc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := NormalizeDateTime("march fourteenth", loc)
	assert.Error(t, err)

	_, err = NormalizeDateTime("", loc)
	assert.Error(t, err)
}

func TestEndFromDuration(t *testing.T) {
	end, err := EndFromDuration("2025-03-14T09:00:00-07:00", "01:30")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14T10:30:00-07:00", end)

	end, err = EndFromDuration("2025-03-14T23:30:00-07:00", "01:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15T00:30:00-07:00", end)

	_, err = EndFromDuration("not a time", "01:00")
	assert.Error(t, err)

	_, err = EndFromDuration("2025-03-14T09:00:00-07:00", "ninety minutes")
	assert.Error(t, err)
}

func TestDisplayColor(t *testing.T) {
	assert.Equal(t, "#01e240", DisplayColor("1"))
	assert.Equal(t, "#03c480", DisplayColor("2"))

	// Unknown IDs fall back to the first palette slot.
	assert.Equal(t, DisplayColor("1"), DisplayColor(""))
	assert.Equal(t, DisplayColor("1"), DisplayColor("magenta"))
	assert.Len(t, DisplayColor("11"), 7)
}

func TestValidColorID(t *testing.T) {
	assert.True(t, validColorID("1"))
	assert.True(t, validColorID("11"))
	assert.False(t, validColorID("0"))
	assert.False(t, validColorID("12"))
	assert.False(t, validColorID("lavender"))
	assert.False(t, validColorID(""))
}
