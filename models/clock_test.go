package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	c, err := ParseClockTime("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Hour)
	assert.Equal(t, 30, c.Minute)
	assert.Equal(t, "07:30", c.String())

	_, err = ParseClockTime("7:30pm")
	assert.Error(t, err)

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
}

func TestParseClockDuration(t *testing.T) {
	d, err := ParseClockDuration("00:30")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, d)

	d, err = ParseClockDuration("05:00")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Hour, d)

	_, err = ParseClockDuration("ninety minutes")
	assert.Error(t, err)

	_, err = ParseClockDuration("01:75")
	assert.Error(t, err)
}

func TestFormatClockDuration(t *testing.T) {
	assert.Equal(t, "00:30", FormatClockDuration(30*time.Minute))
	assert.Equal(t, "05:00", FormatClockDuration(5*time.Hour))
	assert.Equal(t, "01:45", FormatClockDuration(105*time.Minute))
	assert.Equal(t, "00:00", FormatClockDuration(-time.Hour))
}

func TestClockTimeOn(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	d := time.Date(2024, time.June, 5, 15, 42, 11, 0, loc)

	anchored := ClockTime{Hour: 7}.On(d, loc)
	assert.Equal(t, "2024-06-05T07:00:00-07:00", anchored.Format(time.RFC3339))
}

func TestDailyWindowIsValid(t *testing.T) {
	ok := DailyWindow{Start: ClockTime{Hour: 7}, End: ClockTime{Hour: 20}}
	assert.True(t, ok.IsValid())
	assert.Equal(t, "07:00 to 20:00", ok.String())

	inverted := DailyWindow{Start: ClockTime{Hour: 20}, End: ClockTime{Hour: 7}}
	assert.False(t, inverted.IsValid())

	empty := DailyWindow{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 9}}
	assert.False(t, empty.IsValid())
}
