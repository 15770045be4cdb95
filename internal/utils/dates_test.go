package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, time.March, 2, 23, 50, 0, 0, time.Local)
	today := time.Date(2026, time.March, 3, 0, 10, 0, 0, time.Local)

	// Calendar days, not 24-hour spans.
	assert.Equal(t, 1, DaysBetween(start, today))
	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, -1, DaysBetween(today, start))
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", DateString(d))
	assert.Equal(t, time.Local, d.Location())

	_, err = ParseDate("03/02/2026")
	assert.Error(t, err)
}

func TestStripTime(t *testing.T) {
	d := time.Date(2026, time.March, 2, 18, 45, 12, 999, time.Local)
	stripped := StripTime(d)
	assert.Equal(t, 0, stripped.Hour())
	assert.Equal(t, d.Day(), stripped.Day())
}

func TestEstimateOneRM(t *testing.T) {
	assert.InDelta(t, 57.0, EstimateOneRM(45, 8), 0.01)
	assert.InDelta(t, 53.33, EstimateOneRM(40, 10), 0.01)
	assert.Zero(t, EstimateOneRM(40, 0))
}
