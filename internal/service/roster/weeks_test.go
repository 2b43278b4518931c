package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucketDays(b weekBucket) []time.Time {
	days := append([]time.Time{}, b.Weekdays...)
	days = append(days, b.Saturdays...)
	return append(days, b.Sundays...)
}

func TestMonthWeeksCoversEveryDayOnce(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
	}{
		{2026, time.February},
		{2026, time.May},
		{2026, time.August},
		{2027, time.January},
	} {
		weeks := monthWeeks(tc.year, tc.month)
		require.NotEmpty(t, weeks)

		seen := make(map[string]bool)
		for _, week := range weeks {
			for _, day := range bucketDays(week) {
				key := day.Format("2006-01-02")
				assert.False(t, seen[key], "%s appears twice", key)
				assert.Equal(t, tc.month, day.Month())
				seen[key] = true
			}
		}

		daysInMonth := time.Date(tc.year, tc.month, 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, 1, -1).Day()
		assert.Len(t, seen, daysInMonth, "%d-%02d", tc.year, tc.month)
	}
}

func TestMonthWeeksMergesShortWeeks(t *testing.T) {
	// May 2026 starts on a Friday: its opening ISO week holds a single
	// weekday, which must be folded into the following week.
	weeks := monthWeeks(2026, time.May)

	for i, week := range weeks {
		assert.GreaterOrEqual(t, len(week.Weekdays), 3, "bucket %d", i)
	}

	first := weeks[0]
	require.NotEmpty(t, first.Weekdays)
	assert.Equal(t, 1, first.Weekdays[0].Day(), "May 1 belongs to the first bucket")
	assert.GreaterOrEqual(t, len(first.Weekdays), 4)
}

func TestMonthWeeksHandlesPriorYearISOWeek(t *testing.T) {
	// January 2027 opens in ISO week 53 of 2026. That week must still sort
	// first, not last.
	weeks := monthWeeks(2027, time.January)
	require.NotEmpty(t, weeks)

	first := weeks[0]
	days := bucketDays(first)
	require.NotEmpty(t, days)

	foundNewYear := false
	for _, day := range days {
		if day.Day() == 1 {
			foundNewYear = true
		}
	}
	assert.True(t, foundNewYear, "January 1 should land in the first bucket")
}
