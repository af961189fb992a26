package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthCalendar(t *testing.T) {
	// October 2026 starts on a Thursday and has 31 days.
	month := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.October, 16, 15, 30, 0, 0, time.UTC)

	cal := NewMonthCalendar(month, today)

	assert.Equal(t, "October 2026", cal.Title)
	assert.Equal(t, "Mon", cal.Weekdays[0])
	require.Len(t, cal.Weeks, 5)

	first := cal.Weeks[0]
	for i := 0; i < 3; i++ {
		assert.Zero(t, first[i].Day, "padding cell %d", i)
	}
	assert.Equal(t, 1, first[3].Day)
	assert.Equal(t, "2026-10-01", first[3].Date)

	days := 0
	for _, week := range cal.Weeks {
		assert.Len(t, week, 7)
		for _, d := range week {
			if d.Day == 0 {
				continue
			}
			days++
			assert.Equal(t, d.Day < 16, d.Past, "day %d", d.Day)
		}
	}
	assert.Equal(t, 31, days)
}

func TestNewMonthCalendar_MondayStart(t *testing.T) {
	// June 2026 starts on a Monday: no leading padding.
	cal := NewMonthCalendar(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, cal.Weeks[0][0].Day)
	for _, week := range cal.Weeks {
		for _, d := range week {
			assert.False(t, d.Past)
		}
	}
}

func TestBookingSlots(t *testing.T) {
	for _, slot := range BookingSlots {
		_, err := time.Parse("15:04", slot)
		assert.NoError(t, err, slot)
	}
}
