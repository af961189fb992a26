package handlers

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// BookingSlots are the fixed appointment times offered on every day.
var BookingSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

var timeNow = time.Now

// CalendarDay is one cell of the month grid. Day is 0 for padding cells.
type CalendarDay struct {
	Day  int
	Date string
	Past bool
}

// MonthCalendar is a static month grid; availability is not tracked.
type MonthCalendar struct {
	Title    string
	Weekdays []string
	Weeks    [][]CalendarDay
}

// NewMonthCalendar lays out the month containing month, Monday first. Days
// before today are marked Past.
func NewMonthCalendar(month, today time.Time) MonthCalendar {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, month.Location())

	cal := MonthCalendar{
		Title:    first.Format("January 2006"),
		Weekdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	}

	week := make([]CalendarDay, 0, 7)
	for i := 0; i < (int(first.Weekday())+6)%7; i++ {
		week = append(week, CalendarDay{})
	}

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		week = append(week, CalendarDay{
			Day:  d.Day(),
			Date: d.Format("2006-01-02"),
			Past: d.Before(today),
		})
		if len(week) == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = make([]CalendarDay, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarDay{})
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal
}

// bookingMonth reads ?month=YYYY-MM, defaulting to the current month.
func bookingMonth(e *core.RequestEvent) time.Time {
	if m, err := time.Parse("2006-01", e.Request.URL.Query().Get("month")); err == nil {
		return m
	}
	return timeNow()
}
