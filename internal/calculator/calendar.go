package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// CalendarDay lists the bills due on one day.
type CalendarDay struct {
	Date  models.Date   `json:"date"`
	Bills []models.Bill `json:"bills"`
}

// CalendarMonth is one month of due dates, laid out for a grid that starts
// on Sunday.
type CalendarMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	// FirstWeekday is the weekday of the 1st (0 = Sunday).
	FirstWeekday time.Weekday `json:"firstWeekday"`

	// Days has one entry per day of the month, in order.
	Days []CalendarDay `json:"days"`
}

// Calendar groups bills by due day for the given month.
func Calendar(bills []models.Bill, year int, month time.Month) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()

	cal := CalendarMonth{
		Year:         first.Year(),
		Month:        first.Month(),
		FirstWeekday: first.Weekday(),
		Days:         make([]CalendarDay, daysIn),
	}
	for i := range cal.Days {
		cal.Days[i] = CalendarDay{
			Date:  models.DateOf(first.AddDate(0, 0, i)),
			Bills: []models.Bill{},
		}
	}

	prefix := fmt.Sprintf("%04d-%02d-", cal.Year, int(cal.Month))
	for _, b := range bills {
		due := string(b.DueDate)
		if !strings.HasPrefix(due, prefix) {
			continue
		}
		day, err := strconv.Atoi(due[len(prefix):])
		if err != nil || day < 1 || day > daysIn {
			continue
		}
		cal.Days[day-1].Bills = append(cal.Days[day-1].Bills, b)
	}
	return cal
}
