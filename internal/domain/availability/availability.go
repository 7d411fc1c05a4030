// Package availability computes the calendar dates a patient may book.
package availability

import (
	"time"

	"clinic/internal/domain/service"
)

// DateLayout is the calendar date format shared by appointments and reviews.
const DateLayout = "2006-01-02"

// DefaultHorizonDays is how far ahead dates are offered when no horizon is configured.
const DefaultHorizonDays = 30

// Dates returns the weekdays (Monday to Friday) strictly after today and no later than
// today+horizonDays, oldest first. Only the calendar date of today is used.
func Dates(today time.Time, horizonDays int) []string {
	if horizonDays <= 0 {
		return []string{}
	}

	y, m, d := today.Date()
	start := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)

	dates := make([]string, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		day := start.AddDate(0, 0, i)
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		dates = append(dates, day.Format(DateLayout))
	}

	return dates
}

// Generator binds Dates to an injected clock and a fixed horizon.
type Generator struct {
	clock   service.Clock
	horizon int
}

// NewGenerator creates a Generator. A non-positive horizon falls back to DefaultHorizonDays.
func NewGenerator(clock service.Clock, horizonDays int) *Generator {
	if clock == nil {
		clock = service.SystemClock
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	return &Generator{clock: clock, horizon: horizonDays}
}

// AvailableDates returns the bookable dates as of the clock's current day.
func (g *Generator) AvailableDates() []string {
	return Dates(g.clock.Now(), g.horizon)
}

// Today returns the clock's current date in DateLayout.
func (g *Generator) Today() string {
	return g.clock.Now().Format(DateLayout)
}

// IsBookable reports whether date is one of the currently offered dates.
func (g *Generator) IsBookable(date string) bool {
	for _, d := range g.AvailableDates() {
		if d == date {
			return true
		}
	}

	return false
}
