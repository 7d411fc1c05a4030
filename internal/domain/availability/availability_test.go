package availability

import (
	"testing"
	"time"

	"clinic/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) service.Clock {
	return service.ClockFunc(func() time.Time { return t })
}

func TestDates_SkipsWeekendsAndToday(t *testing.T) {
	// Friday 2025-03-07.
	today := time.Date(2025, 3, 7, 18, 30, 0, 0, time.UTC)

	got := Dates(today, 7)

	assert.Equal(t, []string{
		"2025-03-10", // Mon
		"2025-03-11",
		"2025-03-12",
		"2025-03-13",
		"2025-03-14", // Fri, today+7
	}, got)
}

func TestDates_HorizonIsInclusive(t *testing.T) {
	// Monday 2025-03-10; +1 is Tuesday.
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2025-03-11"}, Dates(today, 1))
}

func TestDates_ThirtyDayHorizon(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	got := Dates(today, 30)

	// 30 days from a Monday cover four full weeks plus Tue/Wed.
	assert.Len(t, got, 22)
	assert.Equal(t, "2025-03-11", got[0])
	assert.Equal(t, "2025-04-09", got[len(got)-1])
	for _, d := range got {
		parsed, err := time.Parse(DateLayout, d)
		assert.NoError(t, err)
		assert.NotEqual(t, time.Saturday, parsed.Weekday())
		assert.NotEqual(t, time.Sunday, parsed.Weekday())
	}
}

func TestDates_NonPositiveHorizon(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, Dates(today, 0))
	assert.Empty(t, Dates(today, -3))
}

func TestDates_KeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// Still Saturday 2025-03-08 locally even though it is Friday in UTC.
	today := time.Date(2025, 3, 8, 1, 0, 0, 0, loc)

	got := Dates(today, 2)

	assert.Equal(t, []string{"2025-03-10"}, got)
}

func TestGenerator(t *testing.T) {
	gen := NewGenerator(fixedClock(time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)), 3)

	assert.Equal(t, []string{"2025-03-10"}, gen.AvailableDates())
	assert.Equal(t, "2025-03-07", gen.Today())
	assert.True(t, gen.IsBookable("2025-03-10"))
	assert.False(t, gen.IsBookable("2025-03-08"))
	assert.False(t, gen.IsBookable("2025-03-07"))
}

func TestNewGenerator_Defaults(t *testing.T) {
	gen := NewGenerator(fixedClock(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)), 0)

	assert.Len(t, gen.AvailableDates(), 22)
}
