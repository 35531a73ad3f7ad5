package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestWorkedDaysFullPeriod(t *testing.T) {
	// Full 31-day month still counts 30 commercial days.
	got := WorkedDays(d(2026, time.January, 1), d(2026, time.January, 31), 30, d(2020, time.March, 15), nil)
	assert.Equal(t, 30, got)

	// Full February too.
	got = WorkedDays(d(2026, time.February, 1), d(2026, time.February, 28), 30, d(2020, time.March, 15), nil)
	assert.Equal(t, 30, got)

	// Full fortnight.
	got = WorkedDays(d(2026, time.April, 1), d(2026, time.April, 15), 15, d(2020, time.March, 15), nil)
	assert.Equal(t, 15, got)
}

func TestWorkedDaysHiredMidPeriod(t *testing.T) {
	// Hired on day 16 of a 30-day period: 15 days.
	got := WorkedDays(d(2026, time.April, 1), d(2026, time.April, 30), 30, d(2026, time.April, 16), nil)
	assert.Equal(t, 15, got)
}

func TestWorkedDaysTerminatedMidPeriod(t *testing.T) {
	term := d(2026, time.April, 10)
	got := WorkedDays(d(2026, time.April, 1), d(2026, time.April, 30), 30, d(2020, time.January, 1), &term)
	assert.Equal(t, 10, got)
}

func TestWorkedDaysNoOverlap(t *testing.T) {
	// Hired after the period ends.
	got := WorkedDays(d(2026, time.April, 1), d(2026, time.April, 30), 30, d(2026, time.May, 2), nil)
	assert.Equal(t, 0, got)

	// Terminated before the period starts.
	term := d(2026, time.March, 20)
	got = WorkedDays(d(2026, time.April, 1), d(2026, time.April, 30), 30, d(2020, time.January, 1), &term)
	assert.Equal(t, 0, got)
}

func TestSemesterWindow(t *testing.T) {
	start, end := SemesterWindow(d(2026, time.March, 10))
	assert.Equal(t, d(2026, time.January, 1), start)
	assert.Equal(t, d(2026, time.June, 30), end)

	start, end = SemesterWindow(d(2026, time.September, 1))
	assert.Equal(t, d(2026, time.July, 1), start)
	assert.Equal(t, d(2026, time.December, 31), end)
}

func TestDayOfMonthOrLast(t *testing.T) {
	assert.Equal(t, d(2026, time.February, 28), DayOfMonthOrLast(d(2026, time.February, 10), 30))
	assert.Equal(t, d(2026, time.April, 30), DayOfMonthOrLast(d(2026, time.April, 3), 30))
	assert.Equal(t, d(2026, time.April, 15), DayOfMonthOrLast(d(2026, time.April, 3), 15))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 360, DaysBetween(d(2025, time.January, 6), d(2026, time.January, 1)))
	assert.Equal(t, 0, DaysBetween(d(2026, time.January, 1), d(2026, time.January, 1)))
	assert.Equal(t, 0, DaysBetween(d(2026, time.January, 2), d(2026, time.January, 1)))
}
