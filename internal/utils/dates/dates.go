// Package dates holds the calendar arithmetic used by payroll proration.
// Colombian payroll runs on a 360-day commercial year: a full month counts
// 30 days and a full fortnight 15, regardless of calendar length.
package dates

import "time"

// DaysBetween returns the whole days from start to end (end exclusive, the
// convention the benefit formulas use).
func DaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// InclusiveDays returns the calendar day count of [start, end], both ends
// included.
func InclusiveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return DaysBetween(start, end) + 1
}

// WorkedDays clips an employment span to a payroll period and returns the
// days worked under the commercial convention: an employee covering the
// whole period gets the period's commercial length; partial overlaps count
// inclusive calendar days, capped at the commercial length.
func WorkedDays(periodStart, periodEnd time.Time, commercialDays int, hireDate time.Time, terminationDate *time.Time) int {
	effStart := periodStart
	if hireDate.After(effStart) {
		effStart = hireDate
	}
	effEnd := periodEnd
	if terminationDate != nil && terminationDate.Before(effEnd) {
		effEnd = *terminationDate
	}
	if effEnd.Before(effStart) {
		return 0
	}
	if effStart.Equal(periodStart) && effEnd.Equal(periodEnd) {
		return commercialDays
	}
	days := InclusiveDays(effStart, effEnd)
	if days > commercialDays {
		days = commercialDays
	}
	return days
}

// SemesterWindow returns the service-bonus accrual window containing the
// given date: Jan 1–Jun 30 for the first semester, Jul 1–Dec 31 for the
// second.
func SemesterWindow(at time.Time) (time.Time, time.Time) {
	year := at.Year()
	if at.Month() <= time.June {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// ClipToWindow bounds [start, end] to [windowStart, windowEnd].
func ClipToWindow(start, end, windowStart, windowEnd time.Time) (time.Time, time.Time) {
	if windowStart.After(start) {
		start = windowStart
	}
	if windowEnd.Before(end) {
		end = windowEnd
	}
	return start, end
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DayOfMonthOrLast returns the given day within t's month, clamped to the
// month's last day (a pay day of 30 lands on Feb 28/29).
func DayOfMonthOrLast(t time.Time, day int) time.Time {
	_, last := MonthBounds(t)
	if day > last.Day() {
		day = last.Day()
	}
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, time.UTC)
}
