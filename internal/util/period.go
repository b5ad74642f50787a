package util

import "time"

// IsHistoricalMonth returns true if the given year/month is strictly before
// the month of now. The reference time is an explicit parameter so callers
// stay deterministic under test.
func IsHistoricalMonth(year, month int, now time.Time) bool {
	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return true
	}
	if year == currentYear && month < currentMonth {
		return true
	}
	return false
}

// MonthInterval returns the closed date interval covering the whole month:
// [first day 00:00:00, last day 23:59:59.999999999].
func MonthInterval(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// BeforeDay reports whether t falls on a calendar day strictly before the day
// of ref, ignoring time of day.
func BeforeDay(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	if ty != ry {
		return ty < ry
	}
	if tm != rm {
		return tm < rm
	}
	return td < rd
}
