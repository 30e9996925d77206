package calendar

import "time"

// Date is a civil calendar date with no time-of-day component. The zero
// value means "no date selected".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the canonical "2006-01-02" form used on stored
// appointments.
func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// DaysInMonth reports the number of days in the given month, following
// the Gregorian leap-year rule. Day zero of the following month
// normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset reports the weekday of the first day of the month,
// Sunday = 0. Week grids left-pad with this many empty cells.
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// IsPast reports whether d is strictly earlier than today, comparing
// calendar dates only.
func IsPast(d, today Date) bool {
	return d.Before(today)
}

// SameDay reports calendar-date equality; it backs both the "is today"
// and "is selected" highlight checks.
func SameDay(a, b Date) bool {
	return a == b
}
