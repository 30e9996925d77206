package calendar

import "time"

// Cursor is the displayed month of a calendar view. It is a navigation
// position, not a selection: moving it never changes a chosen date.
type Cursor struct {
	Year  int
	Month time.Month
}

func CursorOf(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Prev steps back one month, rolling from January into December of the
// previous year. There is no lower bound on navigable years.
func (c Cursor) Prev() Cursor {
	if c.Month == time.January {
		return Cursor{Year: c.Year - 1, Month: time.December}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

// Next steps forward one month, rolling from December into January of
// the next year.
func (c Cursor) Next() Cursor {
	if c.Month == time.December {
		return Cursor{Year: c.Year + 1, Month: time.January}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// Contains reports whether d falls inside the displayed month.
func (c Cursor) Contains(d Date) bool {
	return d.Year == c.Year && d.Month == c.Month
}

// Date pins a day number to the displayed month.
func (c Cursor) Date(day int) Date {
	return Date{Year: c.Year, Month: c.Month, Day: day}
}
