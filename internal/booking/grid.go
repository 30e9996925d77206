package booking

import (
	"mediconnect/backend/internal/calendar"
)

// Calendar view helpers, computed on demand against the cursor. They
// never mutate the draft.

func (w *Wizard) Cursor() calendar.Cursor {
	return w.cursor
}

// PrevMonth moves the displayed month back, wrapping across year
// boundaries. Navigation is unbounded; selection stays guarded.
func (w *Wizard) PrevMonth() {
	w.cursor = w.cursor.Prev()
}

func (w *Wizard) NextMonth() {
	w.cursor = w.cursor.Next()
}

// DaysInView is the number of day cells in the displayed month.
func (w *Wizard) DaysInView() int {
	return calendar.DaysInMonth(w.cursor.Year, w.cursor.Month)
}

// LeadingBlanks is the count of empty cells padding the first week row.
func (w *Wizard) LeadingBlanks() int {
	return calendar.FirstWeekdayOffset(w.cursor.Year, w.cursor.Month)
}

// IsPastDay reports whether the given day of the displayed month is
// strictly before today; such days are rendered disabled.
func (w *Wizard) IsPastDay(day int) bool {
	return calendar.IsPast(w.cursor.Date(day), calendar.DateOf(w.now()))
}

func (w *Wizard) IsToday(day int) bool {
	return calendar.SameDay(w.cursor.Date(day), calendar.DateOf(w.now()))
}

func (w *Wizard) IsSelectedDay(day int) bool {
	if w.date.IsZero() {
		return false
	}
	return calendar.SameDay(w.cursor.Date(day), w.date)
}

// Slots returns the bookable time labels, identical for every doctor.
func (w *Wizard) Slots() []string {
	return calendar.Slots()
}
