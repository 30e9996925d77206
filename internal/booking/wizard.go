// Package booking drives the multi-step appointment flow: pick a
// doctor, pick a date and time, review, confirm. The wizard owns only
// draft state; the single committed write happens at Confirm, against
// the injected store.
package booking

import (
	"time"

	"mediconnect/backend/internal/calendar"
	"mediconnect/backend/internal/domain"
)

type Step int

const (
	StepSelectDoctor Step = iota + 1
	StepSelectDateTime
	StepReview
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepSelectDoctor:
		return "select_doctor"
	case StepSelectDateTime:
		return "select_datetime"
	case StepReview:
		return "review"
	case StepConfirmed:
		return "confirmed"
	}
	return "unknown"
}

type appointmentStore interface {
	Add(appt domain.Appointment) (domain.Appointment, error)
	CurrentUser() (domain.SessionUser, bool)
}

// Wizard is the booking flow's draft state machine. Transitions are
// linear and guarded; going back never discards selections. A Wizard is
// not safe for concurrent use: it models a single user's in-progress
// booking.
type Wizard struct {
	store appointmentStore
	now   func() time.Time

	suggested *domain.Doctor
	doctor    *domain.Doctor
	date      calendar.Date
	slot      string
	notes     string
	step      Step
	confirmed bool
	cursor    calendar.Cursor
}

// New builds a wizard at SelectDoctor with the calendar cursor on the
// current month. now may be nil, defaulting to time.Now.
func New(store appointmentStore, now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}
	return &Wizard{
		store:  store,
		now:    now,
		step:   StepSelectDoctor,
		cursor: calendar.CursorOf(now()),
	}
}

// Step reports the current state; Confirmed once the booking committed.
func (w *Wizard) Step() Step {
	if w.confirmed {
		return StepConfirmed
	}
	return w.step
}

// Seed records a doctor handed in from the directory view. It is a
// suggestion only: the draft doctor stays unset and the step does not
// advance until the user performs the selection gesture.
func (w *Wizard) Seed(doc domain.Doctor) {
	d := doc
	w.suggested = &d
}

// Suggested returns the handed-in doctor, if any.
func (w *Wizard) Suggested() (domain.Doctor, bool) {
	if w.suggested == nil {
		return domain.Doctor{}, false
	}
	return *w.suggested, true
}

// SelectDoctor is the selection gesture. It sets the draft doctor
// without advancing; allowed until the booking is committed.
func (w *Wizard) SelectDoctor(doc domain.Doctor) {
	if w.confirmed {
		return
	}
	d := doc
	w.doctor = &d
}

// ClearDoctor returns the draft doctor to unset without changing the
// step. The SelectDoctor guard then blocks any further forward
// transition until a doctor is chosen again.
func (w *Wizard) ClearDoctor() {
	if w.confirmed {
		return
	}
	w.doctor = nil
}

func (w *Wizard) Doctor() (domain.Doctor, bool) {
	if w.doctor == nil {
		return domain.Doctor{}, false
	}
	return *w.doctor, true
}

// SelectDay picks a day in the displayed month. Past days and days
// outside the month are rejected, leaving any prior selection intact.
func (w *Wizard) SelectDay(day int) bool {
	if w.confirmed {
		return false
	}
	if day < 1 || day > calendar.DaysInMonth(w.cursor.Year, w.cursor.Month) {
		return false
	}
	d := w.cursor.Date(day)
	if calendar.IsPast(d, calendar.DateOf(w.now())) {
		return false
	}
	w.date = d
	return true
}

func (w *Wizard) SelectedDate() (calendar.Date, bool) {
	if w.date.IsZero() {
		return calendar.Date{}, false
	}
	return w.date, true
}

// SelectSlot picks a time label from the fixed vocabulary. A slot needs
// a selected date first.
func (w *Wizard) SelectSlot(label string) bool {
	if w.confirmed || w.date.IsZero() {
		return false
	}
	if !calendar.ValidSlot(label) {
		return false
	}
	w.slot = label
	return true
}

func (w *Wizard) Slot() string {
	return w.slot
}

func (w *Wizard) SetNotes(notes string) {
	if w.confirmed {
		return
	}
	w.notes = notes
}

func (w *Wizard) Notes() string {
	return w.notes
}

// CanAdvance reports whether the guard for the next forward transition
// is satisfied; the UI disables the advance action when it is not.
func (w *Wizard) CanAdvance() bool {
	switch w.Step() {
	case StepSelectDoctor:
		return w.doctor != nil
	case StepSelectDateTime:
		return w.doctor != nil && !w.date.IsZero() && w.slot != ""
	case StepReview:
		_, ok := w.store.CurrentUser()
		return ok
	}
	return false
}

// Next advances one step when its guard holds; otherwise the state is
// unchanged. Review advances only through Confirm.
func (w *Wizard) Next() bool {
	if w.confirmed {
		return false
	}
	switch w.step {
	case StepSelectDoctor:
		if w.doctor == nil {
			return false
		}
		w.step = StepSelectDateTime
		return true
	case StepSelectDateTime:
		if w.doctor == nil || w.date.IsZero() || w.slot == "" {
			return false
		}
		w.step = StepReview
		return true
	}
	return false
}

// Back steps backward, preserving every selection. Confirmed has no
// backward exit; the only way out is Reset.
func (w *Wizard) Back() bool {
	if w.confirmed || w.step <= StepSelectDoctor {
		return false
	}
	w.step--
	return true
}

// Confirm commits the draft: exactly one upcoming appointment is
// written to the store, with a fresh id and the date in canonical form.
// Without a logged-in session user it is a no-op and the draft is kept.
func (w *Wizard) Confirm() (domain.Appointment, bool) {
	if w.confirmed || w.step != StepReview {
		return domain.Appointment{}, false
	}
	if w.doctor == nil || w.date.IsZero() || w.slot == "" {
		return domain.Appointment{}, false
	}
	user, ok := w.store.CurrentUser()
	if !ok {
		return domain.Appointment{}, false
	}

	appt, err := w.store.Add(domain.Appointment{
		DoctorID:    w.doctor.ID,
		PatientName: user.Name,
		Date:        w.date.String(),
		Time:        w.slot,
		Status:      domain.AppointmentStatusUpcoming,
		Notes:       w.notes,
	})
	if err != nil {
		return domain.Appointment{}, false
	}

	w.confirmed = true
	return appt, true
}

// Reset discards the entire draft and returns to SelectDoctor. The
// calendar cursor keeps its position; it is navigation, not selection.
func (w *Wizard) Reset() {
	w.suggested = nil
	w.doctor = nil
	w.date = calendar.Date{}
	w.slot = ""
	w.notes = ""
	w.step = StepSelectDoctor
	w.confirmed = false
}
