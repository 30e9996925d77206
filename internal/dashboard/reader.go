// Package dashboard reads the appointment store for the signed-in user:
// it partitions records into upcoming and completed, resolves each
// record's doctor, and mediates the two-step cancellation flow.
package dashboard

import (
	"log/slog"

	"mediconnect/backend/internal/domain"
)

type appointmentSource interface {
	ListByStatus(status domain.AppointmentStatus) []domain.Appointment
	CancelByID(id string) bool
	CurrentUser() (domain.SessionUser, bool)
}

type doctorSource interface {
	DoctorByID(id string) (domain.Doctor, bool)
}

// Entry pairs an appointment with its resolved doctor. Records whose
// doctor id does not resolve never appear in an Entry.
type Entry struct {
	Appointment domain.Appointment `json:"appointment"`
	Doctor      domain.Doctor      `json:"doctor"`
}

// Reader is a read-side view over the store. Cancellation goes through
// RequestCancel then ConfirmCancel; a lone RequestCancel changes
// nothing in the store.
type Reader struct {
	store   appointmentSource
	doctors doctorSource
	log     *slog.Logger

	pendingCancel string
}

func New(store appointmentSource, doctors doctorSource, log *slog.Logger) *Reader {
	if log == nil {
		log = slog.Default()
	}
	return &Reader{
		store:   store,
		doctors: doctors,
		log:     log.With(slog.String("component", "dashboard")),
	}
}

// Upcoming returns the user's upcoming appointments in insertion order.
// Logged out, it returns nil. A record whose doctor id no longer
// resolves is skipped, not reported.
func (r *Reader) Upcoming() []Entry {
	return r.entries(domain.AppointmentStatusUpcoming)
}

// Completed returns the user's completed appointments in insertion
// order, with the same logged-out and dangling-doctor behavior as
// Upcoming.
func (r *Reader) Completed() []Entry {
	return r.entries(domain.AppointmentStatusCompleted)
}

func (r *Reader) entries(status domain.AppointmentStatus) []Entry {
	if _, ok := r.store.CurrentUser(); !ok {
		return nil
	}

	var out []Entry
	for _, appt := range r.store.ListByStatus(status) {
		doc, ok := r.doctors.DoctorByID(appt.DoctorID)
		if !ok {
			r.log.Warn(
				"skipping appointment with unknown doctor",
				slog.String("appointment_id", appt.ID),
				slog.String("doctor_id", appt.DoctorID),
			)
			continue
		}
		out = append(out, Entry{Appointment: appt, Doctor: doc})
	}
	return out
}

// RequestCancel marks id as awaiting confirmation. Nothing is removed
// until ConfirmCancel; a second request replaces the first.
func (r *Reader) RequestCancel(id string) {
	r.pendingCancel = id
}

// PendingCancel returns the id awaiting confirmation, if any.
func (r *Reader) PendingCancel() (string, bool) {
	if r.pendingCancel == "" {
		return "", false
	}
	return r.pendingCancel, true
}

// ConfirmCancel carries out the pending cancellation. With nothing
// pending it is a no-op. An id that no longer exists clears the pending
// mark and reports false.
func (r *Reader) ConfirmCancel() bool {
	if r.pendingCancel == "" {
		return false
	}
	id := r.pendingCancel
	r.pendingCancel = ""
	return r.store.CancelByID(id)
}

// KeepAppointment declines the pending cancellation, leaving the record
// untouched.
func (r *Reader) KeepAppointment() {
	r.pendingCancel = ""
}
