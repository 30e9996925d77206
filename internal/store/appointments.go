// Package store owns the portal's shared mutable state: the appointment
// collection and the session user. Views receive a *Store by injection
// and observe changes through Subscribe; nothing here is ambient.
package store

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"mediconnect/backend/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	appointments []domain.Appointment
	user         *domain.SessionUser
	slot         SessionSlot
	log          *slog.Logger

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// New builds a store and restores the session user from slot. Malformed
// or unreadable slot content means "logged out": the slot is cleared and
// no error escapes.
func New(slot SessionSlot, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		slot:        slot,
		log:         log.With(slog.String("component", "store")),
		subscribers: make(map[int]func()),
	}
	s.user = restoreSession(slot, s.log)
	return s
}

// Add appends an appointment in insertion order. A missing doctor id,
// date, or time is rejected with *ValidationError. An empty id is
// replaced with a freshly generated one; an empty status defaults to
// upcoming.
func (s *Store) Add(appt domain.Appointment) (domain.Appointment, error) {
	if strings.TrimSpace(appt.DoctorID) == "" {
		return domain.Appointment{}, validationError("doctor_id is required")
	}
	if strings.TrimSpace(appt.Date) == "" {
		return domain.Appointment{}, validationError("date is required")
	}
	if strings.TrimSpace(appt.Time) == "" {
		return domain.Appointment{}, validationError("time is required")
	}

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.Status == "" {
		appt.Status = domain.AppointmentStatusUpcoming
	}

	s.mu.Lock()
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()

	s.log.Info(
		"appointment added",
		slog.String("appointment_id", appt.ID),
		slog.String("doctor_id", appt.DoctorID),
		slog.String("date", appt.Date),
		slog.String("time", appt.Time),
	)
	s.notify()
	return appt, nil
}

// CancelByID removes the matching record outright; there is no soft
// delete. A missing id is a benign no-op. The removed flag is for
// logging and tests, never an error signal.
func (s *Store) CancelByID(id string) bool {
	s.mu.Lock()
	removed := false
	kept := s.appointments[:0]
	for _, appt := range s.appointments {
		if appt.ID == id {
			removed = true
			continue
		}
		kept = append(kept, appt)
	}
	s.appointments = kept
	s.mu.Unlock()

	if removed {
		s.log.Info("appointment cancelled", slog.String("appointment_id", id))
		s.notify()
	}
	return removed
}

// List returns every appointment in insertion order.
func (s *Store) List() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// ListByStatus filters by status, preserving insertion order.
func (s *Store) ListByStatus(status domain.AppointmentStatus) []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Appointment, 0, len(s.appointments))
	for _, appt := range s.appointments {
		if appt.Status == status {
			out = append(out, appt)
		}
	}
	return out
}

// CurrentUser returns the session user; ok is false when logged out.
func (s *Store) CurrentUser() (domain.SessionUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.SessionUser{}, false
	}
	return *s.user, true
}

// Login sets the session user and persists it to the durable slot. A
// persist failure is logged and otherwise ignored: the identity is a
// greeting, not a credential.
func (s *Store) Login(name string) {
	user := domain.SessionUser{Name: name, IsLoggedIn: true}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := persistSession(s.slot, user); err != nil {
		s.log.Warn("session persist failed", slog.Any("err", err))
	}
	s.log.Info("user logged in", slog.String("name", name))
	s.notify()
}

// Logout clears the session user and the durable slot.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if s.slot != nil {
		if err := s.slot.Clear(); err != nil {
			s.log.Warn("session clear failed", slog.Any("err", err))
		}
	}
	s.log.Info("user logged out")
	s.notify()
}

// Subscribe registers fn to run after every mutation. The returned
// function unsubscribes. Callbacks run synchronously on the mutating
// goroutine, outside the store lock.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
