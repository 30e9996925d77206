// Package directory is the read-only reference-data service: the fixed
// doctor roster plus the specialty and symptom vocabularies. Data is
// seeded at construction and never mutated, so every accessor returns a
// copy and there is no failure mode.
package directory

import "mediconnect/backend/internal/domain"

type Service struct {
	doctors     []domain.Doctor
	specialties []string
	symptoms    []string
}

func New() *Service {
	return &Service{
		doctors:     seedDoctors(),
		specialties: seedSpecialties(),
		symptoms:    seedSymptoms(),
	}
}

// ListDoctors returns the roster in its stable seeded order.
func (s *Service) ListDoctors() []domain.Doctor {
	out := make([]domain.Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// DoctorByID resolves a doctor id; ok is false for dangling references.
func (s *Service) DoctorByID(id string) (domain.Doctor, bool) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Doctor{}, false
}

func (s *Service) ListSpecialties() []string {
	out := make([]string, len(s.specialties))
	copy(out, s.specialties)
	return out
}

func (s *Service) ListCommonSymptoms() []string {
	out := make([]string, len(s.symptoms))
	copy(out, s.symptoms)
	return out
}
