package domain

type AppointmentStatus string

const (
	AppointmentStatusUpcoming  AppointmentStatus = "upcoming"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusUpcoming, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a booked visit. Date is a civil calendar date in
// "2006-01-02" form with no time-of-day component; Time is a label from
// the clinic slot vocabulary (e.g. "10:00 AM"). DoctorID is a back-
// reference by id, not checked against the directory: read paths must
// skip records whose doctor no longer resolves.
type Appointment struct {
	ID          string            `json:"id"`
	DoctorID    string            `json:"doctor_id"`
	PatientName string            `json:"patient_name"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Status      AppointmentStatus `json:"status"`
	Symptoms    []string          `json:"symptoms,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}
