package directory

import "mediconnect/backend/internal/domain"

func seedDoctors() []domain.Doctor {
	return []domain.Doctor{
		{
			ID:          "1",
			Name:        "Dr. Sarah Wilson",
			Specialty:   "Cardiology",
			Image:       "https://images.pexels.com/photos/5214958/pexels-photo-5214958.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:      4.9,
			ReviewCount: 124,
			Availability: domain.Availability{
				Days:  []string{"Monday", "Tuesday", "Thursday"},
				Hours: "9:00 AM - 5:00 PM",
			},
			Experience: 12,
			Bio:        "Dr. Wilson is a board-certified cardiologist with over 12 years of experience in treating various heart conditions. She specializes in preventive cardiology and heart failure management.",
		},
		{
			ID:          "2",
			Name:        "Dr. Michael Chen",
			Specialty:   "Dermatology",
			Image:       "https://images.pexels.com/photos/5327656/pexels-photo-5327656.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:      4.8,
			ReviewCount: 98,
			Availability: domain.Availability{
				Days:  []string{"Monday", "Wednesday", "Friday"},
				Hours: "10:00 AM - 6:00 PM",
			},
			Experience: 8,
			Bio:        "Dr. Chen is a renowned dermatologist who specializes in cosmetic dermatology and skin cancer treatment. He is known for his patient-centered approach and innovative treatments.",
		},
		{
			ID:          "3",
			Name:        "Dr. Jessica Patel",
			Specialty:   "Pediatrics",
			Image:       "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:      4.9,
			ReviewCount: 156,
			Availability: domain.Availability{
				Days:  []string{"Tuesday", "Thursday", "Saturday"},
				Hours: "8:00 AM - 4:00 PM",
			},
			Experience: 15,
			Bio:        "Dr. Patel is a compassionate pediatrician with 15 years of experience. She specializes in newborn care, childhood development, and adolescent medicine.",
		},
		{
			ID:          "4",
			Name:        "Dr. Robert Johnson",
			Specialty:   "Orthopedics",
			Image:       "https://images.pexels.com/photos/5452293/pexels-photo-5452293.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:      4.7,
			ReviewCount: 87,
			Availability: domain.Availability{
				Days:  []string{"Monday", "Wednesday", "Friday"},
				Hours: "9:00 AM - 5:00 PM",
			},
			Experience: 10,
			Bio:        "Dr. Johnson is an orthopedic surgeon specializing in sports medicine and joint replacement. He has worked with professional athletes and uses the latest minimally invasive techniques.",
		},
	}
}

func seedSymptoms() []string {
	return []string{
		"Headache",
		"Fever",
		"Cough",
		"Sore throat",
		"Fatigue",
		"Nausea",
		"Dizziness",
		"Chest pain",
		"Shortness of breath",
		"Back pain",
		"Joint pain",
		"Rash",
		"Abdominal pain",
		"Diarrhea",
		"Vomiting",
	}
}

func seedSpecialties() []string {
	return []string{
		"Cardiology",
		"Dermatology",
		"Endocrinology",
		"Gastroenterology",
		"Neurology",
		"Obstetrics & Gynecology",
		"Oncology",
		"Ophthalmology",
		"Orthopedics",
		"Pediatrics",
		"Psychiatry",
		"Pulmonology",
		"Rheumatology",
		"Urology",
	}
}

// SeedAppointments returns the demo bookings the portal ships with, in
// insertion order. Callers add them to a fresh store when demo seeding
// is enabled.
func SeedAppointments() []domain.Appointment {
	return []domain.Appointment{
		{
			DoctorID:    "1",
			PatientName: "John Doe",
			Date:        "2025-08-15",
			Time:        "10:00 AM",
			Status:      domain.AppointmentStatusUpcoming,
			Symptoms:    []string{"Chest pain", "Shortness of breath"},
			Notes:       "Follow-up appointment after medication adjustment",
		},
		{
			DoctorID:    "3",
			PatientName: "Emily Smith",
			Date:        "2025-08-18",
			Time:        "2:30 PM",
			Status:      domain.AppointmentStatusUpcoming,
			Symptoms:    []string{"Fever", "Cough"},
			Notes:       "Annual check-up",
		},
	}
}
