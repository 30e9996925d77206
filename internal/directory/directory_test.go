package directory

import "testing"

func TestListDoctorsStableOrder(t *testing.T) {
	svc := New()

	docs := svc.ListDoctors()
	if len(docs) != 4 {
		t.Fatalf("len(docs) = %d, want 4", len(docs))
	}

	wantIDs := []string{"1", "2", "3", "4"}
	for i, want := range wantIDs {
		if docs[i].ID != want {
			t.Fatalf("docs[%d].ID = %q, want %q", i, docs[i].ID, want)
		}
	}

	// Returned slice is a copy.
	docs[0].Name = "mutated"
	if fresh := svc.ListDoctors(); fresh[0].Name != "Dr. Sarah Wilson" {
		t.Fatalf("ListDoctors shares backing array with callers")
	}
}

func TestDoctorByID(t *testing.T) {
	svc := New()

	doc, ok := svc.DoctorByID("2")
	if !ok {
		t.Fatalf("DoctorByID(2) ok = false, want true")
	}
	if doc.Specialty != "Dermatology" {
		t.Fatalf("specialty = %q, want %q", doc.Specialty, "Dermatology")
	}

	if _, ok := svc.DoctorByID("999"); ok {
		t.Fatalf("DoctorByID(999) ok = true, want false")
	}
}

func TestVocabularies(t *testing.T) {
	svc := New()

	symptoms := svc.ListCommonSymptoms()
	if len(symptoms) != 15 {
		t.Fatalf("len(symptoms) = %d, want 15", len(symptoms))
	}
	if symptoms[0] != "Headache" || symptoms[14] != "Vomiting" {
		t.Fatalf("symptom order unexpected: first %q, last %q", symptoms[0], symptoms[14])
	}

	specialties := svc.ListSpecialties()
	if len(specialties) != 14 {
		t.Fatalf("len(specialties) = %d, want 14", len(specialties))
	}
}
