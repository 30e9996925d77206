package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"mediconnect/backend/internal/dashboard"
	"mediconnect/backend/internal/directory"
	"mediconnect/backend/internal/domain"
	"mediconnect/backend/internal/store"
	"mediconnect/backend/internal/triage"
)

func newTestHandler() (*Handler, *store.Store, *echo.Echo) {
	st := store.New(nil, nil)
	dir := directory.New()
	h := NewHandler(
		dir,
		st,
		dashboard.New(st, dir, nil),
		triage.NewChecker(0, nil),
		triage.NewAssistant(0, nil),
		nil,
	)
	return h, st, echo.New()
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("error type = %T, want *echo.HTTPError", err)
	}
	return he.Code
}

func TestListDoctors(t *testing.T) {
	h, _, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var doctors []domain.Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &doctors); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doctors) != 4 || doctors[0].Name != "Dr. Sarah Wilson" {
		t.Fatalf("doctors = %d, first = %q", len(doctors), doctors[0].Name)
	}
}

func TestGetDoctorNotFound(t *testing.T) {
	h, _, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.GetDoctor(c)
	if status := httpStatus(t, err); status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestSessionLifecycle(t *testing.T) {
	h, _, e := newTestHandler()

	// Fresh session is the zero user.
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.GetSession(c); err != nil {
		t.Fatalf("GetSession error: %v", err)
	}
	var user domain.SessionUser
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.IsLoggedIn {
		t.Fatalf("fresh session reports logged in")
	}

	// Login.
	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, "/", `{"name":"John Doe"}`), rec)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.Name != "John Doe" || !user.IsLoggedIn {
		t.Fatalf("login response = %+v", user)
	}

	// Logout.
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", rec.Code)
	}
}

func TestLoginRequiresName(t *testing.T) {
	h, _, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"name":"  "}`), rec)

	err := h.Login(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestCreateAppointment(t *testing.T) {
	h, st, e := newTestHandler()
	body := `{"doctor_id":"1","patient_name":"John Doe","date":"2025-08-15","time":"10:00 AM"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", body), rec)

	if err := h.CreateAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var created domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.Status != domain.AppointmentStatusUpcoming {
		t.Fatalf("created = %+v", created)
	}
	if len(st.List()) != 1 {
		t.Fatalf("store count = %d, want 1", len(st.List()))
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	h, st, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"date":"2025-08-15","time":"10:00 AM"}`), rec)

	err := h.CreateAppointment(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if len(st.List()) != 0 {
		t.Fatalf("rejected create stored a record")
	}
}

func TestListAppointmentsByStatus(t *testing.T) {
	h, st, e := newTestHandler()
	st.Add(domain.Appointment{DoctorID: "1", Date: "2025-08-15", Time: "10:00 AM"})
	st.Add(domain.Appointment{DoctorID: "3", Date: "2025-08-18", Time: "2:30 PM", Status: domain.AppointmentStatusCompleted})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?status=upcoming", nil), rec)
	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []domain.Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].DoctorID != "1" {
		t.Fatalf("filtered list = %+v", got)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/?status=bogus", nil), rec)
	err := h.ListAppointments(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestDeleteAppointmentAlwaysNoContent(t *testing.T) {
	h, st, e := newTestHandler()
	created, _ := st.Add(domain.Appointment{DoctorID: "1", Date: "2025-08-15", Time: "10:00 AM"})

	for _, id := range []string{created.ID, "no-such-id"} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		if err := h.DeleteAppointment(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	}
	if len(st.List()) != 0 {
		t.Fatalf("store count = %d, want 0", len(st.List()))
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	h, st, e := newTestHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	err := h.GetDashboard(c)
	if status := httpStatus(t, err); status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}

	st.Login("John Doe")
	st.Add(domain.Appointment{DoctorID: "1", Date: "2025-08-15", Time: "10:00 AM"})

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.GetDashboard(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Upcoming) != 1 || resp.Upcoming[0].Doctor.Name != "Dr. Sarah Wilson" {
		t.Fatalf("upcoming = %+v", resp.Upcoming)
	}
}

func TestAssessSymptoms(t *testing.T) {
	h, _, e := newTestHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"symptoms":["Headache"]}`), rec)
	if err := h.AssessSymptoms(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.PossibleConditions[0].Name != "Tension Headache" {
		t.Fatalf("top condition = %q", result.PossibleConditions[0].Name)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, "/", `{"symptoms":[]}`), rec)
	err := h.AssessSymptoms(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestChatReturnsReply(t *testing.T) {
	h, _, e := newTestHandler()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/", `{"message":"I feel dizzy"}`), rec)
	if err := h.Chat(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply == "" {
		t.Fatalf("empty reply")
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, "/", `{"message":""}`), rec)
	err := h.Chat(c)
	if status := httpStatus(t, err); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestRouterServesRegisteredRoutes(t *testing.T) {
	h, _, _ := newTestHandler()
	e := NewRouter(h, nil, []string{"*"})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/doctors = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET /api/dashboard logged out = %d, want 401", rec.Code)
	}
}
