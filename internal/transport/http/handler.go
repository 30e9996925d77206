// Package http exposes the portal core over a JSON API. Handlers stay
// thin: bind, call the component, map errors to statuses.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mediconnect/backend/internal/dashboard"
	"mediconnect/backend/internal/directory"
	"mediconnect/backend/internal/domain"
	"mediconnect/backend/internal/store"
	"mediconnect/backend/internal/triage"
)

type Handler struct {
	directory *directory.Service
	store     *store.Store
	dashboard *dashboard.Reader
	checker   *triage.Checker
	assistant *triage.Assistant
	log       *slog.Logger
}

func NewHandler(
	dir *directory.Service,
	st *store.Store,
	dash *dashboard.Reader,
	checker *triage.Checker,
	assistant *triage.Assistant,
	log *slog.Logger,
) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		directory: dir,
		store:     st,
		dashboard: dash,
		checker:   checker,
		assistant: assistant,
		log:       log.With(slog.String("component", "http")),
	}
}

func (h *Handler) Register(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.GET("/specialties", h.ListSpecialties)
	api.GET("/symptoms", h.ListSymptoms)

	api.GET("/session", h.GetSession)
	api.POST("/session/login", h.Login)
	api.POST("/session/logout", h.Logout)

	api.GET("/appointments", h.ListAppointments)
	api.POST("/appointments", h.CreateAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)

	api.GET("/dashboard", h.GetDashboard)

	api.POST("/triage/assess", h.AssessSymptoms)
	api.POST("/assistant/chat", h.Chat)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.ListDoctors())
}

func (h *Handler) GetDoctor(c echo.Context) error {
	doc, ok := h.directory.DoctorByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) ListSpecialties(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.ListSpecialties())
}

func (h *Handler) ListSymptoms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.directory.ListCommonSymptoms())
}

// GetSession always succeeds; a logged-out session is the zero user,
// not an error.
func (h *Handler) GetSession(c echo.Context) error {
	user, _ := h.store.CurrentUser()
	return c.JSON(http.StatusOK, user)
}

type loginRequest struct {
	Name string `json:"name"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	h.store.Login(req.Name)
	user, _ := h.store.CurrentUser()
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) Logout(c echo.Context) error {
	h.store.Logout()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.AppointmentStatus(raw)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		return c.JSON(http.StatusOK, h.store.ListByStatus(status))
	}
	return c.JSON(http.StatusOK, h.store.List())
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var appt domain.Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.store.Add(appt)
	if err != nil {
		var vErr *store.ValidationError
		if errors.As(err, &vErr) {
			return echo.NewHTTPError(http.StatusBadRequest, vErr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteAppointment removes the record. An unknown id is a benign
// no-op, so the response is 204 either way.
func (h *Handler) DeleteAppointment(c echo.Context) error {
	h.store.CancelByID(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

type dashboardResponse struct {
	Upcoming  []dashboard.Entry `json:"upcoming"`
	Completed []dashboard.Entry `json:"completed"`
}

func (h *Handler) GetDashboard(c echo.Context) error {
	if _, ok := h.store.CurrentUser(); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Upcoming:  h.dashboard.Upcoming(),
		Completed: h.dashboard.Completed(),
	})
}

func (h *Handler) AssessSymptoms(c echo.Context) error {
	var in triage.Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(in.Symptoms) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "symptoms are required")
	}

	result, err := h.checker.Assess(c.Request().Context(), in)
	if err != nil {
		// The client went away before the assessment finished.
		return err
	}
	return c.JSON(http.StatusOK, result)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	reply, err := h.assistant.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
