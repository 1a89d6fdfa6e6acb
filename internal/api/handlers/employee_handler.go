package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arvelin/staffdesk-be/internal/auth"
	"github.com/arvelin/staffdesk-be/internal/services"
	"github.com/arvelin/staffdesk-be/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// EmployeeHandler handles HTTP requests for owner-scoped employee records.
type EmployeeHandler struct {
	employees services.EmployeeServiceProvider
	events    services.EventServiceProvider
	hub       *websocket.Hub
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employees services.EmployeeServiceProvider, events services.EventServiceProvider, hub *websocket.Hub) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, events: events, hub: hub}
}

// Create handles the request to create a new employee record.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input services.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.FullName == "" || input.Username == "" || input.Email == "" ||
		input.Phone == "" || input.Department == "" || input.Address == "" {
		log.Warn().Int64("user_id", claims.UserID).Msg("Missing required fields in employee payload")
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := h.employees.CreateEmployee(input, claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to insert employee")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	msg := fmt.Sprintf("Employee record %q created", input.FullName)
	if event, err := h.events.CreateEvent("employee.create", "info", msg, &claims.UserID); err != nil {
		log.Error().Err(err).Msg("Failed to record event")
	} else {
		h.hub.PublishToUser(claims.UserID, websocket.NewEventMessage(event))
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// List handles the request to get all records owned by the caller, newest first.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	employees, err := h.employees.ListEmployeesByOwner(claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to list employees")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, employees)
}

// Get handles the request to get a single owned record by its ID.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	employee, err := h.employees.GetEmployeeByIDAndOwner(id, claims.UserID)
	if err != nil {
		if err == services.ErrNotFound {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		log.Error().Err(err).Int64("user_id", claims.UserID).Int64("employee_id", id).Msg("Failed to get employee")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, employee)
}
