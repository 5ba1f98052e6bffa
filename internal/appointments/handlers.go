package appointments

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Handlers exposes the appointment endpoints
type Handlers struct {
	service *Service
	logger  *logger.Logger
}

// NewHandlers creates the appointment HTTP handlers
func NewHandlers(service *Service, log *logger.Logger) *Handlers {
	return &Handlers{service: service, logger: log}
}

// RegisterRoutes configures the appointment routes
func (h *Handlers) RegisterRoutes(api *mux.Router, mw *auth.Middleware) {
	api.HandleFunc("/appointment/post", h.createHandler).Methods("POST")

	admin := mw.RequireRole(types.RoleAdmin)
	api.Handle("/appointment/getall", admin(http.HandlerFunc(h.listHandler))).Methods("GET")
	api.Handle("/appointment/update/{id}", admin(http.HandlerFunc(h.updateHandler))).Methods("PUT")
	api.Handle("/appointment/delete/{id}", admin(http.HandlerFunc(h.deleteHandler))).Methods("DELETE")

	api.Handle("/appointment/patient/{patientId}",
		mw.RequireAuth(http.HandlerFunc(h.listByPatientHandler))).Methods("GET")
}

// createHandler handles appointment booking
func (h *Handlers) createHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Please fill the full form!"))
		return
	}

	apt, err := h.service.Create(&req)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusCreated, response.Envelope{
		"message":     "Appointment created successfully!",
		"appointment": apt,
	})
}

// listHandler lists all appointments (admin only)
func (h *Handlers) listHandler(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.List()
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"appointments": appointments,
	})
}

// listByPatientHandler lists a patient's own appointments
func (h *Handlers) listByPatientHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointments, err := h.service.ListByPatient(vars["patientId"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"appointments": appointments,
	})
}

// updateHandler applies a partial administrative update (admin only)
func (h *Handlers) updateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var updates types.AppointmentUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	apt, err := h.service.UpdateStatus(vars["id"], &updates)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message":     "Appointment status updated!",
		"appointment": apt,
	})
}

// deleteHandler removes an appointment (admin only)
func (h *Handlers) deleteHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.Delete(vars["id"]); err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message": "Appointment deleted successfully!",
	})
}
