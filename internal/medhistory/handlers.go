package medhistory

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Handlers exposes the medical history endpoints
type Handlers struct {
	service *Service
	logger  *logger.Logger
}

// NewHandlers creates the medical history HTTP handlers
func NewHandlers(service *Service, log *logger.Logger) *Handlers {
	return &Handlers{service: service, logger: log}
}

// RegisterRoutes configures the medical history routes. Writes are limited
// to doctors and admins; reads require any authenticated user.
func (h *Handlers) RegisterRoutes(api *mux.Router, mw *auth.Middleware) {
	authed := mw.RequireAuth

	api.Handle("/medical-history/create",
		authed(http.HandlerFunc(h.createHandler))).Methods("POST")
	api.Handle("/medical-history/patient/{patientEmail}",
		authed(http.HandlerFunc(h.listByPatientHandler))).Methods("GET")
	api.Handle("/medical-history/doctor/{doctorEmail}",
		authed(http.HandlerFunc(h.listByDoctorHandler))).Methods("GET")
	api.Handle("/medical-history/record/{id}",
		authed(http.HandlerFunc(h.getHandler))).Methods("GET")
	api.Handle("/medical-history/update/{id}",
		authed(http.HandlerFunc(h.updateHandler))).Methods("PUT")
	api.Handle("/medical-history/summary/{patientEmail}",
		authed(http.HandlerFunc(h.summaryHandler))).Methods("GET")

	admin := mw.RequireRole(types.RoleAdmin)
	api.Handle("/medical-history/delete/{id}",
		admin(http.HandlerFunc(h.deleteHandler))).Methods("DELETE")
}

// createHandler records a clinical encounter
func (h *Handlers) createHandler(w http.ResponseWriter, r *http.Request) {
	var req types.CreateMedicalHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Please fill all required fields!"))
		return
	}

	record, err := h.service.Create(&req)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusCreated, response.Envelope{
		"message":        "Medical history created successfully!",
		"medicalHistory": record,
	})
}

// listByPatientHandler lists a patient's records, newest visit first
func (h *Handlers) listByPatientHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	records, err := h.service.ListByPatient(vars["patientEmail"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"medicalHistory": records,
	})
}

// listByDoctorHandler lists the records a doctor has authored
func (h *Handlers) listByDoctorHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	records, err := h.service.ListByDoctor(vars["doctorEmail"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"medicalHistory": records,
	})
}

// getHandler retrieves a single record
func (h *Handlers) getHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	record, err := h.service.Get(vars["id"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"medicalHistory": record,
	})
}

// updateHandler applies a partial update to a record
func (h *Handlers) updateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var updates types.MedicalHistoryUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	record, err := h.service.Update(vars["id"], &updates)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message":        "Medical history updated successfully!",
		"medicalHistory": record,
	})
}

// deleteHandler removes a record (admin only)
func (h *Handlers) deleteHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.service.Delete(vars["id"]); err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message": "Medical history deleted successfully!",
	})
}

// summaryHandler returns the derived patient summary
func (h *Handlers) summaryHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	summary, err := h.service.Summarize(vars["patientEmail"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"summary": summary,
	})
}
