package directory

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Handlers exposes the directory endpoints
type Handlers struct {
	service *Service
	logger  *logger.Logger
}

// NewHandlers creates the directory HTTP handlers
func NewHandlers(service *Service, log *logger.Logger) *Handlers {
	return &Handlers{service: service, logger: log}
}

// RegisterRoutes configures the user routes
func (h *Handlers) RegisterRoutes(api *mux.Router, mw *auth.Middleware) {
	api.HandleFunc("/user/patient/register", h.registerPatientHandler).Methods("POST")
	api.HandleFunc("/user/login", h.loginHandler).Methods("POST")
	api.HandleFunc("/user/doctors", h.getDoctorsHandler).Methods("GET")

	admin := mw.RequireRole(types.RoleAdmin)
	api.Handle("/user/admin/addnew", admin(http.HandlerFunc(h.addAdminHandler))).Methods("POST")
	api.Handle("/user/doctor/addnew", admin(http.HandlerFunc(h.addDoctorHandler))).Methods("POST")

	api.Handle("/user/{id}", mw.RequireAuth(http.HandlerFunc(h.getUserHandler))).Methods("GET")
}

// registerPatientHandler handles patient self-registration
func (h *Handlers) registerPatientHandler(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	user, err := h.service.RegisterPatient(&req)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusCreated, response.Envelope{
		"message": "User registered successfully!",
		"user":    user,
	})
}

// loginHandler handles login for all portals
func (h *Handlers) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	user, token, err := h.service.Login(&req)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message": "User login successful!",
		"user":    user,
		"token":   token,
	})
}

// addAdminHandler handles admin account creation (admin only)
func (h *Handlers) addAdminHandler(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	admin, err := h.service.AddAdmin(&req)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusCreated, response.Envelope{
		"message": "New Admin registered successfully!",
		"admin":   admin,
	})
}

// addDoctorHandler handles doctor account creation (admin only)
func (h *Handlers) addDoctorHandler(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	doctor, err := h.service.AddDoctor(&req)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusCreated, response.Envelope{
		"message": "New Doctor registered successfully!",
		"doctor":  doctor,
	})
}

// getDoctorsHandler lists all doctors (public, used by the booking form)
func (h *Handlers) getDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.GetDoctors()
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"doctors": doctors,
	})
}

// getUserHandler retrieves a user's details
func (h *Handlers) getUserHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	user, err := h.service.GetUser(vars["id"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"user": user,
	})
}
