package messages

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Handlers exposes the contact-form endpoints
type Handlers struct {
	service *Service
	logger  *logger.Logger
}

// NewHandlers creates the message HTTP handlers
func NewHandlers(service *Service, log *logger.Logger) *Handlers {
	return &Handlers{service: service, logger: log}
}

// RegisterRoutes configures the message routes
func (h *Handlers) RegisterRoutes(api *mux.Router, mw *auth.Middleware) {
	api.HandleFunc("/message/send", h.sendHandler).Methods("POST")

	admin := mw.RequireRole(types.RoleAdmin)
	api.Handle("/message/getall", admin(http.HandlerFunc(h.listHandler))).Methods("GET")
}

// sendHandler accepts a contact-form submission
func (h *Handlers) sendHandler(w http.ResponseWriter, r *http.Request) {
	var req types.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Please fill the full form!"))
		return
	}

	if _, err := h.service.Send(&req); err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusCreated, response.Envelope{
		"message": "Message sent successfully!",
	})
}

// listHandler lists all messages (admin only)
func (h *Handlers) listHandler(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.service.List()
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"messages": msgs,
	})
}
