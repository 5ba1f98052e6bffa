package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Handlers exposes the payment endpoints
type Handlers struct {
	service       *Service
	logger        *logger.Logger
	webhookSecret string
}

// NewHandlers creates the payment HTTP handlers
func NewHandlers(service *Service, webhookSecret string, log *logger.Logger) *Handlers {
	return &Handlers{
		service:       service,
		logger:        log,
		webhookSecret: webhookSecret,
	}
}

// RegisterRoutes configures the payment routes
func (h *Handlers) RegisterRoutes(api *mux.Router, mw *auth.Middleware) {
	api.HandleFunc("/payment/process", h.processOnlineHandler).Methods("POST")
	api.HandleFunc("/payment/cash", h.processCashHandler).Methods("POST")
	api.HandleFunc("/payment/details/{appointmentId}", h.detailsHandler).Methods("GET")
	api.HandleFunc("/payment/checkout-session", h.checkoutSessionHandler).Methods("POST")
	api.HandleFunc("/payment/webhook", h.webhookHandler).Methods("POST")

	admin := mw.RequireRole(types.RoleAdmin)
	api.Handle("/payment/refund", admin(http.HandlerFunc(h.refundHandler))).Methods("POST")
}

// paymentRequest is the body shared by the payment initiation endpoints
type paymentRequest struct {
	AppointmentID string `json:"appointmentId"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// processOnlineHandler runs a simulated online payment
func (h *Handlers) processOnlineHandler(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppointmentID == "" {
		response.WriteError(w, h.logger, types.NewValidationError("Appointment id is required!"))
		return
	}

	apt, err := h.service.ProcessOnlinePayment(req.AppointmentID, req.PaymentMethod)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message":       "Payment processed successfully!",
		"transactionId": apt.TransactionID,
		"appointment":   apt,
	})
}

// processCashHandler records a cash payment
func (h *Handlers) processCashHandler(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppointmentID == "" {
		response.WriteError(w, h.logger, types.NewValidationError("Appointment id is required!"))
		return
	}

	apt, err := h.service.ProcessCashPayment(req.AppointmentID)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message": fmt.Sprintf(
			"Appointment booked successfully! Please pay $%.0f at the hospital.", apt.Amount),
		"transactionId": apt.TransactionID,
		"appointment":   apt,
	})
}

// detailsHandler returns the read-only payment projection
func (h *Handlers) detailsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	details, err := h.service.GetPaymentDetails(vars["appointmentId"])
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"payment": details,
	})
}

// refundHandler refunds a paid appointment (admin only)
func (h *Handlers) refundHandler(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppointmentID == "" {
		response.WriteError(w, h.logger, types.NewValidationError("Appointment id is required!"))
		return
	}

	if err := h.service.Refund(req.AppointmentID); err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"message": "Payment refunded successfully",
	})
}

// checkoutSessionHandler opens a hosted checkout session
func (h *Handlers) checkoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppointmentID == "" {
		response.WriteError(w, h.logger, types.NewValidationError("Appointment id is required!"))
		return
	}

	sessionID, err := h.service.CreateCheckoutSession(req.AppointmentID)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"sessionId": sessionID,
	})
}

// webhookHandler is the provider's entry point into the payment state
// machine. The signature is verified over the raw body before anything is
// decoded.
func (h *Handlers) webhookHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid request body!"))
		return
	}

	if !VerifySignature(body, r.Header.Get(SignatureHeader), h.webhookSecret) {
		h.logger.Warn("Webhook signature verification failed")
		response.WriteError(w, h.logger, types.NewValidationError("Invalid webhook signature!"))
		return
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.WriteError(w, h.logger, types.NewValidationError("Invalid webhook payload!"))
		return
	}

	if event.Type != EventCheckoutCompleted {
		h.logger.WithField("event_type", event.Type).Debug("Ignoring webhook event")
		response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
			"received": true,
		})
		return
	}

	apt, err := h.service.CompleteCheckoutSession(event.Data.SessionID)
	if err != nil {
		response.WriteError(w, h.logger, err)
		return
	}

	response.WriteJSON(w, h.logger, http.StatusOK, response.Envelope{
		"received":    true,
		"appointment": apt,
	})
}
