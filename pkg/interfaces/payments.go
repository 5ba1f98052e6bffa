package interfaces

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// PaymentService defines the interface for the appointment payment
// lifecycle: pending -> paid/failed, paid -> refunded. Reaching paid
// confirms the appointment.
type PaymentService interface {
	ProcessOnlinePayment(appointmentID, method string) (*types.Appointment, error)
	ProcessCashPayment(appointmentID string) (*types.Appointment, error)
	GetPaymentDetails(appointmentID string) (*types.PaymentDetails, error)
	Refund(appointmentID string) error
	CreateCheckoutSession(appointmentID string) (string, error)
	CompleteCheckoutSession(sessionID string) (*types.Appointment, error)
}

// OutcomeDecider decides whether a simulated online authorization succeeds.
// Injected so tests can force deterministic outcomes.
type OutcomeDecider interface {
	Approve() bool
}
