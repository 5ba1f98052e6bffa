// Package payments implements the appointment payment lifecycle:
//
//	pending -> paid (authorization approved, appointment confirmed)
//	pending -> failed (authorization declined; retry re-enters as pending)
//	paid    -> refunded (terminal)
//
// The engine mutates only the payment sub-state of appointments, through the
// shared appointment repository. There is no atomicity between reading and
// writing the payment status: two racing initiations resolve last-write-wins.
package payments

import (
	"time"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/interfaces"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/monitoring"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Service implements the PaymentService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.AppointmentRepository
	decider    interfaces.OutcomeDecider
}

// NewService creates a new payment service with the given outcome decider
func NewService(repo interfaces.AppointmentRepository, decider interfaces.OutcomeDecider, log *logger.Logger) *Service {
	return &Service{
		logger:     log,
		repository: repo,
		decider:    decider,
	}
}

// ProcessOnlinePayment runs a simulated online authorization for the
// appointment. A declined authorization leaves the appointment in failed;
// failed is not paid, so a fresh initiation may retry it.
func (s *Service) ProcessOnlinePayment(appointmentID, method string) (*types.Appointment, error) {
	if method == "" {
		method = types.PaymentMethodOnline
	}

	apt, err := s.repository.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, err
	}

	if apt.PaymentStatus == types.PaymentPaid {
		return nil, types.NewConflictError("Payment already completed for this appointment")
	}

	if !s.decider.Approve() {
		from := apt.PaymentStatus
		apt.PaymentStatus = types.PaymentFailed
		if err := s.repository.UpdatePayment(apt); err != nil {
			return nil, err
		}

		monitoring.RecordPaymentTransition("failed", method)
		s.logger.Payment(apt.ID, string(from), string(types.PaymentFailed), method)
		return nil, types.NewConflictError("Payment processing failed. Please try again.")
	}

	if err := s.applyPaid(apt, method); err != nil {
		return nil, err
	}

	return apt, nil
}

// ProcessCashPayment records an at-hospital cash payment. No authorization
// is simulated; cash always succeeds.
func (s *Service) ProcessCashPayment(appointmentID string) (*types.Appointment, error) {
	apt, err := s.repository.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, err
	}

	if err := s.applyPaid(apt, types.PaymentMethodCash); err != nil {
		return nil, err
	}

	return apt, nil
}

// GetPaymentDetails returns the read-only payment projection. No side
// effects.
func (s *Service) GetPaymentDetails(appointmentID string) (*types.PaymentDetails, error) {
	apt, err := s.repository.GetAppointmentByID(appointmentID)
	if err != nil {
		return nil, err
	}

	return &types.PaymentDetails{
		Amount:        apt.Amount,
		Status:        apt.PaymentStatus,
		Method:        apt.PaymentMethod,
		TransactionID: apt.TransactionID,
		PaidAt:        apt.PaidAt,
	}, nil
}

// Refund moves a paid appointment to refunded. Refund is not idempotent: a
// second call fails because refunded is not paid. The coarse appointment
// status is left at Confirmed, mirroring the asymmetry of the paid
// transition.
func (s *Service) Refund(appointmentID string) error {
	apt, err := s.repository.GetAppointmentByID(appointmentID)
	if err != nil {
		return err
	}

	if apt.PaymentStatus != types.PaymentPaid {
		return types.NewConflictError("Cannot refund - payment not completed")
	}

	apt.PaymentStatus = types.PaymentRefunded
	if err := s.repository.UpdatePayment(apt); err != nil {
		return err
	}

	monitoring.RecordPaymentTransition("refunded", apt.PaymentMethod)
	s.logger.Payment(apt.ID, string(types.PaymentPaid), string(types.PaymentRefunded), apt.PaymentMethod)
	return nil
}

// CreateCheckoutSession opens a hosted checkout session for the appointment
// and records its id so the provider webhook can find the booking later.
func (s *Service) CreateCheckoutSession(appointmentID string) (string, error) {
	apt, err := s.repository.GetAppointmentByID(appointmentID)
	if err != nil {
		return "", err
	}

	if apt.PaymentStatus == types.PaymentPaid {
		return "", types.NewConflictError("Payment already completed for this appointment")
	}

	apt.CheckoutSessionID = NewCheckoutSessionID()
	if err := s.repository.UpdatePayment(apt); err != nil {
		return "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"appointment_id":      apt.ID,
		"checkout_session_id": apt.CheckoutSessionID,
	}).Info("Checkout session created")

	return apt.CheckoutSessionID, nil
}

// CompleteCheckoutSession applies the paid transition for a completed
// checkout session. Already-paid appointments are acknowledged without
// re-applying the transition.
func (s *Service) CompleteCheckoutSession(sessionID string) (*types.Appointment, error) {
	apt, err := s.repository.GetAppointmentByCheckoutSession(sessionID)
	if err != nil {
		return nil, err
	}

	if apt.PaymentStatus == types.PaymentPaid {
		s.logger.WithField("appointment_id", apt.ID).Info("Checkout already completed, skipping")
		return apt, nil
	}

	if err := s.applyPaid(apt, types.PaymentMethodOnline); err != nil {
		return nil, err
	}

	return apt, nil
}

// applyPaid performs the one paid transition shared by every entry point:
// payment fields set, fresh transaction id, coarse status forced to
// Confirmed, persisted in a single write.
func (s *Service) applyPaid(apt *types.Appointment, method string) error {
	from := apt.PaymentStatus
	now := time.Now()

	apt.PaymentStatus = types.PaymentPaid
	apt.PaymentMethod = method
	apt.PaidAt = &now
	apt.TransactionID = NewTransactionID()
	apt.Status = types.AppointmentConfirmed

	if err := s.repository.UpdatePayment(apt); err != nil {
		return err
	}

	monitoring.RecordPaymentTransition("paid", method)
	s.logger.Payment(apt.ID, string(from), string(types.PaymentPaid), method)
	return nil
}
