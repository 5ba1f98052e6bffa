package interfaces

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// AppointmentService defines the interface for appointment booking and
// administration
type AppointmentService interface {
	Create(req *types.CreateAppointmentRequest) (*types.Appointment, error)
	List() ([]*types.Appointment, error)
	ListByPatient(patientID string) ([]*types.Appointment, error)
	UpdateStatus(id string, updates *types.AppointmentUpdates) (*types.Appointment, error)
	Delete(id string) error
}

// AppointmentRepository defines the interface for appointment persistence.
// The payment engine shares this repository: appointments own their payment
// sub-state.
type AppointmentRepository interface {
	CreateAppointment(apt *types.Appointment) error
	GetAppointmentByID(id string) (*types.Appointment, error)
	GetAppointmentByCheckoutSession(sessionID string) (*types.Appointment, error)
	GetAppointments() ([]*types.Appointment, error)
	GetAppointmentsByPatient(patientID string) ([]*types.Appointment, error)
	UpdateAppointment(id string, updates *types.AppointmentUpdates) (*types.Appointment, error)
	UpdatePayment(apt *types.Appointment) error
	DeleteAppointment(id string) error
}
