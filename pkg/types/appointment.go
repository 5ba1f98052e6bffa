package types

import "time"

// AppointmentStatus represents the coarse booking status values
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentAccepted  AppointmentStatus = "Accepted"
	AppointmentRejected  AppointmentStatus = "Rejected"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
)

// PaymentStatus represents the payment sub-state of an appointment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentMethod values
const (
	PaymentMethodOnline = "online"
	PaymentMethodCash   = "cash"
)

// DoctorSnapshot is the doctor's name as it was when the appointment was
// booked. It is intentionally never re-synced with later name changes.
type DoctorSnapshot struct {
	FirstName string `json:"firstName" db:"doctor_first_name"`
	LastName  string `json:"lastName" db:"doctor_last_name"`
}

// Appointment represents a booking request. The patient demographics are a
// snapshot captured at booking time, not a live reference; DoctorID and
// PatientID are the stable links to the user directory.
type Appointment struct {
	ID                string            `json:"id" db:"id"`
	FirstName         string            `json:"firstName" db:"first_name"`
	LastName          string            `json:"lastName" db:"last_name"`
	Email             string            `json:"email" db:"email"`
	Phone             string            `json:"phone" db:"phone"`
	NationalID        string            `json:"nationalId" db:"national_id"`
	DOB               time.Time         `json:"dob" db:"dob"`
	Gender            string            `json:"gender" db:"gender"`
	Address           string            `json:"address" db:"address"`
	AppointmentDate   time.Time         `json:"appointment_date" db:"appointment_date"`
	Department        string            `json:"department" db:"department"`
	Doctor            DoctorSnapshot    `json:"doctor"`
	HasVisited        bool              `json:"hasVisited" db:"has_visited"`
	Status            AppointmentStatus `json:"status" db:"status"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus" db:"payment_status"`
	PaymentMethod     string            `json:"paymentMethod,omitempty" db:"payment_method"`
	PaidAt            *time.Time        `json:"paidAt,omitempty" db:"paid_at"`
	TransactionID     string            `json:"transactionId,omitempty" db:"transaction_id"`
	CheckoutSessionID string            `json:"checkoutSessionId,omitempty" db:"checkout_session_id"`
	Amount            float64           `json:"amount" db:"amount"`
	DoctorID          string            `json:"doctorId" db:"doctor_id"`
	PatientID         string            `json:"patientId" db:"patient_id"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// CreateAppointmentRequest carries the booking form fields.
type CreateAppointmentRequest struct {
	PatientEmail    string `json:"patientEmail"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	NationalID      string `json:"nationalId"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	DoctorFirstName string `json:"doctor_firstName"`
	DoctorLastName  string `json:"doctor_lastName"`
	HasVisited      bool   `json:"hasVisited"`
	Address         string `json:"address"`
}

// AppointmentUpdates represents a partial administrative update. Nil fields
// are left untouched.
type AppointmentUpdates struct {
	Status          *AppointmentStatus `json:"status,omitempty"`
	AppointmentDate *time.Time         `json:"appointment_date,omitempty"`
	Department      *string            `json:"department,omitempty"`
	HasVisited      *bool              `json:"hasVisited,omitempty"`
}

// PaymentDetails is the read-only projection returned by the payment
// details endpoint.
type PaymentDetails struct {
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
}
