package appointments

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/interfaces"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Service implements the AppointmentService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.AppointmentRepository
	directory  interfaces.DirectoryService
	amount     float64
}

// NewService creates a new appointment service. amount is the flat booking
// fee snapshotted onto every appointment.
func NewService(repo interfaces.AppointmentRepository, directory interfaces.DirectoryService, amount float64, log *logger.Logger) *Service {
	return &Service{
		logger:     log,
		repository: repo,
		directory:  directory,
		amount:     amount,
	}
}

// Create books a new appointment. The doctor and patient references are
// resolved once here; the doctor name is stored as a snapshot that is never
// re-synced with later directory changes.
func (s *Service) Create(req *types.CreateAppointmentRequest) (*types.Appointment, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, types.NewValidationError("Date of Birth must be in YYYY-MM-DD format!")
	}

	appointmentDate, err := parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	doctor, err := s.directory.FindDoctorByName(req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		return nil, types.NewNotFoundError("Doctor not found!")
	}

	patient, err := s.directory.FindByEmailAndRole(req.PatientEmail, types.RolePatient)
	if err != nil {
		return nil, types.NewNotFoundError("Patient not found!")
	}

	now := time.Now()
	apt := &types.Appointment{
		ID:              uuid.New().String(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		NationalID:      req.NationalID,
		DOB:             dob,
		Gender:          req.Gender,
		Address:         req.Address,
		AppointmentDate: appointmentDate,
		Department:      req.Department,
		Doctor: types.DoctorSnapshot{
			FirstName: doctor.FirstName,
			LastName:  doctor.LastName,
		},
		HasVisited:    req.HasVisited,
		Status:        types.AppointmentPending,
		PaymentStatus: types.PaymentPending,
		Amount:        s.amount,
		DoctorID:      doctor.ID,
		PatientID:     patient.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repository.CreateAppointment(apt); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"appointment_id": apt.ID,
		"patient_id":     apt.PatientID,
		"doctor_id":      apt.DoctorID,
	}).Info("Appointment created")

	return apt, nil
}

// List retrieves all appointments
func (s *Service) List() ([]*types.Appointment, error) {
	return s.repository.GetAppointments()
}

// ListByPatient retrieves the appointments booked for a patient
func (s *Service) ListByPatient(patientID string) ([]*types.Appointment, error) {
	return s.repository.GetAppointmentsByPatient(patientID)
}

// UpdateStatus applies a partial administrative update
func (s *Service) UpdateStatus(id string, updates *types.AppointmentUpdates) (*types.Appointment, error) {
	if updates.Status != nil && !validStatus(*updates.Status) {
		return nil, types.NewValidationError("Invalid appointment status!")
	}

	apt, err := s.repository.UpdateAppointment(id, updates)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("appointment_id", id).Info("Appointment updated")
	return apt, nil
}

// Delete removes an appointment
func (s *Service) Delete(id string) error {
	if err := s.repository.DeleteAppointment(id); err != nil {
		return err
	}

	s.logger.WithField("appointment_id", id).Info("Appointment deleted")
	return nil
}

// validateCreateRequest checks every booking form field is present
func validateCreateRequest(req *types.CreateAppointmentRequest) error {
	if req.PatientEmail == "" || req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Phone == "" || req.NationalID == "" || req.DOB == "" || req.Gender == "" ||
		req.AppointmentDate == "" || req.Department == "" || req.DoctorFirstName == "" ||
		req.DoctorLastName == "" || req.Address == "" {
		return types.NewValidationError("Please fill the full form!")
	}
	return nil
}

// parseAppointmentDate accepts a date or a full timestamp
func parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, types.NewValidationError("Appointment date must be in YYYY-MM-DD format!")
}

func validStatus(status types.AppointmentStatus) bool {
	switch status {
	case types.AppointmentPending, types.AppointmentAccepted,
		types.AppointmentRejected, types.AppointmentConfirmed:
		return true
	}
	return false
}
