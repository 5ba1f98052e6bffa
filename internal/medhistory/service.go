package medhistory

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/interfaces"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Service implements the MedicalHistoryService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.MedicalHistoryRepository
	directory  interfaces.DirectoryService
}

// NewService creates a new medical history service
func NewService(repo interfaces.MedicalHistoryRepository, directory interfaces.DirectoryService, log *logger.Logger) *Service {
	return &Service{
		logger:     log,
		repository: repo,
		directory:  directory,
	}
}

// Create records a clinical encounter. The patient and doctor references
// must resolve to users of the matching role; that check happens here, not
// in the store.
func (s *Service) Create(req *types.CreateMedicalHistoryRequest) (*types.MedicalHistory, error) {
	if req.PatientEmail == "" || req.DoctorEmail == "" || req.Symptoms == "" ||
		req.Diagnosis == "" || req.Treatment == "" {
		return nil, types.NewValidationError("Please fill all required fields!")
	}

	patient, err := s.directory.FindByEmailAndRole(req.PatientEmail, types.RolePatient)
	if err != nil {
		return nil, types.NewNotFoundError("Patient not found!")
	}

	doctor, err := s.directory.FindByEmailAndRole(req.DoctorEmail, types.RoleDoctor)
	if err != nil {
		return nil, types.NewNotFoundError("Doctor not found!")
	}

	status := req.Status
	if status == "" {
		status = types.RecordActive
	}
	if !validStatus(status) {
		return nil, types.NewValidationError("Invalid record status!")
	}

	var followUp *time.Time
	if req.FollowUpDate != "" {
		parsed, err := time.Parse("2006-01-02", req.FollowUpDate)
		if err != nil {
			return nil, types.NewValidationError("Follow-up date must be in YYYY-MM-DD format!")
		}
		followUp = &parsed
	}

	now := time.Now()
	record := &types.MedicalHistory{
		ID:                 uuid.New().String(),
		PatientID:          patient.ID,
		DoctorID:           doctor.ID,
		AppointmentID:      req.AppointmentID,
		Symptoms:           req.Symptoms,
		Diagnosis:          req.Diagnosis,
		Treatment:          req.Treatment,
		Medications:        orEmptyMedications(req.Medications),
		Tests:              orEmptyTests(req.Tests),
		Allergies:          orEmptyStrings(req.Allergies),
		PastMedicalHistory: orEmptyStrings(req.PastMedicalHistory),
		FamilyHistory:      orEmptyStrings(req.FamilyHistory),
		Notes:              req.Notes,
		FollowUpDate:       followUp,
		Status:             status,
		VisitDate:          now,
		DoctorName:         doctor.FullName(),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if req.VitalSigns != nil {
		record.VitalSigns = *req.VitalSigns
	}

	if err := s.repository.CreateRecord(record); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"record_id":  record.ID,
		"patient_id": record.PatientID,
		"doctor_id":  record.DoctorID,
	}).Info("Medical history created")

	return record, nil
}

// ListByPatient returns a patient's records, most recent visit first
func (s *Service) ListByPatient(patientEmail string) ([]*types.MedicalHistory, error) {
	patient, err := s.directory.FindByEmailAndRole(patientEmail, types.RolePatient)
	if err != nil {
		return nil, types.NewNotFoundError("Patient not found!")
	}
	return s.repository.GetRecordsByPatient(patient.ID)
}

// ListByDoctor returns a doctor's records, most recent visit first
func (s *Service) ListByDoctor(doctorEmail string) ([]*types.MedicalHistory, error) {
	doctor, err := s.directory.FindByEmailAndRole(doctorEmail, types.RoleDoctor)
	if err != nil {
		return nil, types.NewNotFoundError("Doctor not found!")
	}
	return s.repository.GetRecordsByDoctor(doctor.ID)
}

// Get retrieves a single record
func (s *Service) Get(id string) (*types.MedicalHistory, error) {
	return s.repository.GetRecordByID(id)
}

// Update applies a partial update to a record
func (s *Service) Update(id string, updates *types.MedicalHistoryUpdates) (*types.MedicalHistory, error) {
	if updates.Status != nil && !validStatus(*updates.Status) {
		return nil, types.NewValidationError("Invalid record status!")
	}

	record, err := s.repository.UpdateRecord(id, updates)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("record_id", id).Info("Medical history updated")
	return record, nil
}

// Delete removes a record
func (s *Service) Delete(id string) error {
	if err := s.repository.DeleteRecord(id); err != nil {
		return err
	}

	s.logger.WithField("record_id", id).Info("Medical history deleted")
	return nil
}

func validStatus(status types.RecordStatus) bool {
	switch status {
	case types.RecordActive, types.RecordResolved,
		types.RecordChronic, types.RecordFollowUpRequired:
		return true
	}
	return false
}

func orEmptyMedications(m []types.Medication) []types.Medication {
	if m == nil {
		return []types.Medication{}
	}
	return m
}

func orEmptyTests(t []types.TestResult) []types.TestResult {
	if t == nil {
		return []types.TestResult{}
	}
	return t
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
