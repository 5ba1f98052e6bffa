package interfaces

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// MedicalHistoryService defines the interface for clinical record keeping
// and the derived patient summary
type MedicalHistoryService interface {
	Create(req *types.CreateMedicalHistoryRequest) (*types.MedicalHistory, error)
	ListByPatient(patientEmail string) ([]*types.MedicalHistory, error)
	ListByDoctor(doctorEmail string) ([]*types.MedicalHistory, error)
	Get(id string) (*types.MedicalHistory, error)
	Update(id string, updates *types.MedicalHistoryUpdates) (*types.MedicalHistory, error)
	Delete(id string) error

	// Summarize derives the patient rollup. Pure read, recomputed per call.
	Summarize(patientEmail string) (*types.PatientSummary, error)
}

// MedicalHistoryRepository defines the interface for clinical record
// persistence. List results are ordered by visit date descending; the
// summary logic depends on that ordering.
type MedicalHistoryRepository interface {
	CreateRecord(record *types.MedicalHistory) error
	GetRecordByID(id string) (*types.MedicalHistory, error)
	GetRecordsByPatient(patientID string) ([]*types.MedicalHistory, error)
	GetRecordsByDoctor(doctorID string) ([]*types.MedicalHistory, error)
	UpdateRecord(id string, updates *types.MedicalHistoryUpdates) (*types.MedicalHistory, error)
	DeleteRecord(id string) error
}
