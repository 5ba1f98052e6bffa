package medhistory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// visitRecord builds a record whose visit date places it daysAgo days back.
// Tests feed these to the mock store most-recent first, matching the store's
// ordering contract.
func visitRecord(daysAgo int, diagnosis string) *types.MedicalHistory {
	return &types.MedicalHistory{
		ID:        fmt.Sprintf("rec-%d", daysAgo),
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Diagnosis: diagnosis,
		Status:    types.RecordResolved,
		VisitDate: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestSummarize_NoRecords(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").
		Return([]*types.MedicalHistory{}, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", summary.Patient.Name)
	assert.Equal(t, 0, summary.Statistics.TotalVisits)
	assert.Equal(t, 0, summary.Statistics.ActiveConditions)
	// Empty collections serialize as [], not null
	assert.NotNil(t, summary.RecentDiagnoses)
	assert.NotNil(t, summary.CurrentMedications)
	assert.NotNil(t, summary.Allergies)
	assert.Empty(t, summary.RecentDiagnoses)
}

func TestSummarize_UnknownPatient(t *testing.T) {
	service, _, mockDirectory := setupTestService()

	mockDirectory.On("FindByEmailAndRole", "ghost@example.com", types.RolePatient).
		Return(nil, types.NewNotFoundError("not found"))

	summary, err := service.Summarize("ghost@example.com")

	assert.Nil(t, summary)
	assert.Equal(t, "Patient not found!", err.Error())
}

func TestSummarize_StatusCounts(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	records := []*types.MedicalHistory{
		visitRecord(1, "Flu"),
		visitRecord(10, "Asthma"),
		visitRecord(20, "Hypertension"),
		visitRecord(30, "Sprain"),
	}
	records[0].Status = types.RecordActive
	records[1].Status = types.RecordChronic
	records[2].Status = types.RecordChronic
	records[3].Status = types.RecordFollowUpRequired

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").Return(records, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 4, summary.Statistics.TotalVisits)
	assert.Equal(t, 1, summary.Statistics.ActiveConditions)
	assert.Equal(t, 2, summary.Statistics.ChronicConditions)
}

func TestSummarize_RecentDiagnosesLimitedToFive(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	var records []*types.MedicalHistory
	for i := 0; i < 8; i++ {
		records = append(records, visitRecord(i, fmt.Sprintf("Diagnosis %d", i)))
	}

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").Return(records, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	assert.Len(t, summary.RecentDiagnoses, 5)
	// Most recent visits first
	assert.Equal(t, "Diagnosis 0", summary.RecentDiagnoses[0].Diagnosis)
	assert.Equal(t, "Diagnosis 4", summary.RecentDiagnoses[4].Diagnosis)
}

func TestSummarize_MedicationsCappedAtTen(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	first := visitRecord(1, "Flu")
	second := visitRecord(5, "Infection")
	for i := 0; i < 7; i++ {
		first.Medications = append(first.Medications,
			types.Medication{Name: fmt.Sprintf("Med A%d", i)})
		second.Medications = append(second.Medications,
			types.Medication{Name: fmt.Sprintf("Med B%d", i)})
	}

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").
		Return([]*types.MedicalHistory{first, second}, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	assert.Len(t, summary.CurrentMedications, 10)
	// The newest record's medications fill the list first, in order
	assert.Equal(t, "Med A0", summary.CurrentMedications[0].Name)
	assert.Equal(t, "Med A6", summary.CurrentMedications[6].Name)
	assert.Equal(t, "Med B0", summary.CurrentMedications[7].Name)
	assert.Equal(t, "Med B2", summary.CurrentMedications[9].Name)
}

func TestSummarize_AllergiesDeduplicated(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	first := visitRecord(1, "Flu")
	first.Allergies = []string{"peanuts"}
	second := visitRecord(5, "Rash")
	second.Allergies = []string{"peanuts", "shellfish"}
	third := visitRecord(9, "Hives")
	third.Allergies = []string{"pollen"}

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").
		Return([]*types.MedicalHistory{first, second, third}, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	// Union across records, first occurrence keeps its position
	assert.Equal(t, []string{"peanuts", "shellfish", "pollen"}, summary.Allergies)
}

func TestSummarize_MedicationsUnderCap(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	var records []*types.MedicalHistory
	for i := 0; i < 6; i++ {
		record := visitRecord(i, fmt.Sprintf("Diagnosis %d", i))
		record.Medications = []types.Medication{{Name: fmt.Sprintf("Med %d", i)}}
		records = append(records, record)
	}

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").Return(records, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	// Fewer medications than the cap: all of them, most recent first
	assert.Len(t, summary.CurrentMedications, 6)
	assert.Equal(t, "Med 0", summary.CurrentMedications[0].Name)
	assert.Equal(t, "Med 5", summary.CurrentMedications[5].Name)
}

func TestSummarize_MedicationAttribution(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	record := visitRecord(1, "Flu")
	record.DoctorName = "Gregory House"
	record.Medications = []types.Medication{
		{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily"},
	}

	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("GetRecordsByPatient", "patient-1").
		Return([]*types.MedicalHistory{record}, nil)

	summary, err := service.Summarize("jane@example.com")

	assert.NoError(t, err)
	med := summary.CurrentMedications[0]
	assert.Equal(t, "Amoxicillin", med.Name)
	assert.Equal(t, "500mg", med.Dosage)
	assert.Equal(t, "Gregory House", med.PrescribedBy)
	assert.Equal(t, record.VisitDate, med.Date)
}
