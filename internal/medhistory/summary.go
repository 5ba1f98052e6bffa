package medhistory

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// How much of the history a summary surfaces.
const (
	recentDiagnosisLimit  = 5
	currentMedicationsCap = 10
)

// Summarize derives a patient's medical rollup. The result is computed
// fresh on every call from the stored records; nothing is cached or
// persisted.
func (s *Service) Summarize(patientEmail string) (*types.PatientSummary, error) {
	patient, err := s.directory.FindByEmailAndRole(patientEmail, types.RolePatient)
	if err != nil {
		return nil, types.NewNotFoundError("Patient not found!")
	}

	// Records arrive most-recent-visit first; every "recent" computation
	// below leans on that ordering.
	records, err := s.repository.GetRecordsByPatient(patient.ID)
	if err != nil {
		return nil, err
	}

	return buildSummary(patient, records), nil
}

// buildSummary computes the rollup from an ordered record list
func buildSummary(patient *types.User, records []*types.MedicalHistory) *types.PatientSummary {
	summary := &types.PatientSummary{
		Patient: types.SummaryPatient{
			Name:   patient.FullName(),
			Email:  patient.Email,
			DOB:    patient.DOB,
			Gender: patient.Gender,
		},
		Statistics: types.SummaryStatistics{
			TotalVisits: len(records),
		},
		RecentDiagnoses:    []types.SummaryDiagnosis{},
		CurrentMedications: []types.SummaryMedication{},
		Allergies:          []string{},
	}

	seenAllergies := make(map[string]bool)

	for i, record := range records {
		switch record.Status {
		case types.RecordActive:
			summary.Statistics.ActiveConditions++
		case types.RecordChronic:
			summary.Statistics.ChronicConditions++
		}

		if i < recentDiagnosisLimit {
			summary.RecentDiagnoses = append(summary.RecentDiagnoses, types.SummaryDiagnosis{
				Diagnosis: record.Diagnosis,
				Date:      record.VisitDate,
				Doctor:    record.DoctorName,
			})
		}

		// Flatten medications preserving in-record order, capped at the
		// first entries of the most-recent-first sequence.
		for _, med := range record.Medications {
			if len(summary.CurrentMedications) >= currentMedicationsCap {
				break
			}
			summary.CurrentMedications = append(summary.CurrentMedications, types.SummaryMedication{
				Name:         med.Name,
				Dosage:       med.Dosage,
				Frequency:    med.Frequency,
				PrescribedBy: record.DoctorName,
				Date:         record.VisitDate,
			})
		}

		// Union of allergies, first occurrence wins the position.
		for _, allergy := range record.Allergies {
			if !seenAllergies[allergy] {
				seenAllergies[allergy] = true
				summary.Allergies = append(summary.Allergies, allergy)
			}
		}
	}

	return summary
}
