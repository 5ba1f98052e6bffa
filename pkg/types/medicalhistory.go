package types

import "time"

// RecordStatus represents the clinical status of a medical history record
type RecordStatus string

const (
	RecordActive           RecordStatus = "Active"
	RecordResolved         RecordStatus = "Resolved"
	RecordChronic          RecordStatus = "Chronic"
	RecordFollowUpRequired RecordStatus = "Follow-up Required"
)

// Medication is one prescribed medication within a clinical encounter.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// TestResult is one ordered test within a clinical encounter.
type TestResult struct {
	TestName string     `json:"testName"`
	TestDate *time.Time `json:"testDate,omitempty"`
	Results  string     `json:"results"`
	Notes    string     `json:"notes"`
}

// VitalSigns holds the vitals captured during a visit.
type VitalSigns struct {
	BloodPressure    string  `json:"bloodPressure,omitempty"`
	HeartRate        float64 `json:"heartRate,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	OxygenSaturation float64 `json:"oxygenSaturation,omitempty"`
	Weight           float64 `json:"weight,omitempty"`
	Height           float64 `json:"height,omitempty"`
}

// MedicalHistory represents one clinical encounter for a patient.
type MedicalHistory struct {
	ID                 string       `json:"id" db:"id"`
	PatientID          string       `json:"patientId" db:"patient_id"`
	DoctorID           string       `json:"doctorId" db:"doctor_id"`
	AppointmentID      string       `json:"appointmentId,omitempty" db:"appointment_id"`
	Symptoms           string       `json:"symptoms" db:"symptoms"`
	Diagnosis          string       `json:"diagnosis" db:"diagnosis"`
	Treatment          string       `json:"treatment" db:"treatment"`
	Medications        []Medication `json:"medications"`
	Tests              []TestResult `json:"tests"`
	VitalSigns         VitalSigns   `json:"vitalSigns"`
	Allergies          []string     `json:"allergies"`
	PastMedicalHistory []string     `json:"pastMedicalHistory"`
	FamilyHistory      []string     `json:"familyHistory"`
	Notes              string       `json:"notes,omitempty" db:"notes"`
	FollowUpDate       *time.Time   `json:"followUpDate,omitempty" db:"follow_up_date"`
	Status             RecordStatus `json:"status" db:"status"`
	VisitDate          time.Time    `json:"visitDate" db:"visit_date"`
	// DoctorName is joined in from the user directory on reads; it is not a
	// stored column of the record itself.
	DoctorName string    `json:"doctorName,omitempty"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateMedicalHistoryRequest carries the clinical encounter form fields.
type CreateMedicalHistoryRequest struct {
	PatientEmail       string       `json:"patientEmail"`
	DoctorEmail        string       `json:"doctorEmail"`
	AppointmentID      string       `json:"appointmentId,omitempty"`
	Symptoms           string       `json:"symptoms"`
	Diagnosis          string       `json:"diagnosis"`
	Treatment          string       `json:"treatment"`
	Medications        []Medication `json:"medications,omitempty"`
	Tests              []TestResult `json:"tests,omitempty"`
	VitalSigns         *VitalSigns  `json:"vitalSigns,omitempty"`
	Allergies          []string     `json:"allergies,omitempty"`
	PastMedicalHistory []string     `json:"pastMedicalHistory,omitempty"`
	FamilyHistory      []string     `json:"familyHistory,omitempty"`
	Notes              string       `json:"notes,omitempty"`
	FollowUpDate       string       `json:"followUpDate,omitempty"`
	Status             RecordStatus `json:"status,omitempty"`
}

// MedicalHistoryUpdates represents a partial update to a record. Nil fields
// are left untouched.
type MedicalHistoryUpdates struct {
	Symptoms           *string       `json:"symptoms,omitempty"`
	Diagnosis          *string       `json:"diagnosis,omitempty"`
	Treatment          *string       `json:"treatment,omitempty"`
	Medications        *[]Medication `json:"medications,omitempty"`
	Tests              *[]TestResult `json:"tests,omitempty"`
	VitalSigns         *VitalSigns   `json:"vitalSigns,omitempty"`
	Allergies          *[]string     `json:"allergies,omitempty"`
	PastMedicalHistory *[]string     `json:"pastMedicalHistory,omitempty"`
	FamilyHistory      *[]string     `json:"familyHistory,omitempty"`
	Notes              *string       `json:"notes,omitempty"`
	FollowUpDate       *time.Time    `json:"followUpDate,omitempty"`
	Status             *RecordStatus `json:"status,omitempty"`
}

// PatientSummary is the derived rollup of a patient's medical history. It is
// recomputed on every call and never persisted.
type PatientSummary struct {
	Patient            SummaryPatient      `json:"patient"`
	Statistics         SummaryStatistics   `json:"statistics"`
	RecentDiagnoses    []SummaryDiagnosis  `json:"recentDiagnoses"`
	CurrentMedications []SummaryMedication `json:"currentMedications"`
	Allergies          []string            `json:"allergies"`
}

// SummaryPatient is the identity snippet included in a summary.
type SummaryPatient struct {
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	DOB    time.Time `json:"dob"`
	Gender string    `json:"gender"`
}

// SummaryStatistics holds the visit and condition counts.
type SummaryStatistics struct {
	TotalVisits       int `json:"totalVisits"`
	ActiveConditions  int `json:"activeConditions"`
	ChronicConditions int `json:"chronicConditions"`
}

// SummaryDiagnosis is one recent diagnosis entry.
type SummaryDiagnosis struct {
	Diagnosis string    `json:"diagnosis"`
	Date      time.Time `json:"date"`
	Doctor    string    `json:"doctor"`
}

// SummaryMedication is one entry of the flattened medication list.
type SummaryMedication struct {
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Frequency    string    `json:"frequency"`
	PrescribedBy string    `json:"prescribedBy"`
	Date         time.Time `json:"date"`
}
