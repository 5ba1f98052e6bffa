package medhistory

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/database"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Repository implements the MedicalHistoryRepository interface. Nested
// document fields (medications, tests, vitals) are stored as JSONB; plain
// string lists as text arrays.
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new medical history repository
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

const recordColumns = `mh.id, mh.patient_id, mh.doctor_id, mh.appointment_id, mh.symptoms,
	mh.diagnosis, mh.treatment, mh.medications, mh.tests, mh.vital_signs, mh.allergies,
	mh.past_medical_history, mh.family_history, mh.notes, mh.follow_up_date, mh.status,
	mh.visit_date, mh.created_at, mh.updated_at, d.first_name || ' ' || d.last_name`

const recordFrom = ` FROM medical_histories mh JOIN users d ON d.id = mh.doctor_id `

// CreateRecord creates a new clinical record
func (r *Repository) CreateRecord(record *types.MedicalHistory) error {
	medications, tests, vitals, err := marshalDocumentFields(record)
	if err != nil {
		return types.NewInternalError("Internal Server Error", err)
	}

	query := `
		INSERT INTO medical_histories (
			id, patient_id, doctor_id, appointment_id, symptoms, diagnosis, treatment,
			medications, tests, vital_signs, allergies, past_medical_history,
			family_history, notes, follow_up_date, status, visit_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	var appointmentID interface{}
	if record.AppointmentID != "" {
		appointmentID = record.AppointmentID
	}

	_, err = r.db.Exec(query,
		record.ID,
		record.PatientID,
		record.DoctorID,
		appointmentID,
		record.Symptoms,
		record.Diagnosis,
		record.Treatment,
		medications,
		tests,
		vitals,
		pq.Array(record.Allergies),
		pq.Array(record.PastMedicalHistory),
		pq.Array(record.FamilyHistory),
		record.Notes,
		record.FollowUpDate,
		record.Status,
		record.VisitDate,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create medical history")
		return database.Downgrade(err)
	}

	r.logger.WithField("record_id", record.ID).Info("Created medical history")
	return nil
}

// GetRecordByID retrieves a record by id
func (r *Repository) GetRecordByID(id string) (*types.MedicalHistory, error) {
	query := `SELECT ` + recordColumns + recordFrom + `WHERE mh.id = $1`
	return r.scanRecord(r.db.QueryRow(query, id))
}

// GetRecordsByPatient retrieves a patient's records ordered by visit date
// descending. The aggregator depends on this ordering.
func (r *Repository) GetRecordsByPatient(patientID string) ([]*types.MedicalHistory, error) {
	query := `SELECT ` + recordColumns + recordFrom + `WHERE mh.patient_id = $1 ORDER BY mh.visit_date DESC`
	return r.queryRecords(query, patientID)
}

// GetRecordsByDoctor retrieves a doctor's records ordered by visit date
// descending
func (r *Repository) GetRecordsByDoctor(doctorID string) ([]*types.MedicalHistory, error) {
	query := `SELECT ` + recordColumns + recordFrom + `WHERE mh.doctor_id = $1 ORDER BY mh.visit_date DESC`
	return r.queryRecords(query, doctorID)
}

// UpdateRecord applies a partial update and returns the updated record
func (r *Repository) UpdateRecord(id string, updates *types.MedicalHistoryUpdates) (*types.MedicalHistory, error) {
	setParts := []string{}
	args := []interface{}{}
	argIndex := 1

	addSet := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if updates.Symptoms != nil {
		addSet("symptoms", *updates.Symptoms)
	}
	if updates.Diagnosis != nil {
		addSet("diagnosis", *updates.Diagnosis)
	}
	if updates.Treatment != nil {
		addSet("treatment", *updates.Treatment)
	}
	if updates.Medications != nil {
		data, err := json.Marshal(*updates.Medications)
		if err != nil {
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		addSet("medications", data)
	}
	if updates.Tests != nil {
		data, err := json.Marshal(*updates.Tests)
		if err != nil {
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		addSet("tests", data)
	}
	if updates.VitalSigns != nil {
		data, err := json.Marshal(*updates.VitalSigns)
		if err != nil {
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		addSet("vital_signs", data)
	}
	if updates.Allergies != nil {
		addSet("allergies", pq.Array(*updates.Allergies))
	}
	if updates.PastMedicalHistory != nil {
		addSet("past_medical_history", pq.Array(*updates.PastMedicalHistory))
	}
	if updates.FamilyHistory != nil {
		addSet("family_history", pq.Array(*updates.FamilyHistory))
	}
	if updates.Notes != nil {
		addSet("notes", *updates.Notes)
	}
	if updates.FollowUpDate != nil {
		addSet("follow_up_date", *updates.FollowUpDate)
	}
	if updates.Status != nil {
		addSet("status", string(*updates.Status))
	}

	if len(setParts) == 0 {
		return nil, types.NewValidationError("No updates provided!")
	}

	addSet("updated_at", time.Now())

	query := fmt.Sprintf("UPDATE medical_histories SET %s WHERE id = $%d",
		strings.Join(setParts, ", "), argIndex)
	args = append(args, id)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to update medical history")
		return nil, database.Downgrade(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, types.NewInternalError("Internal Server Error", err)
	}
	if rowsAffected == 0 {
		return nil, types.NewNotFoundError("Medical record not found!")
	}

	return r.GetRecordByID(id)
}

// DeleteRecord hard-deletes a record
func (r *Repository) DeleteRecord(id string) error {
	result, err := r.db.Exec(`DELETE FROM medical_histories WHERE id = $1`, id)
	if err != nil {
		r.logger.WithError(err).Error("Failed to delete medical history")
		return database.Downgrade(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return types.NewInternalError("Internal Server Error", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError("Medical record not found!")
	}

	r.logger.WithField("record_id", id).Info("Deleted medical history")
	return nil
}

// queryRecords runs a multi-row record query
func (r *Repository) queryRecords(query string, args ...interface{}) ([]*types.MedicalHistory, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to query medical histories")
		return nil, database.Downgrade(err)
	}
	defer rows.Close()

	var records []*types.MedicalHistory
	for rows.Next() {
		record, err := scanRecordRow(rows)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan medical history")
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewInternalError("Internal Server Error", err)
	}

	return records, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord scans a single row, mapping sql.ErrNoRows to not found
func (r *Repository) scanRecord(row *sql.Row) (*types.MedicalHistory, error) {
	record, err := scanRecordRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError("Medical record not found!")
		}
		r.logger.WithError(err).Error("Failed to get medical history")
		return nil, database.Downgrade(err)
	}
	return record, nil
}

// scanRecordRow scans the recordColumns order into a MedicalHistory
func scanRecordRow(row rowScanner) (*types.MedicalHistory, error) {
	record := &types.MedicalHistory{}
	var appointmentID, notes sql.NullString
	var followUpDate sql.NullTime
	var medications, tests, vitals []byte

	err := row.Scan(
		&record.ID,
		&record.PatientID,
		&record.DoctorID,
		&appointmentID,
		&record.Symptoms,
		&record.Diagnosis,
		&record.Treatment,
		&medications,
		&tests,
		&vitals,
		pq.Array(&record.Allergies),
		pq.Array(&record.PastMedicalHistory),
		pq.Array(&record.FamilyHistory),
		&notes,
		&followUpDate,
		&record.Status,
		&record.VisitDate,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.DoctorName,
	)
	if err != nil {
		return nil, err
	}

	record.AppointmentID = appointmentID.String
	record.Notes = notes.String
	if followUpDate.Valid {
		t := followUpDate.Time
		record.FollowUpDate = &t
	}

	if err := json.Unmarshal(medications, &record.Medications); err != nil {
		return nil, fmt.Errorf("failed to decode medications: %w", err)
	}
	if err := json.Unmarshal(tests, &record.Tests); err != nil {
		return nil, fmt.Errorf("failed to decode tests: %w", err)
	}
	if err := json.Unmarshal(vitals, &record.VitalSigns); err != nil {
		return nil, fmt.Errorf("failed to decode vital signs: %w", err)
	}

	return record, nil
}

// marshalDocumentFields encodes the JSONB columns of a record
func marshalDocumentFields(record *types.MedicalHistory) (medications, tests, vitals []byte, err error) {
	medications, err = json.Marshal(record.Medications)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode medications: %w", err)
	}
	tests, err = json.Marshal(record.Tests)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode tests: %w", err)
	}
	vitals, err = json.Marshal(record.VitalSigns)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encode vital signs: %w", err)
	}
	return medications, tests, vitals, nil
}
