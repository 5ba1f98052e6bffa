package appointments

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/database"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Repository implements the AppointmentRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new appointment repository
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

const appointmentColumns = `id, first_name, last_name, email, phone, national_id, dob, gender,
	address, appointment_date, department, doctor_first_name, doctor_last_name, has_visited,
	status, payment_status, payment_method, paid_at, transaction_id, checkout_session_id,
	amount, doctor_id, patient_id, created_at, updated_at`

// CreateAppointment creates a new appointment
func (r *Repository) CreateAppointment(apt *types.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, first_name, last_name, email, phone, national_id, dob, gender,
			address, appointment_date, department, doctor_first_name, doctor_last_name,
			has_visited, status, payment_status, amount, doctor_id, patient_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.db.Exec(query,
		apt.ID,
		apt.FirstName,
		apt.LastName,
		apt.Email,
		apt.Phone,
		apt.NationalID,
		apt.DOB,
		apt.Gender,
		apt.Address,
		apt.AppointmentDate,
		apt.Department,
		apt.Doctor.FirstName,
		apt.Doctor.LastName,
		apt.HasVisited,
		apt.Status,
		apt.PaymentStatus,
		apt.Amount,
		apt.DoctorID,
		apt.PatientID,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create appointment")
		return database.Downgrade(err)
	}

	r.logger.WithField("appointment_id", apt.ID).Info("Created appointment")
	return nil
}

// GetAppointmentByID retrieves an appointment by id
func (r *Repository) GetAppointmentByID(id string) (*types.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return r.scanAppointment(r.db.QueryRow(query, id))
}

// GetAppointmentByCheckoutSession retrieves an appointment by the checkout
// session id recorded when a hosted payment session was opened.
func (r *Repository) GetAppointmentByCheckoutSession(sessionID string) (*types.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE checkout_session_id = $1`
	return r.scanAppointment(r.db.QueryRow(query, sessionID))
}

// GetAppointments retrieves all appointments, most recently created first
func (r *Repository) GetAppointments() ([]*types.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY created_at DESC`
	return r.queryAppointments(query)
}

// GetAppointmentsByPatient retrieves a patient's appointments
func (r *Repository) GetAppointmentsByPatient(patientID string) ([]*types.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE patient_id = $1 ORDER BY appointment_date DESC`
	return r.queryAppointments(query, patientID)
}

// UpdateAppointment applies a partial update and returns the updated row
func (r *Repository) UpdateAppointment(id string, updates *types.AppointmentUpdates) (*types.Appointment, error) {
	setParts := []string{}
	args := []interface{}{}
	argIndex := 1

	if updates.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, string(*updates.Status))
		argIndex++
	}

	if updates.AppointmentDate != nil {
		setParts = append(setParts, fmt.Sprintf("appointment_date = $%d", argIndex))
		args = append(args, *updates.AppointmentDate)
		argIndex++
	}

	if updates.Department != nil {
		setParts = append(setParts, fmt.Sprintf("department = $%d", argIndex))
		args = append(args, *updates.Department)
		argIndex++
	}

	if updates.HasVisited != nil {
		setParts = append(setParts, fmt.Sprintf("has_visited = $%d", argIndex))
		args = append(args, *updates.HasVisited)
		argIndex++
	}

	if len(setParts) == 0 {
		return nil, types.NewValidationError("No updates provided!")
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now())
	argIndex++

	query := fmt.Sprintf("UPDATE appointments SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setParts, ", "), argIndex, appointmentColumns)
	args = append(args, id)

	return r.scanAppointment(r.db.QueryRow(query, args...))
}

// UpdatePayment persists the payment sub-state of an appointment after a
// transition. Writes are keyed by id only: two racing transitions resolve
// last-write-wins, matching the documented concurrency model.
func (r *Repository) UpdatePayment(apt *types.Appointment) error {
	query := `
		UPDATE appointments
		SET status = $1, payment_status = $2, payment_method = $3, paid_at = $4,
			transaction_id = $5, checkout_session_id = $6, updated_at = $7
		WHERE id = $8`

	var method, transactionID, sessionID interface{}
	if apt.PaymentMethod != "" {
		method = apt.PaymentMethod
	}
	if apt.TransactionID != "" {
		transactionID = apt.TransactionID
	}
	if apt.CheckoutSessionID != "" {
		sessionID = apt.CheckoutSessionID
	}

	result, err := r.db.Exec(query,
		apt.Status,
		apt.PaymentStatus,
		method,
		apt.PaidAt,
		transactionID,
		sessionID,
		time.Now(),
		apt.ID,
	)
	if err != nil {
		r.logger.WithError(err).Error("Failed to update appointment payment")
		return database.Downgrade(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return types.NewInternalError("Internal Server Error", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError("Appointment not found")
	}

	return nil
}

// DeleteAppointment hard-deletes an appointment
func (r *Repository) DeleteAppointment(id string) error {
	result, err := r.db.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		r.logger.WithError(err).Error("Failed to delete appointment")
		return database.Downgrade(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return types.NewInternalError("Internal Server Error", err)
	}
	if rowsAffected == 0 {
		return types.NewNotFoundError("Appointment not found!")
	}

	r.logger.WithField("appointment_id", id).Info("Deleted appointment")
	return nil
}

// queryAppointments runs a multi-row appointment query
func (r *Repository) queryAppointments(query string, args ...interface{}) ([]*types.Appointment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to query appointments")
		return nil, database.Downgrade(err)
	}
	defer rows.Close()

	var appointments []*types.Appointment
	for rows.Next() {
		apt, err := scanAppointmentRow(rows)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan appointment")
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		appointments = append(appointments, apt)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewInternalError("Internal Server Error", err)
	}

	return appointments, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment scans a single row, mapping sql.ErrNoRows to not found
func (r *Repository) scanAppointment(row *sql.Row) (*types.Appointment, error) {
	apt, err := scanAppointmentRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError("Appointment not found")
		}
		r.logger.WithError(err).Error("Failed to get appointment")
		return nil, database.Downgrade(err)
	}
	return apt, nil
}

// scanAppointmentRow scans the appointmentColumns order into an Appointment
func scanAppointmentRow(row rowScanner) (*types.Appointment, error) {
	apt := &types.Appointment{}
	var method, transactionID, sessionID sql.NullString
	var paidAt sql.NullTime

	err := row.Scan(
		&apt.ID,
		&apt.FirstName,
		&apt.LastName,
		&apt.Email,
		&apt.Phone,
		&apt.NationalID,
		&apt.DOB,
		&apt.Gender,
		&apt.Address,
		&apt.AppointmentDate,
		&apt.Department,
		&apt.Doctor.FirstName,
		&apt.Doctor.LastName,
		&apt.HasVisited,
		&apt.Status,
		&apt.PaymentStatus,
		&method,
		&paidAt,
		&transactionID,
		&sessionID,
		&apt.Amount,
		&apt.DoctorID,
		&apt.PatientID,
		&apt.CreatedAt,
		&apt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	apt.PaymentMethod = method.String
	apt.TransactionID = transactionID.String
	apt.CheckoutSessionID = sessionID.String
	if paidAt.Valid {
		t := paidAt.Time
		apt.PaidAt = &t
	}

	return apt, nil
}
