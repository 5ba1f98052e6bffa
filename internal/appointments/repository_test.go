package appointments

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/database"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

func setupTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	repo := NewRepository(&database.DB{DB: sqlDB}, logger.New("error"))
	return repo, mock
}

func appointmentRows(apt *types.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "phone", "national_id", "dob", "gender",
		"address", "appointment_date", "department", "doctor_first_name", "doctor_last_name",
		"has_visited", "status", "payment_status", "payment_method", "paid_at",
		"transaction_id", "checkout_session_id", "amount", "doctor_id", "patient_id",
		"created_at", "updated_at",
	}).AddRow(
		apt.ID, apt.FirstName, apt.LastName, apt.Email, apt.Phone, apt.NationalID,
		apt.DOB, apt.Gender, apt.Address, apt.AppointmentDate, apt.Department,
		apt.Doctor.FirstName, apt.Doctor.LastName, apt.HasVisited, apt.Status,
		apt.PaymentStatus, nil, nil, nil, nil, apt.Amount, apt.DoctorID, apt.PatientID,
		apt.CreatedAt, apt.UpdatedAt,
	)
}

func storedAppointment() *types.Appointment {
	now := time.Now()
	return &types.Appointment{
		ID:              "apt-1",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "0712345678",
		NationalID:      "199012345678",
		DOB:             time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:          types.GenderFemale,
		Address:         "12 Main Street",
		AppointmentDate: now.AddDate(0, 0, 7),
		Department:      "Cardiology",
		Doctor:          types.DoctorSnapshot{FirstName: "Gregory", LastName: "House"},
		Status:          types.AppointmentPending,
		PaymentStatus:   types.PaymentPending,
		Amount:          50,
		DoctorID:        "doctor-1",
		PatientID:       "patient-1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestGetAppointmentByID(t *testing.T) {
	repo, mock := setupTestRepository(t)
	apt := storedAppointment()

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE id = \\$1").
		WithArgs("apt-1").
		WillReturnRows(appointmentRows(apt))

	got, err := repo.GetAppointmentByID("apt-1")

	assert.NoError(t, err)
	assert.Equal(t, "apt-1", got.ID)
	assert.Equal(t, types.PaymentPending, got.PaymentStatus)
	assert.Empty(t, got.TransactionID)
	assert.Nil(t, got.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppointmentByID_NotFound(t *testing.T) {
	repo, mock := setupTestRepository(t)

	// An empty result set, not a driver error
	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE id = \\$1").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.GetAppointmentByID("missing")

	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Equal(t, "Appointment not found", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePayment(t *testing.T) {
	repo, mock := setupTestRepository(t)

	apt := storedAppointment()
	now := time.Now()
	apt.Status = types.AppointmentConfirmed
	apt.PaymentStatus = types.PaymentPaid
	apt.PaymentMethod = types.PaymentMethodOnline
	apt.PaidAt = &now
	apt.TransactionID = "TXN123"

	mock.ExpectExec("UPDATE appointments").
		WithArgs(apt.Status, apt.PaymentStatus, apt.PaymentMethod, apt.PaidAt,
			apt.TransactionID, nil, sqlmock.AnyArg(), apt.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePayment(apt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePayment_NotFound(t *testing.T) {
	repo, mock := setupTestRepository(t)
	apt := storedAppointment()

	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePayment(apt)

	assert.Error(t, err)
	assert.Equal(t, "Appointment not found", err.Error())
}

func TestCreateAppointment_CheckViolation(t *testing.T) {
	repo, mock := setupTestRepository(t)
	apt := storedAppointment()
	apt.Status = "Bogus"

	mock.ExpectExec("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23514", Constraint: "appointments_status_check"})

	err := repo.CreateAppointment(apt)

	assert.Error(t, err)
	assert.Equal(t, "Invalid field value!", err.Error())

	appErr := types.AsAppError(err)
	assert.Equal(t, 400, appErr.HTTPStatus())
}
