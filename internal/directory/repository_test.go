package directory

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

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "phone", "national_id", "dob", "gender",
		"password_hash", "role", "department", "avatar_public_id", "avatar_url",
		"created_at", "updated_at",
	}).AddRow(
		"user-1", "Jane", "Doe", "jane@example.com", "0712345678", "199012345678",
		time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), types.GenderFemale,
		"$2a$10$hash", types.RolePatient, nil, nil, nil, now, now,
	)
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("jane@example.com").
		WillReturnRows(userRows())

	user, err := repo.GetUserByEmail("jane@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, types.RolePatient, user.Role)
	assert.Nil(t, user.Avatar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailAndRole_NotFound(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1 AND role = \\$2").
		WithArgs("jane@example.com", types.RoleDoctor).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetUserByEmailAndRole("jane@example.com", types.RoleDoctor)

	assert.Nil(t, user)
	assert.Equal(t, "Doctor not found!", err.Error())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock := setupTestRepository(t)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.CreateUser(&types.User{
		ID:    "user-1",
		Email: "jane@example.com",
		Role:  types.RolePatient,
	})

	assert.Error(t, err)
	assert.Equal(t, "Duplicate email entered!", err.Error())

	appErr := types.AsAppError(err)
	assert.Equal(t, 400, appErr.HTTPStatus())
}
