package directory

import (
	"database/sql"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/database"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Repository implements the DirectoryRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new directory repository
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

const userColumns = `id, first_name, last_name, email, phone, national_id, dob, gender,
	password_hash, role, department, avatar_public_id, avatar_url, created_at, updated_at`

// CreateUser creates a new user record
func (r *Repository) CreateUser(user *types.User) error {
	query := `
		INSERT INTO users (
			id, first_name, last_name, email, phone, national_id, dob, gender,
			password_hash, role, department, avatar_public_id, avatar_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	var department, avatarPublicID, avatarURL interface{}
	if user.Department != "" {
		department = user.Department
	}
	if user.Avatar != nil {
		avatarPublicID = user.Avatar.PublicID
		avatarURL = user.Avatar.URL
	}

	_, err := r.db.Exec(query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.NationalID,
		user.DOB,
		user.Gender,
		user.PasswordHash,
		user.Role,
		department,
		avatarPublicID,
		avatarURL,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create user")
		return database.Downgrade(err)
	}

	r.logger.WithUserID(user.ID).WithField("role", string(user.Role)).Info("Created user")
	return nil
}

// GetUserByID retrieves a user by id
func (r *Repository) GetUserByID(id string) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(query, id), "User not found!")
}

// GetUserByEmail retrieves a user by unique email
func (r *Repository) GetUserByEmail(email string) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(query, email), "User not found!")
}

// GetUserByEmailAndRole retrieves a user by unique email constrained to a role
func (r *Repository) GetUserByEmailAndRole(email string, role types.UserRole) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND role = $2`
	return r.scanUser(r.db.QueryRow(query, email, role), string(role)+" not found!")
}

// GetDoctorByName retrieves a doctor by name and department
func (r *Repository) GetDoctorByName(firstName, lastName, department string) (*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE first_name = $1 AND last_name = $2 AND department = $3 AND role = 'Doctor'`
	return r.scanUser(r.db.QueryRow(query, firstName, lastName, department), "Doctor not found!")
}

// GetUsersByRole retrieves all users with the given role
func (r *Repository) GetUsersByRole(role types.UserRole) ([]*types.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, role)
	if err != nil {
		r.logger.WithError(err).Error("Failed to get users by role")
		return nil, database.Downgrade(err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan user")
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewInternalError("Internal Server Error", err)
	}

	return users, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanUser scans a single user row, mapping sql.ErrNoRows to the given
// not-found message.
func (r *Repository) scanUser(row *sql.Row, notFoundMsg string) (*types.User, error) {
	user, err := scanUserRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.NewNotFoundError(notFoundMsg)
		}
		r.logger.WithError(err).Error("Failed to get user")
		return nil, database.Downgrade(err)
	}
	return user, nil
}

// scanUserRow scans the userColumns order into a User
func scanUserRow(row rowScanner) (*types.User, error) {
	user := &types.User{}
	var department, avatarPublicID, avatarURL sql.NullString

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.NationalID,
		&user.DOB,
		&user.Gender,
		&user.PasswordHash,
		&user.Role,
		&department,
		&avatarPublicID,
		&avatarURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Department = department.String
	if avatarPublicID.Valid || avatarURL.Valid {
		user.Avatar = &types.Avatar{
			PublicID: avatarPublicID.String,
			URL:      avatarURL.String,
		}
	}

	return user, nil
}
