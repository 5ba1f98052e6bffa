package types

import "time"

// UserRole represents the different user roles in the system
type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RolePatient UserRole = "Patient"
	RoleDoctor  UserRole = "Doctor"
)

// Gender values accepted at registration
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOthers = "Others"
)

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOthers
}

// Avatar references an externally hosted profile image.
type Avatar struct {
	PublicID string `json:"public_id" db:"avatar_public_id"`
	URL      string `json:"url" db:"avatar_url"`
}

// User represents an identity record: a patient, a doctor or an admin.
// Department and Avatar are populated only for doctors.
type User struct {
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	NationalID   string    `json:"nationalId" db:"national_id"`
	DOB          time.Time `json:"dob" db:"dob"`
	Gender       string    `json:"gender" db:"gender"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	Department   string    `json:"department,omitempty" db:"department"`
	Avatar       *Avatar   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// FullName returns the user's display name as embedded in snapshots and
// summaries.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterUserRequest carries the fields shared by patient registration and
// the admin-created accounts.
type RegisterUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Password   string `json:"password"`
	// Doctor-only fields
	Department     string `json:"department,omitempty"`
	AvatarPublicID string `json:"avatarPublicId,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
}

// LoginRequest carries login credentials plus the portal role the caller
// claims to be logging into.
type LoginRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// AuthToken represents the authentication token response
type AuthToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
}

// UserClaims represents JWT token claims
type UserClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}
