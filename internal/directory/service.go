package directory

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/auth"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/interfaces"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Service implements the DirectoryService interface. It owns User records;
// every other component resolves identities through it and never mutates
// them.
type Service struct {
	logger     *logger.Logger
	repository interfaces.DirectoryRepository
	passwords  *PasswordManager
	tokens     *auth.TokenManager
}

// NewService creates a new directory service
func NewService(repo interfaces.DirectoryRepository, tokens *auth.TokenManager, log *logger.Logger) *Service {
	return &Service{
		logger:     log,
		repository: repo,
		passwords:  NewPasswordManager(),
		tokens:     tokens,
	}
}

// RegisterPatient registers a new patient account
func (s *Service) RegisterPatient(req *types.RegisterUserRequest) (*types.User, error) {
	user, err := s.register(req, types.RolePatient)
	if err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).Info("Patient registered")
	return user, nil
}

// AddAdmin registers a new admin account
func (s *Service) AddAdmin(req *types.RegisterUserRequest) (*types.User, error) {
	user, err := s.register(req, types.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).Info("Admin registered")
	return user, nil
}

// AddDoctor registers a new doctor account. Doctors additionally require a
// department and an avatar reference hosted on the external image service.
func (s *Service) AddDoctor(req *types.RegisterUserRequest) (*types.User, error) {
	if req.Department == "" || req.AvatarPublicID == "" || req.AvatarURL == "" {
		return nil, types.NewValidationError("Please provide full details!")
	}

	user, err := s.register(req, types.RoleDoctor)
	if err != nil {
		return nil, err
	}

	s.logger.WithUserID(user.ID).WithField("department", user.Department).Info("Doctor registered")
	return user, nil
}

// register validates the shared registration fields and creates the user
// with the given role.
func (s *Service) register(req *types.RegisterUserRequest, role types.UserRole) (*types.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, types.NewValidationError("Date of Birth must be in YYYY-MM-DD format!")
	}

	if existing, err := s.repository.GetUserByEmail(req.Email); err == nil && existing != nil {
		return nil, types.NewConflictError(string(existing.Role) + " with this email already exists!")
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, types.NewInternalError("Registration failed", err)
	}

	now := time.Now()
	user := &types.User{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		NationalID:   req.NationalID,
		DOB:          dob,
		Gender:       req.Gender,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if role == types.RoleDoctor {
		user.Department = req.Department
		user.Avatar = &types.Avatar{
			PublicID: req.AvatarPublicID,
			URL:      req.AvatarURL,
		}
	}

	if err := s.repository.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and the claimed portal role, then issues a
// token. Role mismatches are reported without revealing whether the password
// was correct for another portal.
func (s *Service) Login(req *types.LoginRequest) (*types.User, *types.AuthToken, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, nil, types.NewValidationError("Please provide all details!")
	}

	user, err := s.repository.GetUserByEmail(req.Email)
	if err != nil {
		return nil, nil, types.NewValidationError("Invalid Email or Password!")
	}

	ok, err := s.passwords.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, nil, types.NewInternalError("Login failed", err)
	}
	if !ok {
		return nil, nil, types.NewValidationError("Invalid Email or Password!")
	}

	if user.Role != req.Role {
		return nil, nil, types.NewValidationError("User with role " + string(req.Role) + " not found!")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, nil, types.NewInternalError("Login failed", err)
	}

	s.logger.WithUserID(user.ID).WithField("role", string(user.Role)).Info("User logged in")
	return user, token, nil
}

// GetDoctors lists all doctor accounts
func (s *Service) GetDoctors() ([]*types.User, error) {
	return s.repository.GetUsersByRole(types.RoleDoctor)
}

// GetUser retrieves a user by id
func (s *Service) GetUser(id string) (*types.User, error) {
	return s.repository.GetUserByID(id)
}

// FindByEmailAndRole resolves a user by unique email, constrained to a role
func (s *Service) FindByEmailAndRole(email string, role types.UserRole) (*types.User, error) {
	return s.repository.GetUserByEmailAndRole(email, role)
}

// FindByID resolves a user by id
func (s *Service) FindByID(id string) (*types.User, error) {
	return s.repository.GetUserByID(id)
}

// FindDoctorByName resolves a doctor by name snapshot fields and department,
// consumed by the appointment ledger at booking time.
func (s *Service) FindDoctorByName(firstName, lastName, department string) (*types.User, error) {
	return s.repository.GetDoctorByName(firstName, lastName, department)
}

// validateRegistration checks the shared required fields
func validateRegistration(req *types.RegisterUserRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.Password == "" || req.Gender == "" || req.NationalID == "" || req.DOB == "" {
		return types.NewValidationError("Please fill the full form!")
	}

	if len(req.FirstName) < 3 {
		return types.NewValidationError("First Name must contain at least 3 characters!")
	}
	if len(req.LastName) < 2 {
		return types.NewValidationError("Last Name must contain at least 2 characters!")
	}
	if !digitsOfLen(req.Phone, 10) {
		return types.NewValidationError("Phone number must contain exactly 10 digits!")
	}
	if !digitsOfLen(req.NationalID, 12) {
		return types.NewValidationError("National ID must contain exactly 12 digits!")
	}
	if !types.ValidGender(req.Gender) {
		return types.NewValidationError("Gender must be Male, Female or Others!")
	}
	if len(req.Password) < 8 {
		return types.NewValidationError("Password must contain at least 8 characters!")
	}

	return nil
}

// digitsOfLen reports whether s consists of exactly n ASCII digits
func digitsOfLen(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
