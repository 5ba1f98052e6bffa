package interfaces

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// DirectoryService defines the interface for user identity management
type DirectoryService interface {
	RegisterPatient(req *types.RegisterUserRequest) (*types.User, error)
	Login(req *types.LoginRequest) (*types.User, *types.AuthToken, error)
	AddAdmin(req *types.RegisterUserRequest) (*types.User, error)
	AddDoctor(req *types.RegisterUserRequest) (*types.User, error)
	GetDoctors() ([]*types.User, error)
	GetUser(id string) (*types.User, error)

	// Identity resolution consumed by the other components. The directory
	// never mutates users on behalf of callers.
	FindByEmailAndRole(email string, role types.UserRole) (*types.User, error)
	FindByID(id string) (*types.User, error)
	FindDoctorByName(firstName, lastName, department string) (*types.User, error)
}

// DirectoryRepository defines the interface for user persistence
type DirectoryRepository interface {
	CreateUser(user *types.User) error
	GetUserByID(id string) (*types.User, error)
	GetUserByEmail(email string) (*types.User, error)
	GetUserByEmailAndRole(email string, role types.UserRole) (*types.User, error)
	GetDoctorByName(firstName, lastName, department string) (*types.User, error)
	GetUsersByRole(role types.UserRole) ([]*types.User, error)
}
