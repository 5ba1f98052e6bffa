package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// MockAppointmentRepository is a mock implementation of AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(apt *types.Appointment) error {
	args := m.Called(apt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetAppointmentByID(id string) (*types.Appointment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAppointmentByCheckoutSession(sessionID string) (*types.Appointment, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAppointments() ([]*types.Appointment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetAppointmentsByPatient(patientID string) ([]*types.Appointment, error) {
	args := m.Called(patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAppointment(id string, updates *types.AppointmentUpdates) (*types.Appointment, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdatePayment(apt *types.Appointment) error {
	args := m.Called(apt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteAppointment(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockDirectoryService is a mock implementation of DirectoryService
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) RegisterPatient(req *types.RegisterUserRequest) (*types.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockDirectoryService) Login(req *types.LoginRequest) (*types.User, *types.AuthToken, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*types.User), args.Get(1).(*types.AuthToken), args.Error(2)
}

func (m *MockDirectoryService) AddAdmin(req *types.RegisterUserRequest) (*types.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockDirectoryService) AddDoctor(req *types.RegisterUserRequest) (*types.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockDirectoryService) GetDoctors() ([]*types.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.User), args.Error(1)
}

func (m *MockDirectoryService) GetUser(id string) (*types.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockDirectoryService) FindByEmailAndRole(email string, role types.UserRole) (*types.User, error) {
	args := m.Called(email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockDirectoryService) FindByID(id string) (*types.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockDirectoryService) FindDoctorByName(firstName, lastName, department string) (*types.User, error) {
	args := m.Called(firstName, lastName, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

// Test setup helpers

func setupTestService() (*Service, *MockAppointmentRepository, *MockDirectoryService) {
	mockRepo := &MockAppointmentRepository{}
	mockDirectory := &MockDirectoryService{}
	service := NewService(mockRepo, mockDirectory, 50, logger.New("error"))
	return service, mockRepo, mockDirectory
}

func validCreateRequest() *types.CreateAppointmentRequest {
	return &types.CreateAppointmentRequest{
		PatientEmail:    "jane@example.com",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "0712345678",
		NationalID:      "199012345678",
		DOB:             "1990-04-12",
		Gender:          types.GenderFemale,
		AppointmentDate: "2026-09-15",
		Department:      "Cardiology",
		DoctorFirstName: "Gregory",
		DoctorLastName:  "House",
		Address:         "12 Main Street",
	}
}

func testDoctor() *types.User {
	return &types.User{
		ID:         "doctor-1",
		FirstName:  "Gregory",
		LastName:   "House",
		Role:       types.RoleDoctor,
		Department: "Cardiology",
	}
}

func testPatient() *types.User {
	return &types.User{
		ID:    "patient-1",
		Email: "jane@example.com",
		Role:  types.RolePatient,
	}
}

func TestCreate_Success(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	mockDirectory.On("FindDoctorByName", "Gregory", "House", "Cardiology").
		Return(testDoctor(), nil)
	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("CreateAppointment", mock.AnythingOfType("*types.Appointment")).Return(nil)

	apt, err := service.Create(validCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, types.AppointmentPending, apt.Status)
	assert.Equal(t, types.PaymentPending, apt.PaymentStatus)
	assert.Equal(t, float64(50), apt.Amount)
	assert.Equal(t, "doctor-1", apt.DoctorID)
	assert.Equal(t, "patient-1", apt.PatientID)
	// Doctor name is snapshotted onto the booking
	assert.Equal(t, "Gregory", apt.Doctor.FirstName)
	assert.Equal(t, "House", apt.Doctor.LastName)
	assert.NotEmpty(t, apt.ID)
}

func TestCreate_MissingField(t *testing.T) {
	service, mockRepo, _ := setupTestService()

	for _, mutate := range []func(*types.CreateAppointmentRequest){
		func(r *types.CreateAppointmentRequest) { r.PatientEmail = "" },
		func(r *types.CreateAppointmentRequest) { r.FirstName = "" },
		func(r *types.CreateAppointmentRequest) { r.Phone = "" },
		func(r *types.CreateAppointmentRequest) { r.DOB = "" },
		func(r *types.CreateAppointmentRequest) { r.AppointmentDate = "" },
		func(r *types.CreateAppointmentRequest) { r.Department = "" },
		func(r *types.CreateAppointmentRequest) { r.DoctorFirstName = "" },
		func(r *types.CreateAppointmentRequest) { r.Address = "" },
	} {
		req := validCreateRequest()
		mutate(req)

		apt, err := service.Create(req)

		assert.Nil(t, apt)
		assert.Error(t, err)
		assert.Equal(t, "Please fill the full form!", err.Error())

		appErr := types.AsAppError(err)
		assert.Equal(t, 400, appErr.HTTPStatus())
	}

	mockRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything)
}

func TestCreate_DoctorNotFound(t *testing.T) {
	service, _, mockDirectory := setupTestService()

	mockDirectory.On("FindDoctorByName", "Gregory", "House", "Cardiology").
		Return(nil, types.NewNotFoundError("not found"))

	apt, err := service.Create(validCreateRequest())

	assert.Nil(t, apt)
	assert.Equal(t, "Doctor not found!", err.Error())
}

func TestCreate_PatientNotFound(t *testing.T) {
	service, _, mockDirectory := setupTestService()

	mockDirectory.On("FindDoctorByName", "Gregory", "House", "Cardiology").
		Return(testDoctor(), nil)
	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(nil, types.NewNotFoundError("not found"))

	apt, err := service.Create(validCreateRequest())

	assert.Nil(t, apt)
	assert.Equal(t, "Patient not found!", err.Error())
}

func TestCreate_InvalidDates(t *testing.T) {
	service, _, _ := setupTestService()

	req := validCreateRequest()
	req.DOB = "12/04/1990"
	_, err := service.Create(req)
	assert.Equal(t, "Date of Birth must be in YYYY-MM-DD format!", err.Error())

	req = validCreateRequest()
	req.AppointmentDate = "next tuesday"
	_, err = service.Create(req)
	assert.Equal(t, "Appointment date must be in YYYY-MM-DD format!", err.Error())
}

func TestCreate_AcceptsTimestampAppointmentDate(t *testing.T) {
	service, mockRepo, mockDirectory := setupTestService()

	mockDirectory.On("FindDoctorByName", "Gregory", "House", "Cardiology").
		Return(testDoctor(), nil)
	mockDirectory.On("FindByEmailAndRole", "jane@example.com", types.RolePatient).
		Return(testPatient(), nil)
	mockRepo.On("CreateAppointment", mock.AnythingOfType("*types.Appointment")).Return(nil)

	req := validCreateRequest()
	req.AppointmentDate = "2026-09-15T10:30:00Z"

	apt, err := service.Create(req)

	assert.NoError(t, err)
	assert.Equal(t, 10, apt.AppointmentDate.Hour())
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	service, mockRepo, _ := setupTestService()

	bad := types.AppointmentStatus("Cancelled")
	apt, err := service.UpdateStatus("apt-1", &types.AppointmentUpdates{Status: &bad})

	assert.Nil(t, apt)
	assert.Equal(t, "Invalid appointment status!", err.Error())
	mockRepo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestUpdateStatus_Accepted(t *testing.T) {
	service, mockRepo, _ := setupTestService()

	accepted := types.AppointmentAccepted
	updates := &types.AppointmentUpdates{Status: &accepted}
	updated := &types.Appointment{ID: "apt-1", Status: types.AppointmentAccepted}

	mockRepo.On("UpdateAppointment", "apt-1", updates).Return(updated, nil)

	apt, err := service.UpdateStatus("apt-1", updates)

	assert.NoError(t, err)
	assert.Equal(t, types.AppointmentAccepted, apt.Status)
}
