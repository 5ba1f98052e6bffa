package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) CreateMessage(msg *types.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMessageRepository) GetMessages() ([]*types.Message, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Message), args.Error(1)
}

func setupTestService() (*Service, *MockMessageRepository) {
	mockRepo := &MockMessageRepository{}
	service := NewService(mockRepo, logger.New("error"))
	return service, mockRepo
}

func TestSend_Success(t *testing.T) {
	service, mockRepo := setupTestService()

	mockRepo.On("CreateMessage", mock.AnythingOfType("*types.Message")).Return(nil)

	msg, err := service.Send(&types.SendMessageRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "0712345678",
		Message:   "Do you take walk-in appointments?",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Do you take walk-in appointments?", msg.Body)
}

func TestSend_MissingFields(t *testing.T) {
	service, mockRepo := setupTestService()

	msg, err := service.Send(&types.SendMessageRequest{
		FirstName: "Jane",
		Email:     "jane@example.com",
	})

	assert.Nil(t, msg)
	assert.Equal(t, "Please fill the full form!", err.Error())
	mockRepo.AssertNotCalled(t, "CreateMessage", mock.Anything)
}
