package messages

import (
	"time"

	"github.com/google/uuid"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/interfaces"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Service implements the MessageService interface
type Service struct {
	logger     *logger.Logger
	repository interfaces.MessageRepository
}

// NewService creates a new message service
func NewService(repo interfaces.MessageRepository, log *logger.Logger) *Service {
	return &Service{
		logger:     log,
		repository: repo,
	}
}

// Send validates and stores a contact-form submission
func (s *Service) Send(req *types.SendMessageRequest) (*types.Message, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Phone == "" || req.Message == "" {
		return nil, types.NewValidationError("Please fill the full form!")
	}

	msg := &types.Message{
		ID:        uuid.New().String(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Body:      req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.repository.CreateMessage(msg); err != nil {
		return nil, err
	}

	s.logger.WithField("message_id", msg.ID).Info("Contact message received")
	return msg, nil
}

// List returns all messages, newest first
func (s *Service) List() ([]*types.Message, error) {
	return s.repository.GetMessages()
}
