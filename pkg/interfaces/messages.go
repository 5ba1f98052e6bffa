package interfaces

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// MessageService defines the interface for contact-form messages
type MessageService interface {
	Send(req *types.SendMessageRequest) (*types.Message, error)
	List() ([]*types.Message, error)
}

// MessageRepository defines the interface for message persistence.
// Messages are append-only and listed newest first.
type MessageRepository interface {
	CreateMessage(msg *types.Message) error
	GetMessages() ([]*types.Message, error)
}
