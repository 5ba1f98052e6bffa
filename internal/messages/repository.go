package messages

import (
	"github.com/Lah112/Hospital-Management-System-Final/pkg/database"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// Repository implements the MessageRepository interface
type Repository struct {
	db     *database.DB
	logger *logger.Logger
}

// NewRepository creates a new message repository
func NewRepository(db *database.DB, log *logger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: log,
	}
}

// CreateMessage stores a contact-form submission
func (r *Repository) CreateMessage(msg *types.Message) error {
	query := `
		INSERT INTO messages (id, first_name, last_name, email, phone, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		msg.ID,
		msg.FirstName,
		msg.LastName,
		msg.Email,
		msg.Phone,
		msg.Body,
		msg.CreatedAt,
	)

	if err != nil {
		r.logger.WithError(err).Error("Failed to create message")
		return database.Downgrade(err)
	}

	return nil
}

// GetMessages returns all messages, newest first
func (r *Repository) GetMessages() ([]*types.Message, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, body, created_at
		FROM messages
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.WithError(err).Error("Failed to query messages")
		return nil, database.Downgrade(err)
	}
	defer rows.Close()

	var msgs []*types.Message
	for rows.Next() {
		msg := &types.Message{}
		err := rows.Scan(
			&msg.ID,
			&msg.FirstName,
			&msg.LastName,
			&msg.Email,
			&msg.Phone,
			&msg.Body,
			&msg.CreatedAt,
		)
		if err != nil {
			r.logger.WithError(err).Error("Failed to scan message")
			return nil, types.NewInternalError("Internal Server Error", err)
		}
		msgs = append(msgs, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, types.NewInternalError("Internal Server Error", err)
	}

	return msgs, nil
}
