package types

import "time"

// Message represents a contact-form submission. Append-only.
type Message struct {
	ID        string    `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Body      string    `json:"message" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SendMessageRequest carries the contact form fields.
type SendMessageRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}
