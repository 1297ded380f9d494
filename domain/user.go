package domain

import "time"

// User represents an authenticated identity. Its ID is the owner scope for
// every task query and mutation.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
