package model

import "time"

// User represents a member of the user directory.
// UserName is the primary key and the login identifier.
// Email is optional but must be unique across the directory when present.
type User struct {
	UserName     string    `json:"user_name"`
	Name         *string   `json:"name,omitempty"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
