package model

import (
	"errors"

	"github.com/google/uuid"
)

// User is read-only from this service's perspective: account management
// lives elsewhere, only the display name is ever read here.
type User struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

var ErrUserNotFound = errors.New("user not found")

// GetUserResponse wraps the single-user read.
type GetUserResponse struct {
	User *User `json:"user"`
}
