package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

// UserRepository is the read-only store boundary for users.
type UserRepository interface {
	// FindByID fetches a user by id. Returns model.ErrUserNotFound when
	// no such user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
