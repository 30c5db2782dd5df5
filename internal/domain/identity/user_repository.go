package identity

import (
	"context"

	"github.com/farmcore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll lists accounts across all farms, for administrators
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// Count counts accounts matching the filter, ignoring pagination
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
