package ports

import (
	"context"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

// UserRepository is the credential store: email → {email, password hash}.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has this email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create returns domain.ErrUserExists on a unique email violation.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes a user. Only used to compensate a failed registration.
	Delete(ctx context.Context, id string) error
}
