package ports

import (
	"context"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Email string
	Token string
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// TokenService issues and verifies signed, time-limited identity tokens.
type TokenService interface {
	Issue(userID, email string) (string, error)
	Verify(token string) domain.TokenVerification
}

// Transactor runs fn so that its writes commit or fail together when the
// backing store supports it. Implementations without transaction support
// simply invoke fn.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
