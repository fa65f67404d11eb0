package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tvpalette/palette-api/internal/core/domain"
	"github.com/tvpalette/palette-api/internal/core/ports"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest password bcrypt hashes. The limit is in
// bytes, so multi-byte passwords reach it with fewer characters.
const MaxPasswordBytes = 72

// AuthService implements registration and login.
type AuthService struct {
	users      ports.UserRepository
	palettes   ports.PaletteRepository
	tokens     ports.TokenService
	tx         ports.Transactor
	bcryptCost int
	log        zerolog.Logger
}

type AuthServiceOption func(*AuthService)

// WithBcryptCost overrides the password hashing work factor.
func WithBcryptCost(cost int) AuthServiceOption {
	return func(s *AuthService) {
		if cost > 0 {
			s.bcryptCost = cost
		}
	}
}

// WithTransactor runs the user + palette writes of a registration through tx.
func WithTransactor(tx ports.Transactor) AuthServiceOption {
	return func(s *AuthService) {
		if tx != nil {
			s.tx = tx
		}
	}
}

func NewAuthService(
	users ports.UserRepository,
	palettes ports.PaletteRepository,
	tokens ports.TokenService,
	log zerolog.Logger,
	opts ...AuthServiceOption,
) *AuthService {
	s := &AuthService{
		users:      users,
		palettes:   palettes,
		tokens:     tokens,
		tx:         noTransaction{},
		bcryptCost: DefaultBcryptCost,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register hashes the password, creates the user and an empty palette owned
// by it. If the palette cannot be created the user is removed again, so a
// failed registration can be retried with the same email.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("register: %w: email and password are required", domain.ErrValidation)
	}
	if len(password) > MaxPasswordBytes {
		return nil, fmt.Errorf("register: %w: password exceeds %d bytes", domain.ErrValidation, MaxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w: %v", domain.ErrHashingFailure, err)
	}

	var created *domain.User
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.users.Create(ctx, &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		if _, err := s.palettes.Create(ctx, &domain.Palette{UserID: user.ID}); err != nil {
			if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
				s.log.Error().Err(delErr).Str("user_id", user.ID).Msg("compensating user delete failed")
			}
			return fmt.Errorf("create palette: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login checks the credentials and issues a token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &ports.LoginResult{Email: user.Email, Token: token}, nil
}

type noTransaction struct{}

func (noTransaction) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
