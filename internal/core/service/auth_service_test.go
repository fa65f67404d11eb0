package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tvpalette/palette-api/internal/core/domain"
	"github.com/tvpalette/palette-api/internal/infrastructure/db/memory"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = domain.NewID()
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
		}
	}
	return nil
}

// failingPalettes fails every Create; the embedded repository serves the rest.
type failingPalettes struct {
	*memory.PaletteRepository
}

func (failingPalettes) Create(context.Context, *domain.Palette) (*domain.Palette, error) {
	return nil, errors.New("palette store down")
}

type recordingTx struct {
	calls int
}

func (tx *recordingTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func newAuthService(t *testing.T, users *stubAuthRepo, palettes *memory.PaletteRepository) *AuthService {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return NewAuthService(users, palettes, tokens, zerolog.Nop(), WithBcryptCost(bcrypt.MinCost))
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	palettes := memory.NewPaletteRepository()
	svc := newAuthService(t, repo, palettes)

	user, err := svc.Register(context.Background(), "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user == nil || user.ID == "" {
		t.Fatalf("expected user with id, got %+v", user)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	p, err := palettes.FindByUser(context.Background(), user.ID)
	if err != nil || p == nil {
		t.Fatalf("expected a palette for the new user, got %v (err %v)", p, err)
	}
	if len(p.TVPrograms) != 0 || len(p.Categories) != 0 {
		t.Fatalf("expected empty palette, got %+v", p)
	}
}

func TestAuthService_Register_DefaultCostIsTen(t *testing.T) {
	tokens, _ := NewTokenService("secret", time.Hour)
	svc := NewAuthService(newStubAuthRepo(), memory.NewPaletteRepository(), tokens, zerolog.Nop())

	user, err := svc.Register(context.Background(), "cost@example.com", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	if err != nil || cost != 10 {
		t.Fatalf("expected cost 10, got %d (%v)", cost, err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(t, newStubAuthRepo(), memory.NewPaletteRepository())

	if _, err := svc.Register(context.Background(), "", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob@example.com", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_PasswordLimitIsInBytes(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(t, repo, memory.NewPaletteRepository())

	// 72 characters, 144 bytes
	long := strings.Repeat("\u00e9", 72)
	if _, err := svc.Register(context.Background(), "bob@example.com", long); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	atLimit := strings.Repeat("\u00e9", MaxPasswordBytes/2)
	if _, err := svc.Register(context.Background(), "bob@example.com", atLimit); err != nil {
		t.Fatalf("expected a 72-byte password to register, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	palettes := memory.NewPaletteRepository()
	svc := newAuthService(t, repo, palettes)

	_, _ = svc.Register(context.Background(), "bob@example.com", "pass")
	if _, err := svc.Register(context.Background(), "bob@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.users))
	}
	if palettes.Len() != 1 {
		t.Fatalf("expected exactly one palette, got %d", palettes.Len())
	}
}

func TestAuthService_Register_PaletteFailureCompensates(t *testing.T) {
	repo := newStubAuthRepo()
	tokens, _ := NewTokenService("secret", time.Hour)
	tx := &recordingTx{}
	svc := NewAuthService(repo, failingPalettes{memory.NewPaletteRepository()}, tokens, zerolog.Nop(),
		WithBcryptCost(bcrypt.MinCost), WithTransactor(tx))

	if _, err := svc.Register(context.Background(), "erin@example.com", "pw"); err == nil {
		t.Fatalf("expected error when palette creation fails")
	}
	if tx.calls != 1 {
		t.Fatalf("expected registration to run through the transactor once, got %d", tx.calls)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected user to be removed after failed palette creation")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newAuthService(t, repo, memory.NewPaletteRepository())

	registered, err := svc.Register(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	res, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" || res.Email != "carol@example.com" {
		t.Fatalf("unexpected login result: %+v", res)
	}

	tokens, _ := NewTokenService("secret", time.Hour)
	v := tokens.Verify(res.Token)
	if !v.OK() {
		t.Fatalf("token invalid: %s", v.Status)
	}
	if v.Identity.UserID != registered.ID || v.Identity.Email != "carol@example.com" {
		t.Fatalf("unexpected identity: %+v", v.Identity)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(t, newStubAuthRepo(), memory.NewPaletteRepository())

	_, _ = svc.Register(context.Background(), "dave@example.com", "goodpass")
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(t, newStubAuthRepo(), memory.NewPaletteRepository())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
