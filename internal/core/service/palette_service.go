package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tvpalette/palette-api/internal/core/domain"
	"github.com/tvpalette/palette-api/internal/core/ports"
)

// PaletteService implements the palette mutation engine.
type PaletteService struct {
	repo   ports.PaletteRepository
	locker ports.PaletteLocker
	log    zerolog.Logger
}

// NewPaletteService returns a PaletteService. A nil locker leaves
// InsertCategory's check-then-insert unguarded.
func NewPaletteService(repo ports.PaletteRepository, locker ports.PaletteLocker, log zerolog.Logger) *PaletteService {
	if locker == nil {
		locker = noLock{}
	}
	return &PaletteService{repo: repo, locker: locker, log: log}
}

func (s *PaletteService) FetchPalette(ctx context.Context, userID string) (*domain.Palette, error) {
	p, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch palette: %w", err)
	}
	return p, nil
}

// CreatePalette inserts a new palette for userID. Existing palettes of the
// same user are not checked.
func (s *PaletteService) CreatePalette(ctx context.Context, userID string, seed []ports.ProgramInput) (*domain.Palette, error) {
	programs := make([]domain.Program, 0, len(seed))
	for _, in := range seed {
		programs = append(programs, newProgram(in))
	}

	p, err := s.repo.Create(ctx, &domain.Palette{
		UserID:     userID,
		TVPrograms: programs,
		Categories: []domain.Category{},
	})
	if err != nil {
		return nil, fmt.Errorf("create palette: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("palette_id", p.ID).Msg("palette created")
	return p, nil
}

// AddProgram appends a program with a fresh id to the tail of the list.
func (s *PaletteService) AddProgram(ctx context.Context, paletteID string, in ports.ProgramInput) (*domain.Palette, error) {
	if err := validateIDs(paletteID); err != nil {
		return nil, err
	}

	p, err := s.repo.PushProgram(ctx, paletteID, newProgram(in))
	if err != nil {
		return nil, fmt.Errorf("add program: %w", err)
	}
	return p, nil
}

// EditProgram overwrites filename, duration, category and info of one
// embedded program. A zero MatchedCount is returned as-is.
func (s *PaletteService) EditProgram(ctx context.Context, paletteID, programID string, in ports.ProgramInput) (*domain.UpdateAck, error) {
	if err := validateIDs(paletteID, programID); err != nil {
		return nil, err
	}

	prog := newProgram(in)
	prog.ID = programID

	ack, err := s.repo.UpdateProgram(ctx, paletteID, programID, prog)
	if err != nil {
		return nil, fmt.Errorf("edit program: %w", err)
	}
	if ack.MatchedCount == 0 {
		s.log.Debug().Str("palette_id", paletteID).Str("program_id", programID).Msg("edit matched no program")
	}
	return ack, nil
}

// DeleteProgram pulls the program from the palette. Nothing matching is not an error.
func (s *PaletteService) DeleteProgram(ctx context.Context, paletteID, programID string) error {
	if err := validateIDs(paletteID, programID); err != nil {
		return err
	}

	if err := s.repo.PullProgram(ctx, paletteID, programID); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

// ReplaceProgramsFront puts one program at the head of the caller's list.
// The fields are taken as supplied.
func (s *PaletteService) ReplaceProgramsFront(ctx context.Context, userID string, in ports.ProgramInput) error {
	if err := s.repo.PrependProgram(ctx, userID, newProgram(in)); err != nil {
		return fmt.Errorf("prepend program: %w", err)
	}
	return nil
}

// InsertCategory appends a category unless one with the same name exists.
// The duplicate check and the append are two store round trips; without a
// locker two concurrent inserts of the same name can both succeed.
func (s *PaletteService) InsertCategory(ctx context.Context, paletteID string, in ports.CategoryInput) (*domain.Palette, error) {
	if err := validateIDs(paletteID); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, paletteID)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	defer unlock()

	p, err := s.repo.FindByID(ctx, paletteID)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	if p.HasCategoryNamed(in.Name) {
		return nil, domain.ErrDuplicateCategory
	}

	updated, err := s.repo.PushCategory(ctx, paletteID, domain.Category{
		ID:    domain.NewID(),
		Name:  in.Name,
		Color: in.Color,
	})
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return updated, nil
}

// DeleteCategory removes exactly the category whose id matches.
func (s *PaletteService) DeleteCategory(ctx context.Context, paletteID, categoryID string) (*domain.Palette, error) {
	if err := validateIDs(paletteID, categoryID); err != nil {
		return nil, err
	}

	updated, err := s.repo.PullCategory(ctx, paletteID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	if updated != nil {
		return updated, nil
	}

	// Nothing pulled: tell a missing palette apart from a missing category.
	if _, err := s.repo.FindByID(ctx, paletteID); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return nil, domain.ErrCategoryNotFound
}

func newProgram(in ports.ProgramInput) domain.Program {
	return domain.Program{
		ID:       domain.NewID(),
		Filename: in.Filename,
		Duration: domain.Duration{Minutes: in.Duration.Minutes, Seconds: in.Duration.Seconds},
		Category: in.Category,
		Info:     in.Info,
	}
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if !domain.IsValidID(id) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
		}
	}
	return nil
}

type noLock struct{}

func (noLock) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}
