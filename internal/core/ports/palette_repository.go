package ports

import (
	"context"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

// PaletteRepository persists palettes and performs atomic mutations on their
// embedded collections. Ids passed in are already validated by the caller.
type PaletteRepository interface {
	// FindByUser returns (nil, nil) when the user owns no palette.
	FindByUser(ctx context.Context, userID string) (*domain.Palette, error)
	// FindByID returns domain.ErrPaletteNotFound when absent.
	FindByID(ctx context.Context, paletteID string) (*domain.Palette, error)
	Create(ctx context.Context, palette *domain.Palette) (*domain.Palette, error)

	// PushProgram appends to tvPrograms and returns the updated palette,
	// or domain.ErrPaletteNotFound.
	PushProgram(ctx context.Context, paletteID string, program domain.Program) (*domain.Palette, error)
	// PrependProgram inserts at the head of tvPrograms of the palette owned by
	// userID. Returns domain.ErrPaletteNotFound when the user has no palette.
	PrependProgram(ctx context.Context, userID string, program domain.Program) error
	// UpdateProgram overwrites the embedded program matching both ids.
	// Zero matches is reported through the ack, not as an error.
	UpdateProgram(ctx context.Context, paletteID, programID string, program domain.Program) (*domain.UpdateAck, error)
	// PullProgram removes the embedded program; no error when nothing matched.
	PullProgram(ctx context.Context, paletteID, programID string) error

	// PushCategory appends to categories and returns the updated palette,
	// or domain.ErrPaletteNotFound.
	PushCategory(ctx context.Context, paletteID string, category domain.Category) (*domain.Palette, error)
	// PullCategory removes the embedded category and returns the updated
	// palette. Returns (nil, nil) when no palette contains that category.
	PullCategory(ctx context.Context, paletteID, categoryID string) (*domain.Palette, error)
}

// PaletteLocker serialises check-then-write sequences on a single palette.
type PaletteLocker interface {
	Lock(ctx context.Context, paletteID string) (unlock func(), err error)
}
