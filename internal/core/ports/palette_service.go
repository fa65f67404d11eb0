package ports

import (
	"context"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

// DurationInput holds a program's running time.
type DurationInput struct {
	Minutes int
	Seconds int
}

// ProgramInput carries the client-editable fields of a program.
type ProgramInput struct {
	Filename string
	Duration DurationInput
	Category string
	Info     string
}

// CategoryInput carries the fields of a new category.
type CategoryInput struct {
	Name  string
	Color string
}

// PaletteService is the palette mutation engine. Every operation acts on
// behalf of an already authenticated user.
type PaletteService interface {
	FetchPalette(ctx context.Context, userID string) (*domain.Palette, error)
	CreatePalette(ctx context.Context, userID string, seed []ProgramInput) (*domain.Palette, error)

	AddProgram(ctx context.Context, paletteID string, in ProgramInput) (*domain.Palette, error)
	EditProgram(ctx context.Context, paletteID, programID string, in ProgramInput) (*domain.UpdateAck, error)
	DeleteProgram(ctx context.Context, paletteID, programID string) error
	ReplaceProgramsFront(ctx context.Context, userID string, in ProgramInput) error

	InsertCategory(ctx context.Context, paletteID string, in CategoryInput) (*domain.Palette, error)
	DeleteCategory(ctx context.Context, paletteID, categoryID string) (*domain.Palette, error)
}
