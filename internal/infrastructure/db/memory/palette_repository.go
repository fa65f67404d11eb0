package memory

import (
	"context"
	"sync"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

// PaletteRepository keeps palettes in insertion order. Every mutation is
// applied under one lock, matching the single-document atomicity of the
// Mongo implementation.
type PaletteRepository struct {
	mu       sync.RWMutex
	palettes []*domain.Palette
}

func NewPaletteRepository() *PaletteRepository {
	return &PaletteRepository{}
}

func (r *PaletteRepository) FindByUser(_ context.Context, userID string) (*domain.Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.palettes {
		if p.UserID == userID {
			return clonePalette(p), nil
		}
	}
	return nil, nil
}

func (r *PaletteRepository) FindByID(_ context.Context, paletteID string) (*domain.Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.byID(paletteID)
	if p == nil {
		return nil, domain.ErrPaletteNotFound
	}
	return clonePalette(p), nil
}

func (r *PaletteRepository) Create(_ context.Context, palette *domain.Palette) (*domain.Palette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := clonePalette(palette)
	p.ID = domain.NewID()
	r.palettes = append(r.palettes, p)
	return clonePalette(p), nil
}

func (r *PaletteRepository) PushProgram(_ context.Context, paletteID string, program domain.Program) (*domain.Palette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.byID(paletteID)
	if p == nil {
		return nil, domain.ErrPaletteNotFound
	}
	p.TVPrograms = append(p.TVPrograms, program)
	return clonePalette(p), nil
}

func (r *PaletteRepository) PrependProgram(_ context.Context, userID string, program domain.Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.palettes {
		if p.UserID == userID {
			p.TVPrograms = append([]domain.Program{program}, p.TVPrograms...)
			return nil
		}
	}
	return domain.ErrPaletteNotFound
}

func (r *PaletteRepository) UpdateProgram(_ context.Context, paletteID, programID string, program domain.Program) (*domain.UpdateAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ack := &domain.UpdateAck{Acknowledged: true}
	p := r.byID(paletteID)
	if p == nil {
		return ack, nil
	}
	for i := range p.TVPrograms {
		if p.TVPrograms[i].ID != programID {
			continue
		}
		ack.MatchedCount = 1
		program.ID = programID
		if p.TVPrograms[i] != program {
			p.TVPrograms[i] = program
			ack.ModifiedCount = 1
		}
		break
	}
	return ack, nil
}

func (r *PaletteRepository) PullProgram(_ context.Context, paletteID, programID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p := r.byID(paletteID); p != nil {
		p.TVPrograms = filter(p.TVPrograms, func(prog domain.Program) bool { return prog.ID != programID })
	}
	return nil
}

func (r *PaletteRepository) PushCategory(_ context.Context, paletteID string, category domain.Category) (*domain.Palette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.byID(paletteID)
	if p == nil {
		return nil, domain.ErrPaletteNotFound
	}
	p.Categories = append(p.Categories, category)
	return clonePalette(p), nil
}

func (r *PaletteRepository) PullCategory(_ context.Context, paletteID, categoryID string) (*domain.Palette, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.byID(paletteID)
	if p == nil {
		return nil, nil
	}
	if _, ok := p.FindCategory(categoryID); !ok {
		return nil, nil
	}
	p.Categories = filter(p.Categories, func(c domain.Category) bool { return c.ID != categoryID })
	return clonePalette(p), nil
}

// Len returns the number of stored palettes.
func (r *PaletteRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.palettes)
}

func (r *PaletteRepository) byID(id string) *domain.Palette {
	for _, p := range r.palettes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clonePalette(p *domain.Palette) *domain.Palette {
	clone := *p
	clone.TVPrograms = append([]domain.Program{}, p.TVPrograms...)
	clone.Categories = append([]domain.Category{}, p.Categories...)
	return &clone
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
