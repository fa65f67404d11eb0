package handler

import (
	"github.com/tvpalette/palette-api/internal/core/domain"
	"github.com/tvpalette/palette-api/internal/core/ports"
)

// messageResponse is the plain {"message": "..."} body of informational routes.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type durationRequest struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type programRequest struct {
	Filename string          `json:"filename" validate:"max=512"`
	Duration durationRequest `json:"duration"`
	Category string          `json:"category" validate:"max=128"`
	Info     string          `json:"info"     validate:"max=2048"`
}

// addProgramRequest accepts {"newProg": {...}} or the program fields at the top level.
type addProgramRequest struct {
	NewProg  *programRequest `json:"newProg"`
	Filename string          `json:"filename"`
	Duration durationRequest `json:"duration"`
	Category string          `json:"category"`
	Info     string          `json:"info"`
}

// editProgramRequest accepts {"updProg": {...}} or the program fields at the top level.
type editProgramRequest struct {
	UpdProg  *programRequest `json:"updProg"`
	Filename string          `json:"filename"`
	Duration durationRequest `json:"duration"`
	Category string          `json:"category"`
	Info     string          `json:"info"`
}

type categoryRequest struct {
	Name  string `json:"name"  validate:"required,max=128"`
	Color string `json:"color" validate:"max=64"`
}

// insertCategoryRequest accepts {"newCategory": {...}} or {name, color} at the top level.
type insertCategoryRequest struct {
	NewCategory *categoryRequest `json:"newCategory"`
	Name        string           `json:"name"`
	Color       string           `json:"color"`
}

type createPaletteResponse struct {
	Message string          `json:"message"`
	Palette *domain.Palette `json:"palette"`
}

func (r addProgramRequest) program() programRequest {
	if r.NewProg != nil {
		return *r.NewProg
	}
	return programRequest{Filename: r.Filename, Duration: r.Duration, Category: r.Category, Info: r.Info}
}

func (r editProgramRequest) program() programRequest {
	if r.UpdProg != nil {
		return *r.UpdProg
	}
	return programRequest{Filename: r.Filename, Duration: r.Duration, Category: r.Category, Info: r.Info}
}

func (r insertCategoryRequest) category() categoryRequest {
	if r.NewCategory != nil {
		return *r.NewCategory
	}
	return categoryRequest{Name: r.Name, Color: r.Color}
}

func (p programRequest) toInput() ports.ProgramInput {
	return ports.ProgramInput{
		Filename: p.Filename,
		Duration: ports.DurationInput{Minutes: p.Duration.Minutes, Seconds: p.Duration.Seconds},
		Category: p.Category,
		Info:     p.Info,
	}
}

func (c categoryRequest) toInput() ports.CategoryInput {
	return ports.CategoryInput{Name: c.Name, Color: c.Color}
}
