package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Duration is the running time of a program.
type Duration struct {
	Minutes int `json:"minutes" bson:"minutes"`
	Seconds int `json:"seconds" bson:"seconds"`
}

// Program is a single scheduled item embedded in a palette.
// Category is free-form; by convention it matches a Category.Name.
type Program struct {
	ID       string   `json:"_id"`
	Filename string   `json:"filename"`
	Duration Duration `json:"duration"`
	Category string   `json:"category"`
	Info     string   `json:"info,omitempty"`
}

// Category is a named, coloured tag embedded in a palette.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Palette is the user-owned aggregate root.
type Palette struct {
	ID         string     `json:"_id"`
	UserID     string     `json:"user"`
	TVPrograms []Program  `json:"tvPrograms"`
	Categories []Category `json:"categories"`
}

// HasCategoryNamed reports whether a category with exactly this name exists.
func (p *Palette) HasCategoryNamed(name string) bool {
	for _, c := range p.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// FindProgram returns the embedded program with the given id.
func (p *Palette) FindProgram(id string) (Program, bool) {
	for _, prog := range p.TVPrograms {
		if prog.ID == id {
			return prog, true
		}
	}
	return Program{}, false
}

// FindCategory returns the embedded category with the given id.
func (p *Palette) FindCategory(id string) (Category, bool) {
	for _, c := range p.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// UpdateAck is the store-level acknowledgement of a positional update.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// ExampleProgram is the entry seeded into palettes created on demand.
func ExampleProgram() Program {
	return Program{
		Filename: "POR",
		Duration: Duration{Minutes: 2, Seconds: 3},
		Category: "promo",
	}
}

// NewID generates a fresh identifier for users, palettes and embedded entries.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether id is a well-formed identifier (24 hex chars).
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
