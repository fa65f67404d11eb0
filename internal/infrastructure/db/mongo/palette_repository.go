package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

const palettesCollection = "palettes"

// PaletteRepository stores one document per palette with programs and
// categories embedded. Every mutation is a single-document update.
type PaletteRepository struct {
	coll *mongo.Collection
}

func NewPaletteRepository(db *mongo.Database) *PaletteRepository {
	return &PaletteRepository{coll: db.Collection(palettesCollection)}
}

type mongoProgram struct {
	ID       primitive.ObjectID `bson:"_id"`
	Filename string             `bson:"filename"`
	Duration domain.Duration    `bson:"duration"`
	Category string             `bson:"category"`
	Info     string             `bson:"info,omitempty"`
}

type mongoCategory struct {
	ID    primitive.ObjectID `bson:"_id"`
	Name  string             `bson:"name"`
	Color string             `bson:"color"`
}

type mongoPalette struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	User       primitive.ObjectID `bson:"user"`
	TVPrograms []mongoProgram     `bson:"tvPrograms"`
	Categories []mongoCategory    `bson:"categories"`
}

func (r *PaletteRepository) FindByUser(ctx context.Context, userID string) (*domain.Palette, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoPalette
	if err := r.coll.FindOne(ctx, bson.M{"user": uid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find palette by user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaletteRepository) FindByID(ctx context.Context, paletteID string) (*domain.Palette, error) {
	pid, err := objectID(paletteID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoPalette
	if err := r.coll.FindOne(ctx, bson.M{"_id": pid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaletteNotFound
		}
		return nil, fmt.Errorf("find palette: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaletteRepository) Create(ctx context.Context, palette *domain.Palette) (*domain.Palette, error) {
	uid, err := objectID(palette.UserID)
	if err != nil {
		return nil, err
	}

	doc := mongoPalette{
		ID:         primitive.NewObjectID(),
		User:       uid,
		TVPrograms: make([]mongoProgram, 0, len(palette.TVPrograms)),
		Categories: make([]mongoCategory, 0, len(palette.Categories)),
	}
	for _, p := range palette.TVPrograms {
		doc.TVPrograms = append(doc.TVPrograms, programDoc(p))
	}
	for _, c := range palette.Categories {
		doc.Categories = append(doc.Categories, categoryDoc(c))
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert palette: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaletteRepository) PushProgram(ctx context.Context, paletteID string, program domain.Program) (*domain.Palette, error) {
	pid, err := objectID(paletteID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$push": bson.M{"tvPrograms": programDoc(program)}}
	return r.findAndUpdate(ctx, bson.M{"_id": pid}, update, domain.ErrPaletteNotFound)
}

func (r *PaletteRepository) PrependProgram(ctx context.Context, userID string, program domain.Program) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrPaletteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"user": uid}, bson.M{
		"$push": bson.M{"tvPrograms": bson.M{
			"$each":     []mongoProgram{programDoc(program)},
			"$position": 0,
		}},
	})
	if err != nil {
		return fmt.Errorf("prepend program: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaletteNotFound
	}
	return nil
}

func (r *PaletteRepository) UpdateProgram(ctx context.Context, paletteID, programID string, program domain.Program) (*domain.UpdateAck, error) {
	pid, err := objectID(paletteID)
	if err != nil {
		return nil, err
	}
	progID, err := objectID(programID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": pid, "tvPrograms._id": progID},
		programUpdate(program),
	)
	if err != nil {
		return nil, fmt.Errorf("update program: %w", err)
	}

	return &domain.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// programUpdate rewrites the matched program in place. An empty info is
// removed rather than stored, so edited programs keep the shape of inserted ones.
func programUpdate(program domain.Program) bson.M {
	set := bson.M{
		"tvPrograms.$.filename": program.Filename,
		"tvPrograms.$.duration": program.Duration,
		"tvPrograms.$.category": program.Category,
	}
	if program.Info == "" {
		return bson.M{"$set": set, "$unset": bson.M{"tvPrograms.$.info": ""}}
	}
	set["tvPrograms.$.info"] = program.Info
	return bson.M{"$set": set}
}

func (r *PaletteRepository) PullProgram(ctx context.Context, paletteID, programID string) error {
	pid, err := objectID(paletteID)
	if err != nil {
		return err
	}
	progID, err := objectID(programID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": pid},
		bson.M{"$pull": bson.M{"tvPrograms": bson.M{"_id": progID}}},
	)
	if err != nil {
		return fmt.Errorf("pull program: %w", err)
	}
	return nil
}

func (r *PaletteRepository) PushCategory(ctx context.Context, paletteID string, category domain.Category) (*domain.Palette, error) {
	pid, err := objectID(paletteID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$push": bson.M{"categories": categoryDoc(category)}}
	return r.findAndUpdate(ctx, bson.M{"_id": pid}, update, domain.ErrPaletteNotFound)
}

func (r *PaletteRepository) PullCategory(ctx context.Context, paletteID, categoryID string) (*domain.Palette, error) {
	pid, err := objectID(paletteID)
	if err != nil {
		return nil, err
	}
	cid, err := objectID(categoryID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$pull": bson.M{"categories": bson.M{"_id": cid}}}
	return r.findAndUpdate(ctx, bson.M{"_id": pid, "categories._id": cid}, update, nil)
}

// EnsureIndexes creates the owner lookup index on the palettes collection.
// It is not unique: a user may end up with several palettes.
func (r *PaletteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}},
	})
	return err
}

// findAndUpdate applies update to the first document matching filter and
// returns it as it is after the update. When nothing matches it returns
// (nil, notFound).
func (r *PaletteRepository) findAndUpdate(ctx context.Context, filter, update bson.M, notFound error) (*domain.Palette, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoPalette
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("update palette: %w", err)
	}
	return doc.toDomain(), nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// orNewID parses id, generating a fresh ObjectID when it is empty or invalid.
func orNewID(id string) primitive.ObjectID {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return primitive.NewObjectID()
}

func programDoc(p domain.Program) mongoProgram {
	return mongoProgram{
		ID:       orNewID(p.ID),
		Filename: p.Filename,
		Duration: p.Duration,
		Category: p.Category,
		Info:     p.Info,
	}
}

func categoryDoc(c domain.Category) mongoCategory {
	return mongoCategory{ID: orNewID(c.ID), Name: c.Name, Color: c.Color}
}

func (d mongoPalette) toDomain() *domain.Palette {
	p := &domain.Palette{
		ID:         d.ID.Hex(),
		UserID:     d.User.Hex(),
		TVPrograms: make([]domain.Program, 0, len(d.TVPrograms)),
		Categories: make([]domain.Category, 0, len(d.Categories)),
	}
	for _, prog := range d.TVPrograms {
		p.TVPrograms = append(p.TVPrograms, domain.Program{
			ID:       prog.ID.Hex(),
			Filename: prog.Filename,
			Duration: prog.Duration,
			Category: prog.Category,
			Info:     prog.Info,
		})
	}
	for _, c := range d.Categories {
		p.Categories = append(p.Categories, domain.Category{
			ID:    c.ID.Hex(),
			Name:  c.Name,
			Color: c.Color,
		})
	}
	return p
}
