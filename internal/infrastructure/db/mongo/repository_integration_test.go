//go:build integration

package mongo

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tvpalette/palette-api/internal/core/domain"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("docker not available")
	}

	ctx = context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	client, db, err := Connect(ctx, Config{
		URI:      fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Database: "tv_palette_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestUserRepository_Integration(t *testing.T) {
	db := startMongo(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.True(t, domain.IsValidID(created.ID))

	_, err = repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "h", found.PasswordHash)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByEmail(ctx, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPaletteRepository_Integration(t *testing.T) {
	db := startMongo(t)
	repo := NewPaletteRepository(db)
	ctx := context.Background()
	userID := domain.NewID()

	p, err := repo.Create(ctx, &domain.Palette{UserID: userID})
	require.NoError(t, err)
	assert.Empty(t, p.TVPrograms)

	byUser, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, byUser)
	assert.Equal(t, p.ID, byUser.ID)

	none, err := repo.FindByUser(ctx, domain.NewID())
	require.NoError(t, err)
	assert.Nil(t, none)

	progID := domain.NewID()
	updated, err := repo.PushProgram(ctx, p.ID, domain.Program{ID: progID, Filename: "a.mp4", Category: "promo"})
	require.NoError(t, err)
	require.Len(t, updated.TVPrograms, 1)
	assert.Equal(t, progID, updated.TVPrograms[0].ID)

	_, err = repo.PushProgram(ctx, domain.NewID(), domain.Program{ID: domain.NewID()})
	assert.ErrorIs(t, err, domain.ErrPaletteNotFound)

	require.NoError(t, repo.PrependProgram(ctx, userID, domain.Program{ID: domain.NewID(), Filename: "head.mp4"}))
	assert.ErrorIs(t, repo.PrependProgram(ctx, domain.NewID(), domain.Program{}), domain.ErrPaletteNotFound)

	ack, err := repo.UpdateProgram(ctx, p.ID, progID, domain.Program{Filename: "b.mp4", Duration: domain.Duration{Minutes: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ack.MatchedCount)

	// setting info and then editing without it leaves no info field behind
	_, err = repo.UpdateProgram(ctx, p.ID, progID, domain.Program{Filename: "b.mp4", Info: "late show"})
	require.NoError(t, err)
	_, err = repo.UpdateProgram(ctx, p.ID, progID, domain.Program{Filename: "b.mp4", Duration: domain.Duration{Minutes: 1}})
	require.NoError(t, err)

	pid, err := objectID(p.ID)
	require.NoError(t, err)
	var raw struct {
		TVPrograms []bson.M `bson:"tvPrograms"`
	}
	require.NoError(t, repo.coll.FindOne(ctx, bson.M{"_id": pid}).Decode(&raw))
	for _, prog := range raw.TVPrograms {
		assert.NotContains(t, prog, "info")
	}

	ack, err = repo.UpdateProgram(ctx, p.ID, domain.NewID(), domain.Program{Filename: "c.mp4"})
	require.NoError(t, err)
	assert.Zero(t, ack.MatchedCount)

	stored, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, stored.TVPrograms, 2)
	assert.Equal(t, "head.mp4", stored.TVPrograms[0].Filename)
	assert.Equal(t, "b.mp4", stored.TVPrograms[1].Filename)

	require.NoError(t, repo.PullProgram(ctx, p.ID, progID))

	catID := domain.NewID()
	withCat, err := repo.PushCategory(ctx, p.ID, domain.Category{ID: catID, Name: "promo", Color: "#fff"})
	require.NoError(t, err)
	require.Len(t, withCat.Categories, 1)

	missing, err := repo.PullCategory(ctx, p.ID, domain.NewID())
	require.NoError(t, err)
	assert.Nil(t, missing)

	pulled, err := repo.PullCategory(ctx, p.ID, catID)
	require.NoError(t, err)
	require.NotNil(t, pulled)
	assert.Empty(t, pulled.Categories)
	assert.Len(t, pulled.TVPrograms, 1)
}
