package main

import (
	"context"
	"fmt"
	"net"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tvpalette/palette-api/internal/api"
	"github.com/tvpalette/palette-api/internal/core/ports"
	"github.com/tvpalette/palette-api/internal/core/service"
	"github.com/tvpalette/palette-api/internal/infrastructure/config"
	"github.com/tvpalette/palette-api/internal/infrastructure/db/memory"
	"github.com/tvpalette/palette-api/internal/infrastructure/db/mongo"
	"github.com/tvpalette/palette-api/internal/infrastructure/db/redis"
	httpserver "github.com/tvpalette/palette-api/internal/infrastructure/http"
	"github.com/tvpalette/palette-api/internal/infrastructure/http/handlers"
)

// app owns the process-wide resources: store connections and the router.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	router  *echo.Echo
	closers []func(context.Context) error
}

// stores groups the repositories selected by STORE_DRIVER.
type stores struct {
	users    ports.UserRepository
	palettes ports.PaletteRepository
	tx       ports.Transactor
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}
	readiness := handlers.NewHealthDependenciesHandler()

	st, err := a.openStores(ctx, readiness)
	if err != nil {
		a.close()
		return nil, err
	}

	var locker ports.PaletteLocker
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		readiness.With("redis", handlers.RedisCheck(rdb))

		if cfg.Redis.LockEnabled {
			locker = redis.NewPaletteLocker(rdb, cfg.Redis.LockTTL, log)
			log.Info().Dur("ttl", cfg.Redis.LockTTL).Msg("palette lock enabled")
		}
	}

	tokens, err := service.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	if err != nil {
		a.close()
		return nil, err
	}

	a.router = api.NewRouter(api.Deps{
		Auth: service.NewAuthService(st.users, st.palettes, tokens, log,
			service.WithBcryptCost(cfg.Auth.BcryptCost),
			service.WithTransactor(st.tx),
		),
		Palettes:    service.NewPaletteService(st.palettes, locker, log),
		Tokens:      tokens,
		Readiness:   readiness,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})
	return a, nil
}

func (a *app) openStores(ctx context.Context, readiness *handlers.HealthDependenciesHandler) (*stores, error) {
	if a.cfg.UsesMemoryStore() {
		a.log.Warn().Msg("using in-memory store; data is lost on exit")
		return &stores{
			users:    memory.NewUserRepository(),
			palettes: memory.NewPaletteRepository(),
		}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: a.cfg.Mongo.URI, Database: a.cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Disconnect)
	readiness.With("mongodb", handlers.MongoCheck(db))

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	a.log.Info().Str("database", a.cfg.Mongo.Database).Bool("transactions", a.cfg.Mongo.Transactions).Msg("connected to mongodb")
	return &stores{
		users:    mongo.NewUserRepository(db),
		palettes: mongo.NewPaletteRepository(db),
		tx:       mongo.NewTransactor(client, a.cfg.Mongo.Transactions),
	}, nil
}

func (a *app) run(ctx context.Context) error {
	addr := net.JoinHostPort("", a.cfg.Port)
	return httpserver.Serve(ctx, a.router, addr, a.cfg.ShutdownTimeout, a.log)
}

// close releases connections in reverse order of opening. Safe to call twice.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn().Err(err).Msg("closing resource")
		}
	}
	a.closers = nil
}
