package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/tvpalette/palette-api/internal/api/handler"
	"github.com/tvpalette/palette-api/internal/api/middleware"
	"github.com/tvpalette/palette-api/internal/core/ports"
	"github.com/tvpalette/palette-api/internal/infrastructure/http/handlers"

	_ "github.com/tvpalette/palette-api/docs"
)

// Deps carries everything the router needs. Services are constructed by the
// caller; the router only wires them to routes.
type Deps struct {
	Auth     ports.AuthService
	Palettes ports.PaletteService
	Tokens   ports.TokenService
	// Readiness reports dependency health on /health/ready. Nil means no
	// dependencies are checked.
	Readiness   *handlers.HealthDependenciesHandler
	CORSOrigins []string
	Log         zerolog.Logger
	// Registry receives the HTTP request metrics and serves /metrics.
	// Nil uses the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.JSONSerializer{}
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(d.CORSOrigins),
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderXRequestedWith, "Content",
			echo.HeaderAccept, echo.HeaderContentType, echo.HeaderAuthorization,
		},
	}))

	metricsMW, metricsHandler := prometheusHandlers(d.Registry)
	e.Use(metricsMW)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	paletteHandler := handler.NewPaletteHandler(d.Palettes)
	authMW := middleware.Auth(d.Tokens)

	// --- Public routes ---
	e.GET("/", authHandler.Root)
	e.GET("/free-endpoint", authHandler.Free)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Operational routes ---
	readiness := d.Readiness
	if readiness == nil {
		readiness = handlers.NewHealthDependenciesHandler()
	}
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Protected routes ---
	// Attached per route: a group with an empty prefix would also match
	// unknown paths and turn 404s into 401s.
	e.GET("/auth-endpoint", authHandler.Authorized, authMW)
	e.GET("/fetch-palette", paletteHandler.Fetch, authMW)
	e.POST("/auth-endpoint-post", paletteHandler.Create, authMW)
	e.PUT("/auth-endpoint-post", paletteHandler.PrependProgram, authMW)
	e.POST("/:paletteId/programs", paletteHandler.AddProgram, authMW)
	e.PUT("/:paletteId/edit/:progId", paletteHandler.EditProgram, authMW)
	e.DELETE("/:paletteId/programs/:programId", paletteHandler.DeleteProgram, authMW)
	e.POST("/:paletteId/insert-new-category", paletteHandler.InsertCategory, authMW)
	e.DELETE("/:paletteId/delete-category/:categoryId", paletteHandler.DeleteCategory, authMW)

	return e
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

func prometheusHandlers(reg *prometheus.Registry) (echo.MiddlewareFunc, echo.HandlerFunc) {
	skipMetrics := func(c echo.Context) bool {
		return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
	}

	if reg == nil {
		mw := echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem: "tv_palette",
			Skipper:   skipMetrics,
		})
		return mw, echoprometheus.NewHandler()
	}

	mw := echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tv_palette",
		Skipper:    skipMetrics,
		Registerer: reg,
	})
	return mw, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
