package app

import (
	"context"
	"fmt"
	"strings"

	"intern-match/internal/config"
	"intern-match/internal/delivery/http/handler"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/delivery/http/routes"
	v1 "intern-match/internal/delivery/http/routes/v1"
	"intern-match/internal/metrics"
	"intern-match/internal/usecase"
	"intern-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// multipart framing on top of the file itself
const bodyOverhead = 1 << 20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.App.MaxUploadBytes + bodyOverhead,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app, and starts the
// websocket hub. The returned cleanup stops the hub and closes storage.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	var dbPinger handler.Pinger
	if c.DB != nil {
		dbPinger = c.DB
	}
	services := map[string]handler.Pinger{"database": dbPinger, "cache": c.Cache}

	authMw := middleware.NewAuthMiddleware(c.JWT).Middleware()
	api := v1.Handlers{
		Auth:    handler.NewAuthHandler(c.AuthUC, authMw),
		Resume:  handler.NewResumeHandler(c.ResumeUC, int64(c.Config.App.MaxUploadBytes)),
		Profile: handler.NewProfileHandler(c.ProfileUC),
		Match:   handler.NewMatchHandler(c.MatchingUC),
		Stats:   handler.NewStatsHandler(c.StatsUC),
	}

	routes.NewRegistry(
		handler.NewHealthHandler(services),
		metrics.Handler(c.Registry),
		ws.NewHandler(c.Hub, c.Logger, usecase.EventCandidateCreated, usecase.EventPostingCreated),
		api,
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
