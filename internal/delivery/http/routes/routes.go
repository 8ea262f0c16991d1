package routes

import (
	"net/http"

	"intern-match/internal/delivery/http/handler"
	v1 "intern-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Registry struct {
	health  *handler.HealthHandler
	metrics http.Handler
	ws      interface{ RegisterRoutes(r fiber.Router) }
	v1      v1.Handlers
}

// NewRegistry collects the top-level routes. metrics and ws may be nil.
func NewRegistry(health *handler.HealthHandler, metrics http.Handler, ws interface{ RegisterRoutes(r fiber.Router) }, api v1.Handlers) *Registry {
	return &Registry{health: health, metrics: metrics, ws: ws, v1: api}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerMetrics(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerMetrics(app *fiber.App) {
	if r.metrics == nil {
		return
	}
	app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil {
		return
	}
	r.ws.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}
