package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

const (
	serviceUp       = "up"
	serviceDown     = "down"
	serviceDisabled = "disabled"
)

// Pinger reports whether a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	services map[string]Pinger
	timeout  time.Duration
	now      func() time.Time
}

// NewHealthHandler takes the optional backing services by name. A nil
// pinger is reported as disabled.
func NewHealthHandler(services map[string]Pinger) *HealthHandler {
	return &HealthHandler{services: services, timeout: 2 * time.Second, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	status := "healthy"
	services := make(map[string]string, len(h.services)+1)
	services["api"] = serviceUp
	for name, p := range h.services {
		if p == nil {
			services[name] = serviceDisabled
			continue
		}
		if err := p.Ping(ctx); err != nil {
			services[name] = serviceDown
			status = "degraded"
			continue
		}
		services[name] = serviceUp
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    status,
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"services":  services,
	})
}
