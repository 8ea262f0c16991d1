package v1

import (
	"intern-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Resume  *handler.ResumeHandler
	Profile *handler.ProfileHandler
	Match   *handler.MatchHandler
	Stats   *handler.StatsHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(r)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Stats != nil {
		h.Stats.RegisterRoutes(r)
	}
}
