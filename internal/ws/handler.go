package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler upgrades GET /ws/profiles. Clients may narrow the stream with
// ?events=candidate_created,posting_created.
type Handler struct {
	hub      *Hub
	logger   *log.Logger
	upgrader websocket.Upgrader
	known    map[string]struct{}
}

func NewHandler(hub *Hub, logger *log.Logger, knownEvents ...string) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		known: make(map[string]struct{}, len(knownEvents)),
	}
	for _, e := range knownEvents {
		h.known[e] = struct{}{}
	}
	return h
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/ws/profiles", h.HandleProfilesWS)
}

func (h *Handler) HandleProfilesWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	kinds, ok := h.parseEvents(c.Query("events"))
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Unknown event type")
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Printf("[WS] upgrade error err=%v", err)
			return
		}

		client := NewClient(h.hub, conn, kinds)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})(c)
}

// parseEvents splits a comma list of event kinds. With no known set
// configured every kind is accepted.
func (h *Handler) parseEvents(raw string) ([]string, bool) {
	var kinds []string
	for _, part := range strings.Split(raw, ",") {
		k := strings.ToLower(strings.TrimSpace(part))
		if k == "" {
			continue
		}
		if len(h.known) > 0 {
			if _, ok := h.known[k]; !ok {
				return nil, false
			}
		}
		kinds = append(kinds, k)
	}
	return kinds, true
}
