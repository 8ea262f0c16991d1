package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *log.Logger
	now    func() time.Time
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger, now: time.Now}
}

// Middleware tags every request with an X-Request-ID (kept when the client
// sends one) and writes one access line after the handler chain returns.
// Errors are logged with the status the error middleware rendered, so it
// must be installed before ErrorMiddleware.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := m.now()

		rid := c.Get(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(headerRequestID, rid)

		err := c.Next()

		m.logger.Printf(
			"[HTTP] access rid=%s ip=%s method=%s path=%s status=%d latency=%s req_bytes=%d resp_bytes=%d ua=%q",
			rid,
			c.IP(),
			c.Method(),
			c.OriginalURL(),
			c.Response().StatusCode(),
			m.now().Sub(start),
			len(c.Body()),
			len(c.Response().Body()),
			c.Get(fiber.HeaderUserAgent),
		)
		return err
	}
}
