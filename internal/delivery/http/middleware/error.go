package middleware

import (
	"errors"
	"log"

	"intern-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries the status and user-facing message a handler wants
// rendered. Cause is logged for 5xx responses and never sent to clients.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("[HTTP] panic recovered method=%s path=%s err=%v", c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		rendered := render(err)
		if rendered.status >= fiber.StatusInternalServerError {
			m.logger.Printf("[HTTP] request failed method=%s path=%s err=%v", c.Method(), c.Path(), err)
		}
		return response.Error(c, rendered.status, rendered.message, rendered.data)
	}
}

type renderedError struct {
	status  int
	message string
	data    interface{}
}

var internalError = renderedError{
	status:  fiber.StatusInternalServerError,
	message: response.MessageInternalServerError,
}

// render maps AppError and fiber.Error (body limit, unknown route) onto the
// envelope. Anything else, and every 5xx, collapses to a generic 500.
func render(err error) renderedError {
	var out renderedError

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		out = renderedError{status: appErr.StatusCode, message: appErr.Message, data: appErr.Data}
	case errors.As(err, &fiberErr):
		out = renderedError{status: fiberErr.Code}
		if fiberErr.Code != fiber.StatusRequestEntityTooLarge {
			out.message = fiberErr.Message
		}
	default:
		return internalError
	}

	if out.status <= 0 || out.status >= fiber.StatusInternalServerError {
		return internalError
	}
	if out.message == "" {
		out.message = response.DefaultMessage(out.status)
	}
	return out
}
