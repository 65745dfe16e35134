package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Echo context keys that handlers fill so the span carries dashboard state.
const (
	SpanRoleKey   = "lms.role"
	SpanScreenKey = "lms.screen"
)

// OTelStatusMiddleware annotates the active span with the response status.
// Only 5xx responses mark the span as failed. Must run after otelecho.
func OTelStatusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			span := trace.SpanFromContext(c.Request().Context())
			if !span.SpanContext().IsValid() {
				return err
			}

			status := responseStatus(c, err)
			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			for _, key := range []string{SpanRoleKey, SpanScreenKey} {
				if v, ok := c.Get(key).(string); ok && v != "" {
					span.SetAttributes(attribute.String(key, v))
				}
			}

			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
				if err != nil {
					span.RecordError(err)
				}
			}
			return err
		}
	}
}

// responseStatus is the code the client will see. A returned error is written
// by echo's error handler after the chain unwinds, so it is read from err.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
