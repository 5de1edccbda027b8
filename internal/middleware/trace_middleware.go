package middleware

import (
	"smartShop/business/recommender"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const traceHeader = "X-Trace-ID"

// TraceID stamps every request context with a trace id so the suggestion
// pipeline logs can be correlated. An incoming header wins over a fresh id.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(traceHeader)
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := recommender.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(traceHeader, tid)

			return next(c)
		}
	}
}
