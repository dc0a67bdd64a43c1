package api

import (
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// correlationID echoes the caller's X-Correlation-ID, minting one when absent.
// A caller-supplied id must be a UUID so downstream traces stay joinable.
func correlationID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get("X-Correlation-ID")
			if id == "" {
				id = uuid.NewString()
			} else if _, err := uuid.Parse(id); err != nil {
				return c.JSON(http.StatusBadRequest, &ErrorResponse{
					Code:    "validation_error",
					Message: "X-Correlation-ID must be a valid UUID",
				})
			}
			c.Response().Header().Set("X-Correlation-ID", id)
			return next(c)
		}
	}
}
