package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/mnemonic-nexus/mnx/pkg/projector"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Idempotency conflicts are not handled here; the append handler turns them
// into a 409 that carries the first-accepted event.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, projector.ErrUnknownProjector) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown projector")
	}
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "operation not permitted for this tenant")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
