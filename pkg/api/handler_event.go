package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/mnemonic-nexus/mnx/pkg/metrics"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

// appendEventHandler handles POST /api/v1/events.
// The idempotency key may arrive as the Idempotency-Key header or in the
// body; the header wins when both are present.
func (s *Server) appendEventHandler(c *echo.Context) error {
	correlationID := c.Response().Header().Get("X-Correlation-ID")

	var req models.AppendEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{
			Code: "validation_error", Message: err.Error(), CorrelationID: correlationID,
		})
	}

	key := strings.TrimSpace(c.Request().Header.Get("Idempotency-Key"))
	if key == "" {
		// A present-but-blank header is a client bug, not a request for
		// hash-derived deduplication.
		if _, sent := c.Request().Header["Idempotency-Key"]; sent {
			return c.JSON(http.StatusBadRequest, &ErrorResponse{
				Code: "validation_error", Message: "Idempotency-Key header must not be empty", CorrelationID: correlationID,
			})
		}
		key = req.IdempotencyKey
	}

	start := time.Now()
	resp, err := s.eventService.AppendEvent(c.Request().Context(), &req.Envelope, key)
	if err != nil {
		var conflict *services.IdempotencyConflictError
		if errors.As(err, &conflict) {
			metrics.IdempotentReplays.Inc()
			return c.JSON(http.StatusConflict, &IdempotencyConflictResponse{
				Code:          "idempotency_conflict",
				Message:       conflict.Error(),
				CorrelationID: correlationID,
				GlobalSeq:     conflict.GlobalSeq,
				EventID:       conflict.EventID,
				ReceivedAt:    conflict.ReceivedAt,
				PayloadHash:   conflict.PayloadHash,
			})
		}
		var validErr *services.ValidationError
		if errors.As(err, &validErr) {
			return c.JSON(http.StatusBadRequest, &ErrorResponse{
				Code: "validation_error", Message: validErr.Error(), CorrelationID: correlationID,
			})
		}
		slog.Error("Append failed", "error", err, "correlation_id", correlationID)
		return c.JSON(http.StatusInternalServerError, &ErrorResponse{
			Code: "internal_error", Message: "internal server error", CorrelationID: correlationID,
		})
	}

	metrics.EventsAppended.WithLabelValues(req.Envelope.Kind).Inc()
	metrics.AppendDuration.Observe(time.Since(start).Seconds())

	resp.CorrelationID = correlationID
	return c.JSON(http.StatusCreated, resp)
}

// listEventsHandler handles GET /api/v1/events.
func (s *Server) listEventsHandler(c *echo.Context) error {
	var filters models.EventFilters
	if err := c.Bind(&filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	filters.WorldID = c.QueryParam("world_id")
	if filters.WorldID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "world_id query parameter is required")
	}

	resp, err := s.eventService.ListEvents(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}
	worldID := c.QueryParam("world_id")
	if worldID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "world_id query parameter is required")
	}

	evt, err := s.eventService.GetEvent(c.Request().Context(), worldID, eventID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.EventResponse{WorldEvent: evt})
}

// parseLimit reads an optional positive integer query parameter.
func parseLimit(c *echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return n, nil
}
