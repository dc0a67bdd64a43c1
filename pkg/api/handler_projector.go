package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/mnemonic-nexus/mnx/pkg/models"
)

// projectorEventsHandler handles POST /projectors/:name/events, the
// publisher's delivery endpoint. A 400 tells the publisher the delivery is
// structurally bad (dead-letter it); a 5xx means retry.
func (s *Server) projectorEventsHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projector name is required")
	}

	var req models.ProjectorEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ack, err := s.runtime.HandleDelivery(c.Request().Context(), name, &req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ack)
}

// projectorWatermarksHandler handles GET /projectors/:name/watermarks.
func (s *Server) projectorWatermarksHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projector name is required")
	}

	entries, err := s.runtime.Watermarks(c.Request().Context(), name)
	if err != nil {
		return mapServiceError(err)
	}
	if entries == nil {
		entries = []models.WatermarkEntry{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"projector":  name,
		"watermarks": entries,
	})
}

// projectorSnapshotHandler handles GET /projectors/:name/snapshot.
func (s *Server) projectorSnapshotHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projector name is required")
	}
	worldID := c.QueryParam("world_id")
	if worldID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "world_id query parameter is required")
	}
	branch := c.QueryParam("branch")
	if branch == "" {
		branch = "main"
	}

	snap, err := s.runtime.Snapshot(c.Request().Context(), name, worldID, branch)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// translatorEventsHandler handles POST /translator/events; the translator
// subscribes to the publisher like any projector.
func (s *Server) translatorEventsHandler(c *echo.Context) error {
	var req models.ProjectorEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ack, err := s.translator.HandleDelivery(c.Request().Context(), &req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ack)
}
