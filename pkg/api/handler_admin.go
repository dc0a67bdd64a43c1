package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/mnemonic-nexus/mnx/pkg/models"
)

// outboxStatusHandler handles GET /admin/outbox/status.
func (s *Server) outboxStatusHandler(c *echo.Context) error {
	status, err := s.adminService.OutboxStatus(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// listDeadLettersHandler handles GET /admin/dead-letters.
func (s *Server) listDeadLettersHandler(c *echo.Context) error {
	limit, err := parseLimit(c, "limit")
	if err != nil {
		return err
	}

	resp, err := s.adminService.ListDeadLetters(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// requeueDeadLetterHandler handles POST /admin/dead-letters/:global_seq/requeue.
func (s *Server) requeueDeadLetterHandler(c *echo.Context) error {
	globalSeq, err := strconv.ParseInt(c.Param("global_seq"), 10, 64)
	if err != nil || globalSeq <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "global_seq must be a positive integer")
	}

	if err := s.adminService.RequeueDeadLetter(c.Request().Context(), globalSeq); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     "requeued",
		"global_seq": globalSeq,
	})
}

// projectorLagHandler handles GET /admin/projectors/lag.
func (s *Server) projectorLagHandler(c *echo.Context) error {
	entries, err := s.adminService.ProjectorLag(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	if entries == nil {
		entries = []models.ProjectorLagEntry{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"projectors": entries})
}

// rebuildProjectorHandler handles POST /admin/projectors/:name/rebuild.
func (s *Server) rebuildProjectorHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projector name is required")
	}

	var req models.RebuildRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.WorldID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "world_id is required")
	}
	if req.FromGlobalSeq < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "from_global_seq must not be negative")
	}
	if req.FromGlobalSeq > 0 && req.Clear() {
		return echo.NewHTTPError(http.StatusBadRequest,
			"from_global_seq requires clear_existing=false; a truncating rebuild must replay the full stream")
	}

	resp, err := s.adminService.RebuildProjector(c.Request().Context(), name, &req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// refreshTagCountsHandler handles POST /admin/maintenance/refresh-tag-counts.
func (s *Server) refreshTagCountsHandler(c *echo.Context) error {
	if err := s.adminService.RefreshTagCounts(c.Request().Context()); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "refreshed"})
}

// rlsStatusHandler handles GET /admin/tenancy/rls.
func (s *Server) rlsStatusHandler(c *echo.Context) error {
	status, err := s.adminService.ValidateRLS(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}

// isolationTestHandler handles POST /admin/tenancy/isolation-test. It writes
// and removes a probe row, so it is a POST despite being a read-out.
func (s *Server) isolationTestHandler(c *echo.Context) error {
	result, err := s.adminService.TestIsolation(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
