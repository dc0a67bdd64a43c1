// Package api is the HTTP surface: the gateway append endpoint, the event
// read API, projector reception and admin endpoints, health, and metrics.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
	"github.com/mnemonic-nexus/mnx/pkg/services"
	"github.com/mnemonic-nexus/mnx/pkg/translator"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	dbClient     *database.Client
	eventService *services.EventService
	adminService *services.AdminService
	runtime      *projector.Runtime
	translator   *translator.Translator

	httpServer *http.Server
}

// NewServer creates the HTTP server. The translator is optional; when nil
// the translator endpoint is not registered.
func NewServer(
	dbClient *database.Client,
	eventService *services.EventService,
	adminService *services.AdminService,
	runtime *projector.Runtime,
	tr *translator.Translator,
) *Server {
	return &Server{
		dbClient:     dbClient,
		eventService: eventService,
		adminService: adminService,
		runtime:      runtime,
		translator:   tr,
	}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.Use(securityHeaders())
	e.Use(correlationID())

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/events", s.appendEventHandler)
	v1.GET("/events", s.listEventsHandler)
	v1.GET("/events/:id", s.getEventHandler)

	proj := e.Group("/projectors/:name")
	proj.POST("/events", s.projectorEventsHandler)
	proj.GET("/watermarks", s.projectorWatermarksHandler)
	proj.GET("/snapshot", s.projectorSnapshotHandler)

	if s.translator != nil {
		e.POST("/translator/events", s.translatorEventsHandler)
	}

	admin := e.Group("/admin")
	admin.GET("/outbox/status", s.outboxStatusHandler)
	admin.GET("/dead-letters", s.listDeadLettersHandler)
	admin.POST("/dead-letters/:global_seq/requeue", s.requeueDeadLetterHandler)
	admin.GET("/projectors/lag", s.projectorLagHandler)
	admin.POST("/projectors/:name/rebuild", s.rebuildProjectorHandler)
	admin.POST("/maintenance/refresh-tag-counts", s.refreshTagCountsHandler)
	admin.GET("/tenancy/rls", s.rlsStatusHandler)
	admin.POST("/tenancy/isolation-test", s.isolationTestHandler)

	return e
}

// Start runs the server until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
