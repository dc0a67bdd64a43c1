// MnemonicNexus server — event gateway, CDC publisher, projectors, and the
// memory translator in one process, sharing a single Postgres store.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mnemonic-nexus/mnx/pkg/api"
	"github.com/mnemonic-nexus/mnx/pkg/cleanup"
	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/projector"
	"github.com/mnemonic-nexus/mnx/pkg/projector/graph"
	"github.com/mnemonic-nexus/mnx/pkg/projector/relational"
	"github.com/mnemonic-nexus/mnx/pkg/publisher"
	"github.com/mnemonic-nexus/mnx/pkg/services"
	"github.com/mnemonic-nexus/mnx/pkg/translator"
	"github.com/mnemonic-nexus/mnx/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loopbackSubscribers points the publisher at this process's own reception
// endpoints. Split deployments override via PUBLISHER_SUBSCRIBERS.
func loopbackSubscribers(port string) []publisher.Subscriber {
	base := "http://localhost:" + port
	return []publisher.Subscriber{
		{Name: relational.Name, URL: base + "/projectors/" + relational.Name + "/events"},
		{Name: graph.Name, URL: base + "/projectors/" + graph.Name + "/events"},
		{Name: translator.Name, URL: base + "/translator/events"},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting MnemonicNexus",
		"version", version.Full(),
		"http_port", httpPort)

	ctx := context.Background()

	// 1. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Projector runtime
	registry := projector.NewRegistry()
	registry.Register(relational.New())
	registry.Register(graph.New())
	runtime := projector.NewRuntime(dbClient.DB(), registry)
	slog.Info("Projectors registered", "projectors", registry.Names())

	// 3. Services
	eventService := services.NewEventService(dbClient)
	adminService := services.NewAdminService(dbClient, runtime)
	memTranslator := translator.New(eventService, dbClient.DB())
	slog.Info("Services initialized")

	// 4. Publisher
	pubConfig, err := publisher.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load publisher config", "error", err)
		os.Exit(1)
	}
	if len(pubConfig.Subscribers) == 0 {
		pubConfig.Subscribers = loopbackSubscribers(httpPort)
	}

	pub := publisher.New(dbClient.DB(), pubConfig)
	if err := pub.Start(ctx); err != nil {
		slog.Error("Failed to start publisher", "error", err)
		os.Exit(1)
	}
	slog.Info("Publisher started",
		"publisher_id", pubConfig.PublisherID,
		"subscribers", len(pubConfig.Subscribers))

	// 5. Retention
	cleanupConfig, err := cleanup.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load cleanup config", "error", err)
		os.Exit(1)
	}
	retention := cleanup.NewService(dbClient.DB(), cleanupConfig)
	retention.Start(ctx)

	// 6. HTTP server
	httpServer := api.NewServer(dbClient, eventService, adminService, runtime, memTranslator)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop claiming new outbox batches first, then
	// drain HTTP. Unpublished rows simply wait for the next run.
	pub.Stop()
	retention.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("MnemonicNexus stopped")
}
