// Package database provides database client constructors for integration
// tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
//
// The schema comes from Ent auto-migration: fast, but without RLS policies,
// views, or the maintenance role. Use NewMigratedClient for those.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	// Use shared test database setup
	entClient, db := util.SetupTestDatabase(t)

	// Get the driver for GIN index creation
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create GIN indexes
	err := database.CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	client := database.NewClientFromEnt(entClient, db)

	return client
}

// NewMigratedClient creates a test database client backed by the real SQL
// migrations, so row-level security, the emo_active view, the tag-count
// materialized view, and the mnx_maintenance role all behave as in
// production. Slower than NewTestClient; use it for tenancy, rebuild, and
// pipeline tests.
func NewMigratedClient(t *testing.T) *database.Client {
	entClient, db := util.SetupMigratedDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
