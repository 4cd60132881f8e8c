package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportsdb/gridstats/pkg/config"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes
// the pgxpool.Pool for higher-level components (SchemaManager,
// Populator, Reporter) to execute their specialized SQL internally.
//
// The interface stays minimal on purpose: schema creation is handled
// by GORM AutoMigrate via SchemaManager, bulk inserts use
// pool.CopyFrom inside the populator, and reports run their own
// queries against the pool.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for higher-level
	// components. Components use it for transactions, bulk inserts
	// (CopyFrom), and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether schema creation should prompt
	// for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error

	// TruncateTables truncates the given tables in one statement with
	// CASCADE, so child tables may be listed in any order. Used by
	// populate before a reload.
	TruncateTables(ctx context.Context, tables []string) error
}
