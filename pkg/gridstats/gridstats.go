// Package gridstats declares the interfaces of the database
// lifecycle: schema creation, data loading and season downloads.
// Implementations with I/O side effects live under internal.
package gridstats

import (
	"context"
)

var (
	// Version is the version of the gridstats binary. It is set
	// during the build process.
	Version = "v0.1.3"

	// Build is a timestamp of the build. It is set during the build
	// process.
	Build = "n/a"
)

// SchemaManager defines database schema management. It uses GORM
// AutoMigrate, so schema creation is idempotent and safe to run
// multiple times.
type SchemaManager interface {
	// Create creates all tables, constraints and foreign keys.
	Create(ctx context.Context) error
}

// Populator loads teams, players, coaches, games and game statistics
// into the database from one of the supported sources.
type Populator interface {
	// Populate performs the load. The source is resolved from the
	// configuration: a season archive, a CSV directory, or the
	// embedded sample fixture.
	Populate(ctx context.Context) error
}

// Fetcher downloads one season of league data from the upstream API
// and writes it out as CSV files ready for Populator.
type Fetcher interface {
	// Fetch downloads the season configured in FetchConfig.
	Fetch(ctx context.Context) error
}
