// Package iotesting provides shared helpers for integration tests.
package iotesting

import (
	"os"
	"strconv"

	"github.com/sportsdb/gridstats/pkg/config"
)

// TestDatabaseName is the database used by all integration tests.
// It is always forced, so tests never run against a production
// database.
const TestDatabaseName = "gridstats_test"

// GetTestConfig returns a configuration for integration tests. It
// starts from the defaults, applies GRIDSTATS_TEST_* environment
// overrides and forces the database name to TestDatabaseName.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	var opts []config.Option

	if v := os.Getenv("GRIDSTATS_TEST_DB_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("GRIDSTATS_TEST_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if v := os.Getenv("GRIDSTATS_TEST_DB_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("GRIDSTATS_TEST_DB_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}

	cfg := config.New()
	cfg.Update(opts)
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database part of the test
// configuration.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}
