// Package config provides configuration management for gridstats.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Fetch: season, max_weeks
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Populate.CSVDir, Populate.Archive, Populate.Truncate
//   - Fetch.SkipGameStats
//   - HomeDir (set once at startup)
//
// Environment variables use the GRIDSTATS_ prefix with underscores for
// nesting: GRIDSTATS_DATABASE_HOST, GRIDSTATS_LOG_LEVEL, etc.
package config

import (
	"runtime"
	"time"
)

// Config represents the complete gridstats configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Populate contains settings specific to the populate command.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	// Fetch contains settings specific to the fetch command.
	Fetch FetchConfig `mapstructure:"fetch" yaml:"fetch"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations such as roster downloads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by the CLI during init, there is no default for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows per bulk-insert batch during
	// populate. The sample fixture fits in one batch; a full season
	// of game stats does not.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// PopulateConfig contains settings specific to the populate command.
// All fields are runtime-only and come from CLI flags.
type PopulateConfig struct {
	// CSVDir is a directory with TEAM.csv, PLAYER.csv, COACH.csv,
	// GAME.csv and GAME_STATS.csv. Empty means the embedded sample
	// fixture is used instead.
	CSVDir string `mapstructure:"csv_dir" yaml:"csv_dir"`

	// Archive is a path to a SQLite season archive holding the same
	// five tables. Takes precedence over CSVDir when both are set.
	Archive string `mapstructure:"archive" yaml:"archive"`

	// Truncate clears all five tables (children first) before loading.
	Truncate bool `mapstructure:"truncate" yaml:"truncate"`
}

// FetchConfig contains settings specific to the fetch command.
type FetchConfig struct {
	// Season is the season year to download. Zero means current year.
	Season int `mapstructure:"season" yaml:"season"`

	// MaxWeeks limits how many regular-season weeks are scanned.
	MaxWeeks int `mapstructure:"max_weeks" yaml:"max_weeks"`

	// SkipGameStats skips per-player game statistics. Much faster,
	// but leaves GAME_STATS.csv empty. Runtime-only.
	SkipGameStats bool `mapstructure:"skip_game_stats" yaml:"skip_game_stats"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gridstats",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Fetch: FetchConfig{
			Season:   time.Now().Year(),
			MaxWeeks: 18,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now the file is rewritten every time the app starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
