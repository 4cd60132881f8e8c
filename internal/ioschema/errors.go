package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/pkg/errcode"
)

// NotConnectedError creates an error for schema operations attempted
// without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Schema operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for a failed GORM session over
// the existing pgx pool.
func GORMConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Could not open a GORM session on the database pool",
		Err:  fmt.Errorf("failed to open gorm session: %w", err),
	}
}

// CreateSchemaError creates an error for a failed AutoMigrate run.
func CreateSchemaError(err error) error {
	msg := `Could not create the database schema

<em>How to fix:</em>
  1. Check the database user has CREATE privileges
  2. Re-run with a clean database:
     <em>gridstats create --force</em>`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("schema migration failed: %w", err),
	}
}
