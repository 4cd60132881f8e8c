package iopopulate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/pkg/errcode"
)

// NotConnectedError creates an error for a populate operation
// attempted without a database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Populate operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// FixtureError creates an error for a broken embedded fixture.
func FixtureError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateFixtureError,
		Msg:  "The embedded sample fixture could not be built",
		Err:  fmt.Errorf("fixture build failed: %w", err),
	}
}

// FileError creates an error for an unreadable CSV file.
func FileError(path string, err error) error {
	msg := `Could not read CSV file

<em>File:</em> %s

<em>How to fix:</em>
  1. Check the directory passed with --csv-dir
  2. Run <em>gridstats fetch</em> to regenerate the CSV files`

	return &gn.Error{
		Code: errcode.PopulateCSVFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// ParseError creates an error for malformed CSV content.
func ParseError(path string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateCSVParseError,
		Msg:  "Malformed data in <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot parse %s: %w", path, err),
	}
}

// ArchiveOpenError creates an error for an unreadable SQLite season
// archive.
func ArchiveOpenError(path string, err error) error {
	msg := `Could not open season archive

<em>File:</em> %s

<em>Possible causes:</em>
  - The file does not exist
  - The file is not a SQLite database`

	return &gn.Error{
		Code: errcode.PopulateArchiveOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open archive %s: %w", path, err),
	}
}

// ArchiveReadError creates an error for a failed read of one archive
// table.
func ArchiveReadError(path, table string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateArchiveReadError,
		Msg:  "Could not read table <em>%s</em> from archive <em>%s</em>",
		Vars: []any{table, path},
		Err:  fmt.Errorf("archive %s, table %s: %w", path, table, err),
	}
}

// InsertError creates an error for a failed bulk insert. Constraint
// violations from PostgreSQL surface here: the statement is rejected
// as a whole and nothing is retried.
func InsertError(table string, err error) error {
	msg := `Could not insert rows into <em>%s</em>

<em>Possible causes:</em>
  - Rows already exist (run with --truncate to reload)
  - A row violates a domain or foreign-key constraint`

	return &gn.Error{
		Code: errcode.PopulateInsertError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("bulk insert into %s failed: %w", table, err),
	}
}
