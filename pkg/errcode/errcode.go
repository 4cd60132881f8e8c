// Package errcode enumerates error codes used across gridstats.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
	DBTruncateTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Populate errors
	PopulateFixtureError
	PopulateCSVDirError
	PopulateCSVFileError
	PopulateCSVParseError
	PopulateArchiveOpenError
	PopulateArchiveReadError
	PopulateInsertError

	// Fetch errors
	FetchRequestError
	FetchDecodeError
	FetchTeamsError
	FetchWriteCSVError

	// Report errors
	ReportUnknownError
	ReportQueryError
	ReportScanError
)
