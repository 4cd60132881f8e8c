package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/pkg/errcode"
)

// CreateDirError creates an error for a directory that could not be
// made.
func CreateDirError(dir string, err error) error {
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create %s",
		Vars: []any{dir},
		Err:  fmt.Errorf("cannot create directory %s: %w", dir, err),
	}
}

// CopyFileError creates an error for a default file that could not be
// written.
func CopyFileError(file string, err error) error {
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  "Cannot copy config file to %s",
		Vars: []any{file},
		Err:  fmt.Errorf("cannot copy file to %s: %w", file, err),
	}
}

// ReadFileError creates an error for a file that could not be read or
// parsed.
func ReadFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
