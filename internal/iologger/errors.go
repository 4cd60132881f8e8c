package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/pkg/errcode"
)

// CreateLogFileError creates an error for a log file that could not
// be opened.
func CreateLogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot create log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot create log file %s: %w", path, err),
	}
}
