package ioreport

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/pkg/errcode"
	"github.com/sportsdb/gridstats/pkg/report"
)

// NotConnectedError creates an error for a report attempted without a
// database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Report attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// UnknownReportError creates an error for an unrecognized report name
// and lists the valid ones.
func UnknownReportError(name string) error {
	var names []string
	for _, n := range report.All() {
		names = append(names, "  * "+string(n))
	}

	msg := `Unknown report '%s'

<em>Available reports:</em>
%s`

	return &gn.Error{
		Code: errcode.ReportUnknownError,
		Msg:  msg,
		Vars: []any{name, strings.Join(names, "\n")},
		Err:  fmt.Errorf("unknown report %q", name),
	}
}

// QueryError creates an error for a failed report query.
func QueryError(name report.Name, err error) error {
	msg := `Report <em>%s</em> failed

<em>How to fix:</em>
  1. Check the schema exists: <em>gridstats create</em>
  2. Check data is loaded: <em>gridstats populate</em>`

	return &gn.Error{
		Code: errcode.ReportQueryError,
		Msg:  msg,
		Vars: []any{string(name)},
		Err:  fmt.Errorf("report %s: %w", name, err),
	}
}

// ScanError creates an error for a failed scan of a report row.
func ScanError(name report.Name, err error) error {
	return &gn.Error{
		Code: errcode.ReportScanError,
		Msg:  "Could not read rows of report <em>%s</em>",
		Vars: []any{string(name)},
		Err:  fmt.Errorf("report %s scan: %w", name, err),
	}
}
