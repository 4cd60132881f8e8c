package iofetch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/pkg/errcode"
)

// RequestError creates an error for a failed HTTP request.
func RequestError(url string, err error) error {
	return &gn.Error{
		Code: errcode.FetchRequestError,
		Msg:  "Request to <em>%s</em> failed",
		Vars: []any{url},
		Err:  fmt.Errorf("fetch %s: %w", url, err),
	}
}

// DecodeError creates an error for an unparseable response body.
func DecodeError(url string, err error) error {
	return &gn.Error{
		Code: errcode.FetchDecodeError,
		Msg:  "Unexpected response from <em>%s</em>",
		Vars: []any{url},
		Err:  fmt.Errorf("decode %s: %w", url, err),
	}
}

// TeamsError creates an error for a failed or empty team list. The
// whole fetch aborts without it, since every other entity hangs off
// the team ids.
func TeamsError(err error) error {
	msg := `Could not fetch the league team list

<em>Possible causes:</em>
  - No network connectivity
  - The upstream API changed its response shape`

	if err == nil {
		err = fmt.Errorf("team list is empty")
	}
	return &gn.Error{
		Code: errcode.FetchTeamsError,
		Msg:  msg,
		Err:  fmt.Errorf("fetch teams: %w", err),
	}
}

// WriteCSVError creates an error for a failed CSV write.
func WriteCSVError(path string, err error) error {
	return &gn.Error{
		Code: errcode.FetchWriteCSVError,
		Msg:  "Could not write <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("write %s: %w", path, err),
	}
}
