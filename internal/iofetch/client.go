package iofetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	siteAPI = "https://site.api.espn.com/apis"
	coreAPI = "http://sports.core.api.espn.com/v2/sports/football/leagues/nfl"
)

// client is a thin JSON wrapper over http.Client. Endpoints that do
// not answer are reported as errors by getJSON and tolerated or not
// by the caller, mirroring how incomplete upstream data is handled
// per entity.
type client struct {
	http *http.Client
}

func newClient() *client {
	return &client{
		http: &http.Client{Timeout: 20 * time.Second},
	}
}

// getJSON fetches url and decodes the response body into target.
func (c *client) getJSON(
	ctx context.Context,
	url string,
	target any,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return RequestError(url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return RequestError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RequestError(url,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return DecodeError(url, err)
	}
	return nil
}

// refItem is the `{"$ref": "..."}` pointer the core API uses to link
// resources.
type refItem struct {
	Ref string `json:"$ref"`
}

// refList is a paged listing of refItem pointers.
type refList struct {
	Items []refItem `json:"items"`
}

// parseIDFromRef extracts the trailing numeric identifier from a
// $ref URL like ".../athletes/3139477?lang=en".
func parseIDFromRef(ref string) int {
	if ref == "" {
		return 0
	}
	s := strings.TrimRight(ref, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.Index(s, "?"); i >= 0 {
		s = s[:i]
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return id
}

// safeInt parses the string identifiers the API hands out; malformed
// or empty values become zero, which callers treat as absent.
func safeInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// splitName splits a display name into first and last name. Single
// words become the first name; middle names are dropped.
func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}

// truncate keeps names within the column widths of the schema.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
