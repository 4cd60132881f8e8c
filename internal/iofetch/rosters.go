package iofetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/gnames/gnlib"
	"golang.org/x/sync/errgroup"
)

// playerRow is one line of PLAYER.csv.
type playerRow struct {
	ID       int
	First    string
	Last     string
	Position string
	TeamID   int
}

type rosterResponse struct {
	PositionGroups []struct {
		Athletes []espnAthlete `json:"athletes"`
	} `json:"positionGroups"`
}

type espnAthlete struct {
	ID          string       `json:"id"`
	FullName    string       `json:"fullName"`
	DisplayName string       `json:"displayName"`
	Position    positionInfo `json:"position"`
}

// positionInfo appears either as an object with an abbreviation or as
// a bare string, depending on the endpoint.
type positionInfo struct {
	Abbreviation string
}

func (p *positionInfo) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Abbreviation = s
		return nil
	}
	var obj struct {
		Abbreviation string `json:"abbreviation"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	p.Abbreviation = obj.Abbreviation
	return nil
}

// rosters downloads each team's roster concurrently and merges them
// into one deduplicated player list. A team whose roster endpoint
// fails contributes no players but does not abort the whole run.
func (f *fetcher) rosters(
	ctx context.Context,
	teamIDs []int,
) ([]playerRow, error) {
	var mu sync.Mutex
	var all []playerRow

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.JobsNumber)

	bar := f.newBar(len(teamIDs))
	for _, teamID := range teamIDs {
		g.Go(func() error {
			defer bar.Increment()
			players, err := f.roster(ctx, teamID)
			if err != nil {
				slog.Warn("Roster fetch failed",
					"team_id", teamID, "error", err)
				return nil
			}
			mu.Lock()
			all = append(all, players...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		bar.Finish()
		return nil, err
	}
	bar.Finish()

	return dedupePlayers(all), nil
}

func (f *fetcher) roster(
	ctx context.Context,
	teamID int,
) ([]playerRow, error) {
	url := fmt.Sprintf(
		"%s/common/v3/sports/football/nfl/teams/%d/roster",
		siteAPI, teamID)
	var data rosterResponse
	if err := f.client.getJSON(ctx, url, &data); err != nil {
		return nil, err
	}

	var res []playerRow
	for _, group := range data.PositionGroups {
		for _, athlete := range group.Athletes {
			id := safeInt(athlete.ID)
			if id == 0 {
				continue
			}
			full := athlete.FullName
			if full == "" {
				full = athlete.DisplayName
			}
			first, last := splitName(gnlib.FixUtf8(full))
			res = append(res, playerRow{
				ID:       id,
				First:    truncate(first, 15),
				Last:     truncate(last, 15),
				Position: truncate(strings.ToUpper(athlete.Position.Abbreviation), 4),
				TeamID:   teamID,
			})
		}
	}
	return res, nil
}

// dedupePlayers keeps the first row per player id. Practice-squad
// players can show up on two rosters during roster churn.
func dedupePlayers(players []playerRow) []playerRow {
	seen := make(map[int]bool, len(players))
	res := make([]playerRow, 0, len(players))
	for _, p := range players {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
