package iofetch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// statRow is one line of GAME_STATS.csv. Unlike the database schema,
// the CSV carries zeros for categories the statistics feed did not
// report, matching the upstream feed's own convention.
type statRow struct {
	GameID        int
	PlayerID      int
	Passing       int
	Rushing       int
	Receiving     int
	Touchdowns    int
	Tackles       int
	Interceptions int
}

type statBlock struct {
	Splits struct {
		Categories []statCategory `json:"categories"`
	} `json:"splits"`
}

type statCategory struct {
	Name     string `json:"name"`
	Stats    []stat `json:"stats"`
	Athletes []struct {
		Athlete    refItem `json:"athlete"`
		Statistics refItem `json:"statistics"`
	} `json:"athletes"`
}

type stat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// gameStats pulls per-player statistics for every finished game.
// Games still in progress are skipped; their stats would change under
// us.
func (f *fetcher) gameStats(
	ctx context.Context,
	meta []statMeta,
) ([]statRow, error) {
	var res []statRow
	bar := f.newBar(len(meta))
	defer bar.Finish()

	for _, m := range meta {
		bar.Increment()
		if m.eventID == 0 || m.competitionID == 0 {
			continue
		}
		if !f.gameFinished(ctx, m.statusRef) {
			continue
		}

		seen := make(map[int]bool)
		for _, comp := range m.competitors {
			teamID := safeInt(comp.ID)
			if teamID == 0 {
				continue
			}
			rows, err := f.teamGameStats(ctx, m, teamID, seen)
			if err != nil {
				slog.Warn("Team statistics fetch failed",
					"event_id", m.eventID, "team_id", teamID, "error", err)
				continue
			}
			res = append(res, rows...)
		}
	}

	slog.Info("Built game stat rows", "count", humanize.Comma(int64(len(res))))
	return res, nil
}

func (f *fetcher) gameFinished(ctx context.Context, statusRef string) bool {
	if statusRef == "" {
		// No status resource; assume finished rather than lose the game.
		return true
	}
	var status gameStatus
	if err := f.client.getJSON(ctx, statusRef, &status); err != nil {
		return false
	}
	return status.Type.State == "post"
}

func (f *fetcher) teamGameStats(
	ctx context.Context,
	m statMeta,
	teamID int,
	seen map[int]bool,
) ([]statRow, error) {
	url := fmt.Sprintf(
		"%s/events/%d/competitions/%d/competitors/%d/statistics/0",
		coreAPI, m.eventID, m.competitionID, teamID)
	var block statBlock
	if err := f.client.getJSON(ctx, url, &block); err != nil {
		return nil, err
	}

	var res []statRow
	for _, cat := range block.Splits.Categories {
		for _, ath := range cat.Athletes {
			athleteID := parseIDFromRef(ath.Athlete.Ref)
			if athleteID == 0 || ath.Statistics.Ref == "" || seen[athleteID] {
				continue
			}
			seen[athleteID] = true

			var detail statBlock
			if err := f.client.getJSON(ctx, ath.Statistics.Ref, &detail); err != nil {
				continue
			}
			res = append(res, statRowFromBlock(m.eventID, athleteID, &detail))
		}
	}
	return res, nil
}

// statRowFromBlock flattens a statistics resource into one CSV row.
// Touchdowns are the sum of passing, rushing and receiving scores.
func statRowFromBlock(
	eventID, athleteID int,
	block *statBlock,
) statRow {
	lookup := make(map[string]float64)
	for _, cat := range block.Splits.Categories {
		for _, s := range cat.Stats {
			lookup[s.Name] = s.Value
		}
	}

	passing := lookup["passingYards"]
	if passing == 0 {
		passing = lookup["netPassingYards"]
	}
	tackles := lookup["totalTackles"]
	if tackles == 0 {
		tackles = lookup["tackles"]
	}
	touchdowns := lookup["passingTouchdowns"] +
		lookup["rushingTouchdowns"] +
		lookup["receivingTouchdowns"]

	return statRow{
		GameID:        eventID,
		PlayerID:      athleteID,
		Passing:       int(passing),
		Rushing:       int(lookup["rushingYards"]),
		Receiving:     int(lookup["receivingYards"]),
		Touchdowns:    int(touchdowns),
		Tackles:       int(tackles),
		Interceptions: int(lookup["interceptions"]),
	}
}
