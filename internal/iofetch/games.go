package iofetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// gameRow is one line of GAME.csv. Scores stay nil for games that
// have not been played.
type gameRow struct {
	ID        int
	Date      string
	Week      int
	HomeID    int
	AwayID    int
	HomeScore *int
	AwayScore *int
}

// statMeta carries the references needed to pull per-player
// statistics for one game later.
type statMeta struct {
	eventID       int
	competitionID int
	competitors   []competitor
	statusRef     string
}

type espnEvent struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Week         refItem       `json:"week"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Competitors []competitor `json:"competitors"`
	Status      refItem      `json:"status"`
}

type competitor struct {
	ID       string  `json:"id"`
	HomeAway string  `json:"homeAway"`
	Score    refItem `json:"score"`
}

type scoreValue struct {
	Value float64 `json:"value"`
}

type gameStatus struct {
	Type struct {
		State string `json:"state"`
	} `json:"type"`
}

// games walks the season week by week and collects the schedule. The
// scan stops at the first week without events, since later weeks are
// not published yet.
func (f *fetcher) games(
	ctx context.Context,
	season, maxWeeks int,
) ([]gameRow, []statMeta, error) {
	var rows []gameRow
	var meta []statMeta

	for week := 1; week <= maxWeeks; week++ {
		weekURL := fmt.Sprintf(
			"%s/seasons/%d/types/2/weeks/%d/events", coreAPI, season, week)
		var listing refList
		if err := f.client.getJSON(ctx, weekURL, &listing); err != nil {
			slog.Info("Week scan stopped", "week", week, "error", err)
			break
		}
		if len(listing.Items) == 0 {
			slog.Info("No events found, stopping week scan", "week", week)
			break
		}
		slog.Info("Fetched week schedule",
			"week", week, "events", len(listing.Items))

		for _, item := range listing.Items {
			var event espnEvent
			if err := f.client.getJSON(ctx, item.Ref, &event); err != nil {
				slog.Warn("Event fetch failed", "error", err)
				continue
			}
			row, m, ok := f.gameFromEvent(ctx, event, week)
			if !ok {
				continue
			}
			rows = append(rows, row)
			meta = append(meta, m)
		}
	}
	return rows, meta, nil
}

func (f *fetcher) gameFromEvent(
	ctx context.Context,
	event espnEvent,
	week int,
) (gameRow, statMeta, bool) {
	eventID := safeInt(event.ID)

	var comp competition
	if len(event.Competitions) > 0 {
		comp = event.Competitions[0]
	}
	compID := safeInt(comp.ID)
	if compID == 0 {
		compID = eventID
	}

	var home, away *competitor
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return gameRow{}, statMeta{}, false
	}

	date := comp.Date
	if date == "" {
		date = event.Date
	}
	// Timestamps come as RFC 3339; the schema keeps the date only.
	date, _, _ = strings.Cut(date, "T")

	weekNum := parseIDFromRef(event.Week.Ref)
	if weekNum == 0 {
		weekNum = week
	}

	row := gameRow{
		ID:        eventID,
		Date:      date,
		Week:      weekNum,
		HomeID:    safeInt(home.ID),
		AwayID:    safeInt(away.ID),
		HomeScore: f.score(ctx, home.Score),
		AwayScore: f.score(ctx, away.Score),
	}
	m := statMeta{
		eventID:       eventID,
		competitionID: compID,
		competitors:   []competitor{*home, *away},
		statusRef:     comp.Status.Ref,
	}
	return row, m, true
}

// score resolves a competitor's score reference. Unplayed games have
// no score resource yet; those come back nil.
func (f *fetcher) score(ctx context.Context, ref refItem) *int {
	if ref.Ref == "" {
		return nil
	}
	var sv scoreValue
	if err := f.client.getJSON(ctx, ref.Ref, &sv); err != nil {
		return nil
	}
	v := int(sv.Value)
	return &v
}
