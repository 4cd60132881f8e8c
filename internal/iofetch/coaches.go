package iofetch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gnlib"
)

// coachRow is one line of COACH.csv.
type coachRow struct {
	ID     int
	Last   string
	First  string
	TeamID int
	Role   string
}

type espnCoach struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// coaches downloads the first listed coach of each team. The schema
// keeps one coach per team, and the first entry is the head coach.
func (f *fetcher) coaches(
	ctx context.Context,
	teamIDs []int,
	season int,
) ([]coachRow, error) {
	var res []coachRow
	for _, teamID := range teamIDs {
		listURL := fmt.Sprintf(
			"%s/seasons/%d/teams/%d/coaches", coreAPI, season, teamID)
		var listing refList
		if err := f.client.getJSON(ctx, listURL, &listing); err != nil {
			slog.Warn("Coach listing failed",
				"team_id", teamID, "error", err)
			continue
		}

		for _, item := range listing.Items {
			if item.Ref == "" {
				continue
			}
			var coach espnCoach
			if err := f.client.getJSON(ctx, item.Ref, &coach); err != nil {
				slog.Warn("Coach fetch failed",
					"team_id", teamID, "error", err)
				continue
			}
			res = append(res, coachRow{
				ID:     safeInt(coach.ID),
				Last:   truncate(gnlib.FixUtf8(coach.LastName), 15),
				First:  truncate(gnlib.FixUtf8(coach.FirstName), 15),
				TeamID: teamID,
				Role:   "Head Coach",
			})
			break
		}
	}
	return res, nil
}
