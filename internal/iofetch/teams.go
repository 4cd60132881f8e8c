package iofetch

import (
	"context"
	"strings"

	"github.com/gnames/gnlib"
)

// teamRow is one line of TEAM.csv.
type teamRow struct {
	ID         int
	Name       string
	City       string
	Conference string
	Division   string
}

type teamListResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team espnTeam `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}

type espnTeam struct {
	ID               string `json:"id"`
	Abbreviation     string `json:"abbreviation"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Name             string `json:"name"`
	Location         string `json:"location"`
}

// confDivFromAbbr maps a team abbreviation to its conference and
// division. Relocated franchises keep their historical aliases (WSH,
// LA).
func confDivFromAbbr(abbr string) (string, string) {
	mapping := map[string][2]string{
		"BUF": {"AFC", "E"}, "MIA": {"AFC", "E"},
		"NE": {"AFC", "E"}, "NYJ": {"AFC", "E"},
		"BAL": {"AFC", "N"}, "CIN": {"AFC", "N"},
		"CLE": {"AFC", "N"}, "PIT": {"AFC", "N"},
		"HOU": {"AFC", "S"}, "IND": {"AFC", "S"},
		"JAX": {"AFC", "S"}, "TEN": {"AFC", "S"},
		"DEN": {"AFC", "W"}, "KC": {"AFC", "W"},
		"LAC": {"AFC", "W"}, "LV": {"AFC", "W"},
		"DAL": {"NFC", "E"}, "NYG": {"NFC", "E"},
		"PHI": {"NFC", "E"}, "WAS": {"NFC", "E"}, "WSH": {"NFC", "E"},
		"CHI": {"NFC", "N"}, "DET": {"NFC", "N"},
		"GB": {"NFC", "N"}, "MIN": {"NFC", "N"},
		"ATL": {"NFC", "S"}, "CAR": {"NFC", "S"},
		"NO": {"NFC", "S"}, "TB": {"NFC", "S"},
		"ARI": {"NFC", "W"}, "LAR": {"NFC", "W"}, "LA": {"NFC", "W"},
		"SF": {"NFC", "W"}, "SEA": {"NFC", "W"},
	}
	cd, ok := mapping[strings.ToUpper(abbr)]
	if !ok {
		return "", ""
	}
	return cd[0], cd[1]
}

// teams downloads the league's team list.
func (f *fetcher) teams(ctx context.Context) ([]teamRow, error) {
	url := siteAPI + "/site/v2/sports/football/nfl/teams"
	var data teamListResponse
	if err := f.client.getJSON(ctx, url, &data); err != nil {
		return nil, TeamsError(err)
	}

	var res []teamRow
	for _, sport := range data.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				res = append(res, teamFromESPN(entry.Team))
			}
		}
	}
	if len(res) == 0 {
		return nil, TeamsError(nil)
	}
	return res, nil
}

func teamFromESPN(t espnTeam) teamRow {
	conference, division := confDivFromAbbr(t.Abbreviation)

	name := t.ShortDisplayName
	if name == "" {
		name = t.DisplayName
	}
	if name == "" {
		name = t.Name
	}

	city := t.Location
	if city == "" {
		city = t.DisplayName
	}
	if fields := strings.Fields(city); len(fields) > 0 {
		city = fields[0]
	}

	return teamRow{
		ID:         safeInt(t.ID),
		Name:       truncate(gnlib.FixUtf8(name), 15),
		City:       truncate(gnlib.FixUtf8(city), 15),
		Conference: conference,
		Division:   division,
	}
}
