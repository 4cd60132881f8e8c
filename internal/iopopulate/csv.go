package iopopulate

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sportsdb/gridstats/pkg/fixture"
	"github.com/sportsdb/gridstats/pkg/schema"
)

// CSV files carry the column names produced by `gridstats fetch`.
// NULL values are empty cells.
var (
	teamColumns   = []string{"TeamID", "TeamName", "City", "Conference", "Division"}
	playerColumns = []string{"PlayerID", "Fname", "Lname", "Position", "TeamID"}
	coachColumns  = []string{"CoachID", "LName", "FName", "TeamID", "Role"}
	gameColumns   = []string{
		"GameID", "GameDate", "Week", "HomeTeamID", "AwayTeamID",
		"HomeTeamScore", "AwayTeamScore",
	}
	statColumns = []string{
		"GameID", "PlayerID", "Pass_yrd", "Rush_yrd", "Rec_yrd",
		"Touchdowns", "Tackles", "Interceptions",
	}
)

// loadCSVDir reads TEAM.csv, PLAYER.csv, COACH.csv, GAME.csv and
// GAME_STATS.csv from dir. Stat rows whose game or player is missing
// from the other files are skipped with a logged count, so a partial
// download never trips foreign-key constraints.
func loadCSVDir(dir string) (*fixture.Set, error) {
	set := &fixture.Set{}

	teams, err := readCSV(dir, "TEAM.csv", teamColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range teams {
		id, err := r.mustInt("TeamID")
		if err != nil {
			return nil, err
		}
		set.Teams = append(set.Teams, schema.Team{
			ID:         id,
			Name:       r.str("TeamName"),
			City:       r.str("City"),
			Conference: r.str("Conference"),
			Division:   r.str("Division"),
		})
	}

	playerIDs := make(map[int]bool)
	players, err := readCSV(dir, "PLAYER.csv", playerColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range players {
		id, err := r.mustInt("PlayerID")
		if err != nil {
			return nil, err
		}
		teamID, err := r.optInt("TeamID")
		if err != nil {
			return nil, err
		}
		playerIDs[id] = true
		set.Players = append(set.Players, schema.Player{
			ID:        id,
			FirstName: r.str("Fname"),
			LastName:  r.str("Lname"),
			Position:  r.str("Position"),
			TeamID:    teamID,
		})
	}

	coaches, err := readCSV(dir, "COACH.csv", coachColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range coaches {
		id, err := r.mustInt("CoachID")
		if err != nil {
			return nil, err
		}
		teamID, err := r.optInt("TeamID")
		if err != nil {
			return nil, err
		}
		set.Coaches = append(set.Coaches, schema.Coach{
			ID:        id,
			FirstName: r.str("FName"),
			LastName:  r.str("LName"),
			TeamID:    teamID,
			Role:      r.str("Role"),
		})
	}

	gameIDs := make(map[int]bool)
	games, err := readCSV(dir, "GAME.csv", gameColumns)
	if err != nil {
		return nil, err
	}
	for _, r := range games {
		id, err := r.mustInt("GameID")
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", r.str("GameDate"))
		if err != nil {
			return nil, ParseError(r.file, fmt.Errorf(
				"game %d: bad date %q: %w", id, r.str("GameDate"), err))
		}
		week, err := r.mustInt("Week")
		if err != nil {
			return nil, err
		}
		home, err := r.mustInt("HomeTeamID")
		if err != nil {
			return nil, err
		}
		away, err := r.mustInt("AwayTeamID")
		if err != nil {
			return nil, err
		}
		homeScore, err := r.optInt("HomeTeamScore")
		if err != nil {
			return nil, err
		}
		awayScore, err := r.optInt("AwayTeamScore")
		if err != nil {
			return nil, err
		}
		gameIDs[id] = true
		set.Games = append(set.Games, schema.Game{
			ID:         id,
			GameDate:   date,
			Week:       week,
			HomeTeamID: home,
			AwayTeamID: away,
			HomeScore:  homeScore,
			AwayScore:  awayScore,
		})
	}

	stats, err := readCSV(dir, "GAME_STATS.csv", statColumns)
	if err != nil {
		return nil, err
	}
	skipped := 0
	for _, r := range stats {
		gameID, err := r.mustInt("GameID")
		if err != nil {
			return nil, err
		}
		playerID, err := r.mustInt("PlayerID")
		if err != nil {
			return nil, err
		}
		if !gameIDs[gameID] || !playerIDs[playerID] {
			skipped++
			continue
		}
		stat := schema.GameStat{GameID: gameID, PlayerID: playerID}
		for _, c := range []struct {
			column string
			dst    **int
		}{
			{"Pass_yrd", &stat.PassingYards},
			{"Rush_yrd", &stat.RushingYards},
			{"Rec_yrd", &stat.ReceivingYards},
			{"Touchdowns", &stat.Touchdowns},
			{"Tackles", &stat.Tackles},
			{"Interceptions", &stat.Interceptions},
		} {
			v, err := r.optInt(c.column)
			if err != nil {
				return nil, err
			}
			*c.dst = v
		}
		set.Stats = append(set.Stats, stat)
	}
	if skipped > 0 {
		slog.Warn("Skipped stat rows missing parent game or player",
			"count", skipped)
	}

	return set, nil
}

// record is one CSV row with access by column name.
type record struct {
	file   string
	index  map[string]int
	fields []string
}

func (r record) str(column string) string {
	return r.fields[r.index[column]]
}

func (r record) mustInt(column string) (int, error) {
	s := r.str(column)
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, ParseError(r.file, fmt.Errorf(
			"column %s: bad integer %q: %w", column, s, err))
	}
	return i, nil
}

// optInt returns nil for empty cells, keeping NULL distinct from zero.
// A non-empty cell that is not an integer is an error, same as mustInt.
func (r record) optInt(column string) (*int, error) {
	s := r.str(column)
	if s == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, ParseError(r.file, fmt.Errorf(
			"column %s: bad integer %q: %w", column, s, err))
	}
	return &i, nil
}

func readCSV(
	dir, name string,
	columns []string,
) ([]record, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, ParseError(path, err)
	}
	if len(rows) == 0 {
		return nil, ParseError(path, fmt.Errorf("missing header row"))
	}

	index := make(map[string]int)
	for i, h := range rows[0] {
		index[h] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, ParseError(path, fmt.Errorf("missing column %s", c))
		}
	}

	res := make([]record, 0, len(rows)-1)
	for _, fields := range rows[1:] {
		res = append(res, record{file: path, index: index, fields: fields})
	}
	return res, nil
}
