package iofetch

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// writeCSVs writes the five CSV files in one pass. Column names match
// what loadCSVDir expects on the populate side.
func writeCSVs(
	dir string,
	teams []teamRow,
	players []playerRow,
	coaches []coachRow,
	games []gameRow,
	stats []statRow,
) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return WriteCSVError(dir, err)
	}

	teamRecords := [][]string{
		{"TeamID", "TeamName", "City", "Conference", "Division"},
	}
	for _, t := range teams {
		teamRecords = append(teamRecords, []string{
			strconv.Itoa(t.ID), t.Name, t.City, t.Conference, t.Division,
		})
	}
	if err := writeCSV(dir, "TEAM.csv", teamRecords); err != nil {
		return err
	}

	playerRecords := [][]string{
		{"PlayerID", "Fname", "Lname", "Position", "TeamID"},
	}
	for _, p := range players {
		playerRecords = append(playerRecords, []string{
			strconv.Itoa(p.ID), p.First, p.Last, p.Position,
			strconv.Itoa(p.TeamID),
		})
	}
	if err := writeCSV(dir, "PLAYER.csv", playerRecords); err != nil {
		return err
	}

	coachRecords := [][]string{
		{"CoachID", "LName", "FName", "TeamID", "Role"},
	}
	for _, c := range coaches {
		coachRecords = append(coachRecords, []string{
			strconv.Itoa(c.ID), c.Last, c.First,
			strconv.Itoa(c.TeamID), c.Role,
		})
	}
	if err := writeCSV(dir, "COACH.csv", coachRecords); err != nil {
		return err
	}

	gameRecords := [][]string{
		{"GameID", "GameDate", "Week", "HomeTeamID", "AwayTeamID",
			"HomeTeamScore", "AwayTeamScore"},
	}
	for _, g := range games {
		gameRecords = append(gameRecords, []string{
			strconv.Itoa(g.ID), g.Date, strconv.Itoa(g.Week),
			strconv.Itoa(g.HomeID), strconv.Itoa(g.AwayID),
			optCell(g.HomeScore), optCell(g.AwayScore),
		})
	}
	if err := writeCSV(dir, "GAME.csv", gameRecords); err != nil {
		return err
	}

	statRecords := [][]string{
		{"GameID", "PlayerID", "Pass_yrd", "Rush_yrd", "Rec_yrd",
			"Touchdowns", "Tackles", "Interceptions"},
	}
	for _, s := range stats {
		statRecords = append(statRecords, []string{
			strconv.Itoa(s.GameID), strconv.Itoa(s.PlayerID),
			strconv.Itoa(s.Passing), strconv.Itoa(s.Rushing),
			strconv.Itoa(s.Receiving), strconv.Itoa(s.Touchdowns),
			strconv.Itoa(s.Tackles), strconv.Itoa(s.Interceptions),
		})
	}
	return writeCSV(dir, "GAME_STATS.csv", statRecords)
}

// optCell renders a missing value as an empty cell.
func optCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func writeCSV(dir, name string, records [][]string) error {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return WriteCSVError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return WriteCSVError(path, err)
	}
	return nil
}
