package iopopulate

import (
	"database/sql"
	"time"

	"github.com/sportsdb/gridstats/pkg/fixture"
	"github.com/sportsdb/gridstats/pkg/schema"

	// SQLite driver for season archives.
	_ "modernc.org/sqlite"
)

// loadArchive reads a SQLite season archive. The archive carries the
// same five tables and column names as the PostgreSQL schema, which
// makes it a convenient snapshot format for passing a whole season
// around as one file.
func loadArchive(path string) (*fixture.Set, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, ArchiveOpenError(path, err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return nil, ArchiveOpenError(path, err)
	}

	set := &fixture.Set{}

	if err := archiveTeams(sqlDB, set); err != nil {
		return nil, ArchiveReadError(path, "teams", err)
	}
	if err := archivePlayers(sqlDB, set); err != nil {
		return nil, ArchiveReadError(path, "players", err)
	}
	if err := archiveCoaches(sqlDB, set); err != nil {
		return nil, ArchiveReadError(path, "coaches", err)
	}
	if err := archiveGames(sqlDB, set); err != nil {
		return nil, ArchiveReadError(path, "games", err)
	}
	if err := archiveStats(sqlDB, set); err != nil {
		return nil, ArchiveReadError(path, "game_stats", err)
	}

	return set, nil
}

func archiveTeams(sqlDB *sql.DB, set *fixture.Set) error {
	rows, err := sqlDB.Query(
		"SELECT id, name, city, conference, division FROM teams")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t schema.Team
		err = rows.Scan(&t.ID, &t.Name, &t.City, &t.Conference, &t.Division)
		if err != nil {
			return err
		}
		set.Teams = append(set.Teams, t)
	}
	return rows.Err()
}

func archivePlayers(sqlDB *sql.DB, set *fixture.Set) error {
	rows, err := sqlDB.Query(
		"SELECT id, first_name, last_name, position, team_id FROM players")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p schema.Player
		var teamID sql.NullInt64
		err = rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Position, &teamID)
		if err != nil {
			return err
		}
		p.TeamID = optFromNull(teamID)
		set.Players = append(set.Players, p)
	}
	return rows.Err()
}

func archiveCoaches(sqlDB *sql.DB, set *fixture.Set) error {
	rows, err := sqlDB.Query(
		"SELECT id, first_name, last_name, team_id, role FROM coaches")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c schema.Coach
		var teamID sql.NullInt64
		err = rows.Scan(&c.ID, &c.FirstName, &c.LastName, &teamID, &c.Role)
		if err != nil {
			return err
		}
		c.TeamID = optFromNull(teamID)
		set.Coaches = append(set.Coaches, c)
	}
	return rows.Err()
}

func archiveGames(sqlDB *sql.DB, set *fixture.Set) error {
	rows, err := sqlDB.Query(`
		SELECT id, game_date, week, home_team_id, away_team_id,
			home_score, away_score
		FROM games`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var g schema.Game
		var date string
		var home, away sql.NullInt64
		err = rows.Scan(&g.ID, &date, &g.Week, &g.HomeTeamID,
			&g.AwayTeamID, &home, &away)
		if err != nil {
			return err
		}
		// SQLite stores dates as text.
		g.GameDate, err = time.Parse("2006-01-02", date)
		if err != nil {
			return err
		}
		g.HomeScore = optFromNull(home)
		g.AwayScore = optFromNull(away)
		set.Games = append(set.Games, g)
	}
	return rows.Err()
}

func archiveStats(sqlDB *sql.DB, set *fixture.Set) error {
	rows, err := sqlDB.Query(`
		SELECT game_id, player_id, passing_yards, rushing_yards,
			receiving_yards, touchdowns, tackles, interceptions
		FROM game_stats`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s schema.GameStat
		var pass, rush, rec, td, tkl, ints sql.NullInt64
		err = rows.Scan(&s.GameID, &s.PlayerID, &pass, &rush, &rec,
			&td, &tkl, &ints)
		if err != nil {
			return err
		}
		s.PassingYards = optFromNull(pass)
		s.RushingYards = optFromNull(rush)
		s.ReceivingYards = optFromNull(rec)
		s.Touchdowns = optFromNull(td)
		s.Tackles = optFromNull(tkl)
		s.Interceptions = optFromNull(ints)
		set.Stats = append(set.Stats, s)
	}
	return rows.Err()
}

func optFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
