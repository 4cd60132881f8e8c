package iopopulate

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestArchive builds a small SQLite season archive on disk.
func newTestArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.db")

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer sqlDB.Close()

	stmts := []string{
		`CREATE TABLE teams (
			id INTEGER PRIMARY KEY, name TEXT, city TEXT,
			conference TEXT, division TEXT)`,
		`CREATE TABLE players (
			id INTEGER PRIMARY KEY, first_name TEXT, last_name TEXT,
			position TEXT, team_id INTEGER)`,
		`CREATE TABLE coaches (
			id INTEGER PRIMARY KEY, first_name TEXT, last_name TEXT,
			team_id INTEGER, role TEXT)`,
		`CREATE TABLE games (
			id INTEGER PRIMARY KEY, game_date TEXT, week INTEGER,
			home_team_id INTEGER, away_team_id INTEGER,
			home_score INTEGER, away_score INTEGER)`,
		`CREATE TABLE game_stats (
			game_id INTEGER, player_id INTEGER,
			passing_yards INTEGER, rushing_yards INTEGER,
			receiving_yards INTEGER, touchdowns INTEGER,
			tackles INTEGER, interceptions INTEGER,
			PRIMARY KEY (game_id, player_id))`,

		`INSERT INTO teams VALUES
			(1, 'Patriots', 'Foxborough', 'AFC', 'E'),
			(2, 'Jets', 'New York', 'AFC', 'E')`,
		`INSERT INTO players VALUES
			(10, 'Tom', 'Brady', 'QB', 1),
			(11, 'Joe', 'Flacco', 'QB', NULL)`,
		`INSERT INTO coaches VALUES
			(20, 'Bill', 'Belichick', 1, 'Head Coach')`,
		`INSERT INTO games VALUES
			(30, '2025-09-07', 1, 1, 2, 24, 17),
			(31, '2025-09-14', 2, 2, 1, NULL, NULL)`,
		`INSERT INTO game_stats VALUES
			(30, 10, 300, NULL, NULL, 3, NULL, NULL)`,
	}
	for _, stmt := range stmts {
		_, err = sqlDB.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestLoadArchive(t *testing.T) {
	path := newTestArchive(t)

	set, err := loadArchive(path)
	require.NoError(t, err)

	t.Run("reads all tables", func(t *testing.T) {
		assert.Len(t, set.Teams, 2)
		assert.Len(t, set.Players, 2)
		assert.Len(t, set.Coaches, 1)
		assert.Len(t, set.Games, 2)
		assert.Len(t, set.Stats, 1)
	})

	t.Run("keeps NULLs", func(t *testing.T) {
		assert.Nil(t, set.Players[1].TeamID)
		assert.Nil(t, set.Games[1].HomeScore)

		stat := set.Stats[0]
		require.NotNil(t, stat.PassingYards)
		assert.Equal(t, 300, *stat.PassingYards)
		assert.Nil(t, stat.RushingYards)
		assert.Nil(t, stat.Tackles)
	})

	t.Run("parses text dates", func(t *testing.T) {
		assert.Equal(t, "2025-09-07",
			set.Games[0].GameDate.Format("2006-01-02"))
	})
}

func TestLoadArchiveMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = sqlDB.Exec("CREATE TABLE teams (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	sqlDB.Close()

	_, err = loadArchive(path)
	require.Error(t, err)
}
