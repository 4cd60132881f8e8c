package ioreport_test

import (
	"context"
	"testing"

	"github.com/sportsdb/gridstats/internal/iodb"
	"github.com/sportsdb/gridstats/internal/iopopulate"
	"github.com/sportsdb/gridstats/internal/ioreport"
	"github.com/sportsdb/gridstats/internal/ioschema"
	"github.com/sportsdb/gridstats/internal/iotesting"
	"github.com/sportsdb/gridstats/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSampleDB creates the schema in the test database and loads the
// embedded sample fixture. Tests are skipped when no PostgreSQL server
// is reachable.
func setupSampleDB(t *testing.T) db.Operator {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		t.Skip("Database not configured")
	}
	t.Cleanup(func() { op.Close() })

	require.NoError(t, op.DropAllTables(ctx))

	sm := ioschema.NewManager(op)
	require.NoError(t, sm.Create(ctx))

	p := iopopulate.New(cfg, op)
	require.NoError(t, p.Populate(ctx))

	return op
}

// TestReports_Integration runs the whole catalog against the sample
// fixture and checks the documented ordering and edge cases.
func TestReports_Integration(t *testing.T) {
	op := setupSampleDB(t)
	ctx := context.Background()
	rep := ioreport.New(op)

	t.Run("passing leaders", func(t *testing.T) {
		rows, err := rep.PassingLeaders(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		// Ordered by yards, best first. Brady appears twice, once per
		// qualifying game.
		assert.Equal(t, "Brady", rows[0].LastName)
		assert.Equal(t, 300, rows[0].Yards)
		assert.Equal(t, "Love", rows[1].LastName)
		assert.Equal(t, 280, rows[1].Yards)
		assert.Equal(t, "Brady", rows[2].LastName)
		assert.Equal(t, 265, rows[2].Yards)
	})

	t.Run("roster sizes include empty team", func(t *testing.T) {
		rows, err := rep.RosterSizes(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		// Three teams with two players sort by name; the rosterless
		// Bears come last with a zero count, not a missing row.
		assert.Equal(t, "Jets", rows[0].TeamName)
		assert.Equal(t, 2, rows[0].Players)
		assert.Equal(t, "Packers", rows[1].TeamName)
		assert.Equal(t, "Patriots", rows[2].TeamName)
		assert.Equal(t, "Bears", rows[3].TeamName)
		assert.Equal(t, 0, rows[3].Players)
	})

	t.Run("quarterbacks include free agent first", func(t *testing.T) {
		rows, err := rep.Quarterbacks(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Nil(t, rows[0].TeamName)
		assert.Equal(t, "Flacco", rows[0].LastName)

		require.NotNil(t, rows[1].TeamName)
		assert.Equal(t, "Packers", *rows[1].TeamName)
		assert.Equal(t, "Love", rows[1].LastName)

		require.NotNil(t, rows[2].TeamName)
		assert.Equal(t, "Patriots", *rows[2].TeamName)
		assert.Equal(t, "Brady", rows[2].LastName)
	})

	t.Run("weekly schedule", func(t *testing.T) {
		rows, err := rep.WeeklySchedule(ctx, 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Equal(t, "Patriots", rows[0].HomeTeam)
		assert.Equal(t, "Jets", rows[0].AwayTeam)
		require.NotNil(t, rows[0].HomeScore)
		assert.Equal(t, 24, *rows[0].HomeScore)
		require.NotNil(t, rows[0].AwayScore)
		assert.Equal(t, 17, *rows[0].AwayScore)
	})

	t.Run("weekly schedule of empty week", func(t *testing.T) {
		rows, err := rep.WeeklySchedule(ctx, 17)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("rushing leaders", func(t *testing.T) {
		rows, err := rep.RushingLeaders(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		// Henry qualifies twice; the 100-yard boundary is inclusive.
		assert.Equal(t, "Henry", rows[0].LastName)
		assert.Equal(t, 127, rows[0].Yards)
		assert.Equal(t, "Henry", rows[1].LastName)
		assert.Equal(t, 104, rows[1].Yards)
	})

	t.Run("receiving averages", func(t *testing.T) {
		rows, err := rep.ReceivingAverages(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Equal(t, "Hill", rows[0].LastName)
		assert.InDelta(t, 86.5, rows[0].Average, 0.001)
	})

	t.Run("defensive standouts are empty", func(t *testing.T) {
		// Love's line has an interception without a tackle count;
		// Parsons has tackles without interceptions. Neither row may
		// leak through NULL coercion.
		rows, err := rep.DefensiveStandouts(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("above average rushers", func(t *testing.T) {
		// The global average over recorded rushing lines is
		// (127+104+38)/3; only Henry's per-player average beats it.
		rows, err := rep.AboveAverageRushers(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 1)

		assert.Equal(t, "Henry", rows[0].LastName)
		assert.InDelta(t, 115.5, rows[0].Average, 0.001)
	})
}

// TestPopulate_Idempotent verifies a second load with truncation does
// not duplicate rows.
func TestPopulate_Idempotent(t *testing.T) {
	op := setupSampleDB(t)
	ctx := context.Background()

	cfg := iotesting.GetTestConfig()
	cfg.Populate.Truncate = true
	p := iopopulate.New(cfg, op)
	require.NoError(t, p.Populate(ctx))

	rep := ioreport.New(op)
	rows, err := rep.RosterSizes(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

// TestConstraints_Integration verifies that integrity rules live in
// the database itself: bad inserts must be rejected by PostgreSQL,
// since no application code validates them.
func TestConstraints_Integration(t *testing.T) {
	op := setupSampleDB(t)
	ctx := context.Background()
	pool := op.Pool()

	t.Run("stat row for a nonexistent game", func(t *testing.T) {
		var playerID int
		err := pool.QueryRow(ctx,
			"SELECT id FROM players LIMIT 1").Scan(&playerID)
		require.NoError(t, err)

		_, err = pool.Exec(ctx,
			`INSERT INTO game_stats (game_id, player_id, passing_yards)
			 VALUES (999, $1, 100)`, playerID)
		require.Error(t, err)
	})

	t.Run("stat row for a nonexistent player", func(t *testing.T) {
		var gameID int
		err := pool.QueryRow(ctx,
			"SELECT id FROM games LIMIT 1").Scan(&gameID)
		require.NoError(t, err)

		_, err = pool.Exec(ctx,
			`INSERT INTO game_stats (game_id, player_id, tackles)
			 VALUES ($1, 999, 5)`, gameID)
		require.Error(t, err)
	})

	t.Run("duplicate stat line for the same game and player", func(t *testing.T) {
		var gameID, playerID int
		err := pool.QueryRow(ctx,
			"SELECT game_id, player_id FROM game_stats LIMIT 1").
			Scan(&gameID, &playerID)
		require.NoError(t, err)

		_, err = pool.Exec(ctx,
			`INSERT INTO game_stats (game_id, player_id, rushing_yards)
			 VALUES ($1, $2, 10)`, gameID, playerID)
		require.Error(t, err)
	})

	t.Run("conference outside the domain", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			`INSERT INTO teams (id, name, city, conference, division)
			 VALUES (999, 'Roughnecks', 'Houston', 'XFL', 'S')`)
		require.Error(t, err)
	})

	t.Run("division outside the domain", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			`INSERT INTO teams (id, name, city, conference, division)
			 VALUES (999, 'Roughnecks', 'Houston', 'AFC', 'X')`)
		require.Error(t, err)
	})

	t.Run("week out of range", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			`INSERT INTO games (id, game_date, week, home_team_id, away_team_id)
			 VALUES (999, '2025-12-28', 19, 1, 2)`)
		require.Error(t, err)
	})

	t.Run("team cannot play itself", func(t *testing.T) {
		_, err := pool.Exec(ctx,
			`INSERT INTO games (id, game_date, week, home_team_id, away_team_id)
			 VALUES (999, '2025-09-07', 1, 1, 1)`)
		require.Error(t, err)
	})
}
