// Package iopopulate implements the Populator interface for loading
// football data into PostgreSQL. This is an impure I/O package that
// reads fixtures, CSV files or SQLite archives and performs bulk
// inserts.
package iopopulate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportsdb/gridstats/pkg/config"
	"github.com/sportsdb/gridstats/pkg/db"
	"github.com/sportsdb/gridstats/pkg/fixture"
	"github.com/sportsdb/gridstats/pkg/gridstats"
	"github.com/sportsdb/gridstats/pkg/schema"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Populator.
func New(cfg *config.Config, op db.Operator) gridstats.Populator {
	return &populator{cfg: cfg, operator: op}
}

// Populate loads data from the configured source into the database.
// Inserts run in foreign-key dependency order: teams, then players
// and coaches, then games, then game stats. With Truncate set, all
// five tables are cleared first so repeated loads stay idempotent.
func (p *populator) Populate(ctx context.Context) error {
	pool := p.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting database population")

	set, source, err := p.loadSet()
	if err != nil {
		return err
	}
	gn.Info("Loading data from %s", source)

	if p.cfg.Populate.Truncate {
		slog.Info("Truncating tables before load")
		if err := p.operator.TruncateTables(ctx, schema.TableNames()); err != nil {
			return err
		}
	}

	if err := p.insertSet(ctx, pool, set); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Database population complete",
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Populated database in %s",
		gnfmt.TimeString(duration.Seconds()))
	return nil
}

// loadSet picks the data source. An explicit archive wins over a CSV
// directory; with neither set, the embedded sample fixture is used.
func (p *populator) loadSet() (*fixture.Set, string, error) {
	switch {
	case p.cfg.Populate.Archive != "":
		set, err := loadArchive(p.cfg.Populate.Archive)
		return set, "archive " + p.cfg.Populate.Archive, err
	case p.cfg.Populate.CSVDir != "":
		set, err := loadCSVDir(p.cfg.Populate.CSVDir)
		return set, "CSV directory " + p.cfg.Populate.CSVDir, err
	default:
		set, err := fixture.Sample()
		if err != nil {
			err = FixtureError(err)
		}
		return set, "embedded sample fixture", err
	}
}

func (p *populator) insertSet(
	ctx context.Context,
	pool *pgxpool.Pool,
	set *fixture.Set,
) error {
	batch := p.cfg.Database.BatchSize

	steps := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{
			table:   "teams",
			columns: []string{"id", "name", "city", "conference", "division"},
			rows:    teamRows(set.Teams),
		},
		{
			table: "players",
			columns: []string{
				"id", "first_name", "last_name", "position", "team_id",
			},
			rows: playerRows(set.Players),
		},
		{
			table: "coaches",
			columns: []string{
				"id", "first_name", "last_name", "team_id", "role",
			},
			rows: coachRows(set.Coaches),
		},
		{
			table: "games",
			columns: []string{
				"id", "game_date", "week", "home_team_id", "away_team_id",
				"home_score", "away_score",
			},
			rows: gameRows(set.Games),
		},
		{
			table: "game_stats",
			columns: []string{
				"game_id", "player_id", "passing_yards", "rushing_yards",
				"receiving_yards", "touchdowns", "tackles", "interceptions",
			},
			rows: statRows(set.Stats),
		},
	}

	for _, step := range steps {
		count, err := copyRows(ctx, pool, step.table, step.columns,
			step.rows, batch)
		if err != nil {
			return InsertError(step.table, err)
		}
		slog.Info("Inserted rows",
			"table", step.table,
			"count", humanize.Comma(count),
		)
	}

	return nil
}

// copyRows bulk-inserts rows with pgx CopyFrom, splitting the input
// into batches so a full season of game stats does not hold one giant
// copy open.
func copyRows(
	ctx context.Context,
	pool *pgxpool.Pool,
	table string,
	columns []string,
	rows [][]any,
	batchSize int,
) (int64, error) {
	if batchSize <= 0 {
		batchSize = len(rows)
	}

	var total int64
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		count, err := pool.CopyFrom(
			ctx,
			pgx.Identifier{table},
			columns,
			pgx.CopyFromRows(rows[start:end]),
		)
		if err != nil {
			return total, err
		}
		total += count
	}
	return total, nil
}

func teamRows(teams []schema.Team) [][]any {
	res := make([][]any, len(teams))
	for i, t := range teams {
		res[i] = []any{t.ID, t.Name, t.City, t.Conference, t.Division}
	}
	return res
}

func playerRows(players []schema.Player) [][]any {
	res := make([][]any, len(players))
	for i, p := range players {
		res[i] = []any{p.ID, p.FirstName, p.LastName, p.Position, p.TeamID}
	}
	return res
}

func coachRows(coaches []schema.Coach) [][]any {
	res := make([][]any, len(coaches))
	for i, c := range coaches {
		res[i] = []any{c.ID, c.FirstName, c.LastName, c.TeamID, c.Role}
	}
	return res
}

func gameRows(games []schema.Game) [][]any {
	res := make([][]any, len(games))
	for i, g := range games {
		res[i] = []any{
			g.ID, g.GameDate, g.Week, g.HomeTeamID, g.AwayTeamID,
			g.HomeScore, g.AwayScore,
		}
	}
	return res
}

func statRows(stats []schema.GameStat) [][]any {
	res := make([][]any, len(stats))
	for i, s := range stats {
		res[i] = []any{
			s.GameID, s.PlayerID, s.PassingYards, s.RushingYards,
			s.ReceivingYards, s.Touchdowns, s.Tackles, s.Interceptions,
		}
	}
	return res
}
