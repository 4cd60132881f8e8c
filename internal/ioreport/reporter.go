// Package ioreport implements the report.Reporter interface with SQL
// queries over the pgx pool. Every query is read-only; ordering and
// tie-breaks follow the contracts documented in pkg/report.
package ioreport

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportsdb/gridstats/pkg/db"
	"github.com/sportsdb/gridstats/pkg/report"
)

// reporter implements report.Reporter.
type reporter struct {
	operator db.Operator
}

// New creates a new Reporter.
func New(op db.Operator) report.Reporter {
	return &reporter{operator: op}
}

func (r *reporter) pool() (*pgxpool.Pool, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}
	return pool, nil
}

// PassingLeaders returns every stat line with more than 250 passing
// yards. A player appears once per qualifying game.
func (r *reporter) PassingLeaders(
	ctx context.Context,
) ([]report.YardsRow, error) {
	return r.yardsQuery(ctx, report.PassingLeaders, `
SELECT p.first_name, p.last_name, gs.passing_yards
	FROM game_stats gs
	JOIN players p ON p.id = gs.player_id
	WHERE gs.passing_yards > 250
	ORDER BY gs.passing_yards DESC, p.last_name, p.first_name`)
}

// RushingLeaders returns every stat line with 100 or more rushing
// yards.
func (r *reporter) RushingLeaders(
	ctx context.Context,
) ([]report.YardsRow, error) {
	return r.yardsQuery(ctx, report.RushingLeaders, `
SELECT p.first_name, p.last_name, gs.rushing_yards
	FROM game_stats gs
	JOIN players p ON p.id = gs.player_id
	WHERE gs.rushing_yards >= 100
	ORDER BY gs.rushing_yards DESC, p.last_name, p.first_name`)
}

func (r *reporter) yardsQuery(
	ctx context.Context,
	name report.Name,
	query string,
) ([]report.YardsRow, error) {
	pool, err := r.pool()
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, QueryError(name, err)
	}
	defer rows.Close()

	var res []report.YardsRow
	for rows.Next() {
		var row report.YardsRow
		if err := rows.Scan(&row.FirstName, &row.LastName, &row.Yards); err != nil {
			return nil, ScanError(name, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(name, err)
	}
	return res, nil
}

// RosterSizes counts players per team. The LEFT JOIN keeps teams with
// an empty roster; COUNT over the player id turns their absent rows
// into zero.
func (r *reporter) RosterSizes(
	ctx context.Context,
) ([]report.RosterRow, error) {
	pool, err := r.pool()
	if err != nil {
		return nil, err
	}

	query := `
SELECT t.name, COUNT(p.id) AS roster
	FROM teams t
	LEFT JOIN players p ON p.team_id = t.id
	GROUP BY t.id, t.name
	ORDER BY roster DESC, t.name`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, QueryError(report.RosterSize, err)
	}
	defer rows.Close()

	var res []report.RosterRow
	for rows.Next() {
		var row report.RosterRow
		if err := rows.Scan(&row.TeamName, &row.Players); err != nil {
			return nil, ScanError(report.RosterSize, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(report.RosterSize, err)
	}
	return res, nil
}

// Quarterbacks lists players at the QB position, matched
// case-insensitively. The LEFT JOIN keeps free agents; their team
// name scans as NULL. Free agents sort first because PostgreSQL
// places NULLs last under ASC and the report wants them visible, so
// the ORDER BY asks for NULLS FIRST explicitly.
func (r *reporter) Quarterbacks(
	ctx context.Context,
) ([]report.QuarterbackRow, error) {
	pool, err := r.pool()
	if err != nil {
		return nil, err
	}

	query := `
SELECT t.name, p.first_name, p.last_name
	FROM players p
	LEFT JOIN teams t ON t.id = p.team_id
	WHERE UPPER(p.position) = 'QB'
	ORDER BY t.name NULLS FIRST, p.last_name, p.first_name`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, QueryError(report.Quarterbacks, err)
	}
	defer rows.Close()

	var res []report.QuarterbackRow
	for rows.Next() {
		var row report.QuarterbackRow
		if err := rows.Scan(&row.TeamName, &row.FirstName, &row.LastName); err != nil {
			return nil, ScanError(report.Quarterbacks, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(report.Quarterbacks, err)
	}
	return res, nil
}

// WeeklySchedule lists the games of one week. The games table joins
// teams twice, once per side, to resolve both names in a single row.
func (r *reporter) WeeklySchedule(
	ctx context.Context,
	week int,
) ([]report.ScheduleRow, error) {
	pool, err := r.pool()
	if err != nil {
		return nil, err
	}

	query := `
SELECT g.game_date, ht.name, at.name, g.home_score, g.away_score
	FROM games g
	JOIN teams ht ON ht.id = g.home_team_id
	JOIN teams at ON at.id = g.away_team_id
	WHERE g.week = $1
	ORDER BY g.game_date, ht.name`

	rows, err := pool.Query(ctx, query, week)
	if err != nil {
		return nil, QueryError(report.Schedule, err)
	}
	defer rows.Close()

	var res []report.ScheduleRow
	for rows.Next() {
		var row report.ScheduleRow
		err = rows.Scan(&row.GameDate, &row.HomeTeam, &row.AwayTeam,
			&row.HomeScore, &row.AwayScore)
		if err != nil {
			return nil, ScanError(report.Schedule, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(report.Schedule, err)
	}
	return res, nil
}

// ReceivingAverages returns per-player average receiving yards above
// 50. The filter sits in HAVING, after aggregation; AVG skips stat
// lines where the category was never recorded.
func (r *reporter) ReceivingAverages(
	ctx context.Context,
) ([]report.AverageRow, error) {
	return r.averageQuery(ctx, report.ReceivingAverage, `
SELECT p.first_name, p.last_name, AVG(gs.receiving_yards) AS avg_yards
	FROM game_stats gs
	JOIN players p ON p.id = gs.player_id
	GROUP BY p.id, p.first_name, p.last_name
	HAVING AVG(gs.receiving_yards) > 50
	ORDER BY avg_yards DESC, p.last_name, p.first_name`)
}

// AboveAverageRushers returns players whose average rushing yards
// exceed the average over all stat lines. The threshold is itself a
// query, evaluated by the database inside HAVING, so both aggregates
// see the same snapshot of the table.
func (r *reporter) AboveAverageRushers(
	ctx context.Context,
) ([]report.AverageRow, error) {
	return r.averageQuery(ctx, report.AboveAverageRushers, `
SELECT p.first_name, p.last_name, AVG(gs.rushing_yards) AS avg_yards
	FROM game_stats gs
	JOIN players p ON p.id = gs.player_id
	GROUP BY p.id, p.first_name, p.last_name
	HAVING AVG(gs.rushing_yards) >
		(SELECT AVG(rushing_yards) FROM game_stats)
	ORDER BY avg_yards DESC, p.last_name, p.first_name`)
}

func (r *reporter) averageQuery(
	ctx context.Context,
	name report.Name,
	query string,
) ([]report.AverageRow, error) {
	pool, err := r.pool()
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, QueryError(name, err)
	}
	defer rows.Close()

	var res []report.AverageRow
	for rows.Next() {
		var row report.AverageRow
		if err := rows.Scan(&row.FirstName, &row.LastName, &row.Average); err != nil {
			return nil, ScanError(name, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(name, err)
	}
	return res, nil
}

// DefensiveStandouts returns stat lines with recorded interceptions
// above zero and recorded tackles above two. Both IS NOT NULL checks
// are explicit: a missing category is an unrecorded one, never zero,
// so NULL rows must not satisfy the filter through coercion.
func (r *reporter) DefensiveStandouts(
	ctx context.Context,
) ([]report.DefensiveRow, error) {
	pool, err := r.pool()
	if err != nil {
		return nil, err
	}

	query := `
SELECT p.first_name, p.last_name, gs.interceptions, gs.tackles
	FROM game_stats gs
	JOIN players p ON p.id = gs.player_id
	WHERE gs.interceptions IS NOT NULL
		AND gs.tackles IS NOT NULL
		AND gs.interceptions > 0
		AND gs.tackles > 2
	ORDER BY gs.interceptions DESC, p.last_name, p.first_name`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, QueryError(report.DefensiveStandouts, err)
	}
	defer rows.Close()

	var res []report.DefensiveRow
	for rows.Next() {
		var row report.DefensiveRow
		err = rows.Scan(&row.FirstName, &row.LastName,
			&row.Interceptions, &row.Tackles)
		if err != nil {
			return nil, ScanError(report.DefensiveStandouts, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(report.DefensiveStandouts, err)
	}
	return res, nil
}
