// Package report defines the read-only analytic reports that form the
// query surface of gridstats, together with their typed result rows.
// Each report is a pure function over the current table contents; none
// of them mutate data.
package report

import (
	"context"
	"time"
)

// Name identifies one of the reports in the catalog.
type Name string

const (
	// PassingLeaders lists players with more than 250 passing yards
	// in a single game.
	PassingLeaders Name = "passing-leaders"
	// RosterSize counts players per team, including teams with an
	// empty roster.
	RosterSize Name = "roster-size"
	// Quarterbacks lists all quarterbacks with their team, including
	// free agents without a team.
	Quarterbacks Name = "quarterbacks"
	// Schedule lists the games of one week with both team names
	// resolved.
	Schedule Name = "schedule"
	// RushingLeaders lists players with 100 or more rushing yards in
	// a single game.
	RushingLeaders Name = "rushing-leaders"
	// ReceivingAverage lists players averaging more than 50 receiving
	// yards per recorded game.
	ReceivingAverage Name = "receiving-average"
	// DefensiveStandouts lists game lines with recorded interceptions
	// above zero and recorded tackles above two.
	DefensiveStandouts Name = "defensive-standouts"
	// AboveAverageRushers lists players whose average rushing yards
	// exceed the average across all stat lines.
	AboveAverageRushers Name = "above-average-rushers"
)

// All returns every report name in catalog order.
func All() []Name {
	return []Name{
		PassingLeaders,
		RosterSize,
		Quarterbacks,
		Schedule,
		RushingLeaders,
		ReceivingAverage,
		DefensiveStandouts,
		AboveAverageRushers,
	}
}

// YardsRow is one line of the passing and rushing leader reports.
type YardsRow struct {
	FirstName string
	LastName  string
	Yards     int
}

// RosterRow is one line of the roster-size report. Teams without
// players appear with a zero count.
type RosterRow struct {
	TeamName string
	Players  int
}

// QuarterbackRow is one line of the quarterbacks report. TeamName is
// nil for free agents.
type QuarterbackRow struct {
	TeamName  *string
	FirstName string
	LastName  string
}

// ScheduleRow is one line of the weekly schedule report. Scores are
// nil for games that have not been played.
type ScheduleRow struct {
	GameDate  time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

// AverageRow is one line of the receiving-average and
// above-average-rushers reports.
type AverageRow struct {
	FirstName string
	LastName  string
	Average   float64
}

// DefensiveRow is one line of the defensive-standouts report.
type DefensiveRow struct {
	FirstName     string
	LastName      string
	Interceptions int
	Tackles       int
}

// Reporter runs the catalog against the database. Implementations are
// stateless: every call reads the tables as they are at that moment.
type Reporter interface {
	PassingLeaders(ctx context.Context) ([]YardsRow, error)
	RosterSizes(ctx context.Context) ([]RosterRow, error)
	Quarterbacks(ctx context.Context) ([]QuarterbackRow, error)
	// WeeklySchedule is the only parameterized report.
	WeeklySchedule(ctx context.Context, week int) ([]ScheduleRow, error)
	RushingLeaders(ctx context.Context) ([]YardsRow, error)
	ReceivingAverages(ctx context.Context) ([]AverageRow, error)
	DefensiveStandouts(ctx context.Context) ([]DefensiveRow, error)
	AboveAverageRushers(ctx context.Context) ([]AverageRow, error)
}
