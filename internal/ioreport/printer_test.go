package ioreport

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sportsdb/gridstats/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReporter returns fixed rows so printers can be tested without a
// database.
type stubReporter struct{}

func (stubReporter) PassingLeaders(_ context.Context) ([]report.YardsRow, error) {
	return []report.YardsRow{
		{FirstName: "Tom", LastName: "Brady", Yards: 300},
		{FirstName: "Jordan", LastName: "Love", Yards: 280},
	}, nil
}

func (stubReporter) RosterSizes(_ context.Context) ([]report.RosterRow, error) {
	return []report.RosterRow{
		{TeamName: "Patriots", Players: 2},
		{TeamName: "Bears", Players: 0},
	}, nil
}

func (stubReporter) Quarterbacks(_ context.Context) ([]report.QuarterbackRow, error) {
	patriots := "Patriots"
	return []report.QuarterbackRow{
		{TeamName: nil, FirstName: "Joe", LastName: "Flacco"},
		{TeamName: &patriots, FirstName: "Tom", LastName: "Brady"},
	}, nil
}

func (stubReporter) WeeklySchedule(
	_ context.Context, _ int,
) ([]report.ScheduleRow, error) {
	home := 24
	away := 17
	date := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)
	return []report.ScheduleRow{
		{
			GameDate: date, HomeTeam: "Patriots", AwayTeam: "Jets",
			HomeScore: &home, AwayScore: &away,
		},
		{GameDate: date, HomeTeam: "Packers", AwayTeam: "Bears"},
	}, nil
}

func (stubReporter) RushingLeaders(_ context.Context) ([]report.YardsRow, error) {
	return []report.YardsRow{
		{FirstName: "Derrick", LastName: "Henry", Yards: 127},
	}, nil
}

func (stubReporter) ReceivingAverages(_ context.Context) ([]report.AverageRow, error) {
	return []report.AverageRow{
		{FirstName: "Tyreek", LastName: "Hill", Average: 86.5},
	}, nil
}

func (stubReporter) DefensiveStandouts(_ context.Context) ([]report.DefensiveRow, error) {
	return nil, nil
}

func (stubReporter) AboveAverageRushers(_ context.Context) ([]report.AverageRow, error) {
	return []report.AverageRow{
		{FirstName: "Derrick", LastName: "Henry", Average: 115.5},
	}, nil
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	rep := stubReporter{}

	tests := []struct {
		name     report.Name
		contains []string
	}{
		{
			name:     report.PassingLeaders,
			contains: []string{"PASSING YARDS", "Brady", "300", "Love", "280"},
		},
		{
			name:     report.RosterSize,
			contains: []string{"TEAM", "Patriots", "Bears", "0"},
		},
		{
			name:     report.Quarterbacks,
			contains: []string{"(free agent)", "Flacco", "Patriots", "Brady"},
		},
		{
			name:     report.Schedule,
			contains: []string{"Week 1", "2025-09-07", "24:17", "-:-"},
		},
		{
			name:     report.RushingLeaders,
			contains: []string{"RUSHING YARDS", "Henry", "127"},
		},
		{
			name:     report.ReceivingAverage,
			contains: []string{"AVG RECEIVING", "Hill", "86.5"},
		},
		{
			name:     report.DefensiveStandouts,
			contains: []string{"INT", "TACKLES"},
		},
		{
			name:     report.AboveAverageRushers,
			contains: []string{"AVG RUSHING", "Henry", "115.5"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			var buf bytes.Buffer
			err := Run(ctx, rep, tt.name, 1, &buf)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestRunUnknownReport(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), stubReporter{}, "nonsense", 1, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonsense")
}

func TestOptScore(t *testing.T) {
	assert.Equal(t, "-", optScore(nil))
	v := 0
	assert.Equal(t, "0", optScore(&v))
}
