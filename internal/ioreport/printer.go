package ioreport

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sportsdb/gridstats/pkg/report"
)

// Run executes one report and renders it as a table to w. Week is
// only used by the schedule report.
func Run(
	ctx context.Context,
	rep report.Reporter,
	name report.Name,
	week int,
	w io.Writer,
) error {
	switch name {
	case report.PassingLeaders:
		rows, err := rep.PassingLeaders(ctx)
		if err != nil {
			return err
		}
		return printYards(w, "PASSING YARDS", rows)
	case report.RosterSize:
		rows, err := rep.RosterSizes(ctx)
		if err != nil {
			return err
		}
		return printRosters(w, rows)
	case report.Quarterbacks:
		rows, err := rep.Quarterbacks(ctx)
		if err != nil {
			return err
		}
		return printQuarterbacks(w, rows)
	case report.Schedule:
		rows, err := rep.WeeklySchedule(ctx, week)
		if err != nil {
			return err
		}
		return printSchedule(w, week, rows)
	case report.RushingLeaders:
		rows, err := rep.RushingLeaders(ctx)
		if err != nil {
			return err
		}
		return printYards(w, "RUSHING YARDS", rows)
	case report.ReceivingAverage:
		rows, err := rep.ReceivingAverages(ctx)
		if err != nil {
			return err
		}
		return printAverages(w, "AVG RECEIVING", rows)
	case report.DefensiveStandouts:
		rows, err := rep.DefensiveStandouts(ctx)
		if err != nil {
			return err
		}
		return printDefensive(w, rows)
	case report.AboveAverageRushers:
		rows, err := rep.AboveAverageRushers(ctx)
		if err != nil {
			return err
		}
		return printAverages(w, "AVG RUSHING", rows)
	default:
		return UnknownReportError(string(name))
	}
}

func tab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printYards(w io.Writer, header string, rows []report.YardsRow) error {
	tw := tab(w)
	fmt.Fprintf(tw, "FIRST\tLAST\t%s\n", header)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", r.FirstName, r.LastName, r.Yards)
	}
	return tw.Flush()
}

func printRosters(w io.Writer, rows []report.RosterRow) error {
	tw := tab(w)
	fmt.Fprintln(tw, "TEAM\tPLAYERS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", r.TeamName, r.Players)
	}
	return tw.Flush()
}

func printQuarterbacks(w io.Writer, rows []report.QuarterbackRow) error {
	tw := tab(w)
	fmt.Fprintln(tw, "TEAM\tFIRST\tLAST")
	for _, r := range rows {
		team := "(free agent)"
		if r.TeamName != nil {
			team = *r.TeamName
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", team, r.FirstName, r.LastName)
	}
	return tw.Flush()
}

func printSchedule(w io.Writer, week int, rows []report.ScheduleRow) error {
	fmt.Fprintf(w, "Week %d\n", week)
	tw := tab(w)
	fmt.Fprintln(tw, "DATE\tHOME\tAWAY\tSCORE")
	for _, r := range rows {
		score := optScore(r.HomeScore) + ":" + optScore(r.AwayScore)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.GameDate.Format("2006-01-02"), r.HomeTeam, r.AwayTeam, score)
	}
	return tw.Flush()
}

func printAverages(w io.Writer, header string, rows []report.AverageRow) error {
	tw := tab(w)
	fmt.Fprintf(tw, "FIRST\tLAST\t%s\n", header)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\n", r.FirstName, r.LastName, r.Average)
	}
	return tw.Flush()
}

func printDefensive(w io.Writer, rows []report.DefensiveRow) error {
	tw := tab(w)
	fmt.Fprintln(tw, "FIRST\tLAST\tINT\tTACKLES")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
			r.FirstName, r.LastName, r.Interceptions, r.Tackles)
	}
	return tw.Flush()
}

// optScore renders an unplayed game's score as a dash.
func optScore(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
