/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/internal/iodb"
	"github.com/sportsdb/gridstats/internal/ioreport"
	"github.com/sportsdb/gridstats/pkg/report"
	"github.com/spf13/cobra"
)

// getReportCmd returns the report command.
func getReportCmd() *cobra.Command {
	var week int

	names := make([]string, len(report.All()))
	for i, n := range report.All() {
		names[i] = string(n)
	}

	reportCmd := &cobra.Command{
		Use:   "report NAME",
		Short: "Run an analytic report",
		Long: fmt.Sprintf(`Run one of the analytic reports against the database and print
it as a table.

Available reports:
  %s

Use 'all' to run every report in order. The --week flag applies to
the schedule report only.

Examples:
  gridstats report passing-leaders
  gridstats report schedule --week 1
  gridstats report all`,
			strings.Join(names, "\n  ")),
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}

	reportCmd.Flags().IntVarP(&week, "week", "w", 1,
		"week of the schedule report")
	return reportCmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	week, _ := cmd.Flags().GetInt("week")

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	rep := ioreport.New(op)

	var names []report.Name
	if args[0] == "all" {
		names = report.All()
	} else {
		names = []report.Name{report.Name(args[0])}
	}

	for _, name := range names {
		err := ioreport.Run(ctx, rep, name, week, os.Stdout)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	return nil
}
