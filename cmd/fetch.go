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

	"github.com/gnames/gn"
	"github.com/sportsdb/gridstats/internal/iofetch"
	"github.com/sportsdb/gridstats/pkg/config"
	"github.com/spf13/cobra"
)

// getFetchCmd returns the fetch command.
func getFetchCmd() *cobra.Command {
	var (
		season        int
		maxWeeks      int
		skipGameStats bool
	)

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download a season from the public league API",
		Long: `Download teams, rosters, coaches, games and per-player game
statistics for one season and write them out as CSV files in the
data directory. The files can then be loaded with
'gridstats populate --csv-dir'.

Players without a single statistic line are dropped, so the roster
matches what actually appears in box scores.

Examples:
  gridstats fetch
  gridstats fetch --season 2024
  gridstats fetch --max-weeks 4 --skip-game-stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fetchOpts []config.Option
			if season > 0 {
				fetchOpts = append(fetchOpts,
					config.OptFetchSeason(season))
			}
			if maxWeeks > 0 {
				fetchOpts = append(fetchOpts,
					config.OptFetchMaxWeeks(maxWeeks))
			}
			fetchOpts = append(fetchOpts,
				config.OptFetchSkipGameStats(skipGameStats))
			cfg.Update(fetchOpts)
			return runFetch(cmd, args)
		},
	}

	fetchCmd.Flags().IntVarP(&season, "season", "s", 0,
		"season year to download (default: current year)")
	fetchCmd.Flags().IntVar(&maxWeeks, "max-weeks", 0,
		"number of regular season weeks to scan")
	fetchCmd.Flags().BoolVar(&skipGameStats, "skip-game-stats", false,
		"skip per-player game statistics (much faster)")

	return fetchCmd
}

func runFetch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	f := iofetch.New(cfg)
	if err := f.Fetch(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}
