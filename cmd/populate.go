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
	"github.com/sportsdb/gridstats/internal/iodb"
	"github.com/sportsdb/gridstats/internal/iopopulate"
	"github.com/sportsdb/gridstats/pkg/config"
	"github.com/spf13/cobra"
)

// getPopulateCmd returns the populate command.
func getPopulateCmd() *cobra.Command {
	var (
		csvDir   string
		archive  string
		truncate bool
	)

	populateCmd := &cobra.Command{
		Use:   "populate",
		Short: "Load teams, players, games and statistics",
		Long: `Load football data into an already created schema.

The source is picked in this order:
  1. --archive: a SQLite season archive
  2. --csv-dir: a directory with TEAM.csv, PLAYER.csv, COACH.csv,
     GAME.csv and GAME_STATS.csv (the layout 'gridstats fetch'
     produces)
  3. the embedded sample season

Rows are inserted in bulk with PostgreSQL COPY, parents before
children. Use --truncate to clear all tables first.

Examples:
  gridstats populate
  gridstats populate --truncate
  gridstats populate --csv-dir ~/.local/share/gridstats/data
  gridstats populate --archive season2025.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update([]config.Option{
				config.OptPopulateCSVDir(csvDir),
				config.OptPopulateArchive(archive),
				config.OptPopulateTruncate(truncate),
			})
			return runPopulate(cmd, args)
		},
	}

	populateCmd.Flags().StringVar(&csvDir, "csv-dir", "",
		"directory with CSV files to load")
	populateCmd.Flags().StringVar(&archive, "archive", "",
		"SQLite season archive to load")
	populateCmd.Flags().BoolVarP(&truncate, "truncate", "t",
		false, "truncate all tables before loading")

	return populateCmd
}

func runPopulate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: %s@%s:%d/%s",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	p := iopopulate.New(cfg, op)
	if err := p.Populate(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	return nil
}
