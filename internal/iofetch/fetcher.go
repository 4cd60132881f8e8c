// Package iofetch implements the Fetcher interface against the ESPN
// public endpoints (no API key required). It downloads one season of
// teams, rosters, coaches, schedule and per-player statistics and
// writes the five CSV files that `gridstats populate --csv-dir`
// loads.
package iofetch

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/sportsdb/gridstats/pkg/config"
	"github.com/sportsdb/gridstats/pkg/gridstats"
)

// fetcher implements the Fetcher interface.
type fetcher struct {
	cfg    *config.Config
	client *client
}

// New creates a new Fetcher.
func New(cfg *config.Config) gridstats.Fetcher {
	return &fetcher{cfg: cfg, client: newClient()}
}

// Fetch downloads one season and writes TEAM.csv, PLAYER.csv,
// COACH.csv, GAME.csv and GAME_STATS.csv into the data directory.
func (f *fetcher) Fetch(ctx context.Context) error {
	startTime := time.Now()
	season := f.cfg.Fetch.Season
	gn.Info("Loading season %d", season)

	teams, err := f.teams(ctx)
	if err != nil {
		return err
	}
	slog.Info("Fetched teams list", "count", len(teams))

	teamIDs := make([]int, 0, len(teams))
	for _, t := range teams {
		if t.ID != 0 {
			teamIDs = append(teamIDs, t.ID)
		}
	}

	gn.Info("Fetching rosters for %d teams", len(teamIDs))
	players, err := f.rosters(ctx, teamIDs)
	if err != nil {
		return err
	}
	slog.Info("Built player roster", "unique_players", len(players))

	coaches, err := f.coaches(ctx, teamIDs, season)
	if err != nil {
		return err
	}

	games, meta, err := f.games(ctx, season, f.cfg.Fetch.MaxWeeks)
	if err != nil {
		return err
	}

	var stats []statRow
	if f.cfg.Fetch.SkipGameStats {
		slog.Info("Skipping game statistics")
	} else {
		gn.Info("Fetching statistics for %d games", len(meta))
		stats, err = f.gameStats(ctx, meta)
		if err != nil {
			return err
		}
		players = prunePlayers(players, stats)
	}

	dataDir := config.DataDir(f.cfg.HomeDir)
	if err := writeCSVs(dataDir, teams, players, coaches, games, stats); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Season fetch complete",
		"teams", len(teams),
		"players", len(players),
		"coaches", len(coaches),
		"games", len(games),
		"stats", len(stats),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Wrote CSV files to <em>%s</em> in %s",
		dataDir, gnfmt.TimeString(duration.Seconds()))
	return nil
}

// prunePlayers drops players without a single stat line. Rosters
// carry sixty-plus names per team; bench-only rows add nothing to the
// reports.
func prunePlayers(players []playerRow, stats []statRow) []playerRow {
	if len(stats) == 0 {
		return players
	}
	used := make(map[int]bool, len(stats))
	for _, s := range stats {
		used[s.PlayerID] = true
	}

	res := make([]playerRow, 0, len(players))
	for _, p := range players {
		if used[p.ID] {
			res = append(res, p)
		}
	}
	slog.Info("Pruned players with no stats",
		"before", len(players), "after", len(res))
	return res
}

func (f *fetcher) newBar(total int) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
