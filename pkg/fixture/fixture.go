// Package fixture builds the embedded sample season. Fixture rows
// reference each other by name; numeric identifiers come from one
// monotonic generator per entity type, so uniqueness is guaranteed by
// the generator and never by the fixture author.
package fixture

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/sportsdb/gridstats/pkg/schema"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var sampleYAML []byte

// Set is a fully resolved fixture: every slice is ordered so that a
// front-to-back insert respects foreign-key dependencies.
type Set struct {
	Teams   []schema.Team
	Players []schema.Player
	Coaches []schema.Coach
	Games   []schema.Game
	Stats   []schema.GameStat
}

type document struct {
	Teams   []teamDef   `yaml:"teams"`
	Players []playerDef `yaml:"players"`
	Coaches []coachDef  `yaml:"coaches"`
	Games   []gameDef   `yaml:"games"`
	Stats   []statDef   `yaml:"stats"`
}

type teamDef struct {
	Name       string `yaml:"name"`
	City       string `yaml:"city"`
	Conference string `yaml:"conference"`
	Division   string `yaml:"division"`
}

type playerDef struct {
	First    string `yaml:"first"`
	Last     string `yaml:"last"`
	Position string `yaml:"position"`
	// Team is a team name; empty means free agent.
	Team string `yaml:"team"`
}

type coachDef struct {
	First string `yaml:"first"`
	Last  string `yaml:"last"`
	Team  string `yaml:"team"`
	Role  string `yaml:"role"`
}

type gameDef struct {
	Date      string `yaml:"date"`
	Week      int    `yaml:"week"`
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	HomeScore *int   `yaml:"home_score"`
	AwayScore *int   `yaml:"away_score"`
}

type statDef struct {
	// Player is "First Last"; Game is the 1-based ordinal of the
	// games list.
	Player        string `yaml:"player"`
	Game          int    `yaml:"game"`
	Passing       *int   `yaml:"passing"`
	Rushing       *int   `yaml:"rushing"`
	Receiving     *int   `yaml:"receiving"`
	Touchdowns    *int   `yaml:"touchdowns"`
	Tackles       *int   `yaml:"tackles"`
	Interceptions *int   `yaml:"interceptions"`
}

// generator hands out sequential identifiers starting at 1.
type generator struct {
	next int
}

func (g *generator) id() int {
	g.next++
	return g.next
}

// Sample builds the embedded sample season.
func Sample() (*Set, error) {
	return Build(sampleYAML)
}

// Build resolves a YAML fixture document into a Set. It fails on any
// dangling reference, so a Set can always be inserted without
// tripping foreign-key constraints.
func Build(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse fixture: %w", err)
	}

	res := &Set{}

	var teamGen, playerGen, coachGen, gameGen generator

	teamIDs := make(map[string]int)
	for _, t := range doc.Teams {
		if _, ok := teamIDs[t.Name]; ok {
			return nil, fmt.Errorf("duplicate team %q", t.Name)
		}
		id := teamGen.id()
		teamIDs[t.Name] = id
		res.Teams = append(res.Teams, schema.Team{
			ID:         id,
			Name:       t.Name,
			City:       t.City,
			Conference: t.Conference,
			Division:   t.Division,
		})
	}

	playerIDs := make(map[string]int)
	for _, p := range doc.Players {
		full := p.First + " " + p.Last
		if _, ok := playerIDs[full]; ok {
			return nil, fmt.Errorf("duplicate player %q", full)
		}
		id := playerGen.id()
		playerIDs[full] = id
		teamID, err := optionalTeam(teamIDs, p.Team, "player", full)
		if err != nil {
			return nil, err
		}
		res.Players = append(res.Players, schema.Player{
			ID:        id,
			FirstName: p.First,
			LastName:  p.Last,
			Position:  p.Position,
			TeamID:    teamID,
		})
	}

	for _, c := range doc.Coaches {
		full := c.First + " " + c.Last
		teamID, err := optionalTeam(teamIDs, c.Team, "coach", full)
		if err != nil {
			return nil, err
		}
		res.Coaches = append(res.Coaches, schema.Coach{
			ID:        coachGen.id(),
			FirstName: c.First,
			LastName:  c.Last,
			TeamID:    teamID,
			Role:      c.Role,
		})
	}

	for i, g := range doc.Games {
		date, err := time.Parse("2006-01-02", g.Date)
		if err != nil {
			return nil, fmt.Errorf("game %d: bad date %q: %w", i+1, g.Date, err)
		}
		homeID, ok := teamIDs[g.Home]
		if !ok {
			return nil, fmt.Errorf("game %d: unknown home team %q", i+1, g.Home)
		}
		awayID, ok := teamIDs[g.Away]
		if !ok {
			return nil, fmt.Errorf("game %d: unknown away team %q", i+1, g.Away)
		}
		res.Games = append(res.Games, schema.Game{
			ID:         gameGen.id(),
			GameDate:   date,
			Week:       g.Week,
			HomeTeamID: homeID,
			AwayTeamID: awayID,
			HomeScore:  g.HomeScore,
			AwayScore:  g.AwayScore,
		})
	}

	seen := make(map[[2]int]bool)
	for _, s := range doc.Stats {
		playerID, ok := playerIDs[s.Player]
		if !ok {
			return nil, fmt.Errorf("stat line: unknown player %q", s.Player)
		}
		if s.Game < 1 || s.Game > len(res.Games) {
			return nil, fmt.Errorf(
				"stat line for %q: game ordinal %d out of range", s.Player, s.Game)
		}
		gameID := res.Games[s.Game-1].ID
		key := [2]int{gameID, playerID}
		if seen[key] {
			return nil, fmt.Errorf(
				"stat line for %q: duplicate entry for game %d", s.Player, s.Game)
		}
		seen[key] = true
		res.Stats = append(res.Stats, schema.GameStat{
			GameID:         gameID,
			PlayerID:       playerID,
			PassingYards:   s.Passing,
			RushingYards:   s.Rushing,
			ReceivingYards: s.Receiving,
			Touchdowns:     s.Touchdowns,
			Tackles:        s.Tackles,
			Interceptions:  s.Interceptions,
		})
	}

	return res, nil
}

func optionalTeam(
	teamIDs map[string]int,
	name, kind, who string,
) (*int, error) {
	if name == "" {
		return nil, nil
	}
	id, ok := teamIDs[name]
	if !ok {
		return nil, fmt.Errorf("%s %q: unknown team %q", kind, who, name)
	}
	return &id, nil
}
