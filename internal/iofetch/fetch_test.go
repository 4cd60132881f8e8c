package iofetch

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfDivFromAbbr(t *testing.T) {
	tests := []struct {
		abbr       string
		conference string
		division   string
	}{
		{"NE", "AFC", "E"},
		{"ne", "AFC", "E"},
		{"KC", "AFC", "W"},
		{"GB", "NFC", "N"},
		{"SF", "NFC", "W"},
		// Historical aliases for relocated franchises.
		{"WSH", "NFC", "E"},
		{"WAS", "NFC", "E"},
		{"LA", "NFC", "W"},
		{"LAR", "NFC", "W"},
		// Unknown abbreviations come back empty.
		{"XFL", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.abbr, func(t *testing.T) {
			conference, division := confDivFromAbbr(tt.abbr)
			assert.Equal(t, tt.conference, conference)
			assert.Equal(t, tt.division, division)
		})
	}
}

func TestTeamFromESPN(t *testing.T) {
	t.Run("typical team", func(t *testing.T) {
		row := teamFromESPN(espnTeam{
			ID:               "17",
			Abbreviation:     "NE",
			DisplayName:      "New England Patriots",
			ShortDisplayName: "Patriots",
			Location:         "New England",
		})
		assert.Equal(t, 17, row.ID)
		assert.Equal(t, "Patriots", row.Name)
		assert.Equal(t, "New", row.City)
		assert.Equal(t, "AFC", row.Conference)
		assert.Equal(t, "E", row.Division)
	})

	t.Run("falls back through name fields", func(t *testing.T) {
		row := teamFromESPN(espnTeam{
			ID:           "20",
			Abbreviation: "NYJ",
			DisplayName:  "New York Jets",
		})
		assert.Equal(t, "New York Jets", row.Name)
		assert.Equal(t, "New", row.City)
	})

	t.Run("long names fit the schema columns", func(t *testing.T) {
		row := teamFromESPN(espnTeam{
			ID:               "28",
			Abbreviation:     "WSH",
			ShortDisplayName: "Washington Commanders Football",
			Location:         "Washington",
		})
		assert.LessOrEqual(t, len(row.Name), 15)
		assert.LessOrEqual(t, len(row.City), 15)
	})
}

func TestPositionInfoUnmarshal(t *testing.T) {
	t.Run("object form", func(t *testing.T) {
		var p positionInfo
		err := json.Unmarshal([]byte(`{"abbreviation": "QB"}`), &p)
		require.NoError(t, err)
		assert.Equal(t, "QB", p.Abbreviation)
	})

	t.Run("string form", func(t *testing.T) {
		var p positionInfo
		err := json.Unmarshal([]byte(`"RB"`), &p)
		require.NoError(t, err)
		assert.Equal(t, "RB", p.Abbreviation)
	})

	t.Run("inside an athlete", func(t *testing.T) {
		var a espnAthlete
		doc := `{"id": "123", "fullName": "Tom Brady", "position": {"abbreviation": "QB"}}`
		err := json.Unmarshal([]byte(doc), &a)
		require.NoError(t, err)
		assert.Equal(t, "QB", a.Position.Abbreviation)
	})
}

func TestDedupePlayers(t *testing.T) {
	players := []playerRow{
		{ID: 30, First: "C", Last: "C", TeamID: 1},
		{ID: 10, First: "A", Last: "A", TeamID: 1},
		{ID: 30, First: "C", Last: "C", TeamID: 2},
		{ID: 20, First: "B", Last: "B", TeamID: 2},
	}

	res := dedupePlayers(players)
	require.Len(t, res, 3)

	// Sorted by id, first occurrence wins.
	assert.Equal(t, 10, res[0].ID)
	assert.Equal(t, 20, res[1].ID)
	assert.Equal(t, 30, res[2].ID)
	assert.Equal(t, 1, res[2].TeamID)
}

func TestPrunePlayers(t *testing.T) {
	players := []playerRow{
		{ID: 1, Last: "Starter"},
		{ID: 2, Last: "Bench"},
		{ID: 3, Last: "Kicker"},
	}
	stats := []statRow{
		{GameID: 100, PlayerID: 1},
		{GameID: 100, PlayerID: 3},
	}

	t.Run("drops players without stats", func(t *testing.T) {
		res := prunePlayers(players, stats)
		require.Len(t, res, 2)
		assert.Equal(t, 1, res[0].ID)
		assert.Equal(t, 3, res[1].ID)
	})

	t.Run("keeps everyone when stats were skipped", func(t *testing.T) {
		res := prunePlayers(players, nil)
		assert.Len(t, res, 3)
	})
}

func TestStatRowFromBlock(t *testing.T) {
	block := func(stats map[string]float64) *statBlock {
		var b statBlock
		var cat statCategory
		for name, value := range stats {
			cat.Stats = append(cat.Stats, stat{Name: name, Value: value})
		}
		b.Splits.Categories = []statCategory{cat}
		return &b
	}

	t.Run("reads categories", func(t *testing.T) {
		row := statRowFromBlock(100, 42, block(map[string]float64{
			"passingYards":      300,
			"passingTouchdowns": 2,
			"rushingTouchdowns": 1,
			"interceptions":     1,
		}))
		assert.Equal(t, 100, row.GameID)
		assert.Equal(t, 42, row.PlayerID)
		assert.Equal(t, 300, row.Passing)
		assert.Equal(t, 3, row.Touchdowns)
		assert.Equal(t, 1, row.Interceptions)
		assert.Equal(t, 0, row.Rushing)
	})

	t.Run("falls back to net passing yards", func(t *testing.T) {
		row := statRowFromBlock(100, 42, block(map[string]float64{
			"netPassingYards": 270,
		}))
		assert.Equal(t, 270, row.Passing)
	})

	t.Run("falls back to plain tackles", func(t *testing.T) {
		row := statRowFromBlock(100, 42, block(map[string]float64{
			"tackles": 9,
		}))
		assert.Equal(t, 9, row.Tackles)
	})
}

func TestGameFromEvent(t *testing.T) {
	f := &fetcher{client: newClient()}
	ctx := context.Background()

	t.Run("resolves home and away", func(t *testing.T) {
		event := espnEvent{
			ID:   "401547351",
			Date: "2025-09-07T17:00Z",
			Week: refItem{Ref: "http://example.com/weeks/1"},
			Competitions: []competition{{
				ID: "401547351",
				Competitors: []competitor{
					{ID: "20", HomeAway: "away"},
					{ID: "17", HomeAway: "home"},
				},
			}},
		}

		row, m, ok := f.gameFromEvent(ctx, event, 1)
		require.True(t, ok)
		assert.Equal(t, 401547351, row.ID)
		assert.Equal(t, "2025-09-07", row.Date)
		assert.Equal(t, 1, row.Week)
		assert.Equal(t, 17, row.HomeID)
		assert.Equal(t, 20, row.AwayID)
		assert.Nil(t, row.HomeScore)
		assert.Nil(t, row.AwayScore)
		assert.Equal(t, 401547351, m.eventID)
		assert.Len(t, m.competitors, 2)
	})

	t.Run("rejects event without both sides", func(t *testing.T) {
		event := espnEvent{
			ID: "1",
			Competitions: []competition{{
				Competitors: []competitor{{ID: "17", HomeAway: "home"}},
			}},
		}
		_, _, ok := f.gameFromEvent(ctx, event, 1)
		assert.False(t, ok)
	})
}

func TestWriteCSVs(t *testing.T) {
	dir := t.TempDir()

	score := 24
	err := writeCSVs(dir,
		[]teamRow{{ID: 1, Name: "Patriots", City: "Foxborough",
			Conference: "AFC", Division: "E"}},
		[]playerRow{{ID: 10, First: "Tom", Last: "Brady",
			Position: "QB", TeamID: 1}},
		[]coachRow{{ID: 20, First: "Bill", Last: "Belichick",
			TeamID: 1, Role: "Head Coach"}},
		[]gameRow{{ID: 30, Date: "2025-09-07", Week: 1, HomeID: 1,
			AwayID: 2, HomeScore: &score}},
		[]statRow{{GameID: 30, PlayerID: 10, Passing: 300}},
	)
	require.NoError(t, err)

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	t.Run("team file", func(t *testing.T) {
		rows := read("TEAM.csv")
		require.Len(t, rows, 2)
		assert.Equal(t,
			[]string{"TeamID", "TeamName", "City", "Conference", "Division"},
			rows[0])
		assert.Equal(t,
			[]string{"1", "Patriots", "Foxborough", "AFC", "E"}, rows[1])
	})

	t.Run("coach file swaps name columns", func(t *testing.T) {
		rows := read("COACH.csv")
		require.Len(t, rows, 2)
		assert.Equal(t,
			[]string{"CoachID", "LName", "FName", "TeamID", "Role"}, rows[0])
		assert.Equal(t,
			[]string{"20", "Belichick", "Bill", "1", "Head Coach"}, rows[1])
	})

	t.Run("missing score is an empty cell", func(t *testing.T) {
		rows := read("GAME.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, "24", rows[1][5])
		assert.Equal(t, "", rows[1][6])
	})

	t.Run("stat file", func(t *testing.T) {
		rows := read("GAME_STATS.csv")
		require.Len(t, rows, 2)
		assert.Equal(t, "300", rows[1][2])
	})
}
