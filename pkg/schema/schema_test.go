package schema_test

import (
	"testing"

	"github.com/sportsdb/gridstats/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	t.Run("keeps dependency order", func(t *testing.T) {
		// Parents before children: game_stats references both games
		// and players, games references teams.
		names := schema.TableNames()
		assert.Equal(t,
			[]string{"teams", "players", "coaches", "games", "game_stats"},
			names,
		)
	})

	t.Run("matches AllModels", func(t *testing.T) {
		require.Equal(t, len(schema.AllModels()), len(schema.TableNames()))
	})
}

func TestModelTableNames(t *testing.T) {
	assert.Equal(t, "teams", schema.Team{}.TableName())
	assert.Equal(t, "players", schema.Player{}.TableName())
	assert.Equal(t, "coaches", schema.Coach{}.TableName())
	assert.Equal(t, "games", schema.Game{}.TableName())
	assert.Equal(t, "game_stats", schema.GameStat{}.TableName())
}

func TestNullableStats(t *testing.T) {
	// A stat line with no tackles must keep the category NULL, not
	// zero. Zero is a recorded value.
	yards := 280
	stat := schema.GameStat{
		GameID:       1,
		PlayerID:     2,
		PassingYards: &yards,
	}
	assert.Nil(t, stat.Tackles)
	assert.Nil(t, stat.Interceptions)
	require.NotNil(t, stat.PassingYards)
	assert.Equal(t, 280, *stat.PassingYards)
}
