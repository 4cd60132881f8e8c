package iodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorNotConnected(t *testing.T) {
	op := NewPgxOperator()
	ctx := context.Background()

	t.Run("pool is nil before connect", func(t *testing.T) {
		assert.Nil(t, op.Pool())
	})

	t.Run("operations fail without connection", func(t *testing.T) {
		_, err := op.TableExists(ctx, "teams")
		require.Error(t, err)

		_, err = op.HasTables(ctx)
		require.Error(t, err)

		err = op.DropAllTables(ctx)
		require.Error(t, err)

		err = op.TruncateTables(ctx, []string{"teams"})
		require.Error(t, err)
	})

	t.Run("close without connect is a no-op", func(t *testing.T) {
		assert.NoError(t, op.Close())
	})
}
