package results

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/chess/internal/store"
)

func TestInsertAndRecent(t *testing.T) {
	db, err := store.OpenDB(filepath.Join(t.TempDir(), "chess.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, store.Migrate(db))

	s := NewStore(db)
	ctx := context.Background()

	ok, err := s.Insert(ctx, Result{GameID: "g1", AnonID: "a1", Status: "stalemate", Plies: 40})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Insert(ctx, Result{GameID: "g2", Status: "checkmate", Winner: "black", Plies: 4})
	require.NoError(t, err)
	assert.True(t, ok)

	// Duplicate game IDs are ignored.
	ok, err = s.Insert(ctx, Result{GameID: "g1", Status: "checkmate", Winner: "white", Plies: 41})
	require.NoError(t, err)
	assert.False(t, ok)

	rows, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "g2", rows[0].GameID)
	assert.Equal(t, "black", rows[0].Winner)
	assert.Equal(t, "g1", rows[1].GameID)
	assert.Equal(t, "stalemate", rows[1].Status)
	assert.Empty(t, rows[1].Winner)
	assert.NotEmpty(t, rows[1].FinishedAt)

	rows, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
