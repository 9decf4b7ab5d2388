package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	require.NoError(t, store.RecordMatch("ABC123", 1, 3, CauseKnockout))
	require.NoError(t, store.RecordMatch("XYZ789", 2, 1, CauseForfeit))

	matches, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// newest first
	assert.Equal(t, "XYZ789", matches[0].RoomCode)
	assert.Equal(t, 2, matches[0].WinnerSlot)
	assert.Equal(t, CauseForfeit, matches[0].Cause)
	assert.False(t, matches[0].FinishedAt.IsZero())

	assert.Equal(t, "ABC123", matches[1].RoomCode)
	assert.Equal(t, 1, matches[1].WinnerSlot)
	assert.Equal(t, 3, matches[1].Rounds)
	assert.Equal(t, CauseKnockout, matches[1].Cause)
}

func TestRecentHonorsLimit(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordMatch("ROOM00", 1, i+1, CauseKnockout))
	}

	matches, err := store.Recent(3)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 5, matches[0].Rounds)
	assert.Equal(t, 3, matches[2].Rounds)
}

func TestRecentOnEmptyStore(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	matches, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
