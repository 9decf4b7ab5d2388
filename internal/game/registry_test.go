package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRegistry(t *testing.T) {
	t.Parallel()
	reg := NewRoomRegistry()

	_, ok := reg.FindByCode("ABC123")
	assert.False(t, ok)
	assert.False(t, reg.Exists("ABC123"))

	room := NewRoom("ABC123")
	reg.Save(room)

	found, ok := reg.FindByCode("ABC123")
	require.True(t, ok)
	assert.Same(t, room, found)
	assert.True(t, reg.Exists("ABC123"))

	reg.Delete("ABC123")
	_, ok = reg.FindByCode("ABC123")
	assert.False(t, ok)
}

func TestConnectionRegistry(t *testing.T) {
	t.Parallel()
	reg := NewConnectionRegistry()

	_, ok := reg.Get("conn-1")
	assert.False(t, ok)

	reg.Register("conn-1", "ABC123", 1)
	entry, ok := reg.Get("conn-1")
	require.True(t, ok)
	assert.Equal(t, ConnEntry{Code: "ABC123", Slot: 1}, entry)

	// Remove reports the old entry so the caller can still find the room
	removed, ok := reg.Remove("conn-1")
	require.True(t, ok)
	assert.Equal(t, entry, removed)

	_, ok = reg.Get("conn-1")
	assert.False(t, ok)

	_, ok = reg.Remove("conn-1")
	assert.False(t, ok)
}
