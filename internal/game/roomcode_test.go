package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoomCode(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		code := GenerateRoomCode()
		assert.Len(t, code.String(), 6)
		for _, r := range code.String() {
			assert.Contains(t, roomCodeAlphabet, string(r))
		}
	}
}

func TestParseRoomCode(t *testing.T) {
	t.Parallel()

	t.Run("normalizes to uppercase", func(t *testing.T) {
		t.Parallel()
		code, err := ParseRoomCode("ab12cd")
		require.NoError(t, err)
		assert.Equal(t, RoomCode("AB12CD"), code)
	})

	t.Run("accepts already-uppercase codes", func(t *testing.T) {
		t.Parallel()
		code, err := ParseRoomCode("XYZ789")
		require.NoError(t, err)
		assert.Equal(t, "XYZ789", code.String())
	})

	t.Run("rejects wrong lengths", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", "ABC", "ABCDEFG", strings.Repeat("A", 60)} {
			_, err := ParseRoomCode(raw)
			assert.ErrorIs(t, err, ErrInvalidCode, "raw=%q", raw)
		}
	})
}
