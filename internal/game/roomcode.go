package game

import (
	"strings"

	"github.com/valyala/fastrand"
)

const (
	roomCodeLength   = 6
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// RoomCode identifies one match. Always stored uppercase.
type RoomCode string

func GenerateRoomCode() RoomCode {
	var b [roomCodeLength]byte
	for i := range b {
		b[i] = roomCodeAlphabet[fastrand.Uint32n(uint32(len(roomCodeAlphabet)))]
	}
	return RoomCode(b[:])
}

// ParseRoomCode validates a client-supplied code and normalizes it to
// uppercase. Lookup equality is case-insensitive through this normalization.
func ParseRoomCode(raw string) (RoomCode, error) {
	if len(raw) != roomCodeLength {
		return "", ErrInvalidCode
	}
	return RoomCode(strings.ToUpper(raw)), nil
}

func (c RoomCode) String() string {
	return string(c)
}
