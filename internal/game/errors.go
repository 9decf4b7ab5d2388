package game

import "errors"

var (
	ErrRoomNotFound = errors.New("room-not-found")
	ErrRoomFull     = errors.New("room-full")
	ErrInvalidCode  = errors.New("invalid-room-code")
)
