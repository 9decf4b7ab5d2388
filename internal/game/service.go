package game

// Coordinator orchestrates registries and rooms in response to session
// events. Pure in-memory logic: no I/O, no goroutines, invoked only from the
// hub's single event loop. Operations keyed by an unknown connection return
// ok=false rather than an error, since stale events after a disconnect race
// are legitimate.
type Coordinator struct {
	rooms *RoomRegistry
	conns *ConnectionRegistry
}

func NewCoordinator(rooms *RoomRegistry, conns *ConnectionRegistry) *Coordinator {
	return &Coordinator{rooms: rooms, conns: conns}
}

type JoinResult struct {
	RoomCode RoomCode
	Slot     int
}

// CreateRoom opens a fresh room with the caller in slot 1. Codes are
// generated until one misses the registry, so a collision can never clobber
// a live room.
func (c *Coordinator) CreateRoom(connID string) JoinResult {
	code := GenerateRoomCode()
	for c.rooms.Exists(code) {
		code = GenerateRoomCode()
	}

	room := NewRoom(code)
	player, _ := room.AddPlayer(connID)
	c.rooms.Save(room)
	c.conns.Register(connID, code, player.Slot())

	return JoinResult{RoomCode: code, Slot: player.Slot()}
}

// JoinRoom seats the caller in slot 2. Returns ErrInvalidCode, ErrRoomNotFound
// or ErrRoomFull as values; the gateway relays the message to the requester
// instead of dropping the connection.
func (c *Coordinator) JoinRoom(connID, rawCode string) (JoinResult, error) {
	code, err := ParseRoomCode(rawCode)
	if err != nil {
		return JoinResult{}, err
	}

	room, ok := c.rooms.FindByCode(code)
	if !ok {
		return JoinResult{}, ErrRoomNotFound
	}

	player, err := room.AddPlayer(connID)
	if err != nil {
		return JoinResult{}, err
	}
	c.conns.Register(connID, code, player.Slot())

	return JoinResult{RoomCode: code, Slot: player.Slot()}, nil
}

func (c *Coordinator) room(connID string) (*Room, ConnEntry, bool) {
	entry, ok := c.conns.Get(connID)
	if !ok {
		return nil, ConnEntry{}, false
	}
	room, ok := c.rooms.FindByCode(entry.Code)
	if !ok {
		return nil, ConnEntry{}, false
	}
	return room, entry, true
}

type SelectCharacterResult struct {
	RoomCode     RoomCode
	BothSelected bool
	Characters   map[int]int
}

func (c *Coordinator) SelectCharacter(connID string, characterID int) (SelectCharacterResult, bool) {
	room, entry, ok := c.room(connID)
	if !ok {
		return SelectCharacterResult{}, false
	}

	both := room.SelectCharacter(entry.Slot, characterID)
	return SelectCharacterResult{
		RoomCode:     entry.Code,
		BothSelected: both,
		Characters:   room.CharacterMap(),
	}, true
}

type SubmitWordResult struct {
	RoomCode      RoomCode
	BothSubmitted bool
	Words         map[int]string
}

func (c *Coordinator) SubmitWord(connID, word string) (SubmitWordResult, bool) {
	room, entry, ok := c.room(connID)
	if !ok {
		return SubmitWordResult{}, false
	}

	both := room.SubmitWord(entry.Slot, word)
	return SubmitWordResult{
		RoomCode:      entry.Code,
		BothSubmitted: both,
		Words:         room.WordMap(),
	}, true
}

func (c *Coordinator) SetSentence(connID, sentence string) (RoomCode, bool) {
	room, entry, ok := c.room(connID)
	if !ok {
		return "", false
	}
	room.SetSentence(sentence)
	return entry.Code, true
}

type SubmitRecordingResult struct {
	RoomCode   RoomCode
	BothDone   bool
	Recordings map[int]string
}

func (c *Coordinator) SubmitRecording(connID, ref string) (SubmitRecordingResult, bool) {
	room, entry, ok := c.room(connID)
	if !ok {
		return SubmitRecordingResult{}, false
	}

	both := room.SubmitRecording(entry.Slot, ref)
	return SubmitRecordingResult{
		RoomCode:   entry.Code,
		BothDone:   both,
		Recordings: room.RecordingMap(),
	}, true
}

func (c *Coordinator) RoomCodeOf(connID string) (RoomCode, bool) {
	entry, ok := c.conns.Get(connID)
	if !ok {
		return "", false
	}
	return entry.Code, true
}

// Members lists the connections seated in a room, slot order.
func (c *Coordinator) Members(code RoomCode) []string {
	room, ok := c.rooms.FindByCode(code)
	if !ok {
		return nil
	}
	return room.ConnIDs()
}

type RoundCompleteResult struct {
	RoomCode   RoomCode
	Round      int
	Hp         map[int]int
	Terminated bool
	WinnerSlot int
}

// RoundComplete persists externally resolved hp values. The resolver already
// decided winner and damage; the room only records the outcome.
func (c *Coordinator) RoundComplete(connID string, hpBySlot map[int]int, nextRound int) (RoundCompleteResult, bool) {
	room, entry, ok := c.room(connID)
	if !ok {
		return RoundCompleteResult{}, false
	}

	room.UpdateAfterRound(hpBySlot, nextRound)

	result := RoundCompleteResult{
		RoomCode:   entry.Code,
		Round:      room.Round(),
		Hp:         room.HpMap(),
		Terminated: room.Phase() == PhaseTerminated,
	}
	if result.Terminated {
		for slot, hp := range result.Hp {
			if hp > 0 {
				result.WinnerSlot = slot
			}
		}
	}
	return result, true
}

type DisconnectResult struct {
	RoomCode  RoomCode
	Remaining []string
	// RemainingSlot is the seat of the surviving peer, 0 when the room was
	// still a solo lobby.
	RemainingSlot int
	Rounds        int
	Live          bool
}

// Disconnect tears the whole room down: there is no reconnection, so the
// remaining peer's match is over too. Remaining holds the peers still to be
// notified, captured before the room is deleted.
func (c *Coordinator) Disconnect(connID string) (DisconnectResult, bool) {
	entry, ok := c.conns.Remove(connID)
	if !ok {
		return DisconnectResult{}, false
	}

	result := DisconnectResult{RoomCode: entry.Code}
	if room, ok := c.rooms.FindByCode(entry.Code); ok {
		result.Rounds = room.Round()
		result.Live = room.Phase() != PhaseWaiting && room.Phase() != PhaseTerminated
		for _, p := range room.players {
			if p.ConnID() == connID {
				continue
			}
			c.conns.Remove(p.ConnID())
			result.Remaining = append(result.Remaining, p.ConnID())
			result.RemainingSlot = p.Slot()
		}
	}
	c.rooms.Delete(entry.Code)

	return result, true
}
