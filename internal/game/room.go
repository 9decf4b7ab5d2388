package game

type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseCharacterSelect
	PhaseWordSelect
	PhaseTerminated
)

// Room holds one two-player match. Slot 1 goes to whoever joined first,
// slot 2 to the second player. The hub goroutine is the only writer.
type Room struct {
	code     RoomCode
	phase    Phase
	round    int
	sentence string
	players  []*Player
}

func NewRoom(code RoomCode) *Room {
	return &Room{
		code:  code,
		phase: PhaseWaiting,
		round: 1,
	}
}

func (r *Room) Code() RoomCode   { return r.code }
func (r *Room) Phase() Phase     { return r.phase }
func (r *Room) Round() int       { return r.round }
func (r *Room) Sentence() string { return r.sentence }
func (r *Room) PlayerCount() int { return len(r.players) }

func (r *Room) player(slot int) *Player {
	for _, p := range r.players {
		if p.slot == slot {
			return p
		}
	}
	return nil
}

// AddPlayer assigns the next free slot. Joining the second player moves the
// room into character select.
func (r *Room) AddPlayer(connID string) (*Player, error) {
	if len(r.players) >= 2 {
		return nil, ErrRoomFull
	}
	p := NewPlayer(connID, len(r.players)+1)
	r.players = append(r.players, p)
	if len(r.players) == 2 {
		r.phase = PhaseCharacterSelect
	}
	return p, nil
}

// SelectCharacter records the choice for a slot and reports whether both
// players have now chosen. Unknown slots are ignored: the transport delivers
// events in arrival order and stale ones are expected, not fatal.
func (r *Room) SelectCharacter(slot, characterID int) bool {
	p := r.player(slot)
	if p == nil {
		return false
	}
	p.SelectCharacter(characterID)

	p1, p2 := r.player(1), r.player(2)
	if p1 != nil && p1.characterID != 0 && p2 != nil && p2.characterID != 0 {
		r.phase = PhaseWordSelect
		return true
	}
	return false
}

// SubmitWord records a keyword and reports whether both players have one.
func (r *Room) SubmitWord(slot int, word string) bool {
	p := r.player(slot)
	if p == nil {
		return false
	}
	p.SubmitWord(word)

	p1, p2 := r.player(1), r.player(2)
	return p1 != nil && p1.word != "" && p2 != nil && p2.word != ""
}

// SetSentence stores the generated line for this round. Content comes from
// the sentence generator and is not validated here.
func (r *Room) SetSentence(sentence string) {
	r.sentence = sentence
}

// SubmitRecording records a performance and reports whether both are in.
func (r *Room) SubmitRecording(slot int, ref string) bool {
	p := r.player(slot)
	if p == nil {
		return false
	}
	p.SubmitRecording(ref)

	p1, p2 := r.player(1), r.player(2)
	return p1 != nil && p1.recording != "" && p2 != nil && p2.recording != ""
}

// UpdateAfterRound persists the already-resolved hp outcome, clears the
// per-round state and advances the round counter. Damage itself is computed
// by the resolver, never here.
func (r *Room) UpdateAfterRound(hpBySlot map[int]int, nextRound int) {
	for _, slot := range []int{1, 2} {
		p := r.player(slot)
		if p == nil {
			continue
		}
		if hp, ok := hpBySlot[slot]; ok {
			p.hp = NewHp(hp)
		}
		p.ResetRound()
	}
	r.round = nextRound
	r.sentence = ""

	if r.anyKnockedOut() {
		r.phase = PhaseTerminated
	} else {
		r.phase = PhaseWordSelect
	}
}

func (r *Room) anyKnockedOut() bool {
	for _, p := range r.players {
		if p.IsKnockedOut() {
			return true
		}
	}
	return false
}

// ConnIDs lists the member connections, slot order.
func (r *Room) ConnIDs() []string {
	ids := make([]string, 0, len(r.players))
	for _, p := range r.players {
		ids = append(ids, p.connID)
	}
	return ids
}

// The map accessors below return plain snapshots for broadcasting; they never
// hand out the contained players.

func (r *Room) CharacterMap() map[int]int {
	m := make(map[int]int, 2)
	for _, p := range r.players {
		if p.characterID != 0 {
			m[p.slot] = p.characterID
		}
	}
	return m
}

func (r *Room) WordMap() map[int]string {
	m := make(map[int]string, 2)
	for _, p := range r.players {
		if p.word != "" {
			m[p.slot] = p.word
		}
	}
	return m
}

func (r *Room) RecordingMap() map[int]string {
	m := make(map[int]string, 2)
	for _, p := range r.players {
		if p.recording != "" {
			m[p.slot] = p.recording
		}
	}
	return m
}

func (r *Room) HpMap() map[int]int {
	m := make(map[int]int, len(r.players))
	for _, p := range r.players {
		m[p.slot] = p.hp.Int()
	}
	return m
}
