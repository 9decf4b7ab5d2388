package game

// Player is one side of a match. A zero characterID means "not chosen yet",
// empty word/recording mean "not submitted yet".
type Player struct {
	connID      string
	slot        int
	characterID int
	word        string
	recording   string
	hp          Hp
}

func NewPlayer(connID string, slot int) *Player {
	return &Player{
		connID: connID,
		slot:   slot,
		hp:     FullHp(),
	}
}

func (p *Player) ConnID() string { return p.connID }
func (p *Player) Slot() int      { return p.slot }

func (p *Player) SelectCharacter(characterID int) {
	p.characterID = characterID
}

func (p *Player) SubmitWord(word string) {
	p.word = word
}

func (p *Player) SubmitRecording(ref string) {
	p.recording = ref
}

func (p *Player) ApplyDamage(amount int) {
	p.hp = p.hp.Subtract(amount)
}

func (p *Player) IsKnockedOut() bool {
	return p.hp.IsZero()
}

// ResetRound clears the per-round submissions. Character choice and hp
// persist across rounds.
func (p *Player) ResetRound() {
	p.word = ""
	p.recording = ""
}
