package game

// MaxHp is the number of lives each player starts a match with.
const MaxHp = 3

// Hp is a player's remaining lives, always within [0, MaxHp].
type Hp struct {
	value int
}

func NewHp(value int) Hp {
	if value < 0 {
		value = 0
	}
	if value > MaxHp {
		value = MaxHp
	}
	return Hp{value: value}
}

func FullHp() Hp {
	return Hp{value: MaxHp}
}

func (h Hp) Subtract(amount int) Hp {
	return NewHp(h.value - amount)
}

func (h Hp) IsZero() bool {
	return h.value <= 0
}

func (h Hp) Int() int {
	return h.value
}
