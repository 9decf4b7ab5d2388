package game

import "math"

// Category weights for the total: tone 40%, emotion 30%, rhythm 20%,
// pronunciation 10%.
const (
	weightTone          = 0.4
	weightEmotion       = 0.3
	weightRhythm        = 0.2
	weightPronunciation = 0.1
)

// maxRoundDamage caps a single round at 2 lives, so one dominant win can
// never knock a player out from full hp but two strong wins can.
const maxRoundDamage = 2

// Judgment is the judge's scored comparison for one round. Transient: it is
// consumed by the resolver and discarded. Field names follow the wire format
// the judge produces.
type Judgment struct {
	Player1Tone          float64 `json:"player1_tone"`
	Player1Emotion       float64 `json:"player1_emotion"`
	Player1Rhythm        float64 `json:"player1_rhythm"`
	Player1Pronunciation float64 `json:"player1_pronunciation"`
	Player2Tone          float64 `json:"player2_tone"`
	Player2Emotion       float64 `json:"player2_emotion"`
	Player2Rhythm        float64 `json:"player2_rhythm"`
	Player2Pronunciation float64 `json:"player2_pronunciation"`

	Player1Total float64 `json:"player1_total"`
	Player2Total float64 `json:"player2_total"`

	// Rounded whole-point totals kept for older clients.
	Player1Score int `json:"player1_score"`
	Player2Score int `json:"player2_score"`

	Winner          int    `json:"winner"`
	Reason          string `json:"reason"`
	Player1Feedback string `json:"player1_feedback"`
	Player2Feedback string `json:"player2_feedback"`
}

// Outcome is the deterministic result of one round.
type Outcome struct {
	Winner int
	Damage int
}

func weightedTotal(tone, emotion, rhythm, pronunciation float64) float64 {
	total := tone*weightTone + emotion*weightEmotion + rhythm*weightRhythm + pronunciation*weightPronunciation
	return math.Round(total*100) / 100
}

// NormalizeJudgment recomputes both totals from the category scores and
// re-derives the winner, whatever the judge claimed. The judge is prompted to
// avoid exact ties but cannot be trusted to comply; this is the enforcement
// point. Tie-break cascade: total, then emotion, then rhythm, then player 1.
func NormalizeJudgment(j Judgment) Judgment {
	j.Player1Total = weightedTotal(j.Player1Tone, j.Player1Emotion, j.Player1Rhythm, j.Player1Pronunciation)
	j.Player2Total = weightedTotal(j.Player2Tone, j.Player2Emotion, j.Player2Rhythm, j.Player2Pronunciation)

	switch {
	case j.Player1Total > j.Player2Total:
		j.Winner = 1
	case j.Player2Total > j.Player1Total:
		j.Winner = 2
	case j.Player1Emotion > j.Player2Emotion:
		j.Winner = 1
	case j.Player2Emotion > j.Player1Emotion:
		j.Winner = 2
	case j.Player1Rhythm > j.Player2Rhythm:
		j.Winner = 1
	case j.Player2Rhythm > j.Player1Rhythm:
		j.Winner = 2
	default:
		j.Winner = 1
	}

	j.Player1Score = int(math.Round(j.Player1Total))
	j.Player2Score = int(math.Round(j.Player2Total))
	return j
}

// Resolve turns a judgment into (winner, damage). Pure: identical input
// always yields the identical outcome, so the slot-1 client's result can be
// rebroadcast verbatim without recomputation.
func Resolve(j Judgment) Outcome {
	j = NormalizeJudgment(j)

	winnerTotal, loserTotal := j.Player1Total, j.Player2Total
	if j.Winner == 2 {
		winnerTotal, loserTotal = j.Player2Total, j.Player1Total
	}

	return Outcome{
		Winner: j.Winner,
		Damage: calculateDamage(winnerTotal, loserTotal),
	}
}

// calculateDamage maps the score gap to lives: a base of 1, plus 1 per full
// 20 points of gap, capped at maxRoundDamage. A narrow win costs the loser
// one life, a blowout costs two.
func calculateDamage(winnerTotal, loserTotal float64) int {
	diff := math.Abs(winnerTotal - loserTotal)
	damage := 1 + int(diff/20)
	if damage > maxRoundDamage {
		damage = maxRoundDamage
	}
	return damage
}

// IsKnockedOut reports whether an hp value after damage means KO.
func IsKnockedOut(hp int) bool {
	return hp <= 0
}

// NeutralJudgment is the substitute for a failed or unparseable judge
// response: all categories at midpoint, tie resolved to player 1. The
// resolver must never see an absent judgment.
func NeutralJudgment(reason string) Judgment {
	return NormalizeJudgment(Judgment{
		Player1Tone:          50,
		Player1Emotion:       50,
		Player1Rhythm:        50,
		Player1Pronunciation: 50,
		Player2Tone:          50,
		Player2Emotion:       50,
		Player2Rhythm:        50,
		Player2Pronunciation: 50,
		Reason:               reason,
	})
}
