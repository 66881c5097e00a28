package bot

import (
	"ctchen222/tictactoe-solo/internal/game"
	"math/rand/v2"
)

//go:generate mockgen -source=bot.go -destination=mocks/mock_rand.go -package=mocks

// Rand is the source of uniformly distributed integers the opponent draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewSeededRand returns a PCG-backed generator. Equal seeds replay equal games.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Rule names the heuristic that produced a decision.
type Rule int

const (
	RuleNone Rule = iota
	RuleOpening
	RuleWin
	RuleBlock
	RuleCenter
	RuleCorner
	RuleFallback
)

func (r Rule) String() string {
	switch r {
	case RuleOpening:
		return "opening"
	case RuleWin:
		return "win"
	case RuleBlock:
		return "block"
	case RuleCenter:
		return "center"
	case RuleCorner:
		return "corner"
	case RuleFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Decision is the cell the opponent marked and the rule that chose it.
type Decision struct {
	Position game.Position
	Rule     Rule
}

// Opponent is the computer player. It always plays game.Opponent against game.Player.
type Opponent struct {
	rng Rand
}

// NewOpponent creates an opponent drawing its opening variation from rng.
func NewOpponent(rng Rand) *Opponent {
	return &Opponent{rng: rng}
}

// Play places exactly one opponent mark on b, unless b is full, and reports the decision.
func (o *Opponent) Play(b *game.Board) Decision {
	d := CalculateNextMove(b, o.rng)
	if d.Rule != RuleNone {
		b.Set(d.Position.Row, d.Position.Col, game.Opponent)
	}
	return d
}
