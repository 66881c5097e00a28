package bot

import (
	"ctchen222/tictactoe-solo/internal/game"
)

// openingCenterPercent is the chance of taking the free center on the first reply.
const openingCenterPercent = 60

var (
	center  = game.Position{Row: 1, Col: 1}
	corners = [...]game.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}

	// openingPool is the preference set the first reply picks from at random.
	openingPool = [...]game.Position{center, corners[0], corners[1], corners[2], corners[3]}
)

// CalculateNextMove chooses the opponent's reply without leaving a mark on b.
// Rules are tried in a fixed order and the first applicable one decides.
func CalculateNextMove(b *game.Board, rng Rand) Decision {
	if pos, ok := openingMove(b, rng); ok {
		return Decision{Position: pos, Rule: RuleOpening}
	}

	// 1. Win: complete an opponent line if possible
	if pos, ok := findWinningMove(b, game.Opponent); ok {
		return Decision{Position: pos, Rule: RuleWin}
	}

	// 2. Block: occupy the cell that would complete a player line
	if pos, ok := findWinningMove(b, game.Player); ok {
		return Decision{Position: pos, Rule: RuleBlock}
	}

	// 3. Center
	if b.IsEmpty(center.Row, center.Col) {
		return Decision{Position: center, Rule: RuleCenter}
	}

	// 4. Corners, in fixed preference order
	for _, corner := range corners {
		if b.IsEmpty(corner.Row, corner.Col) {
			return Decision{Position: corner, Rule: RuleCorner}
		}
	}

	// 5. Anything left
	for r := range [game.Size]int{} {
		for c := range [game.Size]int{} {
			if b.IsEmpty(r, c) {
				return Decision{Position: game.Position{Row: r, Col: c}, Rule: RuleFallback}
			}
		}
	}

	return Decision{Position: game.Position{Row: -1, Col: -1}, Rule: RuleNone}
}

// openingMove applies only to the first reply of a game, when exactly one mark is on the board.
func openingMove(b *game.Board, rng Rand) (game.Position, bool) {
	if b.Count() != 1 {
		return game.Position{}, false
	}

	if b.IsEmpty(center.Row, center.Col) && rng.IntN(100) < openingCenterPercent {
		return center, true
	}

	candidates := OpeningCandidates(b)
	if len(candidates) == 0 {
		return game.Position{}, false
	}
	return candidates[rng.IntN(len(candidates))], true
}

// OpeningCandidates returns the empty cells of the opening preference set
// {center, (0,0), (0,2), (2,0), (2,2)}, in that order.
func OpeningCandidates(b *game.Board) []game.Position {
	available := make([]game.Position, 0, len(openingPool))
	for _, pos := range openingPool {
		if b.IsEmpty(pos.Row, pos.Col) {
			available = append(available, pos)
		}
	}
	return available
}

// findWinningMove scans empty cells in row-major order, speculatively placing mark,
// and returns the first cell that completes a line for mark. The board is left unchanged.
func findWinningMove(b *game.Board, mark game.Mark) (game.Position, bool) {
	for r := range [game.Size]int{} {
		for c := range [game.Size]int{} {
			if !b.IsEmpty(r, c) {
				continue
			}
			b.Set(r, c, mark)
			wins := b.HasLine(mark)
			b.Set(r, c, game.Empty)
			if wins {
				return game.Position{Row: r, Col: c}, true
			}
		}
	}
	return game.Position{Row: -1, Col: -1}, false
}
