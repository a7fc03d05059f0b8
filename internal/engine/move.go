package engine

import "github.com/milgrim/scrabblecore/internal/board"

// Placement is one tile a player proposes to lay down this turn,
// mirroring the wire form's {letter, x, y, is_blank} tuple.
type Placement struct {
	Letter  rune
	X, Y    int
	IsBlank bool
}

// Coordinate re-exports board.Coordinate so callers outside this
// package don't need to import board just to build a Placement.
type Coordinate = board.Coordinate

// FormedWord is one word extracted by the validator: the main word or
// a cross-word, in reading order, together with the board squares it
// occupies. NewlyPlaced marks which of those squares were covered by
// this turn's placements (as opposed to pre-existing letters), which
// the scorer needs to know which premiums still apply.
type FormedWord struct {
	Text        string
	Cells       []Coordinate
	NewlyPlaced []bool
	IsBlank     []bool
}

// Direction re-exports board.Direction for callers building custom
// traversals over a MoveOutcome's formed words.
type Direction = board.Direction

// isPass reports whether placements is the empty list meaning "pass".
func isPass(placements []Placement) bool {
	return len(placements) == 0
}
