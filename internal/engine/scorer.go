package engine

import (
	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

// bingoBonus is added once when a turn places all 7 rack tiles, per
// spec §4.6, grounded on the teacher's move.go BingoBonus constant.
const bingoBonus = 50

// scoreWords implements §4.6's formula: each word's letter points are
// multiplied by the letter premium on squares placed this turn, then
// the word total is multiplied by the product of word premiums placed
// this turn. A 50-point bingo is added once if every placed tile came
// from a full 7-tile rack. It reads only each cell's Premium, which
// Board.Place leaves unchanged, so the result is the same before or
// after the board commits this turn's placements.
func scoreWords(brd *board.Board, words []FormedWord, tilesPlaced int) int {
	total := 0
	for _, w := range words {
		total += scoreWord(brd, w)
	}
	if tilesPlaced == tiles.RackSize {
		total += bingoBonus
	}
	return total
}

// scoreWord applies premiums only to cells newly placed this turn.
// Rule 4 guarantees those cells were empty before this move, so their
// premium can never have been consumed by an earlier turn; cells that
// are not newly placed never get a multiplier regardless of their
// premium's consumed state.
func scoreWord(brd *board.Board, w FormedWord) int {
	letterTotal := 0
	wordMult := 1
	for i, coord := range w.Cells {
		letter := rune(w.Text[i])
		points := tiles.StandardSet.PointsFor(letter)
		if w.IsBlank[i] {
			points = 0
		}
		letterMult := 1
		if w.NewlyPlaced[i] {
			if cell := brd.Cell(coord.X, coord.Y); cell != nil {
				switch cell.Premium {
				case board.DoubleLetter:
					letterMult = 2
				case board.TripleLetter:
					letterMult = 3
				case board.DoubleWord:
					wordMult *= 2
				case board.TripleWord:
					wordMult *= 3
				}
			}
		}
		letterTotal += points * letterMult
	}
	return letterTotal * wordMult
}
