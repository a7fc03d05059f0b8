package engine

import (
	"strings"

	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

// minWordLength is the shortest word the lexicon check accepts; a
// one-letter run is never a word and is simply skipped, not rejected
// on its own (spec rule 9).
const minWordLength = 2

// validateMove enforces rules 3-9 of the move validator (collinearity
// through word formation). Rules 1 (pass) and 2 (actor) are handled by
// the controller before this is ever called, since they don't depend
// on the placement's geometry. It operates on a scratch overlay over
// brd and rack and never mutates either.
func validateMove(brd *board.Board, rack *tiles.Rack, lex *lexicon.Lexicon, turn int, placements []Placement) ([]FormedWord, *MoveError) {
	overlay := make(map[Coordinate]Placement, len(placements))
	for _, p := range placements {
		c := Coordinate{X: p.X, Y: p.Y}
		if !c.InBounds() {
			return nil, newMoveError(OffBoard)
		}
		if _, dup := overlay[c]; dup {
			return nil, newMoveError(SquareOccupied)
		}
		overlay[c] = p
	}

	horizontal, err := determineAxis(placements)
	if err != nil {
		return nil, err
	}

	for _, p := range placements {
		if cell := brd.Cell(p.X, p.Y); cell == nil || cell.Occupied {
			return nil, newMoveError(SquareOccupied)
		}
	}

	reqTiles := make([]tiles.Tile, len(placements))
	for i, p := range placements {
		reqTiles[i] = tiles.Tile{Letter: p.Letter, IsBlank: p.IsBlank}
	}
	if !rack.ContainsMultiset(reqTiles) {
		return nil, newMoveError(TileNotInRack)
	}

	if turn == 0 {
		opened := false
		for _, p := range placements {
			if p.X == board.Center.X && p.Y == board.Center.Y {
				opened = true
				break
			}
		}
		if !opened {
			return nil, newMoveError(MissingCenterOnOpening)
		}
	}

	if moveErr := checkContiguity(brd, overlay, placements, horizontal); moveErr != nil {
		return nil, moveErr
	}

	if turn > 0 {
		touches := false
		for _, p := range placements {
			if brd.NumAdjacent(p.X, p.Y) > 0 {
				touches = true
				break
			}
		}
		if !touches {
			return nil, newMoveError(Disconnected)
		}
	}

	return extractWords(brd, overlay, placements, horizontal, lex)
}

// determineAxis enforces rule 3 (collinearity). A single placement
// defaults to horizontal, per spec; its vertical cross-word is still
// computed by extractWords.
func determineAxis(placements []Placement) (bool, *MoveError) {
	if len(placements) <= 1 {
		return true, nil
	}
	sameY, sameX := true, true
	y0, x0 := placements[0].Y, placements[0].X
	for _, p := range placements[1:] {
		if p.Y != y0 {
			sameY = false
		}
		if p.X != x0 {
			sameX = false
		}
	}
	switch {
	case sameY && !sameX:
		return true, nil
	case sameX && !sameY:
		return false, nil
	default:
		return false, newMoveError(NotCollinear)
	}
}

// checkContiguity enforces rule 7: every square strictly between the
// min and max placed coordinate along the axis must be either placed
// this turn or already occupied on the board.
func checkContiguity(brd *board.Board, overlay map[Coordinate]Placement, placements []Placement, horizontal bool) *MoveError {
	lo, hi := axisExtent(placements, horizontal)
	fixed := fixedAxisValue(placements, horizontal)
	for v := lo; v <= hi; v++ {
		x, y := axisPoint(fixed, v, horizontal)
		if _, placed := overlay[Coordinate{X: x, Y: y}]; placed {
			continue
		}
		if cell := brd.Cell(x, y); cell != nil && cell.Occupied {
			continue
		}
		return newMoveError(NotContiguous)
	}
	return nil
}

func axisExtent(placements []Placement, horizontal bool) (lo, hi int) {
	if horizontal {
		lo, hi = placements[0].X, placements[0].X
		for _, p := range placements[1:] {
			if p.X < lo {
				lo = p.X
			}
			if p.X > hi {
				hi = p.X
			}
		}
		return
	}
	lo, hi = placements[0].Y, placements[0].Y
	for _, p := range placements[1:] {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	return
}

func fixedAxisValue(placements []Placement, horizontal bool) int {
	if horizontal {
		return placements[0].Y
	}
	return placements[0].X
}

func axisPoint(fixed, v int, horizontal bool) (x, y int) {
	if horizontal {
		return v, fixed
	}
	return fixed, v
}

// combinedLetter resolves the letter at (x, y), consulting the overlay
// before the real board, matching the spec's "board plus proposed
// placements" scratch read. The second return is false for an empty
// square.
func combinedLetter(brd *board.Board, overlay map[Coordinate]Placement, x, y int) (rune, bool) {
	if p, ok := overlay[Coordinate{X: x, Y: y}]; ok {
		return p.Letter, true
	}
	cell := brd.Cell(x, y)
	if cell == nil || !cell.Occupied {
		return 0, false
	}
	return cell.PlacedLetter, true
}

func combinedIsBlank(brd *board.Board, overlay map[Coordinate]Placement, x, y int) bool {
	if p, ok := overlay[Coordinate{X: x, Y: y}]; ok {
		return p.IsBlank
	}
	if cell := brd.Cell(x, y); cell != nil {
		return cell.PlacedWasBlank
	}
	return false
}

// runThrough returns the maximal contiguous run of occupied squares
// (overlay union board) along the given axis that contains (x, y), in
// reading order (left-to-right or top-to-bottom).
func runThrough(brd *board.Board, overlay map[Coordinate]Placement, x, y int, horizontal bool) FormedWord {
	dx, dy := 1, 0
	if !horizontal {
		dx, dy = 0, 1
	}
	sx, sy := x, y
	for {
		px, py := sx-dx, sy-dy
		if _, ok := combinedLetter(brd, overlay, px, py); !ok {
			break
		}
		sx, sy = px, py
	}
	var sb strings.Builder
	var w FormedWord
	cx, cy := sx, sy
	for {
		letter, ok := combinedLetter(brd, overlay, cx, cy)
		if !ok {
			break
		}
		sb.WriteRune(letter)
		coord := Coordinate{X: cx, Y: cy}
		w.Cells = append(w.Cells, coord)
		_, placed := overlay[coord]
		w.NewlyPlaced = append(w.NewlyPlaced, placed)
		w.IsBlank = append(w.IsBlank, combinedIsBlank(brd, overlay, cx, cy))
		cx, cy = cx+dx, cy+dy
	}
	w.Text = sb.String()
	return w
}

// extractWords implements rule 9: the main word along the placement
// axis plus every perpendicular cross-word of length >= 2, each
// checked against the lexicon. A lone placed tile forming nothing of
// length >= 2 in either direction is WordTooShort.
func extractWords(brd *board.Board, overlay map[Coordinate]Placement, placements []Placement, horizontal bool, lex *lexicon.Lexicon) ([]FormedWord, *MoveError) {
	var words []FormedWord
	anchor := placements[0]

	main := runThrough(brd, overlay, anchor.X, anchor.Y, horizontal)
	if len(main.Text) >= minWordLength {
		words = append(words, main)
	}

	for _, p := range placements {
		cross := runThrough(brd, overlay, p.X, p.Y, !horizontal)
		if len(cross.Text) >= minWordLength {
			words = append(words, cross)
		}
	}

	if len(words) == 0 {
		return nil, newMoveError(WordTooShort)
	}
	for _, w := range words {
		if !lex.Contains(w.Text) {
			return nil, newWordError(w.Text)
		}
	}
	return words, nil
}
