// Package board implements the 15x15 Scrabble board: its premium
// layout, cell occupancy, the adjacency count the move validator relies
// on, and Fragment/WordFragment traversal over committed tiles.
package board

import (
	"fmt"
	"strings"
)

// Size is the fixed board dimension. Alternate sizes are a Non-goal.
const Size = 15

// Premium identifies a square's scoring multiplier.
type Premium int

// The five premium kinds. None has no effect on scoring.
const (
	None Premium = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
)

func (p Premium) String() string {
	switch p {
	case DoubleLetter:
		return "DL"
	case TripleLetter:
		return "TL"
	case DoubleWord:
		return "DW"
	case TripleWord:
		return "TW"
	default:
		return ""
	}
}

// wordMultipliers and letterMultipliers encode the standard Scrabble
// premium layout, carried over digit-for-digit from the teacher's
// board.go (itself confirmed against EliottWantz-ScrabbleBackend's
// independent copy of the same tables): 1 = plain, 2/3 in the word
// table = DW/TW, 2/3 in the letter table = DL/TL.
var wordMultipliers = [Size]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliers = [Size]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// Coordinate is a zero-based (x, y) board position.
type Coordinate struct {
	X, Y int
}

// InBounds reports whether the coordinate lies on the board.
func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// Center is the fixed opening-move square, a Double Word premium.
var Center = Coordinate{X: 7, Y: 7}

// Direction indexes into a Cell's cached adjacency list.
type Direction int

// The four cardinal directions used by Fragment/WordFragment traversal.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cell is a single board square.
type Cell struct {
	PlacedLetter    rune
	PlacedWasBlank  bool
	Occupied        bool
	Premium         Premium
	PremiumConsumed bool
}

// IsEmpty reports whether the cell holds no tile.
func (c *Cell) IsEmpty() bool {
	return !c.Occupied
}

func (c *Cell) String() string {
	if !c.Occupied {
		return "."
	}
	return string(c.PlacedLetter)
}

// Board is the 15x15 grid of Cells plus a cached adjacency matrix.
type Board struct {
	Grid      [Size][Size]Cell
	adjacents [Size][Size][4]*Cell
}

const zeroDigit = int('0')

// New builds an empty board with the standard premium layout.
func New() *Board {
	b := &Board{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			lm := int(letterMultipliers[y][x]) - zeroDigit
			wm := int(wordMultipliers[y][x]) - zeroDigit
			cell := &b.Grid[y][x]
			switch {
			case wm == 3:
				cell.Premium = TripleWord
			case wm == 2:
				cell.Premium = DoubleWord
			case lm == 3:
				cell.Premium = TripleLetter
			case lm == 2:
				cell.Premium = DoubleLetter
			default:
				cell.Premium = None
			}
		}
	}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			adj := &b.adjacents[y][x]
			if y > 0 {
				adj[Up] = &b.Grid[y-1][x]
			}
			if y < Size-1 {
				adj[Down] = &b.Grid[y+1][x]
			}
			if x > 0 {
				adj[Left] = &b.Grid[y][x-1]
			}
			if x < Size-1 {
				adj[Right] = &b.Grid[y][x+1]
			}
		}
	}
	return b
}

// Cell returns a pointer to the cell at (x, y), or nil if out of bounds.
func (b *Board) Cell(x, y int) *Cell {
	c := Coordinate{x, y}
	if !c.InBounds() {
		return nil
	}
	return &b.Grid[y][x]
}

// Place puts a tile-bearing letter on an empty cell and consumes its
// premium. The caller must have already checked the cell is empty;
// Place returns false (and does nothing) if it is not.
func (b *Board) Place(x, y int, letter rune, wasBlank bool) bool {
	cell := b.Cell(x, y)
	if cell == nil || cell.Occupied {
		return false
	}
	cell.PlacedLetter = letter
	cell.PlacedWasBlank = wasBlank
	cell.Occupied = true
	cell.PremiumConsumed = true
	return true
}

// IsEmpty reports whether the entire board has no placed tiles.
func (b *Board) IsEmpty() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.Grid[y][x].Occupied {
				return false
			}
		}
	}
	return true
}

// adjacent returns the cached neighbor cell, or nil at the edge.
func (b *Board) adjacent(x, y int, dir Direction) *Cell {
	c := Coordinate{x, y}
	if !c.InBounds() {
		return nil
	}
	return b.adjacents[y][x][dir]
}

// NumAdjacent returns the number of occupied cells orthogonally
// adjacent to (x, y).
func (b *Board) NumAdjacent(x, y int) int {
	count := 0
	for _, dir := range []Direction{Up, Down, Left, Right} {
		if c := b.adjacent(x, y, dir); c != nil && c.Occupied {
			count++
		}
	}
	return count
}

// Fragment walks from (x, y) in the given direction, collecting the
// run of occupied cells, not including (x, y) itself.
func (b *Board) Fragment(x, y int, dir Direction) []*Cell {
	c := Coordinate{x, y}
	if !c.InBounds() {
		return nil
	}
	var frag []*Cell
	cx, cy := x, y
	for {
		next := b.adjacent(cx, cy, dir)
		if next == nil || !next.Occupied {
			break
		}
		frag = append(frag, next)
		cx, cy = nextCoord(cx, cy, dir)
	}
	return frag
}

func nextCoord(x, y int, dir Direction) (int, int) {
	switch dir {
	case Up:
		return x, y - 1
	case Down:
		return x, y + 1
	case Left:
		return x - 1, y
	case Right:
		return x + 1, y
	}
	return x, y
}

// WordFragment returns the letters of the run starting adjacent to
// (x, y) in the given direction, in left-to-right / top-to-bottom
// reading order.
func (b *Board) WordFragment(x, y int, dir Direction) string {
	frag := b.Fragment(x, y, dir)
	var sb strings.Builder
	if dir == Left || dir == Up {
		letters := make([]rune, len(frag))
		for i, c := range frag {
			letters[i] = c.PlacedLetter
		}
		for i := len(letters) - 1; i >= 0; i-- {
			sb.WriteRune(letters[i])
		}
	} else {
		for _, c := range frag {
			sb.WriteRune(c.PlacedLetter)
		}
	}
	return sb.String()
}

// String renders the board for debugging, matching the teacher's
// column/row-labeled grid idiom.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < Size; x++ {
		sb.WriteString(fmt.Sprintf("%2d ", x))
	}
	sb.WriteString("\n")
	for y := 0; y < Size; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < Size; x++ {
			sb.WriteString(fmt.Sprintf(" %v ", &b.Grid[y][x]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
