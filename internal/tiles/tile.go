// Package tiles implements the tile set, the shared bag, and per-player
// racks for a Scrabble match.
package tiles

import "fmt"

// Blank is the sentinel letter for an unassigned blank tile.
const Blank rune = 0

// Tile is a single playing piece. Letter is empty (Blank) for a blank
// tile that has not yet been assigned a meaning by a placement.
type Tile struct {
	Letter  rune
	IsBlank bool
	Points  int
}

// String renders the tile as its letter, or '?' for an unassigned blank.
func (t Tile) String() string {
	if t.Letter == Blank {
		return "?"
	}
	return string(t.Letter)
}

// DisplayLetter returns the letter used for word formation: the assigned
// meaning for a blank, or the printed letter otherwise.
func (t Tile) DisplayLetter() rune {
	return t.Letter
}

// WithAssignedLetter returns a copy of a blank tile with its meaning set.
// Points remain 0, as required of blanks.
func (t Tile) WithAssignedLetter(letter rune) Tile {
	if !t.IsBlank {
		panic(fmt.Sprintf("tile %v is not blank", t))
	}
	t.Letter = letter
	return t
}

// Set is the static prototype of a full 100-tile English distribution,
// used to stamp out fresh Bags. Only the standard English set is
// supported; alternate locales are a Non-goal.
type Set struct {
	Points map[rune]int
	Counts map[rune]int
	Size   int
}

// points gives the standard English per-letter score.
var points = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10, Blank: 0,
}

// counts gives the standard English per-letter tile count (100 total).
var counts = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1, Blank: 2,
}

// StandardSet is the standard English Scrabble tile set.
var StandardSet = newStandardSet()

func newStandardSet() *Set {
	size := 0
	for _, c := range counts {
		size += c
	}
	return &Set{Points: points, Counts: counts, Size: size}
}

// PointsFor returns the nominal score of a letter (0 for the blank).
func (s *Set) PointsFor(letter rune) int {
	return s.Points[letter]
}
