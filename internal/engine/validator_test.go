package engine

import (
	"testing"

	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

func rackWith(letters string) *tiles.Rack {
	r := tiles.NewRack()
	ts := make([]tiles.Tile, 0, len(letters))
	for _, l := range letters {
		ts = append(ts, tiles.Tile{Letter: l, Points: tiles.StandardSet.PointsFor(l)})
	}
	r.AddTiles(ts)
	return r
}

func TestValidateMoveOffBoard(t *testing.T) {
	b := board.New()
	r := rackWith("AB")
	lex := lexicon.New([]string{"AB"})
	_, err := validateMove(b, r, lex, 0, []Placement{{Letter: 'A', X: 15, Y: 7}})
	if err == nil || err.Kind != OffBoard {
		t.Fatalf("expected OffBoard, got %v", err)
	}
}

func TestValidateMoveNotCollinear(t *testing.T) {
	b := board.New()
	r := rackWith("AB")
	lex := lexicon.New([]string{"AB"})
	_, err := validateMove(b, r, lex, 0, []Placement{
		{Letter: 'A', X: 7, Y: 7},
		{Letter: 'B', X: 8, Y: 8},
	})
	if err == nil || err.Kind != NotCollinear {
		t.Fatalf("expected NotCollinear, got %v", err)
	}
}

func TestValidateMoveNotContiguous(t *testing.T) {
	b := board.New()
	r := rackWith("AB")
	lex := lexicon.New([]string{"AB"})
	_, err := validateMove(b, r, lex, 0, []Placement{
		{Letter: 'A', X: 7, Y: 7},
		{Letter: 'B', X: 9, Y: 7},
	})
	if err == nil || err.Kind != NotContiguous {
		t.Fatalf("expected NotContiguous, got %v", err)
	}
}

func TestValidateMoveTileNotInRack(t *testing.T) {
	b := board.New()
	r := rackWith("A")
	lex := lexicon.New([]string{"AT"})
	_, err := validateMove(b, r, lex, 0, []Placement{
		{Letter: 'A', X: 7, Y: 7},
		{Letter: 'T', X: 8, Y: 7},
	})
	if err == nil || err.Kind != TileNotInRack {
		t.Fatalf("expected TileNotInRack, got %v", err)
	}
}

func TestValidateMoveDisconnectedAfterOpening(t *testing.T) {
	b := board.New()
	b.Place(7, 7, 'A', false)
	r := rackWith("AT")
	lex := lexicon.New([]string{"AT"})
	_, err := validateMove(b, r, lex, 1, []Placement{
		{Letter: 'A', X: 0, Y: 0},
		{Letter: 'T', X: 1, Y: 0},
	})
	if err == nil || err.Kind != Disconnected {
		t.Fatalf("expected Disconnected, got %v", err)
	}
}

func TestValidateMoveWordTooShort(t *testing.T) {
	b := board.New()
	r := rackWith("A")
	lex := lexicon.New([]string{"AT"})
	_, err := validateMove(b, r, lex, 0, []Placement{{Letter: 'A', X: 7, Y: 7}})
	if err == nil || err.Kind != WordTooShort {
		t.Fatalf("expected WordTooShort, got %v", err)
	}
}

func TestValidateMoveDuplicateTargetRejected(t *testing.T) {
	b := board.New()
	r := rackWith("AA")
	lex := lexicon.New([]string{"AA"})
	_, err := validateMove(b, r, lex, 0, []Placement{
		{Letter: 'A', X: 7, Y: 7},
		{Letter: 'A', X: 7, Y: 7},
	})
	if err == nil || err.Kind != SquareOccupied {
		t.Fatalf("expected SquareOccupied for duplicate target, got %v", err)
	}
}
