package serialize

import (
	"testing"

	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/engine"
	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

func trivialLexicon() *lexicon.Lexicon {
	return lexicon.New([]string{"HI"})
}

func sampleSnapshot() GameSnapshot {
	b := board.New()
	b.Place(7, 7, 'H', false)
	b.Place(8, 7, 'I', false)
	return GameSnapshot{
		Players: []PlayerHand{
			{Hand: []tiles.Tile{{Letter: 'A', Points: 1}, {IsBlank: true}}, Score: 12},
			{Hand: []tiles.Tile{{Letter: 'Z', Points: 10}}, Score: 3},
		},
		Bag:               []tiles.Tile{{Letter: 'E', Points: 1}},
		Board:             b,
		Turn:              2,
		CurrentPlayer:     0,
		IsGameOver:        false,
		ConsecutivePasses: 1,
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	data, err := Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	restored, err := Unmarshal(data, trivialLexicon())
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if restored.Turn != snap.Turn || restored.CurrentPlayer != snap.CurrentPlayer {
		t.Errorf("turn/current_player mismatch: %+v", restored)
	}
	if restored.ConsecutivePasses != snap.ConsecutivePasses {
		t.Errorf("consecutive_passes mismatch: got %d want %d", restored.ConsecutivePasses, snap.ConsecutivePasses)
	}
	if len(restored.Players) != 2 || restored.Players[0].Score != 12 || restored.Players[1].Score != 3 {
		t.Errorf("player scores mismatch: %+v", restored.Players)
	}
	cell := restored.Board.Cell(7, 7)
	if !cell.Occupied || cell.PlacedLetter != 'H' {
		t.Errorf("expected restored board to hold H at (7,7), got %+v", cell)
	}
	if len(restored.Bag) != 1 || restored.Bag[0].Letter != 'E' {
		t.Errorf("expected bag to round-trip, got %+v", restored.Bag)
	}
}

func TestUnmarshalRejectsMalformedSnapshot(t *testing.T) {
	_, err := Unmarshal([]byte("not json"), trivialLexicon())
	if err == nil {
		t.Fatalf("expected error for malformed snapshot")
	}
}

func TestUnmarshalRequiresLexicon(t *testing.T) {
	data, _ := Marshal(sampleSnapshot())
	if _, err := Unmarshal(data, nil); err == nil {
		t.Fatalf("expected error when lexicon is nil")
	}
}

// TestControllerRestoreRoundTrip exercises the spec's actual round-trip
// law end to end: bytes produced from a live Controller, parsed back,
// and rehydrated into a new Controller with matching observable state.
func TestControllerRestoreRoundTrip(t *testing.T) {
	lex := lexicon.New([]string{"HI"})
	ctrl, err := engine.NewController(engine.Config{NumPlayers: 3, Seed: 7, Lexicon: lex})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	data, err := Marshal(FromController(ctrl))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored, err := RestoreWithConfig(data, lex, engine.Config{Seed: 99})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.Turn() != ctrl.Turn() {
		t.Errorf("turn mismatch: got %d want %d", restored.Turn(), ctrl.Turn())
	}
	if restored.CurrentPlayer() != ctrl.CurrentPlayer() {
		t.Errorf("current player mismatch: got %d want %d", restored.CurrentPlayer(), ctrl.CurrentPlayer())
	}
	if restored.IsGameOver() != ctrl.IsGameOver() {
		t.Errorf("game-over mismatch: got %t want %t", restored.IsGameOver(), ctrl.IsGameOver())
	}
	if restored.ConsecutivePasses() != ctrl.ConsecutivePasses() {
		t.Errorf("consecutive-passes mismatch: got %d want %d", restored.ConsecutivePasses(), ctrl.ConsecutivePasses())
	}

	origPlayers, gotPlayers := ctrl.Players(), restored.Players()
	if len(gotPlayers) != len(origPlayers) {
		t.Fatalf("player count mismatch: got %d want %d", len(gotPlayers), len(origPlayers))
	}
	for i := range origPlayers {
		if gotPlayers[i].Score != origPlayers[i].Score {
			t.Errorf("player %d score mismatch: got %d want %d", i, gotPlayers[i].Score, origPlayers[i].Score)
		}
		if gotPlayers[i].Rack.Len() != origPlayers[i].Rack.Len() {
			t.Errorf("player %d rack size mismatch: got %d want %d", i, gotPlayers[i].Rack.Len(), origPlayers[i].Rack.Len())
		}
	}

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			want, got := ctrl.Board().Cell(x, y), restored.Board().Cell(x, y)
			if want.Occupied != got.Occupied || want.PlacedLetter != got.PlacedLetter {
				t.Fatalf("board mismatch at (%d,%d): got %+v want %+v", x, y, got, want)
			}
		}
	}
}

func TestRestoreRejectsCorruptCurrentPlayer(t *testing.T) {
	lex := lexicon.New([]string{"HI"})
	snap := sampleSnapshot()
	snap.CurrentPlayer = 1 // snap.Turn is 2, so the consistent value is 0
	data, err := Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Restore(data, lex); err == nil {
		t.Fatalf("expected error for inconsistent current_player")
	}
}
