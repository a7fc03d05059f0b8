// Package serialize implements the canonical JSON snapshot/restore of
// a game's full state, per spec §6's wire form. Struct-tag-driven JSON
// is the teacher's own idiom for wire structs (server.go's
// MovesRequest/HeaderJson); the teacher never serializes a whole game
// since its HTTP handlers are stateless per request, so these structs
// are new but built in that same tagged-struct style.
package serialize

import (
	"encoding/json"

	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/engine"
	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

// TileJSON is the wire form of one tile, encoded as a JSON object with
// "letter" and "is_blank" keys, not as a positional array.
type TileJSON struct {
	Letter  string `json:"letter"`
	IsBlank bool   `json:"is_blank"`
}

// PlayerJSON is one player's serialized hand and score.
type PlayerJSON struct {
	Hand  []TileJSON `json:"hand"`
	Score int        `json:"score"`
}

// CellJSON is one board square, encoded as a JSON object with
// "letter", "is_blank" and "premium_code" keys, not as a positional
// array.
type CellJSON struct {
	Letter      string `json:"letter"`
	IsBlank     bool   `json:"is_blank"`
	PremiumCode string `json:"premium_code"`
}

// Snapshot is the top-level wire object described in spec §6.
type Snapshot struct {
	Players           []PlayerJSON   `json:"players"`
	TileBag           []TileJSON     `json:"tile_bag"`
	Board             [][]CellJSON   `json:"board"`
	Turn              int            `json:"turn"`
	CurrentPlayer     int            `json:"current_player"`
	IsGameOver        bool           `json:"is_game_over"`
	ConsecutivePasses int            `json:"consecutive_passes"`
}

func premiumCode(p board.Premium) string {
	switch p {
	case board.DoubleLetter:
		return "DL"
	case board.TripleLetter:
		return "TL"
	case board.DoubleWord:
		return "DW"
	case board.TripleWord:
		return "TW"
	default:
		return ""
	}
}

func tileToJSON(t tiles.Tile) TileJSON {
	letter := ""
	if t.Letter != tiles.Blank {
		letter = string(t.Letter)
	}
	return TileJSON{Letter: letter, IsBlank: t.IsBlank}
}

func jsonToTile(tj TileJSON) tiles.Tile {
	t := tiles.Tile{IsBlank: tj.IsBlank}
	if tj.Letter != "" {
		t.Letter = []rune(tj.Letter)[0]
	}
	if !t.IsBlank {
		t.Points = tiles.StandardSet.PointsFor(t.Letter)
	}
	return t
}

// FromController builds a GameSnapshot from a live Controller, reading
// only its exported accessors so this package never reaches into the
// engine's internal fields.
func FromController(c *engine.Controller) GameSnapshot {
	snap := GameSnapshot{
		Bag:               c.Bag().Contents(),
		Board:             c.Board(),
		Turn:              c.Turn(),
		CurrentPlayer:     c.CurrentPlayer(),
		IsGameOver:        c.IsGameOver(),
		ConsecutivePasses: c.ConsecutivePasses(),
	}
	for _, p := range c.Players() {
		snap.Players = append(snap.Players, PlayerHand{Hand: p.Rack.AsSlice(), Score: p.Score})
	}
	return snap
}

// Marshal builds the canonical snapshot bytes for a game's exported
// view. Snap takes the pieces it needs directly rather than reaching
// into engine.Controller's unexported fields, keeping serialize a true
// downstream consumer of the engine's public surface.
func Marshal(snap GameSnapshot) ([]byte, error) {
	out := Snapshot{
		Turn:              snap.Turn,
		CurrentPlayer:     snap.CurrentPlayer,
		IsGameOver:        snap.IsGameOver,
		ConsecutivePasses: snap.ConsecutivePasses,
	}
	for _, p := range snap.Players {
		pj := PlayerJSON{Score: p.Score}
		for _, t := range p.Hand {
			pj.Hand = append(pj.Hand, tileToJSON(t))
		}
		out.Players = append(out.Players, pj)
	}
	for _, t := range snap.Bag {
		out.TileBag = append(out.TileBag, tileToJSON(t))
	}
	out.Board = make([][]CellJSON, board.Size)
	for y := 0; y < board.Size; y++ {
		row := make([]CellJSON, board.Size)
		for x := 0; x < board.Size; x++ {
			cell := snap.Board.Cell(x, y)
			cj := CellJSON{PremiumCode: premiumCode(cell.Premium)}
			if cell.Occupied {
				cj.Letter = string(cell.PlacedLetter)
				cj.IsBlank = cell.PlacedWasBlank
			}
			row[x] = cj
		}
		out.Board[y] = row
	}
	return json.Marshal(out)
}

// GameSnapshot is the plain-data shape Marshal consumes, decoupled
// from engine.Controller's internal representation.
type GameSnapshot struct {
	Players           []PlayerHand
	Bag               []tiles.Tile
	Board             *board.Board
	Turn              int
	CurrentPlayer     int
	IsGameOver        bool
	ConsecutivePasses int
}

// PlayerHand is one player's hand contents and score for snapshotting.
type PlayerHand struct {
	Hand  []tiles.Tile
	Score int
}

// Restored is what Unmarshal reconstructs: a fresh board plus the raw
// per-player and bag tile contents, ready for Restore to rehydrate a
// live *engine.Controller.
type Restored struct {
	Players           []PlayerHand
	Bag               []tiles.Tile
	Board             *board.Board
	Turn              int
	CurrentPlayer     int
	IsGameOver        bool
	ConsecutivePasses int
}

// Unmarshal parses snapshot bytes produced by Marshal. The supplied
// lexicon is accepted for symmetry with spec §4.8's restore signature
// and so callers type-check against the documented interface, even
// though board/tile reconstruction doesn't consult it directly.
func Unmarshal(data []byte, lex *lexicon.Lexicon) (*Restored, error) {
	if lex == nil {
		return nil, engine.ErrLexiconRequired
	}
	var in Snapshot
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, engine.ErrInvalidSnapshot
	}
	if len(in.Board) != board.Size {
		return nil, engine.ErrInvalidSnapshot
	}
	out := &Restored{
		Turn:              in.Turn,
		CurrentPlayer:     in.CurrentPlayer,
		IsGameOver:        in.IsGameOver,
		ConsecutivePasses: in.ConsecutivePasses,
		Board:             board.New(),
	}
	for y, row := range in.Board {
		if len(row) != board.Size {
			return nil, engine.ErrInvalidSnapshot
		}
		for x, cj := range row {
			if cj.Letter == "" {
				continue
			}
			letter := []rune(cj.Letter)[0]
			out.Board.Place(x, y, letter, cj.IsBlank)
		}
	}
	for _, pj := range in.Players {
		hand := make([]tiles.Tile, 0, len(pj.Hand))
		for _, tj := range pj.Hand {
			hand = append(hand, jsonToTile(tj))
		}
		out.Players = append(out.Players, PlayerHand{Hand: hand, Score: pj.Score})
	}
	for _, tj := range in.TileBag {
		out.Bag = append(out.Bag, jsonToTile(tj))
	}
	return out, nil
}

// Restore rebuilds a live *engine.Controller from previously marshaled
// snapshot bytes, completing the round-trip law of spec §4.8/§8:
// Restore(Marshal(FromController(c)), lex) reproduces c's board,
// racks, scores, turn, and flags. It matches spec §4.8's two-argument
// signature exactly; RestoreWithConfig is the variant for a caller
// that also wants to set the bag's post-restore seed, an injected
// logger, or a replay cache.
func Restore(data []byte, lex *lexicon.Lexicon) (*engine.Controller, error) {
	return RestoreWithConfig(data, lex, engine.Config{})
}

// RestoreWithConfig is Restore with full control over the rebuilt
// Controller's Config. cfg.Lexicon is overwritten with lex and
// cfg.NumPlayers with the snapshot's player count, regardless of what's
// passed in.
//
// The one piece of state a snapshot doesn't capture is the bag's
// internal draw sequence (only its remaining contents are
// serialized), so the restored bag is reseeded from cfg.Seed and
// draws a fresh deterministic sequence from that point on.
func RestoreWithConfig(data []byte, lex *lexicon.Lexicon, cfg engine.Config) (*engine.Controller, error) {
	restored, err := Unmarshal(data, lex)
	if err != nil {
		return nil, err
	}
	cfg.Lexicon = lex
	state := engine.RestoreState{
		Board:             restored.Board,
		Bag:               restored.Bag,
		Turn:              restored.Turn,
		CurrentPlayer:     restored.CurrentPlayer,
		IsGameOver:        restored.IsGameOver,
		ConsecutivePasses: restored.ConsecutivePasses,
	}
	for _, p := range restored.Players {
		state.Players = append(state.Players, engine.PlayerState{Hand: p.Hand, Score: p.Score})
	}
	return engine.Restore(cfg, state)
}
