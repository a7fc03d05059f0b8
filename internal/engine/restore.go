package engine

import (
	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

// PlayerState is the restore-time shape of one seat: the tiles it
// holds and its score, independent of any particular wire encoding.
type PlayerState struct {
	Hand  []tiles.Tile
	Score int
}

// RestoreState is everything Restore needs to rehydrate a Controller
// to a previously captured state, matching spec §4.8's restore
// signature: board, bag contents, every player's hand and score, the
// turn counter, and the pass/game-over flags.
type RestoreState struct {
	Board             *board.Board
	Bag               []tiles.Tile
	Players           []PlayerState
	Turn              int
	CurrentPlayer     int
	IsGameOver        bool
	ConsecutivePasses int
}

// Restore rebuilds a Controller from a previously captured RestoreState
// instead of dealing a fresh game, satisfying the round-trip law of
// §8: restoring a just-captured state reproduces the same board,
// racks, scores, turn, and flags. cfg.NumPlayers is overridden to
// match len(state.Players), since a restored game's seat count comes
// from the snapshot, not the caller.
//
// The bag's internal draw order isn't part of a snapshot (only its
// remaining contents are), so Restore reseeds the bag's generator from
// cfg.Seed; draws made after a restore are a fresh deterministic
// sequence, not a continuation of the original game's.
func Restore(cfg Config, state RestoreState) (*Controller, error) {
	cfg.NumPlayers = len(state.Players)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if state.Board == nil {
		return nil, ErrInvalidSnapshot
	}
	if state.CurrentPlayer != state.Turn%len(state.Players) {
		return nil, ErrInvalidSnapshot
	}
	c := &Controller{
		cfg:               cfg,
		board:             state.Board,
		bag:               tiles.FromContents(state.Bag, cfg.Seed),
		turn:              state.Turn,
		consecutivePasses: state.ConsecutivePasses,
		gameOver:          state.IsGameOver,
	}
	c.players = make([]Player, len(state.Players))
	for i, ps := range state.Players {
		rack := tiles.NewRack()
		rack.AddTiles(ps.Hand)
		c.players[i] = Player{Rack: rack, Score: ps.Score}
	}
	c.cfg.Logger.Printf("engine: game restored at turn %d", c.turn)
	return c, nil
}
