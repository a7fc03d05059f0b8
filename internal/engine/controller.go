// Package engine implements the authoritative Scrabble game-rules
// state machine: move validation, scoring, turn order, and end-of-game
// detection over a Board, a set of Racks, and a shared TileBag.
package engine

import (
	"io"
	"log"

	"github.com/milgrim/scrabblecore/internal/board"
	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

const (
	minPlayers = 2
	maxPlayers = 4
)

// consecutivePassThreshold returns the number of back-to-back empty
// turns (passes or exchanges) that ends a game outright, per spec §4.7.
func consecutivePassThreshold(numPlayers int) int {
	return 2 * numPlayers
}

// Config configures a Controller. Constructed once and validated by
// NewController, following jacobpatterson1549-selene-bananas's
// controller.Config/validate() shape, generalized here to the
// synchronous engine this package implements.
type Config struct {
	NumPlayers int
	Seed       int64
	Lexicon    *lexicon.Lexicon
	Logger     *log.Logger
	Replay     *ReplayCache
}

func (c *Config) validate() error {
	if c.NumPlayers < minPlayers || c.NumPlayers > maxPlayers {
		return ErrInvalidPlayerCount
	}
	if c.Lexicon == nil {
		return ErrLexiconRequired
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return nil
}

// Player is one seat at the table: a rack and a score. A seat's index
// is its position in the Controller's player slice.
type Player struct {
	Rack  *tiles.Rack
	Score int
}

// MoveRecord is one entry in a Controller's append-only history,
// generalizing the teacher's Game.MoveItem.
type MoveRecord struct {
	Turn        int
	PlayerIndex int
	Placements  []Placement
	IsPass      bool
	IsExchange  bool
	Score       int
	FormedWords []FormedWord
}

// MoveOutcome is what ApplyMove returns on success.
type MoveOutcome struct {
	TurnScore   int
	FormedWords []FormedWord
	GameOver    bool
}

// Controller holds the authoritative GameState and orchestrates moves.
// It is not safe for concurrent use; a host serializes calls with its
// own mutex or per-game actor, per §5.
type Controller struct {
	cfg               Config
	board             *board.Board
	bag               *tiles.Bag
	players           []Player
	turn              int
	consecutivePasses int
	gameOver          bool
	history           []MoveRecord
}

// NewController builds a fresh game: an empty board, a full shuffled
// bag, and NumPlayers racks filled to capacity.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:   cfg,
		board: board.New(),
		bag:   tiles.NewBag(cfg.Seed),
	}
	c.players = make([]Player, cfg.NumPlayers)
	for i := range c.players {
		rack := tiles.NewRack()
		rack.Refill(c.bag)
		c.players[i] = Player{Rack: rack}
	}
	c.cfg.Logger.Printf("engine: new game started, players=%d seed=%d", cfg.NumPlayers, cfg.Seed)
	return c, nil
}

// CurrentPlayer returns the index of the player to move.
func (c *Controller) CurrentPlayer() int {
	return c.turn % len(c.players)
}

// Turn returns the monotonic turn counter.
func (c *Controller) Turn() int {
	return c.turn
}

// IsGameOver reports whether the game has been finalized.
func (c *Controller) IsGameOver() bool {
	return c.gameOver
}

// ConsecutivePasses returns the current run of back-to-back pass-like
// turns (passes or exchanges).
func (c *Controller) ConsecutivePasses() int {
	return c.consecutivePasses
}

// History returns the append-only move log for host-side audit logging.
// It is not part of the serialized snapshot.
func (c *Controller) History() []MoveRecord {
	out := make([]MoveRecord, len(c.history))
	copy(out, c.history)
	return out
}

// Board exposes the live board for read-only inspection and
// snapshotting. Callers must not mutate it directly.
func (c *Controller) Board() *board.Board {
	return c.board
}

// Bag exposes the live tile bag for read-only inspection and
// snapshotting.
func (c *Controller) Bag() *tiles.Bag {
	return c.bag
}

// Players returns a copy of the player slice. Rack pointers are shared
// with the live game; callers must treat them as read-only.
func (c *Controller) Players() []Player {
	out := make([]Player, len(c.players))
	copy(out, c.players)
	return out
}

// PublicView is the read-only projection described in spec §6: enough
// to render the game without exposing hand contents other than size.
// Revealing a hand to its owning player is the host's decision, not
// the engine's; the engine simply never puts hands in the view.
type PublicView struct {
	Board             *board.Board
	CurrentPlayer     int
	Scores            []int
	HandSizes         []int
	BagSize           int
	IsGameOver        bool
	Turn              int
	ConsecutivePasses int
}

// View builds the public projection of the current state.
func (c *Controller) View() PublicView {
	v := PublicView{
		Board:             c.board,
		CurrentPlayer:     c.CurrentPlayer(),
		BagSize:           c.bag.Size(),
		IsGameOver:        c.gameOver,
		Turn:              c.turn,
		ConsecutivePasses: c.consecutivePasses,
	}
	for _, p := range c.players {
		v.Scores = append(v.Scores, p.Score)
		v.HandSizes = append(v.HandSizes, p.Rack.Len())
	}
	return v
}

// ApplyMove performs the five-step sequence of spec §4.7: normalize,
// validate, commit, advance turn, check end-of-game. A rejected move
// leaves the Controller's observable state unchanged.
func (c *Controller) ApplyMove(playerIndex int, placements []Placement) (MoveOutcome, error) {
	if c.gameOver {
		return MoveOutcome{}, newMoveError(GameOver)
	}
	// A retry of the move that produced the previous turn is answered
	// from the replay cache, keyed by the turn it was applied on.
	if c.turn > 0 {
		if outcome, ok := c.cfg.Replay.lookup(c.turn-1, playerIndex, placements); ok {
			return outcome, nil
		}
	}
	if playerIndex != c.CurrentPlayer() {
		return MoveOutcome{}, newMoveError(WrongPlayer)
	}

	if isPass(placements) {
		outcome := c.commitPass(playerIndex)
		c.cfg.Replay.remember(c.turn-1, playerIndex, placements, outcome)
		return outcome, nil
	}

	words, moveErr := validateMove(c.board, c.players[playerIndex].Rack, c.cfg.Lexicon, c.turn, placements)
	if moveErr != nil {
		return MoveOutcome{}, moveErr
	}

	outcome := c.commitPlacements(playerIndex, placements, words)
	c.cfg.Replay.remember(c.turn-1, playerIndex, placements, outcome)
	return outcome, nil
}

// ExchangeTiles trades the given rack tiles back into the bag and
// forfeits the turn, per §10's domain-expansion of tile exchange. It
// is gated on the bag holding at least a full rack's worth of tiles,
// exactly as the teacher's ExchangeMove.IsValid gates exchanges, and
// counts as a consecutive pass for end-of-game purposes.
func (c *Controller) ExchangeTiles(playerIndex int, want []tiles.Tile) error {
	if c.gameOver {
		return newMoveError(GameOver)
	}
	if playerIndex != c.CurrentPlayer() {
		return newMoveError(WrongPlayer)
	}
	if !c.bag.ExchangeAllowed() {
		return newMoveError(TileNotInRack)
	}
	rack := c.players[playerIndex].Rack
	if !rack.ContainsMultiset(want) {
		return newMoveError(TileNotInRack)
	}
	removed, err := rack.Consume(want)
	if err != nil {
		return newMoveError(TileNotInRack)
	}
	drawn := c.bag.Draw(len(removed))
	c.bag.Return(removed)
	rack.AddTiles(drawn)
	c.recordAndAdvance(MoveRecord{
		Turn:        c.turn,
		PlayerIndex: playerIndex,
		IsExchange:  true,
	})
	c.checkEndOfGame()
	return nil
}

func (c *Controller) commitPass(playerIndex int) MoveOutcome {
	c.recordAndAdvance(MoveRecord{
		Turn:        c.turn,
		PlayerIndex: playerIndex,
		IsPass:      true,
	})
	gameOver := c.checkEndOfGame()
	return MoveOutcome{GameOver: gameOver}
}

func (c *Controller) commitPlacements(playerIndex int, placements []Placement, words []FormedWord) MoveOutcome {
	score := scoreWords(c.board, words, len(placements))
	for _, p := range placements {
		c.board.Place(p.X, p.Y, p.Letter, p.IsBlank)
	}
	rack := c.players[playerIndex].Rack
	consumed := make([]tiles.Tile, len(placements))
	for i, p := range placements {
		consumed[i] = tiles.Tile{Letter: p.Letter, IsBlank: p.IsBlank}
	}
	rack.Consume(consumed)
	rack.Refill(c.bag)

	c.players[playerIndex].Score += score
	c.consecutivePasses = 0

	c.recordAndAdvance(MoveRecord{
		Turn:        c.turn,
		PlayerIndex: playerIndex,
		Placements:  placements,
		Score:       score,
		FormedWords: words,
	})

	gameOver := c.checkEndOfGame()
	return MoveOutcome{TurnScore: score, FormedWords: words, GameOver: gameOver}
}

// recordAndAdvance appends the move to history and advances the turn
// counter and pass count, mirroring step 4 of §4.7. Pass-like moves
// (pass, exchange) increment consecutivePasses; placements reset it to
// zero in commitPlacements before this is called.
func (c *Controller) recordAndAdvance(rec MoveRecord) {
	if rec.IsPass || rec.IsExchange {
		c.consecutivePasses++
	}
	c.history = append(c.history, rec)
	c.turn++
}

// checkEndOfGame implements step 5 of §4.7 plus the pass-threshold rule
// of step 1, and runs finalization when either triggers.
func (c *Controller) checkEndOfGame() bool {
	if c.gameOver {
		return true
	}
	if c.consecutivePasses >= consecutivePassThreshold(len(c.players)) {
		c.finalize()
		return true
	}
	if c.bag.Size() == 0 {
		for _, p := range c.players {
			if p.Rack.IsEmpty() {
				c.finalize()
				return true
			}
		}
	}
	return false
}

// finalize applies the end-of-game scoring adjustment: every player
// loses the point value of their remaining rack; if exactly one player
// emptied their rack, that player gains everyone else's rack penalty
// as a bonus. Then the game is frozen.
func (c *Controller) finalize() {
	emptyIdx := -1
	emptyCount := 0
	penalties := make([]int, len(c.players))
	for i, p := range c.players {
		penalties[i] = p.Rack.PointTotal()
		if p.Rack.IsEmpty() {
			emptyCount++
			emptyIdx = i
		}
	}
	for i := range c.players {
		c.players[i].Score -= penalties[i]
	}
	if emptyCount == 1 {
		bonus := 0
		for i, pen := range penalties {
			if i != emptyIdx {
				bonus += pen
			}
		}
		c.players[emptyIdx].Score += bonus
	}
	c.gameOver = true
	c.cfg.Logger.Printf("engine: game over at turn %d", c.turn)
}
