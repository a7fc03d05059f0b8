package engine

import (
	"log"

	"github.com/milgrim/scrabblecore/internal/lexicon"
	"github.com/milgrim/scrabblecore/internal/tiles"
)

func testLexicon() *lexicon.Lexicon {
	return lexicon.New([]string{"HELLO", "IT", "TO", "ON", "LIT", "CAT", "AT", "TON", "TOASTED"})
}

func newTestController(numPlayers int, seed int64) *Controller {
	ctrl, err := NewController(Config{
		NumPlayers: numPlayers,
		Seed:       seed,
		Lexicon:    testLexicon(),
		Logger:     log.Default(),
	})
	if err != nil {
		panic(err)
	}
	return ctrl
}

// setRack forcibly stocks a player's rack with exact letters for
// scenario setup, bypassing the random bag draw so a test can pin the
// tiles a scenario needs regardless of seed.
func setRack(c *Controller, playerIndex int, letters string, blanks int) {
	rack := c.players[playerIndex].Rack
	for rack.Len() > 0 {
		rack.Consume(rack.AsSlice()[:1])
	}
	want := make([]tiles.Tile, 0, len(letters)+blanks)
	for _, l := range letters {
		want = append(want, tiles.Tile{Letter: l, Points: tiles.StandardSet.PointsFor(l)})
	}
	for i := 0; i < blanks; i++ {
		want = append(want, tiles.Tile{IsBlank: true})
	}
	rack.AddTiles(want)
}
