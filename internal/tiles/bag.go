package tiles

import (
	"math/rand"
	"sort"
)

// RackSize is the number of slots in a player's rack.
const RackSize = 7

// Bag is a shuffled draw pile. Unlike the teacher's package-level
// math/rand calls, a Bag owns its own seeded generator so that a game
// built with the same seed replays identically (spec's "randomness is
// explicit" requirement).
type Bag struct {
	rng      *rand.Rand
	contents []Tile
}

// NewBag builds a full standard-distribution bag seeded deterministically.
func NewBag(seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	letters := make([]rune, 0, len(StandardSet.Counts))
	for letter := range StandardSet.Counts {
		letters = append(letters, letter)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	for _, letter := range letters {
		count := StandardSet.Counts[letter]
		isBlank := letter == Blank
		for i := 0; i < count; i++ {
			b.contents = append(b.contents, Tile{
				Letter:  letter,
				IsBlank: isBlank,
				Points:  StandardSet.PointsFor(letter),
			})
		}
	}
	b.rng.Shuffle(len(b.contents), func(i, j int) {
		b.contents[i], b.contents[j] = b.contents[j], b.contents[i]
	})
	return b
}

// FromContents rebuilds a Bag holding exactly the given tiles, used to
// restore a snapshot. The original draw sequence isn't part of a
// snapshot (only the remaining contents are), so the restored bag gets
// a fresh generator seeded from seed; draws from this point on are a
// new deterministic sequence, not a continuation of the original.
func FromContents(contents []Tile, seed int64) *Bag {
	b := &Bag{rng: rand.New(rand.NewSource(seed))}
	b.contents = make([]Tile, len(contents))
	copy(b.contents, contents)
	return b
}

// Size returns the number of tiles remaining in the bag.
func (b *Bag) Size() int {
	if b == nil {
		return 0
	}
	return len(b.contents)
}

// Draw removes and returns min(k, Size()) tiles uniformly at random,
// without replacement.
func (b *Bag) Draw(k int) []Tile {
	if b == nil || k <= 0 {
		return nil
	}
	if k > len(b.contents) {
		k = len(b.contents)
	}
	drawn := make([]Tile, 0, k)
	for i := 0; i < k; i++ {
		idx := b.rng.Intn(len(b.contents))
		drawn = append(drawn, b.contents[idx])
		b.contents = append(b.contents[:idx], b.contents[idx+1:]...)
	}
	return drawn
}

// Return puts previously drawn tiles back into the bag, available for
// future draws. Used by the exchange operation.
func (b *Bag) Return(ts []Tile) {
	if b == nil {
		return
	}
	b.contents = append(b.contents, ts...)
}

// Contents returns a copy of the tiles currently in the bag, for
// snapshotting. The order is not meaningful.
func (b *Bag) Contents() []Tile {
	if b == nil {
		return nil
	}
	out := make([]Tile, len(b.contents))
	copy(out, b.contents)
	return out
}

// ExchangeAllowed reports whether the bag holds enough tiles for a
// player to exchange without starving the bag for the next draw.
func (b *Bag) ExchangeAllowed() bool {
	return b.Size() >= RackSize
}
