package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// replayCacheSize bounds the number of remembered move fingerprints.
const replayCacheSize = 256

// ReplayCache memoizes the outcome of recently-applied moves so a host
// that retries an ApplyMove call after a network timeout gets back the
// original outcome instead of double-applying the move. Grounded on
// the teacher's dawg.go crossCache, which wraps a simplelru.LRU behind
// its own mutex because callers may reach it from outside the
// single-threaded traversal it otherwise assumes; the same reasoning
// applies here, since a host may probe the cache from a handler
// goroutine ahead of re-entering the Controller under its own
// serialization.
type ReplayCache struct {
	mu    sync.Mutex
	cache *simplelru.LRU
}

// NewReplayCache builds an empty cache. A nil *ReplayCache is valid and
// behaves as if replay protection were disabled.
func NewReplayCache() *ReplayCache {
	c, err := simplelru.NewLRU(replayCacheSize, nil)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// replayCacheSize never is.
		panic(err)
	}
	return &ReplayCache{cache: c}
}

// fingerprint derives a cache key from the call's identifying fields,
// matching the (turn, playerIndex, placements) tuple named in §9.
func fingerprint(turn, playerIndex int, placements []Placement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d", turn, playerIndex)
	for _, p := range placements {
		fmt.Fprintf(&sb, ":%c%d,%d,%t", p.Letter, p.X, p.Y, p.IsBlank)
	}
	return sb.String()
}

// lookup returns a previously cached outcome for this exact call, if any.
func (c *ReplayCache) lookup(turn, playerIndex int, placements []Placement) (MoveOutcome, bool) {
	if c == nil {
		return MoveOutcome{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.cache.Get(fingerprint(turn, playerIndex, placements))
	if !ok {
		return MoveOutcome{}, false
	}
	return v.(MoveOutcome), true
}

// remember stores the outcome of a successful call for future dedup.
func (c *ReplayCache) remember(turn, playerIndex int, placements []Placement, outcome MoveOutcome) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(fingerprint(turn, playerIndex, placements), outcome)
}
