// Package games implements the three mini-games: memory match, find the
// pair and count the items. Boards are generated from an injected
// random.Source.
package games

import (
	"time"

	"educare/engine"
	"educare/models"
	"educare/random"
)

const (
	MemoryMatchName = "Memory Match"
	FindPairName    = "Find the Pair"
	CountItemsName  = "Count the Items"

	// MinScore is the floor of the move- and attempt-based scores.
	MinScore = 50
	// RevealDelay is how long two flipped cards stay up before Resolve.
	RevealDelay = time.Second
)

// MemorySymbols are the six card faces; each appears twice.
var MemorySymbols = []string{"🍎", "🍌", "🍊", "🍇", "🍓", "🍉"}

// MemoryScore is the completion score after the given number of moves made
// before the final one.
func MemoryScore(moves int) int {
	return max(100-5*moves, MinScore)
}

type Card struct {
	ID      int
	Symbol  string
	Flipped bool
	Matched bool
}

type MemoryMatch struct {
	cards   []Card
	flipped []int
	moves   int
	matches int
	score   int
}

func NewMemoryMatch(rnd random.Source) *MemoryMatch {
	symbols := make([]string, 0, 2*len(MemorySymbols))
	symbols = append(symbols, MemorySymbols...)
	symbols = append(symbols, MemorySymbols...)
	random.ShuffleSlice(rnd, symbols)

	cards := make([]Card, len(symbols))
	for i, s := range symbols {
		cards[i] = Card{ID: i, Symbol: s}
	}
	return &MemoryMatch{cards: cards}
}

// Cards returns a snapshot of the board.
func (g *MemoryMatch) Cards() []Card {
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

func (g *MemoryMatch) Moves() int { return g.moves }

func (g *MemoryMatch) Matches() int { return g.matches }

func (g *MemoryMatch) Complete() bool { return g.matches == len(MemorySymbols) }

// Pending reports whether two cards are face up waiting for Resolve.
func (g *MemoryMatch) Pending() bool { return len(g.flipped) == 2 }

// Flip turns a card face up. It is ignored while two cards are already up,
// for cards that are up or matched, and for unknown ids.
func (g *MemoryMatch) Flip(id int) bool {
	if g.Pending() || g.Complete() || id < 0 || id >= len(g.cards) {
		return false
	}
	c := &g.cards[id]
	if c.Flipped || c.Matched {
		return false
	}
	c.Flipped = true
	g.flipped = append(g.flipped, id)
	return true
}

// Resolve settles the two face-up cards, counting one move: equal symbols
// stay matched, others are turned back down. When the last pair is matched
// it returns the game result.
func (g *MemoryMatch) Resolve() (engine.Result, bool) {
	if !g.Pending() {
		return engine.Result{}, false
	}
	first, second := &g.cards[g.flipped[0]], &g.cards[g.flipped[1]]
	g.flipped = g.flipped[:0]
	movesBefore := g.moves
	g.moves++

	if first.Symbol != second.Symbol {
		first.Flipped, second.Flipped = false, false
		return engine.Result{}, false
	}

	first.Matched, second.Matched = true, true
	g.matches++
	if !g.Complete() {
		return engine.Result{}, false
	}
	g.score = MemoryScore(movesBefore)
	return g.result(), true
}

// Score is the completion score, 0 until the game is complete.
func (g *MemoryMatch) Score() int { return g.score }

func (g *MemoryMatch) result() engine.Result {
	return engine.Result{ActivityType: models.ActivityGame, ActivityName: MemoryMatchName, Score: g.score}
}
