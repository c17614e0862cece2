package games

import (
	"educare/engine"
	"educare/models"
	"educare/random"
)

// PairSymbols are the animals shown in find the pair.
var PairSymbols = []string{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊"}

// FindPairScore is the score after the given number of taps, the correct one
// included.
func FindPairScore(attempts int) int {
	return max(100-10*attempts, MinScore)
}

// FindPair shows every animal once plus a second copy of the target.
type FindPair struct {
	items    []string
	target   string
	attempts int
	found    bool
}

func NewFindPair(rnd random.Source) *FindPair {
	target := PairSymbols[rnd.IntN(len(PairSymbols))]
	items := make([]string, 0, len(PairSymbols)+1)
	items = append(items, PairSymbols...)
	items = append(items, target)
	random.ShuffleSlice(rnd, items)
	return &FindPair{items: items, target: target}
}

func (g *FindPair) Items() []string {
	out := make([]string, len(g.items))
	copy(out, g.items)
	return out
}

func (g *FindPair) Target() string { return g.target }

func (g *FindPair) Attempts() int { return g.attempts }

func (g *FindPair) Found() bool { return g.found }

// Tap counts an attempt on item i. Tapping either copy of the target ends
// the round and returns the result; taps after that are ignored.
func (g *FindPair) Tap(i int) (engine.Result, bool) {
	if g.found || i < 0 || i >= len(g.items) {
		return engine.Result{}, false
	}
	g.attempts++
	if g.items[i] != g.target {
		return engine.Result{}, false
	}
	g.found = true
	return engine.Result{
		ActivityType: models.ActivityGame,
		ActivityName: FindPairName,
		Score:        FindPairScore(g.attempts),
	}, true
}
