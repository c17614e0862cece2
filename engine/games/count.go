package games

import (
	"educare/engine"
	"educare/models"
	"educare/random"
)

var CountSymbols = []string{"🌟", "🎈", "🎁", "🎨", "🎯"}

const (
	MinCount = 3
	MaxCount = 10
	// MaxChoice is the largest number offered as an answer.
	MaxChoice = 12
	// CountPoints is awarded for an exact answer; anything else scores 0.
	CountPoints = 100
)

// CountItems shows one symbol repeated Count times and accepts one answer.
type CountItems struct {
	symbol   string
	count    int
	answered bool
	answer   int
}

func NewCountItems(rnd random.Source) *CountItems {
	return &CountItems{
		symbol: CountSymbols[rnd.IntN(len(CountSymbols))],
		count:  MinCount + rnd.IntN(MaxCount-MinCount+1),
	}
}

func (g *CountItems) Symbol() string { return g.symbol }

func (g *CountItems) Count() int { return g.count }

func (g *CountItems) Answered() bool { return g.answered }

// Choices are the numbers the player picks from.
func (g *CountItems) Choices() []int {
	out := make([]int, MaxChoice)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Answer takes the first answer only. The result scores 100 for the exact
// count and 0 otherwise; the bool is false when an answer was already given.
func (g *CountItems) Answer(n int) (engine.Result, bool) {
	if g.answered {
		return engine.Result{}, false
	}
	g.answered = true
	g.answer = n

	score := 0
	if n == g.count {
		score = CountPoints
	}
	return engine.Result{ActivityType: models.ActivityGame, ActivityName: CountItemsName, Score: score}, true
}
