// Package puzzles implements the sequence-entry activities: ordering
// puzzles and music rhythm patterns.
package puzzles

import (
	"slices"

	"educare/engine"
	"educare/models"
	"educare/random"
)

// Puzzle asks for Items to be picked in CorrectOrder. Items may be picked
// more than once.
type Puzzle struct {
	ID           int
	Name         string
	Difficulty   models.Difficulty
	Items        []string
	CorrectOrder []string
}

// Points is 50 for easy puzzles and 100 for the rest.
func (p Puzzle) Points() int {
	if p.Difficulty == models.Easy {
		return 50
	}
	return 100
}

var Catalog = []Puzzle{
	{ID: 1, Name: "Number Order", Difficulty: models.Easy, Items: []string{"1", "2", "3", "4", "5"}, CorrectOrder: []string{"1", "2", "3", "4", "5"}},
	{ID: 2, Name: "Alphabet Order", Difficulty: models.Easy, Items: []string{"A", "B", "C", "D", "E"}, CorrectOrder: []string{"A", "B", "C", "D", "E"}},
	{ID: 3, Name: "Color Match", Difficulty: models.Medium, Items: []string{"🔴", "🟡", "🔵", "🟢"}, CorrectOrder: []string{"🔴", "🔴", "🟡", "🟡"}},
	{ID: 4, Name: "Shape Match", Difficulty: models.Medium, Items: []string{"⭐", "❤️", "⭕", "⬛"}, CorrectOrder: []string{"⭐", "⭐", "❤️", "❤️"}},
	{ID: 5, Name: "Spell CAT", Difficulty: models.Easy, Items: []string{"C", "A", "T"}, CorrectOrder: []string{"C", "A", "T"}},
	{ID: 6, Name: "Spell DOG", Difficulty: models.Easy, Items: []string{"D", "O", "G"}, CorrectOrder: []string{"D", "O", "G"}},
	{ID: 7, Name: "Two Letter Word: GO", Difficulty: models.Easy, Items: []string{"G", "O"}, CorrectOrder: []string{"G", "O"}},
	{ID: 8, Name: "Two Letter Word: IN", Difficulty: models.Easy, Items: []string{"I", "N"}, CorrectOrder: []string{"I", "N"}},
	{ID: 9, Name: "Spell SUN", Difficulty: models.Medium, Items: []string{"S", "U", "N"}, CorrectOrder: []string{"S", "U", "N"}},
	{ID: 10, Name: "Spell RUN", Difficulty: models.Medium, Items: []string{"R", "U", "N"}, CorrectOrder: []string{"R", "U", "N"}},
}

// Find returns the catalog puzzle with the given id.
func Find(id int) (Puzzle, bool) {
	i := slices.IndexFunc(Catalog, func(p Puzzle) bool { return p.ID == id })
	if i < 0 {
		return Puzzle{}, false
	}
	return Catalog[i], true
}

type OrderingGame struct {
	puzzle    Puzzle
	tiles     []string
	picked    []string
	completed bool
}

func NewOrderingGame(p Puzzle, rnd random.Source) *OrderingGame {
	g := &OrderingGame{puzzle: p}
	g.Reset(rnd)
	return g
}

// Reset reshuffles the tiles and clears the attempt.
func (g *OrderingGame) Reset(rnd random.Source) {
	g.tiles = slices.Clone(g.puzzle.Items)
	random.ShuffleSlice(rnd, g.tiles)
	g.picked = nil
	g.completed = false
}

func (g *OrderingGame) Puzzle() Puzzle { return g.puzzle }

func (g *OrderingGame) Tiles() []string { return slices.Clone(g.tiles) }

func (g *OrderingGame) Picked() []string { return slices.Clone(g.picked) }

func (g *OrderingGame) Completed() bool { return g.completed }

// Pick appends item to the attempt. Once the attempt is as long as the
// puzzle it is checked: a match solves the puzzle, anything else clears the
// attempt for another try.
func (g *OrderingGame) Pick(item string) (engine.Outcome, engine.Result) {
	if g.completed || !slices.Contains(g.tiles, item) {
		return engine.Ignored, engine.Result{}
	}
	g.picked = append(g.picked, item)
	if len(g.picked) < len(g.puzzle.Items) {
		return engine.Pending, engine.Result{}
	}

	if !slices.Equal(g.picked, g.puzzle.CorrectOrder) {
		g.picked = nil
		return engine.Failed, engine.Result{}
	}
	g.completed = true
	return engine.Solved, engine.Result{
		ActivityType: models.ActivityPuzzle,
		ActivityName: g.puzzle.Name,
		Score:        g.puzzle.Points(),
	}
}
