package puzzles

import (
	"slices"

	"educare/engine"
	"educare/models"
)

// Notes are the keys of the music keyboard.
var Notes = []string{"C", "D", "E", "F", "G", "A", "B", "C2"}

type Pattern struct {
	ID         int
	Name       string
	Notes      []string
	Difficulty models.Difficulty
}

// Points is 50, 75 or 100 by difficulty.
func (p Pattern) Points() int { return models.PointsFor(p.Difficulty) }

var Patterns = []Pattern{
	{ID: 1, Name: "Simple Beat", Notes: []string{"C", "D", "E"}, Difficulty: models.Easy},
	{ID: 2, Name: "Happy Tune", Notes: []string{"C", "E", "G", "E"}, Difficulty: models.Easy},
	{ID: 3, Name: "Scale Up", Notes: []string{"C", "D", "E", "F", "G"}, Difficulty: models.Medium},
	{ID: 4, Name: "Jump Around", Notes: []string{"C", "E", "C", "G", "E"}, Difficulty: models.Medium},
	{ID: 5, Name: "Complex Rhythm", Notes: []string{"C", "E", "G", "A", "G", "E", "C"}, Difficulty: models.Hard},
}

// RhythmGame checks the notes played against a pattern. The pattern can be
// played again after each attempt, right or wrong.
type RhythmGame struct {
	pattern Pattern
	played  []string
}

func NewRhythmGame(p Pattern) *RhythmGame {
	return &RhythmGame{pattern: p}
}

func (g *RhythmGame) Pattern() Pattern { return g.pattern }

func (g *RhythmGame) Played() []string { return slices.Clone(g.played) }

// Play records one note. When as many notes as the pattern has were played
// the attempt is checked and cleared.
func (g *RhythmGame) Play(note string) (engine.Outcome, engine.Result) {
	if !slices.Contains(Notes, note) {
		return engine.Ignored, engine.Result{}
	}
	g.played = append(g.played, note)
	if len(g.played) < len(g.pattern.Notes) {
		return engine.Pending, engine.Result{}
	}

	correct := slices.Equal(g.played, g.pattern.Notes)
	g.played = nil
	if !correct {
		return engine.Failed, engine.Result{}
	}
	return engine.Solved, engine.Result{
		ActivityType: models.ActivityMusic,
		ActivityName: g.pattern.Name,
		Score:        g.pattern.Points(),
	}
}
