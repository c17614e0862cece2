package models

import (
	"fmt"
	"slices"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	// Mixed is what the quiz client reports for a multi-tier quiz.
	Mixed Difficulty = "mixed"
)

// PointsFor returns the fixed point value of a difficulty tier.
func PointsFor(d Difficulty) int {
	switch d {
	case Easy:
		return 50
	case Medium:
		return 75
	case Hard:
		return 100
	}
	return 0
}

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Categories are the quiz categories offered by the client.
var Categories = []string{
	"alphabet",
	"numbers",
	"fruits",
	"animals",
	"vegetables",
	"twoLetterWords",
	"threeLetterWords",
}

// IsCategory reports whether c is a known category or "all".
func IsCategory(c string) bool {
	return c == CategoryAll || slices.Contains(Categories, c)
}

// QuizQuestion is a multiple-choice question stored under quiz:<id>.
type QuizQuestion struct {
	ID            string     `json:"id"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	Points        int        `json:"points"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correctAnswer"`
}

// Validate checks that the correct answer is one of the options and that the
// point value matches the difficulty tier.
func (q QuizQuestion) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return fmt.Errorf("question %s: correct answer %q is not an option", q.ID, q.CorrectAnswer)
	}
	if want := PointsFor(q.Difficulty); want == 0 || q.Points != want {
		return fmt.Errorf("question %s: %d points does not match difficulty %q", q.ID, q.Points, q.Difficulty)
	}
	return nil
}

// IsCorrect compares an answer to the correct option by exact string equality.
func (q QuizQuestion) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
