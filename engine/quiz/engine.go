// Package quiz drives a multiple-choice quiz one question at a time:
// select, submit, show feedback, advance.
package quiz

import (
	"errors"
	"math"
	"time"

	"educare/models"
)

const (
	// QuestionCount is how many questions the client asks for.
	QuestionCount = 10
	// FeedbackDelay is how long feedback stays up before Advance.
	FeedbackDelay = 2 * time.Second
	// PassPercentage selects the success message on the result screen.
	PassPercentage = 70
)

type State int

const (
	Unanswered State = iota
	AnswerSelected
	FeedbackShown
	Complete
)

func (s State) String() string {
	switch s {
	case Unanswered:
		return "unanswered"
	case AnswerSelected:
		return "answer-selected"
	case FeedbackShown:
		return "feedback-shown"
	case Complete:
		return "complete"
	}
	return "unknown"
}

var (
	ErrNoSelection  = errors.New("quiz: no answer selected")
	ErrAnswerLocked = errors.New("quiz: answer already submitted")
	ErrNoFeedback   = errors.New("quiz: advance is only possible while feedback is shown")
	ErrComplete     = errors.New("quiz: quiz is complete")
)

// Engine is not safe for concurrent use.
type Engine struct {
	questions []models.QuizQuestion
	answers   []string
	current   int
	selected  string
	state     State
	points    int
	correct   int
}

// New starts a quiz over questions. A quiz without questions is complete
// from the start.
func New(questions []models.QuizQuestion) *Engine {
	e := &Engine{
		questions: questions,
		answers:   make([]string, len(questions)),
	}
	if len(questions) == 0 {
		e.state = Complete
	}
	return e
}

func (e *Engine) State() State { return e.state }

func (e *Engine) Len() int { return len(e.questions) }

// Index is the zero-based position of the current question.
func (e *Engine) Index() int { return e.current }

// Current returns the question being asked, or false once complete.
func (e *Engine) Current() (models.QuizQuestion, bool) {
	if e.state == Complete {
		return models.QuizQuestion{}, false
	}
	return e.questions[e.current], true
}

func (e *Engine) Selected() string { return e.selected }

// Select changes the selected option. It returns false, changing nothing,
// once the answer has been submitted.
func (e *Engine) Select(option string) bool {
	if e.state != Unanswered && e.state != AnswerSelected {
		return false
	}
	e.selected = option
	e.state = AnswerSelected
	return true
}

// Submit locks in the selection and reports whether it was correct. A correct
// answer adds the question's points.
func (e *Engine) Submit() (bool, error) {
	switch e.state {
	case Unanswered:
		return false, ErrNoSelection
	case FeedbackShown:
		return false, ErrAnswerLocked
	case Complete:
		return false, ErrComplete
	}

	q := e.questions[e.current]
	e.answers[e.current] = e.selected
	e.state = FeedbackShown

	if !q.IsCorrect(e.selected) {
		return false, nil
	}
	e.points += q.Points
	e.correct++
	return true, nil
}

// Advance moves past the feedback to the next question, or completes the
// quiz after the last one. It reports whether the quiz is now complete.
func (e *Engine) Advance() (bool, error) {
	if e.state != FeedbackShown {
		if e.state == Complete {
			return true, ErrComplete
		}
		return false, ErrNoFeedback
	}
	if e.current == len(e.questions)-1 {
		e.state = Complete
		return true, nil
	}
	e.current++
	e.selected = ""
	e.state = Unanswered
	return false, nil
}

// Answers returns the submitted answer per question ("" when not reached).
func (e *Engine) Answers() []string {
	out := make([]string, len(e.answers))
	copy(out, e.answers)
	return out
}

// PointsEarned is the sum of the points of correctly answered questions.
func (e *Engine) PointsEarned() int { return e.points }

func (e *Engine) CorrectCount() int { return e.correct }

// Percentage is the share of correct answers, rounded to a whole percent.
func (e *Engine) Percentage() int {
	if len(e.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(e.correct) / float64(len(e.questions)) * 100))
}

// Passed reports whether at least 70% of the questions were answered correctly.
func (e *Engine) Passed() bool {
	return len(e.questions) > 0 && e.correct*100 >= PassPercentage*len(e.questions)
}

// SubmitRequest is the submit-quiz body for the finished quiz.
func (e *Engine) SubmitRequest(category string) models.SubmitQuizRequest {
	return models.SubmitQuizRequest{
		Category:       category,
		Score:          e.points,
		TotalQuestions: len(e.questions),
		Difficulty:     string(models.Mixed),
	}
}
