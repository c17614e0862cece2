package quiz

import (
	"testing"

	"educare/models"
	"educare/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id string, d models.Difficulty, answer string) models.QuizQuestion {
	return models.QuizQuestion{
		ID:            id,
		Category:      "numbers",
		Difficulty:    d,
		Points:        models.PointsFor(d),
		Question:      "?",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: answer,
	}
}

func TestEngine_StateMachine(t *testing.T) {
	e := New([]models.QuizQuestion{
		question("q1", models.Easy, "a"),
		question("q2", models.Hard, "b"),
	})
	assert.Equal(t, Unanswered, e.State())

	_, err := e.Submit()
	assert.ErrorIs(t, err, ErrNoSelection)
	_, err = e.Advance()
	assert.ErrorIs(t, err, ErrNoFeedback)

	assert.True(t, e.Select("c"))
	assert.True(t, e.Select("a"))
	assert.Equal(t, AnswerSelected, e.State())

	ok, err := e.Submit()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, FeedbackShown, e.State())

	assert.False(t, e.Select("b"), "answer is locked after submit")
	assert.Equal(t, "a", e.Selected())
	_, err = e.Submit()
	assert.ErrorIs(t, err, ErrAnswerLocked)

	done, err := e.Advance()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, e.Index())
	assert.Equal(t, "", e.Selected())

	e.Select("c")
	ok, err = e.Submit()
	require.NoError(t, err)
	assert.False(t, ok)

	done, err = e.Advance()
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, Complete, e.State())
	_, current := e.Current()
	assert.False(t, current)

	assert.Equal(t, 50, e.PointsEarned())
	assert.Equal(t, 1, e.CorrectCount())
	assert.Equal(t, 50, e.Percentage())
	assert.False(t, e.Passed())
	assert.Equal(t, []string{"a", "c"}, e.Answers())
}

func TestEngine_ExactStringMatch(t *testing.T) {
	e := New([]models.QuizQuestion{question("q1", models.Easy, "a")})
	e.Select("A")
	ok, err := e.Submit()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, e.PointsEarned())
}

func TestEngine_Empty(t *testing.T) {
	e := New(nil)
	assert.Equal(t, Complete, e.State())
	assert.False(t, e.Select("a"))
	assert.Equal(t, 0, e.Percentage())
	assert.False(t, e.Passed())
}

func TestEngine_PassThreshold(t *testing.T) {
	qs := make([]models.QuizQuestion, 10)
	for i := range qs {
		qs[i] = question(string(rune('a'+i)), models.Medium, "a")
	}
	for correct := 0; correct <= 10; correct++ {
		e := New(qs)
		for i := 0; i < 10; i++ {
			if i < correct {
				e.Select("a")
			} else {
				e.Select("b")
			}
			_, err := e.Submit()
			require.NoError(t, err)
			_, err = e.Advance()
			require.NoError(t, err)
		}
		assert.Equal(t, correct*10, e.Percentage())
		assert.Equal(t, correct >= 7, e.Passed(), "correct=%d", correct)
		assert.Equal(t, correct*75, e.PointsEarned())
	}
}

// The points reported equal the sum of the points of the questions whose
// submitted answer equals the correct answer, for any answer pattern.
func TestEngine_PointsEqualSumOfCorrect(t *testing.T) {
	rnd := random.New(11)
	difficulties := []models.Difficulty{models.Easy, models.Medium, models.Hard}
	for round := 0; round < 50; round++ {
		qs := make([]models.QuizQuestion, 1+rnd.IntN(10))
		for i := range qs {
			qs[i] = question(string(rune('a'+i)), difficulties[rnd.IntN(3)], []string{"a", "b", "c", "d"}[rnd.IntN(4)])
		}

		e := New(qs)
		want := 0
		for _, q := range qs {
			answer := []string{"a", "b", "c", "d"}[rnd.IntN(4)]
			if answer == q.CorrectAnswer {
				want += q.Points
			}
			e.Select(answer)
			_, err := e.Submit()
			require.NoError(t, err)
			_, err = e.Advance()
			require.NoError(t, err)
		}
		assert.Equal(t, want, e.PointsEarned())

		req := e.SubmitRequest("numbers")
		assert.Equal(t, want, req.Score)
		assert.Equal(t, len(qs), req.TotalQuestions)
		assert.Equal(t, "mixed", req.Difficulty)
	}
}
