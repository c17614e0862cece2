package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 50, PointsFor(Easy))
	assert.Equal(t, 75, PointsFor(Medium))
	assert.Equal(t, 100, PointsFor(Hard))
	assert.Equal(t, 0, PointsFor(Mixed))
}

func TestQuizQuestion_Validate(t *testing.T) {
	q := QuizQuestion{ID: "q1", Difficulty: Easy, Points: 50, Options: []string{"B", "C"}, CorrectAnswer: "B"}
	assert.NoError(t, q.Validate())

	q.CorrectAnswer = "b"
	assert.Error(t, q.Validate())

	q.CorrectAnswer = "B"
	q.Points = 75
	assert.Error(t, q.Validate())
}

func TestUserProfile_RecordKeepsTotalInSync(t *testing.T) {
	p := NewUserProfile("u1", "Ana", "a@x.com", time.Now())
	assert.Equal(t, 0, p.TotalPoints)
	assert.NotNil(t, p.QuizzesTaken)

	p.RecordQuiz(QuizResult{Category: "numbers", Score: 150, TotalQuestions: 3})
	p.RecordActivity(ActivityResult{ActivityType: ActivityGame, ActivityName: "Memory Match", Score: 85})
	p.RecordActivity(ActivityResult{ActivityType: ActivityGame, ActivityName: "Count the Items", Score: 0})

	assert.Equal(t, 235, p.TotalPoints)
	assert.Equal(t, p.TotalPoints, p.RecomputedPoints())
	assert.Len(t, p.QuizzesTaken, 1)
	assert.Len(t, p.Activities, 2)
}

func TestIsCategory(t *testing.T) {
	assert.True(t, IsCategory("all"))
	assert.True(t, IsCategory("twoLetterWords"))
	assert.False(t, IsCategory("dinosaurs"))
}
