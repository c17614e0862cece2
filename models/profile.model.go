package models

import "time"

// Key prefixes in the key-value store.
const (
	UserKeyPrefix     = "user:"
	QuizKeyPrefix     = "quiz:"
	UserQuizKeyPrefix = "userquiz:"
)

func UserKey(userID string) string { return UserKeyPrefix + userID }

func QuizKey(questionID string) string { return QuizKeyPrefix + questionID }

// UserQuizPrefix is the prefix of per-user quiz history records.
func UserQuizPrefix(userID string) string { return UserQuizKeyPrefix + userID + ":" }

// UserProfile is the persisted per-user document.
type UserProfile struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Avatar           *string          `json:"avatar"`
	Age              *int             `json:"age"`
	DOB              *string          `json:"dob"`
	PhotoURL         string           `json:"photoUrl,omitempty"`
	ProfileCompleted bool             `json:"profileCompleted"`
	CoursesCompleted int              `json:"coursesCompleted"`
	TotalPoints      int              `json:"totalPoints"`
	QuizzesTaken     []QuizResult     `json:"quizzesTaken"`
	Activities       []ActivityResult `json:"activities,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// NewUserProfile returns the profile created at signup: no score, no history.
func NewUserProfile(id, name, email string, now time.Time) UserProfile {
	return UserProfile{
		ID:           id,
		Name:         name,
		Email:        email,
		QuizzesTaken: []QuizResult{},
		CreatedAt:    now.UTC(),
	}
}

// QuizResult is one entry of quizzesTaken.
type QuizResult struct {
	Category       string    `json:"category"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Difficulty     string    `json:"difficulty"`
	Date           time.Time `json:"date"`
}

// ActivityResult is one entry of activities: a scored game, puzzle or music pattern.
type ActivityResult struct {
	ActivityType string    `json:"activityType"`
	ActivityName string    `json:"activityName"`
	Score        int       `json:"score"`
	Date         time.Time `json:"date"`
}

// Activity types sent by the client.
const (
	ActivityGame   = "game"
	ActivityPuzzle = "puzzle"
	ActivityMusic  = "music"
)

// RecordQuiz appends a quiz result and adds its score to the running total.
func (p *UserProfile) RecordQuiz(r QuizResult) {
	p.TotalPoints += r.Score
	p.QuizzesTaken = append(p.QuizzesTaken, r)
}

// RecordActivity appends an activity result and adds its score to the running total.
func (p *UserProfile) RecordActivity(r ActivityResult) {
	p.TotalPoints += r.Score
	p.Activities = append(p.Activities, r)
}

// RecomputedPoints sums every recorded quiz and activity score. For a profile
// only ever mutated through RecordQuiz and RecordActivity it equals TotalPoints.
func (p *UserProfile) RecomputedPoints() int {
	total := 0
	for _, q := range p.QuizzesTaken {
		total += q.Score
	}
	for _, a := range p.Activities {
		total += a.Score
	}
	return total
}
