// Package engine holds what the client-side activities share: the scored
// result pushed to save-activity-score and the outcome of a single move.
package engine

import "educare/models"

// Result is a scoring event of a game, puzzle or music pattern.
type Result struct {
	ActivityType string
	ActivityName string
	Score        int
}

// Scored reports whether the result is worth recording. Zero-point answers
// are not pushed to the server.
func (r Result) Scored() bool { return r.Score > 0 }

// Request converts the result into the save-activity-score body.
func (r Result) Request() models.SaveActivityRequest {
	return models.SaveActivityRequest{
		ActivityType: r.ActivityType,
		ActivityName: r.ActivityName,
		Score:        r.Score,
	}
}

// Outcome is what a single move did to a sequence-entry activity.
type Outcome int

const (
	// Ignored means the move was not accepted.
	Ignored Outcome = iota
	// Pending means the sequence is not full yet.
	Pending
	// Solved means the sequence was completed correctly.
	Solved
	// Failed means the sequence was full but wrong; it has been cleared.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Pending:
		return "pending"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	}
	return "unknown"
}
