package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"educare/models"

	"go.uber.org/zap"
)

// ErrNoSession is returned when a result is submitted without a signed in user.
var ErrNoSession = errors.New("no active session")

// SubmitTimeout bounds a background submission.
const SubmitTimeout = 30 * time.Second

// Task is a background submission. The screen that started it does not wait,
// but callers that care about the outcome can.
type Task struct {
	done chan struct{}
	user models.UserProfile
	err  error
}

func doneTask(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Done is closed when the submission has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the submission finishes or ctx ends, and returns the
// profile the server sent back.
func (t *Task) Wait(ctx context.Context) (models.UserProfile, error) {
	select {
	case <-t.done:
		return t.user, t.err
	case <-ctx.Done():
		return models.UserProfile{}, ctx.Err()
	}
}

// Submitter sends results in the background. Submissions are detached from
// the caller's context so leaving a screen never cancels them.
type Submitter struct {
	api *API
	log *zap.Logger
	wg  sync.WaitGroup
}

func NewSubmitter(api *API, log *zap.Logger) *Submitter {
	return &Submitter{api: api, log: log}
}

func (s *Submitter) run(op string, fn func(ctx context.Context) (models.UserProfile, error)) *Task {
	t := &Task{done: make(chan struct{})}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(t.done)
		ctx, cancel := context.WithTimeout(context.Background(), SubmitTimeout)
		defer cancel()
		t.user, t.err = fn(ctx)
		if t.err != nil {
			s.log.Warn("background submission failed", zap.String("op", op), zap.Error(t.err))
		}
	}()
	return t
}

func (s *Submitter) SubmitQuiz(token string, req models.SubmitQuizRequest) *Task {
	if token == "" {
		return doneTask(ErrNoSession)
	}
	return s.run("submit-quiz", func(ctx context.Context) (models.UserProfile, error) {
		return s.api.SubmitQuiz(ctx, token, req)
	})
}

func (s *Submitter) SaveActivity(token string, req models.SaveActivityRequest) *Task {
	if token == "" {
		return doneTask(ErrNoSession)
	}
	return s.run("save-activity-score", func(ctx context.Context) (models.UserProfile, error) {
		return s.api.SaveActivityScore(ctx, token, req)
	})
}

// Wait blocks until every submission started so far has finished.
func (s *Submitter) Wait() { s.wg.Wait() }
