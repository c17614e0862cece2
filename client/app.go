package client

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"educare/engine"
	"educare/engine/quiz"
	"educare/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Screen string

const (
	ScreenSplash           Screen = "splash"
	ScreenAuth             Screen = "auth"
	ScreenProfileCreation  Screen = "profileCreation"
	ScreenHome             Screen = "home"
	ScreenAlphabet         Screen = "alphabet"
	ScreenNumbers          Screen = "numbers"
	ScreenFruits           Screen = "fruits"
	ScreenAnimals          Screen = "animals"
	ScreenVegetables       Screen = "vegetables"
	ScreenVideos           Screen = "videos"
	ScreenProfile          Screen = "profile"
	ScreenQuiz             Screen = "quiz"
	ScreenAccountSettings  Screen = "accountSettings"
	ScreenHelpSupport      Screen = "helpSupport"
	ScreenStories          Screen = "stories"
	ScreenPoetry           Screen = "poetry"
	ScreenShapes           Screen = "shapes"
	ScreenNumberSpelling   Screen = "numberSpelling"
	ScreenPuzzles          Screen = "puzzles"
	ScreenMusicRhythm      Screen = "musicRhythm"
	ScreenGames            Screen = "games"
	ScreenTwoLetterWords   Screen = "twoLetterWords"
	ScreenThreeLetterWords Screen = "threeLetterWords"
)

var screens = []Screen{
	ScreenSplash, ScreenAuth, ScreenProfileCreation, ScreenHome,
	ScreenAlphabet, ScreenNumbers, ScreenFruits, ScreenAnimals, ScreenVegetables,
	ScreenVideos, ScreenProfile, ScreenQuiz, ScreenAccountSettings, ScreenHelpSupport,
	ScreenStories, ScreenPoetry, ScreenShapes, ScreenNumberSpelling, ScreenPuzzles,
	ScreenMusicRhythm, ScreenGames, ScreenTwoLetterWords, ScreenThreeLetterWords,
}

// Screens lists every screen in menu order.
func Screens() []Screen { return slices.Clone(screens) }

func (s Screen) Valid() bool { return slices.Contains(screens, s) }

// App holds the current screen and signed in user. It is safe for use from
// several goroutines; background submissions update points concurrently with
// the UI.
type App struct {
	api       *API
	storage   Storage
	submitter *Submitter
	log       *zap.Logger

	mu     sync.RWMutex
	screen Screen
	user   *models.UserProfile
	token  string
}

func NewApp(api *API, storage Storage, log *zap.Logger) *App {
	return &App{
		api:       api,
		storage:   storage,
		submitter: NewSubmitter(api, log),
		log:       log,
		screen:    ScreenSplash,
	}
}

func (a *App) Screen() Screen {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.screen
}

// User returns a copy of the signed in user.
func (a *App) User() (models.UserProfile, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return models.UserProfile{}, false
	}
	return *a.user, true
}

func (a *App) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// Submitter exposes the background submission queue, mostly so callers can
// drain it before exit.
func (a *App) Submitter() *Submitter { return a.submitter }

// Start restores a saved session and seeds the quiz data on first run. Both
// run concurrently and neither failure is fatal: a session that cannot be
// restored sends the user to the auth screen.
func (a *App) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.restoreSession(gctx)
		return nil
	})
	g.Go(func() error {
		a.initQuizData(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user != nil && a.token != "" {
		a.screen = ScreenHome
	} else {
		a.screen = ScreenAuth
	}
	return nil
}

func (a *App) restoreSession(ctx context.Context) {
	token, okToken := a.storage.Get(KeyAccessToken)
	userID, okUser := a.storage.Get(KeyUserID)
	if !okToken || !okUser || token == "" || userID == "" {
		return
	}

	user, err := a.api.Profile(ctx, userID)
	if err != nil || user.ID == "" {
		a.log.Info("saved session is no longer valid", zap.String("userId", userID), zap.Error(err))
		if err := a.storage.Remove(KeyAccessToken, KeyUserID); err != nil {
			a.log.Warn("failed to clear saved session", zap.Error(err))
		}
		return
	}

	a.mu.Lock()
	a.token = token
	a.user = &user
	a.mu.Unlock()
}

func (a *App) initQuizData(ctx context.Context) {
	if v, ok := a.storage.Get(KeyQuizDataInitialized); ok && v == "true" {
		return
	}
	msg, err := a.api.InitQuizData(ctx)
	if err != nil {
		a.log.Warn("quiz data initialization failed", zap.Error(err))
		return
	}
	if err := a.storage.Set(KeyQuizDataInitialized, "true"); err != nil {
		a.log.Warn("failed to persist quiz data flag", zap.Error(err))
	}
	a.log.Info("quiz data initialized", zap.String("message", msg))
}

func (a *App) setSession(token string, user models.UserProfile, screen Screen) error {
	if err := a.storage.Set(KeyAccessToken, token); err != nil {
		return err
	}
	if err := a.storage.Set(KeyUserID, user.ID); err != nil {
		return err
	}
	a.mu.Lock()
	a.token = token
	a.user = &user
	a.screen = screen
	a.mu.Unlock()
	return nil
}

// Login signs in and opens home, or profile creation for a user who has not
// finished it yet.
func (a *App) Login(ctx context.Context, email, password string) error {
	res, err := a.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	next := ScreenProfileCreation
	if res.User.ProfileCompleted {
		next = ScreenHome
	}
	return a.setSession(res.AccessToken, res.User, next)
}

// Signup creates the account and signs straight in, so profile creation has
// a token to complete the profile with.
func (a *App) Signup(ctx context.Context, name, email, password string) error {
	if _, err := a.api.Signup(ctx, models.SignupRequest{Name: name, Email: email, Password: password}); err != nil {
		return err
	}
	res, err := a.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("sign in after signup: %w", err)
	}
	return a.setSession(res.AccessToken, res.User, ScreenProfileCreation)
}

func (a *App) CompleteProfile(ctx context.Context, req models.CompleteProfileRequest) error {
	token := a.Token()
	if token == "" {
		return ErrNoSession
	}
	user, err := a.api.CompleteProfile(ctx, token, req)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.user = &user
	a.screen = ScreenHome
	a.mu.Unlock()
	return nil
}

// Logout forgets the session locally and returns to the auth screen.
func (a *App) Logout() error {
	err := a.storage.Remove(KeyAccessToken, KeyUserID)
	a.mu.Lock()
	a.token = ""
	a.user = nil
	a.screen = ScreenAuth
	a.mu.Unlock()
	return err
}

func (a *App) Navigate(s Screen) error {
	if !s.Valid() {
		return fmt.Errorf("unknown screen %q", s)
	}
	a.mu.Lock()
	a.screen = s
	a.mu.Unlock()
	return nil
}

// AddPoints adds to the local point total of the signed in user.
func (a *App) AddPoints(points int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user != nil {
		a.user.TotalPoints += points
	}
}

// StartQuiz fetches a fresh set of questions for category.
func (a *App) StartQuiz(ctx context.Context, category string) (*quiz.Engine, error) {
	questions, err := a.api.QuizQuestions(ctx, category, quiz.QuestionCount)
	if err != nil {
		return nil, err
	}
	return quiz.New(questions), nil
}

// FinishQuiz submits a completed quiz in the background and credits the
// earned points locally whatever the submission outcome.
func (a *App) FinishQuiz(category string, e *quiz.Engine) *Task {
	task := a.submitter.SubmitQuiz(a.Token(), e.SubmitRequest(category))
	a.AddPoints(e.PointsEarned())
	return task
}

// RecordActivity pushes a mini-game result. Results without points are not
// sent.
func (a *App) RecordActivity(r engine.Result) *Task {
	if !r.Scored() {
		return doneTask(nil)
	}
	return a.submitter.SaveActivity(a.Token(), r.Request())
}
