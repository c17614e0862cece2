package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"educare/apperr"
	"educare/auth"
	"educare/kv"
	"educare/metrics"
	"educare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type recordingNotifier struct {
	mu      sync.Mutex
	welcome []string
}

func (n *recordingNotifier) Welcome(_ context.Context, email, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.welcome = append(n.welcome, email)
}

type fixture struct {
	store    *kv.MemoryStore
	provider *auth.LocalProvider
	notifier *recordingNotifier
	svc      *ProfileService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	provider := auth.NewLocalProvider(store, "test-secret", time.Hour, bcrypt.MinCost)
	notifier := &recordingNotifier{}
	return fixture{
		store:    store,
		provider: provider,
		notifier: notifier,
		svc:      NewProfileService(store, provider, notifier, metrics.NewNop(), zap.NewNop()),
	}
}

func ptr[T any](v T) *T { return &v }

func signupAna(t *testing.T, f fixture) models.UserProfile {
	t.Helper()
	p, err := f.svc.Signup(context.Background(), models.SignupRequest{Name: "Ana", Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	return p
}

func TestProfileService_SignupCompleteSubmit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p := signupAna(t, f)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 0, p.TotalPoints)
	assert.False(t, p.ProfileCompleted)
	assert.Empty(t, p.QuizzesTaken)
	assert.Equal(t, []string{"a@x.com"}, f.notifier.welcome)

	p, err := f.svc.CompleteProfile(ctx, p.ID, models.CompleteProfileRequest{
		Avatar: ptr("girl1"), Age: ptr(5), DOB: ptr("2019-01-01"),
	})
	require.NoError(t, err)
	assert.True(t, p.ProfileCompleted)
	assert.Equal(t, "girl1", *p.Avatar)

	p, err = f.svc.SubmitQuiz(ctx, p.ID, models.SubmitQuizRequest{
		Category: "numbers", Score: 150, TotalQuestions: 3, Difficulty: "mixed",
	})
	require.NoError(t, err)
	assert.Equal(t, 150, p.TotalPoints)
	require.Len(t, p.QuizzesTaken, 1)
	assert.Equal(t, "mixed", p.QuizzesTaken[0].Difficulty)

	stored, err := f.svc.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.TotalPoints, stored.TotalPoints)
	assert.Equal(t, "Ana", stored.Name)
}

func TestProfileService_SignupDuplicate(t *testing.T) {
	f := newFixture(t)
	signupAna(t, f)

	_, err := f.svc.Signup(context.Background(), models.SignupRequest{Name: "Ana", Email: "a@x.com", Password: "pw123456"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Contains(t, err.Error(), "Auth error during signup")
}

func TestProfileService_Login(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := signupAna(t, f)

	sess, got, err := f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.AccessToken)
	assert.Equal(t, p.ID, got.ID)

	identity, err := f.svc.Authenticate(ctx, sess.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, p.ID, identity.ID)

	_, _, err = f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "nope"})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	_, err = f.svc.Authenticate(ctx, "garbage")
	assert.Equal(t, http.StatusUnauthorized, apperr.StatusOf(err))
}

func TestProfileService_LoginWithoutProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.provider.CreateUser(ctx, "ghost@x.com", "pw123456", "Ghost")
	require.NoError(t, err)

	_, _, err = f.svc.Login(ctx, models.LoginRequest{Email: "ghost@x.com", Password: "pw123456"})
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "User profile not found")
}

func TestProfileService_MissingProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.SubmitQuiz(ctx, "nobody", models.SubmitQuizRequest{Category: "numbers", Score: 50})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.SaveActivityScore(ctx, "nobody", models.SaveActivityRequest{ActivityType: "game", ActivityName: "x", Score: 50})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.CompleteProfile(ctx, "nobody", models.CompleteProfileRequest{})
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.store.Get(ctx, models.UserKey("nobody"))
	assert.ErrorIs(t, err, kv.ErrNotFound, "a failed update must not create the profile")
}

func TestProfileService_ConcurrentScoresAreNotLost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := signupAna(t, f)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, err := f.svc.SaveActivityScore(ctx, p.ID, models.SaveActivityRequest{
					ActivityType: models.ActivityGame, ActivityName: "Memory Match", Score: 10,
				})
				assert.NoError(t, err)
				return
			}
			_, err := f.svc.SubmitQuiz(ctx, p.ID, models.SubmitQuizRequest{Category: "animals", Score: 10, TotalQuestions: 1})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := f.svc.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, n*10, got.TotalPoints)
	assert.Equal(t, n, len(got.QuizzesTaken)+len(got.Activities))
	assert.Equal(t, got.RecomputedPoints(), got.TotalPoints)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := signupAna(t, f)

	got, err := f.svc.UpdateProfile(ctx, p.ID, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Empty(t, got.PhotoURL)

	got, err = f.svc.UpdateProfile(ctx, p.ID, "Ana Maria", &models.Photo{ContentType: "image/png", Data: []byte{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "data:image/png;base64,AQID", got.PhotoURL)

	got, err = f.svc.UpdateProfile(ctx, p.ID, "Ana", nil)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AQID", got.PhotoURL, "photo is kept when none is uploaded")
}

func TestProfileService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := signupAna(t, f)

	err := f.svc.ChangePassword(ctx, p.ID, models.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass99"})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.EqualError(t, err, "Current password is incorrect")

	require.NoError(t, f.svc.ChangePassword(ctx, p.ID, models.ChangePasswordRequest{CurrentPassword: "pw123456", NewPassword: "newpass99"}))

	_, _, err = f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "newpass99"})
	assert.NoError(t, err)
}

func TestProfileService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := signupAna(t, f)
	other, err := f.svc.Signup(ctx, models.SignupRequest{Name: "Bo", Email: "b@x.com", Password: "pw123456"})
	require.NoError(t, err)

	require.NoError(t, kv.SetJSON(ctx, f.store, models.UserQuizPrefix(p.ID)+"1", map[string]int{"score": 50}))
	require.NoError(t, kv.SetJSON(ctx, f.store, models.UserQuizPrefix(p.ID)+"2", map[string]int{"score": 75}))
	require.NoError(t, kv.SetJSON(ctx, f.store, models.UserQuizPrefix(other.ID)+"1", map[string]int{"score": 50}))

	require.NoError(t, f.svc.DeleteAccount(ctx, p.ID))

	_, err = f.svc.GetProfile(ctx, p.ID)
	assert.True(t, apperr.IsNotFound(err))

	left, err := f.store.GetByPrefix(ctx, models.UserQuizKeyPrefix)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, models.UserQuizPrefix(other.ID)+"1", left[0].Key)

	_, _, err = f.svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "pw123456"})
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))

	err = f.svc.DeleteAccount(ctx, p.ID)
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err), "identity already gone")
}

func TestProfileService_Progress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := signupAna(t, f)

	// Wednesday
	today := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	at := func(t time.Time) func() time.Time { return func() time.Time { return t } }

	f.svc.now = at(today.AddDate(0, 0, -10))
	_, err := f.svc.SubmitQuiz(ctx, p.ID, models.SubmitQuizRequest{Category: "animals", Score: 200, TotalQuestions: 10})
	require.NoError(t, err)

	f.svc.now = at(today.AddDate(0, 0, -2))
	_, err = f.svc.SubmitQuiz(ctx, p.ID, models.SubmitQuizRequest{Category: "numbers", Score: 100, TotalQuestions: 10})
	require.NoError(t, err)

	f.svc.now = at(today.Add(-time.Hour))
	_, err = f.svc.SubmitQuiz(ctx, p.ID, models.SubmitQuizRequest{Category: "numbers", Score: 75, TotalQuestions: 10})
	require.NoError(t, err)
	_, err = f.svc.SaveActivityScore(ctx, p.ID, models.SaveActivityRequest{ActivityType: models.ActivityPuzzle, ActivityName: "Number Order", Score: 50})
	require.NoError(t, err)

	f.svc.now = at(today)
	progress, err := f.svc.Progress(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 425, progress.TotalPoints)
	assert.Equal(t, 3, progress.QuizzesTaken)
	assert.Equal(t, 1, progress.ActivitiesDone)
	assert.Equal(t, 125, progress.PointsToday)
	assert.Equal(t, 225, progress.PointsThisWeek)
	assert.Equal(t, 200, progress.BestQuizScore)
	assert.Equal(t, "numbers", progress.FavoriteQuizCat)

	_, err = f.svc.Progress(ctx, "nobody")
	assert.True(t, apperr.IsNotFound(err))
}
