package services

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"educare/apperr"
	"educare/auth"
	"educare/kv"
	"educare/metrics"
	"educare/models"
	"educare/utils"

	"github.com/jinzhu/now"
	"go.uber.org/zap"
)

const errProfileNotFound = "User profile not found"

// Notifier is told about new accounts. Delivery is best effort.
type Notifier interface {
	Welcome(ctx context.Context, email, name string)
}

// ProfileService owns the profile record of every user and keeps its point
// total in step with the quiz and activity history.
type ProfileService struct {
	store    kv.Store
	provider auth.Provider
	notifier Notifier
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time
}

// NewProfileService wires the service to its store, identity provider and
// welcome notifier.
func NewProfileService(store kv.Store, provider auth.Provider, notifier Notifier, m *metrics.Metrics, log *zap.Logger) *ProfileService {
	return &ProfileService{
		store:    store,
		provider: provider,
		notifier: notifier,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

// Signup creates the identity account and an empty profile for it.
func (s *ProfileService) Signup(ctx context.Context, req models.SignupRequest) (models.UserProfile, error) {
	identity, err := s.provider.CreateUser(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		s.log.Warn("signup rejected by identity provider", zap.String("email", req.Email), zap.Error(err))
		return models.UserProfile{}, apperr.BadRequest("Auth error during signup", err)
	}

	profile := models.NewUserProfile(identity.ID, req.Name, req.Email, s.now())
	if err := kv.SetJSON(ctx, s.store, models.UserKey(identity.ID), profile); err != nil {
		return models.UserProfile{}, err
	}

	s.metrics.AccountsCreated.Inc()
	s.notifier.Welcome(ctx, profile.Email, profile.Name)
	s.log.Info("user signed up", zap.String("userId", identity.ID))
	return profile, nil
}

// Login authenticates with the identity provider and returns the session
// with the caller's profile.
func (s *ProfileService) Login(ctx context.Context, req models.LoginRequest) (auth.Session, models.UserProfile, error) {
	session, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return auth.Session{}, models.UserProfile{}, apperr.BadRequest("Auth error during login", err)
	}

	profile, err := s.GetProfile(ctx, session.User.ID)
	if err != nil {
		return auth.Session{}, models.UserProfile{}, err
	}
	return session, profile, nil
}

// Authenticate resolves a bearer token to the caller's identity.
func (s *ProfileService) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	identity, err := s.provider.GetUser(ctx, token)
	if err != nil || identity.ID == "" {
		return auth.Identity{}, apperr.Unauthorized("Unauthorized")
	}
	return identity, nil
}

// GetProfile loads the profile of userID.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	profile, err := kv.GetJSON[models.UserProfile](ctx, s.store, models.UserKey(userID))
	if errors.Is(err, kv.ErrNotFound) {
		return models.UserProfile{}, apperr.NotFound(errProfileNotFound)
	}
	return profile, err
}

// update applies mutate to the stored profile atomically.
func (s *ProfileService) update(ctx context.Context, userID string, mutate func(*models.UserProfile) error) (models.UserProfile, error) {
	profile, err := kv.UpdateJSON(ctx, s.store, models.UserKey(userID), mutate)
	if errors.Is(err, kv.ErrNotFound) {
		return models.UserProfile{}, apperr.NotFound(errProfileNotFound)
	}
	return profile, err
}

// CompleteProfile overwrites avatar, age and dob and marks the profile complete.
func (s *ProfileService) CompleteProfile(ctx context.Context, userID string, req models.CompleteProfileRequest) (models.UserProfile, error) {
	return s.update(ctx, userID, func(p *models.UserProfile) error {
		p.Avatar = req.Avatar
		p.Age = req.Age
		p.DOB = req.DOB
		p.ProfileCompleted = true
		return nil
	})
}

// SubmitQuiz appends a quiz result and adds its score to the point total.
func (s *ProfileService) SubmitQuiz(ctx context.Context, userID string, req models.SubmitQuizRequest) (models.UserProfile, error) {
	profile, err := s.update(ctx, userID, func(p *models.UserProfile) error {
		p.RecordQuiz(models.QuizResult{
			Category:       req.Category,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			Difficulty:     req.Difficulty,
			Date:           s.now().UTC(),
		})
		return nil
	})
	if err != nil {
		return profile, err
	}
	s.metrics.ObserveQuiz(req.Category, req.Score)
	s.log.Info("quiz recorded",
		zap.String("userId", userID),
		zap.String("category", req.Category),
		zap.Int("score", req.Score),
		zap.Int("totalPoints", profile.TotalPoints))
	return profile, nil
}

// SaveActivityScore appends an activity result and adds its score to the
// point total.
func (s *ProfileService) SaveActivityScore(ctx context.Context, userID string, req models.SaveActivityRequest) (models.UserProfile, error) {
	profile, err := s.update(ctx, userID, func(p *models.UserProfile) error {
		p.RecordActivity(models.ActivityResult{
			ActivityType: req.ActivityType,
			ActivityName: req.ActivityName,
			Score:        req.Score,
			Date:         s.now().UTC(),
		})
		return nil
	})
	if err != nil {
		return profile, err
	}
	s.metrics.ObserveActivity(req.ActivityType, req.Score)
	s.log.Info("activity recorded",
		zap.String("userId", userID),
		zap.String("activity", req.ActivityName),
		zap.Int("score", req.Score))
	return profile, nil
}

// UpdateProfile changes the display name when name is non-empty and inlines
// photo as a data URI when one is given.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID, name string, photo *models.Photo) (models.UserProfile, error) {
	var photoURL string
	if photo != nil {
		photoURL = utils.DataURI(photo.ContentType, photo.Data)
	}
	return s.update(ctx, userID, func(p *models.UserProfile) error {
		if name != "" {
			p.Name = name
		}
		if photoURL != "" {
			p.PhotoURL = photoURL
		}
		return nil
	})
}

// ChangePassword re-authenticates with the current password before setting
// the new one.
func (s *ProfileService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.provider.SignIn(ctx, profile.Email, req.CurrentPassword); err != nil {
		return apperr.BadRequest("Current password is incorrect", nil)
	}

	if err := s.provider.UpdatePassword(ctx, userID, req.NewPassword); err != nil {
		s.log.Error("password update failed", zap.String("userId", userID), zap.Error(err))
		return apperr.BadRequest("Error updating password", err)
	}
	return nil
}

// DeleteAccount removes the profile, the user's quiz history records and the
// identity account.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.store.Del(ctx, models.UserKey(userID)); err != nil {
		return err
	}

	history, err := s.store.GetByPrefix(ctx, models.UserQuizPrefix(userID))
	if err != nil {
		return err
	}
	for _, e := range history {
		if err := s.store.Del(ctx, e.Key); err != nil {
			return err
		}
	}

	if err := s.provider.DeleteUser(ctx, userID); err != nil {
		s.log.Error("identity deletion failed", zap.String("userId", userID), zap.Error(err))
		return apperr.BadRequest("Error deleting user", err)
	}

	s.metrics.AccountsDeleted.Inc()
	s.log.Info("account deleted", zap.String("userId", userID), zap.Int("historyRecords", len(history)))
	return nil
}

// Progress summarises the profile's history, including points earned since
// the start of today and of the current week.
func (s *ProfileService) Progress(ctx context.Context, userID string) (models.Progress, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return models.Progress{}, err
	}

	t := now.With(s.now())
	dayStart := t.BeginningOfDay()
	weekStart := t.BeginningOfWeek()

	progress := models.Progress{
		UserID:         profile.ID,
		TotalPoints:    profile.TotalPoints,
		QuizzesTaken:   len(profile.QuizzesTaken),
		ActivitiesDone: len(profile.Activities),
	}

	add := func(score int, at time.Time) {
		if !at.Before(dayStart) {
			progress.PointsToday += score
		}
		if !at.Before(weekStart) {
			progress.PointsThisWeek += score
		}
	}

	perCategory := make(map[string]int)
	for _, q := range profile.QuizzesTaken {
		add(q.Score, q.Date)
		if q.Score > progress.BestQuizScore {
			progress.BestQuizScore = q.Score
		}
		perCategory[q.Category]++
	}
	for _, a := range profile.Activities {
		add(a.Score, a.Date)
	}

	best := 0
	for _, cat := range slices.Sorted(maps.Keys(perCategory)) {
		if perCategory[cat] > best {
			best = perCategory[cat]
			progress.FavoriteQuizCat = cat
		}
	}
	return progress, nil
}
