// Package client is the application side of the API. App holds the state the
// screens drive and talks to the server through API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"educare/models"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds every API call.
const DefaultTimeout = 15 * time.Second

// APIError is a non-2xx response. Message is the server's "error" text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	ae, ok := err.(*APIError)
	return ok && ae.Status == status
}

type errorBody struct {
	Error string `json:"error"`
}

type userBody struct {
	User models.UserProfile `json:"user"`
}

type messageBody struct {
	Message string `json:"message"`
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	AccessToken string             `json:"accessToken"`
	User        models.UserProfile `json:"user"`
}

// API calls the HTTP endpoints under one base URL, the API prefix included.
type API struct {
	http *resty.Client
}

func NewAPI(baseURL string) *API {
	return NewAPIWithClient(resty.New().SetBaseURL(baseURL).SetTimeout(DefaultTimeout))
}

// NewAPIWithClient uses a preconfigured resty client.
func NewAPIWithClient(c *resty.Client) *API {
	c.SetHeader("Accept", "application/json")
	return &API{http: c}
}

func (a *API) request(ctx context.Context, token string) *resty.Request {
	r := a.http.R().SetContext(ctx).SetError(&errorBody{})
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode()}
		if body, ok := resp.Error().(*errorBody); ok && body != nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}
	return nil
}

func (a *API) Health(ctx context.Context) error {
	return check(a.request(ctx, "").Get("/health"))
}

// Signup returns the new user's profile.
func (a *API) Signup(ctx context.Context, req models.SignupRequest) (models.UserProfile, error) {
	var out userBody
	err := check(a.request(ctx, "").SetBody(req).SetResult(&out).Post("/signup"))
	return out.User, err
}

func (a *API) Login(ctx context.Context, req models.LoginRequest) (LoginResult, error) {
	var out LoginResult
	err := check(a.request(ctx, "").SetBody(req).SetResult(&out).Post("/login"))
	return out, err
}

func (a *API) CompleteProfile(ctx context.Context, token string, req models.CompleteProfileRequest) (models.UserProfile, error) {
	var out userBody
	err := check(a.request(ctx, token).SetBody(req).SetResult(&out).Post("/complete-profile"))
	return out.User, err
}

func (a *API) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	var out userBody
	err := check(a.request(ctx, "").SetPathParam("userId", userID).SetResult(&out).Get("/profile/{userId}"))
	return out.User, err
}

func (a *API) Progress(ctx context.Context, token, userID string) (models.Progress, error) {
	var out struct {
		Progress models.Progress `json:"progress"`
	}
	err := check(a.request(ctx, token).SetPathParam("userId", userID).SetResult(&out).Get("/profile/{userId}/progress"))
	return out.Progress, err
}

func (a *API) SubmitQuiz(ctx context.Context, token string, req models.SubmitQuizRequest) (models.UserProfile, error) {
	var out userBody
	err := check(a.request(ctx, token).SetBody(req).SetResult(&out).Post("/submit-quiz"))
	return out.User, err
}

func (a *API) QuizQuestions(ctx context.Context, category string, count int) ([]models.QuizQuestion, error) {
	var out struct {
		Questions []models.QuizQuestion `json:"questions"`
	}
	err := check(a.request(ctx, "").
		SetQueryParam("category", category).
		SetQueryParam("count", strconv.Itoa(count)).
		SetResult(&out).
		Get("/quiz-questions"))
	return out.Questions, err
}

// InitQuizData seeds the question set and returns the server's message.
func (a *API) InitQuizData(ctx context.Context) (string, error) {
	var out messageBody
	err := check(a.request(ctx, "").SetResult(&out).Post("/init-quiz-data"))
	return out.Message, err
}

// UpdateProfile sends name and, when photo is not nil, the photo file.
func (a *API) UpdateProfile(ctx context.Context, token, name string, photo *models.Photo) (models.UserProfile, error) {
	var out userBody
	r := a.request(ctx, token).SetMultipartFormData(map[string]string{"name": name}).SetResult(&out)
	if photo != nil {
		r.SetMultipartField("photo", "photo", photo.ContentType, bytes.NewReader(photo.Data))
	}
	err := check(r.Post("/update-profile"))
	return out.User, err
}

func (a *API) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) error {
	return check(a.request(ctx, token).SetBody(req).Post("/change-password"))
}

func (a *API) DeleteAccount(ctx context.Context, token string) error {
	return check(a.request(ctx, token).Execute(http.MethodDelete, "/delete-account"))
}

func (a *API) SaveActivityScore(ctx context.Context, token string, req models.SaveActivityRequest) (models.UserProfile, error) {
	var out userBody
	err := check(a.request(ctx, token).SetBody(req).SetResult(&out).Post("/save-activity-score"))
	return out.User, err
}
