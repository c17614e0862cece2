package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// GoTrueProvider talks to a Supabase / GoTrue auth server over its REST API.
// Admin calls use the service-role key, user calls the anon key.
type GoTrueProvider struct {
	client     *resty.Client
	serviceKey string
	anonKey    string
}

func NewGoTrueProvider(baseURL, serviceKey, anonKey string) *GoTrueProvider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/auth/v1").
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &GoTrueProvider{client: client, serviceKey: serviceKey, anonKey: anonKey}
}

type gotrueUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (u gotrueUser) identity() Identity {
	name, _ := u.UserMetadata["name"].(string)
	return Identity{ID: u.ID, Email: u.Email, Name: name}
}

type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *gotrueError) text(status int) string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return fmt.Sprintf("auth server returned %d", status)
}

func (p *GoTrueProvider) admin(ctx context.Context) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.serviceKey).
		SetAuthToken(p.serviceKey).
		SetError(&gotrueError{})
}

func (p *GoTrueProvider) public(ctx context.Context) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetHeader("apikey", p.anonKey).
		SetError(&gotrueError{})
}

func failure(resp *resty.Response) error {
	if e, ok := resp.Error().(*gotrueError); ok {
		return errors.New(e.text(resp.StatusCode()))
	}
	return fmt.Errorf("auth server returned %d", resp.StatusCode())
}

func (p *GoTrueProvider) CreateUser(ctx context.Context, email, password, name string) (Identity, error) {
	var user gotrueUser
	resp, err := p.admin(ctx).
		SetBody(map[string]any{
			"email":         email,
			"password":      password,
			"user_metadata": map[string]string{"name": name},
			// no mail server is configured, confirm immediately
			"email_confirm": true,
		}).
		SetResult(&user).
		Post("/admin/users")
	if err != nil {
		return Identity{}, err
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusUnprocessableEntity {
			return Identity{}, fmt.Errorf("%w: %s", ErrEmailTaken, failure(resp))
		}
		return Identity{}, failure(resp)
	}
	return user.identity(), nil
}

func (p *GoTrueProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	var out struct {
		AccessToken string     `json:"access_token"`
		User        gotrueUser `json:"user"`
	}
	resp, err := p.public(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&out).
		Post("/token")
	if err != nil {
		return Session{}, err
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusBadRequest || resp.StatusCode() == http.StatusUnauthorized {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, failure(resp)
	}
	return Session{AccessToken: out.AccessToken, User: out.User.identity()}, nil
}

func (p *GoTrueProvider) GetUser(ctx context.Context, accessToken string) (Identity, error) {
	if accessToken == "" {
		return Identity{}, ErrInvalidToken
	}
	var user gotrueUser
	resp, err := p.public(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		Get("/user")
	if err != nil {
		return Identity{}, err
	}
	if resp.IsError() {
		if resp.StatusCode() < http.StatusInternalServerError {
			return Identity{}, ErrInvalidToken
		}
		return Identity{}, failure(resp)
	}
	if user.ID == "" {
		return Identity{}, ErrInvalidToken
	}
	return user.identity(), nil
}

func (p *GoTrueProvider) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	resp, err := p.admin(ctx).
		SetPathParam("id", userID).
		SetBody(map[string]string{"password": newPassword}).
		Put("/admin/users/{id}")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return failure(resp)
	}
	return nil
}

func (p *GoTrueProvider) DeleteUser(ctx context.Context, userID string) error {
	resp, err := p.admin(ctx).
		SetPathParam("id", userID).
		Delete("/admin/users/{id}")
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrUserNotFound
	}
	if resp.IsError() {
		return failure(resp)
	}
	return nil
}
