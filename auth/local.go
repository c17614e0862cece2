package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"educare/kv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	credentialKeyPrefix = "auth:user:"
	emailKeyPrefix      = "auth:email:"
)

type credential struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

type emailIndex struct {
	ID string `json:"id"`
}

// LocalProvider keeps credentials in the key-value store and issues HS256
// access tokens.
type LocalProvider struct {
	store     kv.Store
	secret    []byte
	ttl       time.Duration
	saltRound int
	now       func() time.Time
}

func NewLocalProvider(store kv.Store, secret string, ttl time.Duration, saltRound int) *LocalProvider {
	if saltRound < bcrypt.MinCost {
		saltRound = bcrypt.DefaultCost
	}
	return &LocalProvider{
		store:     store,
		secret:    []byte(secret),
		ttl:       ttl,
		saltRound: saltRound,
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *LocalProvider) CreateUser(ctx context.Context, email, password, name string) (Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Identity{}, errors.New("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.saltRound)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}
	cred := credential{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	}

	// Claim the email first so two signups for one address cannot both win.
	err = p.store.Update(ctx, emailKeyPrefix+email, func(current []byte) ([]byte, error) {
		if current != nil {
			return nil, ErrEmailTaken
		}
		return json.Marshal(emailIndex{ID: cred.ID})
	})
	if err != nil {
		return Identity{}, err
	}
	if err := kv.SetJSON(ctx, p.store, credentialKeyPrefix+cred.ID, cred); err != nil {
		_ = p.store.Del(ctx, emailKeyPrefix+email)
		return Identity{}, err
	}
	return cred.identity(), nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	cred, err := p.byEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := p.issueToken(cred)
	if err != nil {
		return Session{}, err
	}
	return Session{AccessToken: token, User: cred.identity()}, nil
}

func (p *LocalProvider) GetUser(ctx context.Context, accessToken string) (Identity, error) {
	if accessToken == "" {
		return Identity{}, ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	// The account may have been deleted since the token was issued.
	cred, err := p.byID(ctx, claims.Subject)
	if errors.Is(err, ErrUserNotFound) {
		return Identity{}, ErrInvalidToken
	}
	if err != nil {
		return Identity{}, err
	}
	return cred.identity(), nil
}

func (p *LocalProvider) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), p.saltRound)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = kv.UpdateJSON(ctx, p.store, credentialKeyPrefix+userID, func(c *credential) error {
		c.PasswordHash = string(hash)
		return nil
	})
	if errors.Is(err, kv.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (p *LocalProvider) DeleteUser(ctx context.Context, userID string) error {
	cred, err := p.byID(ctx, userID)
	if err != nil {
		return err
	}
	if err := p.store.Del(ctx, emailKeyPrefix+cred.Email); err != nil {
		return err
	}
	return p.store.Del(ctx, credentialKeyPrefix+userID)
}

func (p *LocalProvider) issueToken(cred credential) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   cred.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *LocalProvider) byID(ctx context.Context, id string) (credential, error) {
	cred, err := kv.GetJSON[credential](ctx, p.store, credentialKeyPrefix+id)
	if errors.Is(err, kv.ErrNotFound) {
		return credential{}, ErrUserNotFound
	}
	return cred, err
}

func (p *LocalProvider) byEmail(ctx context.Context, email string) (credential, error) {
	idx, err := kv.GetJSON[emailIndex](ctx, p.store, emailKeyPrefix+email)
	if errors.Is(err, kv.ErrNotFound) {
		return credential{}, ErrUserNotFound
	}
	if err != nil {
		return credential{}, err
	}
	return p.byID(ctx, idx.ID)
}

func (c credential) identity() Identity {
	return Identity{ID: c.ID, Email: c.Email, Name: c.Name}
}
