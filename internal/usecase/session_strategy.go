package usecase

import (
	"context"
	"fmt"
	"time"

	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"
	"teide-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	StrategyDurable   = "durable"
	StrategyStateless = "stateless"

	tokenIssuer = "teide-booking"
)

// Principal is an authenticated administrator.
type Principal struct {
	Username  string
	Strategy  string
	ExpiresAt time.Time
}

// SessionStrategy issues and checks admin session tokens. Verify returns a
// nil principal for tokens the strategy does not recognise.
type SessionStrategy interface {
	Name() string
	Issue(ctx context.Context, username string, userID int64) (token string, expiresAt time.Time, err error)
	Verify(ctx context.Context, token string) (*Principal, error)
	Revoke(ctx context.Context, token string) error
}

// durableStrategy keeps one row per session in the database.
type durableStrategy struct {
	sessions repository.SessionRepository
	users    repository.AdminUserRepository
	ttl      time.Duration
	now      func() time.Time
}

func NewDurableStrategy(sessions repository.SessionRepository, users repository.AdminUserRepository, ttl time.Duration, now func() time.Time) SessionStrategy {
	return &durableStrategy{sessions: sessions, users: users, ttl: ttl, now: now}
}

func (d *durableStrategy) Name() string { return StrategyDurable }

func (d *durableStrategy) Issue(ctx context.Context, username string, userID int64) (string, time.Time, error) {
	expiresAt := d.now().Add(d.ttl)
	session := &entity.Session{
		Token:     utils.GenerateSessionToken(),
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := d.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}
	return session.Token, expiresAt, nil
}

func (d *durableStrategy) Verify(ctx context.Context, token string) (*Principal, error) {
	// durable tokens are UUIDs; anything else belongs to another strategy
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}

	session, err := d.sessions.FindValid(ctx, token, d.now())
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	user, err := d.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find session user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return &Principal{
		Username:  user.Username,
		Strategy:  StrategyDurable,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (d *durableStrategy) Revoke(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		return nil
	}
	return d.sessions.Delete(ctx, token)
}

// statelessStrategy signs tokens with the shared session secret so the admin
// can still log in when the database has no admin users.
type statelessStrategy struct {
	username string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewStatelessStrategy(username, secret string, ttl time.Duration, now func() time.Time) SessionStrategy {
	return &statelessStrategy{username: username, secret: []byte(secret), ttl: ttl, now: now}
}

func (s *statelessStrategy) Name() string { return StrategyStateless }

func (s *statelessStrategy) Issue(_ context.Context, username string, _ int64) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *statelessStrategy) Verify(_ context.Context, token string) (*Principal, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	// tampered, expired and foreign tokens are all just "not ours"
	if err != nil {
		return nil, nil
	}

	if claims.Subject != s.username || claims.IssuedAt == nil {
		return nil, nil
	}
	if s.now().Sub(claims.IssuedAt.Time) > s.ttl {
		return nil, nil
	}

	return &Principal{
		Username:  claims.Subject,
		Strategy:  StrategyStateless,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke is a no-op; clearing the cookie is all a stateless logout can do.
func (s *statelessStrategy) Revoke(context.Context, string) error { return nil }
