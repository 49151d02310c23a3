package usecase

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"sync"
	"time"

	"teide-booking/internal/data/repository"
	"teide-booking/internal/dto/request"
	"teide-booking/internal/metrics"
	"teide-booking/pkg/utils"

	"go.uber.org/zap"
)

// LoginResult carries the session token the transport puts in the cookie.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Strategy  string
}

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*LoginResult, error)
	// Authenticate returns ErrUnauthorized when no strategy accepts token.
	Authenticate(ctx context.Context, token string) (*Principal, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.AdminUserRepository
	durable  SessionStrategy
	fallback SessionStrategy // nil when env credentials are incomplete
	auth     utils.AuthConfig
	log      *zap.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo *repository.Repository, auth utils.AuthConfig, now func() time.Time, log *zap.Logger) AuthService {
	if now == nil {
		now = time.Now
	}

	s := &authService{
		users:   repo.AdminUser,
		durable: NewDurableStrategy(repo.Session, repo.AdminUser, auth.SessionTTL, now),
		auth:    auth,
		log:     log.With(zap.String("service", "auth")),
	}
	if auth.HasEnvAdmin() {
		s.fallback = NewStatelessStrategy(auth.AdminUsername, auth.SessionSecret, auth.SessionTTL, now)
	}
	return s
}

// strategies in verification order
func (s *authService) strategies() []SessionStrategy {
	if s.fallback == nil {
		return []SessionStrategy{s.durable}
	}
	return []SessionStrategy{s.durable, s.fallback}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*LoginResult, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	// Durable store first; when it has admins it is the only authority
	count, err := s.users.Count(ctx)
	if err != nil {
		s.log.Warn("Admin store unavailable, trying env credentials", zap.Error(err))
	}
	if err == nil && count > 0 {
		return s.loginDurable(ctx, req)
	}

	if s.fallback == nil || !s.envCredentialsMatch(req) {
		metrics.AdminLogins.WithLabelValues("failure", StrategyStateless).Inc()
		s.log.Warn("Admin login rejected", zap.String("username", req.Username))
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.fallback.Issue(ctx, req.Username, 0)
	if err != nil {
		s.log.Error("Failed to issue stateless session", zap.Error(err))
		return nil, internal("issue session", err)
	}

	metrics.AdminLogins.WithLabelValues("success", StrategyStateless).Inc()
	s.log.Info("Admin logged in", zap.String("username", req.Username), zap.String("strategy", StrategyStateless))

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Strategy: StrategyStateless}, nil
}

func (s *authService) loginDurable(ctx context.Context, req *request.LoginRequest) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find admin user", zap.Error(err), zap.String("username", req.Username))
		return nil, internal("find admin user", err)
	}

	// compare against a throwaway hash for unknown users so timing does not
	// reveal which usernames exist
	hash := s.dummyPasswordHash()
	if user != nil {
		hash = user.PasswordHash
	}
	if !utils.CheckPasswordHash(req.Password, hash) || user == nil {
		metrics.AdminLogins.WithLabelValues("failure", StrategyDurable).Inc()
		s.log.Warn("Admin login rejected", zap.String("username", req.Username))
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.durable.Issue(ctx, user.Username, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, internal("issue session", err)
	}

	metrics.AdminLogins.WithLabelValues("success", StrategyDurable).Inc()
	s.log.Info("Admin logged in", zap.String("username", user.Username), zap.String("strategy", StrategyDurable))

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Strategy: StrategyDurable}, nil
}

func (s *authService) envCredentialsMatch(req *request.LoginRequest) bool {
	// hashing first keeps the comparison length independent
	userSum := sha256.Sum256([]byte(req.Username))
	wantUser := sha256.Sum256([]byte(s.auth.AdminUsername))
	passSum := sha256.Sum256([]byte(req.Password))
	wantPass := sha256.Sum256([]byte(s.auth.AdminPassword))

	userOK := subtle.ConstantTimeCompare(userSum[:], wantUser[:])
	passOK := subtle.ConstantTimeCompare(passSum[:], wantPass[:])
	return userOK&passOK == 1
}

func (s *authService) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := utils.HashPassword("teide-booking-dummy", s.auth.BcryptCost)
		if err != nil {
			s.log.Warn("Failed to build dummy hash", zap.Error(err))
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *authService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	for _, strategy := range s.strategies() {
		principal, err := strategy.Verify(ctx, token)
		if err != nil {
			// a broken durable store must not lock out the fallback
			s.log.Warn("Session verification failed",
				zap.Error(err),
				zap.String("strategy", strategy.Name()),
				zap.String("token", utils.MaskToken(token)),
			)
			continue
		}
		if principal != nil {
			return principal, nil
		}
	}

	return nil, ErrUnauthorized
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	var firstErr error
	for _, strategy := range s.strategies() {
		if err := strategy.Revoke(ctx, token); err != nil {
			s.log.Error("Failed to revoke session",
				zap.Error(err),
				zap.String("strategy", strategy.Name()),
				zap.String("token", utils.MaskToken(token)),
			)
			if firstErr == nil {
				firstErr = internal("revoke session", err)
			}
		}
	}

	if firstErr == nil {
		s.log.Info("Admin logged out", zap.String("token", utils.MaskToken(token)))
	}
	return firstErr
}
