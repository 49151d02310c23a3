package usecase

import (
	"context"
	"testing"
	"time"

	"teide-booking/internal/data/entity"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/dto/request"
	"teide-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	svc      AuthService
	users    *fakeAdminUserRepo
	sessions *fakeSessionRepo
	clock    *fakeClock
}

func testAuthConfig() utils.AuthConfig {
	return utils.AuthConfig{
		AdminUsername: "envadmin",
		AdminPassword: "env-secret-pass",
		SessionSecret: "0123456789abcdef0123456789abcdef",
		SessionTTL:    24 * time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
}

func newAuthFixture(t *testing.T, cfg utils.AuthConfig, users ...*entity.AdminUser) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    newFakeAdminUserRepo(users...),
		sessions: newFakeSessionRepo(),
		clock:    &fakeClock{now: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)},
	}
	repo := &repository.Repository{AdminUser: f.users, Session: f.sessions}
	f.svc = NewAuthService(repo, cfg, f.clock.Now, zap.NewNop())
	return f
}

func adminUser(t *testing.T, id int64, username, password string) *entity.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.AdminUser{ID: id, Username: username, PasswordHash: hash}
}

func login(username, password string) *request.LoginRequest {
	return &request.LoginRequest{Username: username, Password: password}
}

func TestLoginDurable(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(), adminUser(t, 1, "maria", "correct horse"))

	res, err := f.svc.Login(context.Background(), login("maria", "correct horse"))
	require.NoError(t, err)
	assert.Equal(t, StrategyDurable, res.Strategy)
	assert.Equal(t, f.clock.Now().Add(24*time.Hour), res.ExpiresAt)
	_, err = uuid.Parse(res.Token)
	assert.NoError(t, err)
	assert.Len(t, f.sessions.sessions, 1)

	p, err := f.svc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, "maria", p.Username)
	assert.Equal(t, StrategyDurable, p.Strategy)
}

func TestLoginDurableRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(), adminUser(t, 1, "maria", "correct horse"))

	_, err := f.svc.Login(context.Background(), login("maria", "wrong"))
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.svc.Login(context.Background(), login("nobody", "correct horse"))
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Empty(t, f.sessions.sessions)
}

func TestEnvCredentialsIgnoredWhenAdminsExist(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(), adminUser(t, 1, "maria", "correct horse"))

	_, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginFallsBackToEnvWhenNoAdmins(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	res, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	require.NoError(t, err)
	assert.Equal(t, StrategyStateless, res.Strategy)
	assert.Empty(t, f.sessions.sessions)

	p, err := f.svc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, "envadmin", p.Username)
	assert.Equal(t, StrategyStateless, p.Strategy)

	_, err = f.svc.Login(context.Background(), login("envadmin", "nope"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginFallsBackToEnvWhenStoreFails(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(), adminUser(t, 1, "maria", "correct horse"))
	f.users.countErr = errStoreDown

	res, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	require.NoError(t, err)
	assert.Equal(t, StrategyStateless, res.Strategy)
}

func TestLoginWithoutAnyCredentialSource(t *testing.T) {
	cfg := testAuthConfig()
	cfg.SessionSecret = ""
	f := newAuthFixture(t, cfg)

	_, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginValidation(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	_, err := f.svc.Login(context.Background(), login("", ""))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatelessSessionExpires(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	res, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	require.NoError(t, err)

	f.clock.Advance(23 * time.Hour)
	_, err = f.svc.Authenticate(context.Background(), res.Token)
	assert.NoError(t, err)

	f.clock.Advance(time.Hour + time.Second)
	_, err = f.svc.Authenticate(context.Background(), res.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDurableSessionExpires(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(), adminUser(t, 1, "maria", "correct horse"))
	res, err := f.svc.Login(context.Background(), login("maria", "correct horse"))
	require.NoError(t, err)

	f.clock.Advance(24*time.Hour + time.Second)
	_, err = f.svc.Authenticate(context.Background(), res.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, f.sessions.sessions)
}

func TestAuthenticateRejectsForeignTokens(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	res, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	require.NoError(t, err)

	other := NewStatelessStrategy("envadmin", "a-different-secret", 24*time.Hour, f.clock.Now)
	forged, _, err := other.Issue(context.Background(), "envadmin", 0)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"unknown id":   uuid.NewString(),
		"tampered":     res.Token + "x",
		"wrong secret": forged,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Authenticate(context.Background(), token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestStatelessTokenTiedToConfiguredUsername(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	cfg := testAuthConfig()
	issuer := NewStatelessStrategy(cfg.AdminUsername, cfg.SessionSecret, cfg.SessionTTL, clock.Now)
	token, _, err := issuer.Issue(context.Background(), "someone-else", 0)
	require.NoError(t, err)

	p, err := issuer.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestAuthenticateFallsThroughBrokenDurableStore(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	res, err := f.svc.Login(context.Background(), login("envadmin", "env-secret-pass"))
	require.NoError(t, err)

	f.sessions.err = errStoreDown
	p, err := f.svc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, StrategyStateless, p.Strategy)

	_, err = f.svc.Authenticate(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutRevokesDurableSession(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(), adminUser(t, 1, "maria", "correct horse"))
	res, err := f.svc.Login(context.Background(), login("maria", "correct horse"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), res.Token))
	_, err = f.svc.Authenticate(context.Background(), res.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// logging out twice is harmless
	assert.NoError(t, f.svc.Logout(context.Background(), res.Token))
	assert.NoError(t, f.svc.Logout(context.Background(), ""))
}
