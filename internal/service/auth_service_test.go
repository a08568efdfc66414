package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nyaay-saathi/internal/repository"
	"nyaay-saathi/pkg/auth"
)

func newTestUserRepo(t *testing.T) repository.UserRepository {
	t.Helper()
	return repository.NewJSONUserRepository(filepath.Join(t.TempDir(), "user_db.json"), zap.NewNop())
}

func newTestAuthService(t *testing.T) (*AuthService, *auth.JWTManager) {
	t.Helper()
	jwtManager := auth.NewJWTManager("secret", 7*24*time.Hour)
	return NewAuthService(newTestUserRepo(t), jwtManager, zap.NewNop()), jwtManager
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtManager := newTestAuthService(t)

	res, err := svc.Register(ctx, "  Asha  ", " Asha@Example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", res.User.Name)
	assert.Equal(t, "asha@example.com", res.User.Email)
	assert.NotEqual(t, "secret1", res.User.Password)

	claims, err := jwtManager.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID.String(), claims.UserID)

	login, err := svc.Login(ctx, "ASHA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
	assert.Equal(t, 7*24*time.Hour, svc.TokenDuration())
}

func TestAuthService_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, "", "a@b.c", "secret1")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.EqualError(t, err, "All fields are required")

	_, err = svc.Register(ctx, "A", "a@b.c", "12345")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.EqualError(t, err, "Password must be at least 6 characters")

	_, err = svc.Register(ctx, "A", "a@b.c", "123456")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "B", "A@B.C", "654321")
	assert.Equal(t, KindConflict, KindOf(err))
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Email already registered", svcErr.Message)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)
	_, err := svc.Register(ctx, "A", "a@b.c", "123456")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.c", "wrong-password")
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@b.c", "123456")
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

func TestAuthService_EnsureDemoAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	created, err := svc.EnsureDemoAccount(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureDemoAccount(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	res, err := svc.Login(ctx, DemoEmail, "demo123")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", res.User.Name)
}
