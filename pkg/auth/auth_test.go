package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("demo123")
	require.NoError(t, err)
	assert.NotEqual(t, "demo123", hash)

	assert.True(t, CheckPasswordHash("demo123", hash))
	assert.False(t, CheckPasswordHash("demo124", hash))
	assert.False(t, CheckPasswordHash("demo123", "not-a-hash"))
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, err := m.GenerateToken("u-1", "demo@nyaaysaathi.com", "Demo User")
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "demo@nyaaysaathi.com", claims.Email)
	assert.Equal(t, "Demo User", claims.Name)
	assert.Equal(t, time.Hour, m.GetTokenDuration())
}

func TestJWTManager_RejectsForeignAndExpiredTokens(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := other.GenerateToken("u-1", "a@b.c", "A")
	require.NoError(t, err)
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewJWTManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err = expired.GenerateToken("u-1", "a@b.c", "A")
	require.NoError(t, err)
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
