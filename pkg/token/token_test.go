package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(ttl time.Duration) *Manager {
	return NewManager(Config{
		Secret: []byte("test-secret"),
		TTL:    ttl,
		Issuer: "token-test",
	})
}

func TestGenerateAndVerify(t *testing.T) {
	m := testManager(time.Hour)

	signed, expiresAt, err := m.Generate("uid-123", "jane@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "uid-123", claims.Subject)
	assert.Equal(t, "token-test", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, _, err := testManager(time.Hour).Generate("uid-123", "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	other := NewManager(Config{Secret: []byte("different"), TTL: time.Hour, Issuer: "token-test"})
	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := testManager(-time.Minute)

	signed, _, err := m.Generate("uid-123", "jane@example.com", "Jane Doe")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := testManager(time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL_HOURS", "")

	cfg := ConfigFromEnv("issuer")
	assert.NotEmpty(t, cfg.Secret)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
	assert.Equal(t, "issuer", cfg.Issuer)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TOKEN_TTL_HOURS", "2")

	cfg := ConfigFromEnv("issuer")
	assert.Equal(t, []byte("from-env"), cfg.Secret)
	assert.Equal(t, 2*time.Hour, cfg.TTL)
}

func TestConfigFromEnvIgnoresBadTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "zero")

	cfg := ConfigFromEnv("issuer")
	assert.Equal(t, 24*time.Hour, cfg.TTL)
}
