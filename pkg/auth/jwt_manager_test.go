package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundtrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	userID := uuid.New().String()

	token, err := m.Generate(userID)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.Subject)
	require.Equal(t, "chattr", claims.Issuer)

	expiry, err := m.Expiry(token)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate(uuid.New().String())
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	require.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, err := m.Generate(uuid.New().String())
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	token, err := ExtractTokenFromHeader(req)
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	req.Header.Set("Authorization", "abc123")
	_, err = ExtractTokenFromHeader(req)
	require.Error(t, err)

	req.Header.Del("Authorization")
	_, err = ExtractTokenFromHeader(req)
	require.Error(t, err)
}
