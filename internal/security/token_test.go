package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	mgr := NewTokenManager(testSecret, time.Hour)

	token, err := mgr.GenerateSessionToken("WMQ677027")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "WMQ677027", claims.ConfirmationCode)
	assert.Equal(t, TokenTypeSession, claims.Type)
}

func TestTokenManager_RejectsTampering(t *testing.T) {
	mgr := NewTokenManager(testSecret, time.Hour)

	token, err := mgr.GenerateSessionToken("WMQ677027")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	mgr := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := mgr.GenerateSessionToken("WMQ677027")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	mgr := NewTokenManager(testSecret, -time.Minute)

	token, err := mgr.GenerateSessionToken("WMQ677027")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
