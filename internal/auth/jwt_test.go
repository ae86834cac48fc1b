package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucoportal/internal/model"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", "ucoportal", time.Hour, 24*time.Hour)

	access, err := m.IssueAccess("USR20250101ABCD1234", model.RoleAdmin)
	require.NoError(t, err)

	claims, err := m.Verify(access, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "USR20250101ABCD1234", claims.Subject)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_VerifyWrongType(t *testing.T) {
	m := NewTokenManager("test-secret", "ucoportal", time.Hour, 24*time.Hour)

	refresh, err := m.IssueRefresh("USR1", model.RoleFBO)
	require.NoError(t, err)

	_, err = m.Verify(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestTokenManager_VerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret", "ucoportal", -time.Minute, 24*time.Hour)

	access, err := m.IssueAccess("USR1", model.RoleFBO)
	require.NoError(t, err)

	_, err = m.Verify(access, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_VerifyWrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret", "ucoportal", time.Hour, 24*time.Hour)
	other := NewTokenManager("other-secret", "ucoportal", time.Hour, 24*time.Hour)

	access, err := m.IssueAccess("USR1", model.RoleFBO)
	require.NoError(t, err)

	_, err = other.Verify(access, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
