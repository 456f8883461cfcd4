package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credtrack/internal/apperror"
	"credtrack/internal/model"
)

func TestGate_IssueAndAuthenticate(t *testing.T) {
	gate := NewGate("test-secret", 8*time.Hour)

	token, err := gate.Issue("acct-1", model.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := gate.Authenticate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", id.AccountID)
	assert.Equal(t, model.RoleAdmin, id.Role)
}

func TestGate_Authenticate_MissingToken(t *testing.T) {
	gate := NewGate("test-secret", 8*time.Hour)

	_, err := gate.Authenticate("")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthenticated))
}

func TestGate_Authenticate_Garbled(t *testing.T) {
	gate := NewGate("test-secret", 8*time.Hour)

	_, err := gate.Authenticate("Bearer not-a-token")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidSession))
}

func TestGate_Authenticate_WrongKey(t *testing.T) {
	issuer := NewGate("secret-a", 8*time.Hour)
	verifier := NewGate("secret-b", 8*time.Hour)

	token, err := issuer.Issue("acct-1", model.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Authenticate("Bearer " + token)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidSession))
}

func TestGate_Authenticate_Expired(t *testing.T) {
	gate := NewGate("test-secret", -time.Minute)

	token, err := gate.Issue("acct-1", model.RoleUser)
	require.NoError(t, err)

	_, err = gate.Authenticate("Bearer " + token)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidSession))
	assert.Contains(t, err.Error(), "expired")
}

func TestGate_Authorize(t *testing.T) {
	gate := NewGate("test-secret", 8*time.Hour)

	err := gate.Authorize(Identity{AccountID: "a", Role: model.RoleUser}, model.RoleAdmin)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))

	assert.NoError(t, gate.Authorize(Identity{AccountID: "a", Role: model.RoleAdmin}, model.RoleAdmin))
}
