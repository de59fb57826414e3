package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfshare/shelfshare/internal/domain/uuid"
	"github.com/shelfshare/shelfshare/internal/infrastructure/auth"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)
	userID := uuid.NewUUID()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_Issue_ZeroUser(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	_, err := svc.Issue(uuid.UUID(""))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_Verify_Failures(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)
	other := auth.NewTokenService("other-secret", time.Hour)

	valid, err := svc.Issue(uuid.NewUUID())
	require.NoError(t, err)

	expiredSvc := auth.NewTokenService("test-secret", -time.Minute)
	expired, err := expiredSvc.Issue(uuid.NewUUID())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: mustIssue(t, other)},
		{name: "expired", token: expired},
		{name: "tampered", token: valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, verifyErr := svc.Verify(tt.token)
			assert.ErrorIs(t, verifyErr, auth.ErrInvalidToken)
		})
	}
}

func TestTokenService_NoTTLTokenStaysValid(t *testing.T) {
	svc := auth.NewTokenService("test-secret", 0)
	userID := uuid.NewUUID()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func mustIssue(t *testing.T, svc *auth.TokenService) string {
	t.Helper()
	token, err := svc.Issue(uuid.NewUUID())
	require.NoError(t, err)
	return token
}
