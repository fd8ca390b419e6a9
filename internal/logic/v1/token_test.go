package v1

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), user.ID, time.Hour)
	require.NoError(t, err)
	assert.Len(t, token, 64, "32 random bytes hex-encoded")

	identity, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, "John Doe", identity.Name)
	assert.Equal(t, "john@example.com", identity.Email)
}

func TestTokenService_StoresOnlyHash(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), user.ID, time.Hour)
	require.NoError(t, err)

	_, plaintextStored := sessions.sessions[token]
	assert.False(t, plaintextStored, "plaintext token must never be persisted")
	_, hashStored := sessions.sessions[hashToken(token)]
	assert.True(t, hashStored)
}

func TestTokenService_Verify_UnknownToken(t *testing.T) {
	users := newMemUserRepo()
	svc := NewTokenService(newMemSessionRepo(users))

	_, err := svc.Verify(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	past := time.Now().Add(-time.Minute)
	require.NoError(t, sessions.Create(context.Background(), user.ID, hashToken("stale"), &past))

	_, err = svc.Verify(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_Verify_NotYetExpired(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	soon := time.Now().Add(time.Minute)
	require.NoError(t, sessions.Create(context.Background(), user.ID, hashToken("fresh"), &soon))

	identity, err := svc.Verify(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
}

func TestTokenService_Issue_NoTTLMeansNoExpiry(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), user.ID, 0)
	require.NoError(t, err)

	sess := sessions.sessions[hashToken(token)]
	assert.Nil(t, sess.expiresAt)

	_, err = svc.Verify(context.Background(), token)
	assert.NoError(t, err)
}

func TestTokenService_ConcurrentSessions(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	first, err := svc.Issue(context.Background(), user.ID, time.Hour)
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), user.ID, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Issuing a second token must not revoke the first.
	_, err = svc.Verify(context.Background(), first)
	assert.NoError(t, err)
	_, err = svc.Verify(context.Background(), second)
	assert.NoError(t, err)
}

func TestTokenService_Verify_DeletedUser(t *testing.T) {
	users := newMemUserRepo()
	sessions := newMemSessionRepo(users)
	svc := NewTokenService(sessions)

	user, err := users.Create(context.Background(), "John Doe", "john@example.com", "hash")
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), user.ID, time.Hour)
	require.NoError(t, err)

	_, err = users.SoftDelete(context.Background(), user.ID)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
