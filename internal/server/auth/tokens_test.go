package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens() *Tokens {
	return NewTokens("secret", time.Minute, time.Hour)
}

func TestTokens_AccessRoundTrip(t *testing.T) {
	tk := newTokens()

	access, err := tk.IssueAccessToken("alice")
	require.NoError(t, err)

	identity, err := tk.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity)
}

func TestTokens_VerifyAccessRejectsRefresh(t *testing.T) {
	tk := newTokens()

	refresh, err := tk.IssueRefreshToken("alice")
	require.NoError(t, err)

	_, err = tk.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokens_VerifyAccessEmpty(t *testing.T) {
	_, err := newTokens().VerifyAccessToken("")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokens_VerifyAccessExpired(t *testing.T) {
	tk := NewTokens("secret", -time.Second, time.Hour)

	access, err := tk.IssueAccessToken("alice")
	require.NoError(t, err)

	_, err = tk.VerifyAccessToken(access)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestTokens_Refresh(t *testing.T) {
	tk := newTokens()

	refresh, err := tk.IssueRefreshToken("bob")
	require.NoError(t, err)

	access, err := tk.Refresh(refresh)
	require.NoError(t, err)

	identity, err := tk.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "bob", identity)
}

func TestTokens_RefreshRejectsAccessToken(t *testing.T) {
	tk := newTokens()

	access, err := tk.IssueAccessToken("bob")
	require.NoError(t, err)

	_, err = tk.Refresh(access)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokens_RefreshOtherSecret(t *testing.T) {
	refresh, err := NewTokens("a", time.Minute, time.Hour).IssueRefreshToken("bob")
	require.NoError(t, err)

	_, err = NewTokens("b", time.Minute, time.Hour).Refresh(refresh)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def", ok: true},
		{name: "lowercase scheme", header: "bearer xyz", want: "xyz", ok: true},
		{name: "extra spaces", header: "  Bearer   tok  ", want: "tok", ok: true},
		{name: "empty", header: "", ok: false},
		{name: "no token", header: "Bearer ", ok: false},
		{name: "basic", header: "Basic Zm9vOmJhcg==", ok: false},
		{name: "no scheme", header: "abc.def", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
