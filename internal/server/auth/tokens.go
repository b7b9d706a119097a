// Package auth issues and verifies JWTs and hashes user passwords.
package auth

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/common"
)

// Tokens issues and verifies access/refresh token pairs signed with one secret.
type Tokens struct {
	secretKey       []byte
	accessValidity  time.Duration
	refreshValidity time.Duration
}

func NewTokens(secretKey string, accessValidity, refreshValidity time.Duration) *Tokens {
	return &Tokens{
		secretKey:       []byte(secretKey),
		accessValidity:  accessValidity,
		refreshValidity: refreshValidity,
	}
}

func (t *Tokens) IssueAccessToken(identity string) (string, error) {
	return GenerateToken(identity, TokenTypeAccess, t.secretKey, t.accessValidity)
}

func (t *Tokens) IssueRefreshToken(identity string) (string, error) {
	return GenerateToken(identity, TokenTypeRefresh, t.secretKey, t.refreshValidity)
}

// VerifyAccessToken returns the identity bound to a valid access token.
func (t *Tokens) VerifyAccessToken(token string) (string, error) {
	return t.verify(token, TokenTypeAccess)
}

// Refresh exchanges a valid refresh token for a new access token
// bound to the same identity.
func (t *Tokens) Refresh(refreshToken string) (string, error) {
	identity, err := t.verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return t.IssueAccessToken(identity)
}

func (t *Tokens) verify(token string, typ TokenType) (string, error) {
	if token == "" {
		return "", common.ErrInvalidToken
	}
	claims, err := ParseToken(token, t.secretKey)
	if err != nil {
		return "", err
	}
	if claims.Type != typ {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
