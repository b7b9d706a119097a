// Package services holds the business operations behind the GraphQL
// resolvers: user registration and authentication, and note CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/notesgraph/internal/common"
	"github.com/dmitrijs2005/notesgraph/internal/server/auth"
	"github.com/dmitrijs2005/notesgraph/internal/server/models"
	"github.com/dmitrijs2005/notesgraph/internal/server/repositories/repomanager"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.Tokens
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.Tokens) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
	}
}

func validateCredentials(username, email, password string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return fmt.Errorf("%w: username must not be empty", common.ErrorValidation)
	case utf8.RuneCountInString(username) > common.MaxUserNameLength:
		return fmt.Errorf("%w: username longer than %d characters", common.ErrorValidation, common.MaxUserNameLength)
	case utf8.RuneCountInString(email) > common.MaxEmailLength:
		return fmt.Errorf("%w: email longer than %d characters", common.ErrorValidation, common.MaxEmailLength)
	case password == "":
		return fmt.Errorf("%w: password must not be empty", common.ErrorValidation)
	case len(password) > common.MaxPasswordBytes:
		return fmt.Errorf("%w: password longer than %d bytes", common.ErrorValidation, common.MaxPasswordBytes)
	}
	return nil
}

// Register stores a new user with a bcrypt digest of the password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := validateCredentials(username, email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		UserName: username,
		Email:    email,
		Password: hash,
	}

	user, err = s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate checks the credentials and issues a token pair bound to the username.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, common.ErrorUnauthorized
	}

	accessToken, err := s.tokens.IssueAccessToken(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.UserName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Authorize returns the identity bound to a valid access token.
func (s *UserService) Authorize(token string) (string, error) {
	identity, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return identity, nil
}

// RefreshToken issues a new access token for a valid refresh token.
func (s *UserService) RefreshToken(refreshToken string) (string, error) {
	token, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return token, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx, limit, offset)
}

func (s *UserService) Count(ctx context.Context) (int, error) {
	return s.repomanager.Users(s.db).Count(ctx)
}
