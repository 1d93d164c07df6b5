// Package services contains server-side business logic. This file implements
// UserService, which handles signup, signin, and bearer-token verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/server/auth"
	"github.com/basharkhan/brainly/internal/server/config"
	"github.com/basharkhan/brainly/internal/server/models"
	"github.com/basharkhan/brainly/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Signup: validate input and create users
// - Signin: verify credentials and mint a bearer token
// - Verify: resolve a bearer token to a user ID
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup validates the credentials format, hashes the password, and creates
// the user. Duplicate usernames yield common.ErrDuplicateUser (enforced by
// the DB unique constraint, so concurrent identical signups cannot both win).
func (s *UserService) Signup(ctx context.Context, username, password string) (string, error) {
	if err := auth.ValidateUsername(username); err != nil {
		return "", err
	}
	if err := auth.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return "", common.ErrDuplicateUser
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}
	return u.ID, nil
}

// Signin verifies the username/password pair and, on success, issues a
// signed, expiring bearer token embedding the user's identity. An absent
// user and a hash mismatch are indistinguishable to the caller.
func (s *UserService) Signin(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// Verify resolves a bearer token to the user ID it was issued for.
// Side-effect-free.
func (s *UserService) Verify(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}
