package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/server/models"
	"github.com/basharkhan/brainly/internal/server/repositories/repomanager"
)

// shareTokenBytes random bytes per token; the hex form is twice as long.
const shareTokenBytes = 16

// ShareService mints, resolves, and revokes public share tokens. A token
// grants anonymous read access to its owner's full content set.
type ShareService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewShareService constructs a ShareService.
func NewShareService(db *sql.DB, m repomanager.RepositoryManager) *ShareService {
	return &ShareService{db: db, repomanager: m}
}

// EnableSharing returns the owner's share token, minting one if none exists.
// Idempotent: a second call without a disable in between returns the same
// token. A concurrent mint loses to the DB primary-key constraint and picks
// up the winner's token.
func (s *ShareService) EnableSharing(ctx context.Context, ownerID string) (string, error) {
	repo := s.repomanager.ShareLinks(s.db)

	link, err := repo.GetByUser(ctx, ownerID)
	if err == nil {
		return link.Token, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("error searching share link: %w", err)
	}

	token, err := common.MakeRandHexString(shareTokenBytes)
	if err != nil {
		return "", common.ErrInternal
	}

	err = repo.Create(ctx, &models.ShareLink{UserID: ownerID, Token: token})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			link, err := repo.GetByUser(ctx, ownerID)
			if err != nil {
				return "", fmt.Errorf("error re-reading share link: %w", err)
			}
			return link.Token, nil
		}
		return "", fmt.Errorf("error creating share link: %w", err)
	}
	return token, nil
}

// Resolve maps a share token to the owner's content set without requiring
// authentication. Unknown or revoked tokens yield common.ErrNotFound. The
// owner's identity is not part of the result.
func (s *ShareService) Resolve(ctx context.Context, token string) ([]*models.Content, error) {
	linkRepo := s.repomanager.ShareLinks(s.db)
	link, err := linkRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error resolving share link: %w", err)
	}

	contentRepo := s.repomanager.Contents(s.db)
	items, err := contentRepo.ListByUser(ctx, link.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing shared content: %w", err)
	}
	return items, nil
}

// DisableSharing revokes the owner's share link; subsequent Resolve calls
// with the old token fail with common.ErrNotFound.
func (s *ShareService) DisableSharing(ctx context.Context, ownerID string) error {
	repo := s.repomanager.ShareLinks(s.db)
	if err := repo.DeleteByUser(ctx, ownerID); err != nil {
		return fmt.Errorf("error deleting share link: %w", err)
	}
	return nil
}
