package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/server/models"
	"github.com/basharkhan/brainly/internal/server/repositories/repomanager"
)

// ContentService provides CRUD over content items. Every operation is scoped
// to an owner ID resolved by the access-control middleware; ownership checks
// happen in the repository queries, so a foreign item is indistinguishable
// from a missing one.
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewContentService constructs a ContentService.
func NewContentService(db *sql.DB, m repomanager.RepositoryManager) *ContentService {
	return &ContentService{db: db, repomanager: m}
}

func validateContent(content *models.Content) error {
	if !models.ValidContentType(content.Type) {
		return common.ErrInvalidInput
	}
	if strings.TrimSpace(content.Title) == "" {
		return common.ErrInvalidInput
	}
	return nil
}

// Create validates and persists a new item owned by ownerID, returning the
// generated content ID.
func (s *ContentService) Create(ctx context.Context, ownerID string, content *models.Content) (string, error) {
	if err := validateContent(content); err != nil {
		return "", err
	}

	content.ID = uuid.NewString()
	content.UserID = ownerID

	repo := s.repomanager.Contents(s.db)
	c, err := repo.Create(ctx, content)
	if err != nil {
		return "", fmt.Errorf("error creating content: %w", err)
	}
	return c.ID, nil
}

// List returns all items owned by ownerID.
func (s *ContentService) List(ctx context.Context, ownerID string) ([]*models.Content, error) {
	repo := s.repomanager.Contents(s.db)
	items, err := repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}
	return items, nil
}

// Update replaces the fields of an item owned by ownerID. A missing or
// foreign-owned contentID yields common.ErrNotFound.
func (s *ContentService) Update(ctx context.Context, ownerID, contentID string, content *models.Content) error {
	if err := validateContent(content); err != nil {
		return err
	}

	content.ID = contentID
	content.UserID = ownerID

	repo := s.repomanager.Contents(s.db)
	return repo.Update(ctx, content)
}

// Delete removes an item owned by ownerID. Deleting a missing or
// foreign-owned item yields common.ErrNotFound.
func (s *ContentService) Delete(ctx context.Context, ownerID, contentID string) error {
	repo := s.repomanager.Contents(s.db)
	return repo.Delete(ctx, ownerID, contentID)
}
