package sharelinks

import (
	"context"

	"github.com/basharkhan/brainly/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, link *models.ShareLink) error
	GetByUser(ctx context.Context, userID string) (*models.ShareLink, error)
	GetByToken(ctx context.Context, token string) (*models.ShareLink, error)
	DeleteByUser(ctx context.Context, userID string) error
}
