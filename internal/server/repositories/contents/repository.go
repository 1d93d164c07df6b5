package contents

import (
	"context"

	"github.com/basharkhan/brainly/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, content *models.Content) (*models.Content, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Content, error)
	Update(ctx context.Context, content *models.Content) error
	Delete(ctx context.Context, userID, contentID string) error
}
