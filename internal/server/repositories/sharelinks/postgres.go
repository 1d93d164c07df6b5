// Package sharelinks provides the PostgreSQL-backed repository for share
// tokens. user_id is the primary key, so concurrent mints for one user
// collapse into a unique violation instead of two tokens.
package sharelinks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/dbx"
	"github.com/basharkhan/brainly/internal/server/models"
)

const pgUniqueViolation = "23505"

// PostgresRepository implements share-link storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the token→owner mapping. A mapping already existing for
// the owner (or a token collision) surfaces as common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, link *models.ShareLink) error {
	query := `
		INSERT INTO share_links (user_id, token)
		VALUES ($1, $2)
	`

	if _, err := r.db.ExecContext(ctx, query, link.UserID, link.Token); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByUser returns the owner's share link, or common.ErrNotFound when
// sharing is disabled.
func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*models.ShareLink, error) {
	query := `
		SELECT user_id, token, created_at FROM share_links
		WHERE user_id = $1
	`
	return r.getOne(ctx, query, userID)
}

// GetByToken resolves a token to its mapping, or common.ErrNotFound when the
// token is unknown or revoked.
func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	query := `
		SELECT user_id, token, created_at FROM share_links
		WHERE token = $1
	`
	return r.getOne(ctx, query, token)
}

// DeleteByUser revokes sharing for userID. Revoking an absent mapping is a
// no-op: the observable state is identical either way.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := `
		DELETE FROM share_links
		WHERE user_id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.ShareLink, error) {
	link := &models.ShareLink{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&link.UserID, &link.Token, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return link, nil
}
