// Package contents provides the PostgreSQL-backed repository for content
// items. Ownership checks live in the queries: every mutation is scoped to
// user_id, so a foreign item behaves exactly like a missing one.
package contents

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/basharkhan/brainly/internal/common"
	"github.com/basharkhan/brainly/internal/dbx"
	"github.com/basharkhan/brainly/internal/server/models"
)

// PostgresRepository implements content storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Tags are stored as a JSONB array in one column.
func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

// Create persists a new content item owned by content.UserID.
func (r *PostgresRepository) Create(ctx context.Context, content *models.Content) (*models.Content, error) {
	tags, err := encodeTags(content.Tags)
	if err != nil {
		return nil, fmt.Errorf("tags encode error: %w", err)
	}

	query := `
		INSERT INTO contents (id, user_id, type, title, link, tags, body)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err = r.db.QueryRowContext(ctx, query,
		content.ID, content.UserID, content.Type, content.Title,
		content.Link, tags, content.Body,
	).Scan(&content.CreatedAt, &content.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return content, nil
}

// ListByUser returns all items owned by userID. No pagination.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Content, error) {
	query := `
		SELECT id, user_id, type, title, link, tags, body, created_at, updated_at
		FROM contents
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Content
	for rows.Next() {
		var item models.Content
		var tags []byte
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Type, &item.Title, &item.Link,
			&tags, &item.Body, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tags, &item.Tags); err != nil {
			return nil, fmt.Errorf("tags decode error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces the mutable fields of an item owned by content.UserID.
// A missing or foreign-owned item yields common.ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, content *models.Content) error {
	tags, err := encodeTags(content.Tags)
	if err != nil {
		return fmt.Errorf("tags encode error: %w", err)
	}

	query := `
		UPDATE contents
		SET type = $1, title = $2, link = $3, tags = $4, body = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7
	`

	res, err := r.db.ExecContext(ctx, query,
		content.Type, content.Title, content.Link, tags, content.Body,
		content.ID, content.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// Delete removes an item owned by userID. A missing or foreign-owned item
// yields common.ErrNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, userID, contentID string) error {
	query := `
		DELETE FROM contents
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, contentID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
