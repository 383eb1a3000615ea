package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"shareit/internal/logger"
	"shareit/internal/models"
)

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByItemID returns the comments on an item, newest first, with the
// author name joined in.
func (r *CommentReadRepository) GetByItemID(ctx context.Context, itemID int64) ([]models.CommentDB, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name AS author_name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created_at DESC
	`

	var comments []models.CommentDB
	err := r.db.SelectContext(ctx, &comments, query, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

func (r *CommentWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new comment and returns the stored row.
func (r *CommentWriteRepository) Save(ctx context.Context, text string, itemID, authorID int64) (*models.CommentDB, error) {
	query := `
		WITH inserted AS (
			INSERT INTO comments (text, item_id, author_id, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING id, text, item_id, author_id, created_at
		)
		SELECT i.id, i.text, i.item_id, i.author_id, u.name AS author_name, i.created_at
		FROM inserted i
		JOIN users u ON u.id = i.author_id
	`
	args := []any{text, itemID, authorID}

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &comment, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", comment,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &comment, nil
}
