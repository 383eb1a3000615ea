package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"shareit/internal/logger"
	"shareit/internal/models"
)

const itemColumns = "id, name, description, available, owner_id, request_id, created_at, updated_at"

type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// GetByID returns the item with the given id, or nil when no such row exists.
func (r *ItemReadRepository) GetByID(ctx context.Context, id int64) (*models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", item,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// GetByOwnerID returns every item listed by the given owner, oldest first.
func (r *ItemReadRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE owner_id = $1
		ORDER BY id
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, ownerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"result", len(items),
		"error", err,
	)

	return items, err
}

// SearchAvailable returns available items whose name or description
// contains text, case-insensitively.
func (r *ItemReadRepository) SearchAvailable(ctx context.Context, text string) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, text)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{text},
		"result", len(items),
		"error", err,
	)

	return items, err
}

// GetByRequestID returns the items listed in answer to an item request.
func (r *ItemReadRepository) GetByRequestID(ctx context.Context, requestID int64) ([]models.ItemDB, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE request_id = $1
		ORDER BY id
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, requestID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID},
		"result", len(items),
		"error", err,
	)

	return items, err
}

type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewItemWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

func (r *ItemWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new item and returns the stored row.
func (r *ItemWriteRepository) Save(ctx context.Context, name, description string, available bool, ownerID int64, requestID *int64) (*models.ItemDB, error) {
	query := `
		INSERT INTO items (name, description, available, owner_id, request_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + itemColumns + `
	`
	args := []any{name, description, available, ownerID, requestID}

	var item models.ItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", item,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update overwrites the mutable fields of an existing item and returns
// the stored row, or nil when the item does not exist.
func (r *ItemWriteRepository) Update(ctx context.Context, id int64, name, description string, available bool) (*models.ItemDB, error) {
	query := `
		UPDATE items
		SET name = $2, description = $3, available = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns + `
	`
	args := []any{id, name, description, available}

	var item models.ItemDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &item, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", item,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
