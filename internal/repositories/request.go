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

const requestColumns = "id, description, requestor_id, created_at"

type RequestReadRepository struct {
	db *sqlx.DB
}

func NewRequestReadRepository(db *sqlx.DB) *RequestReadRepository {
	return &RequestReadRepository{db: db}
}

// GetByID returns the request with the given id, or nil when no such row exists.
func (r *RequestReadRepository) GetByID(ctx context.Context, id int64) (*models.RequestDB, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE id = $1
	`

	var request models.RequestDB
	err := r.db.GetContext(ctx, &request, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", request,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

// ListByRequestor returns the requests placed by a user, newest first.
func (r *RequestReadRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]models.RequestDB, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created_at DESC
	`

	var requests []models.RequestDB
	err := r.db.SelectContext(ctx, &requests, query, requestorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestorID},
		"result", len(requests),
		"error", err,
	)

	return requests, err
}

// ListOthers returns the requests placed by everyone except the given
// user, newest first.
func (r *RequestReadRepository) ListOthers(ctx context.Context, requestorID int64) ([]models.RequestDB, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created_at DESC
	`

	var requests []models.RequestDB
	err := r.db.SelectContext(ctx, &requests, query, requestorID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestorID},
		"result", len(requests),
		"error", err,
	)

	return requests, err
}

type RequestWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRequestWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RequestWriteRepository {
	return &RequestWriteRepository{db: db, txGetter: txGetter}
}

func (r *RequestWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new item request and returns the stored row.
func (r *RequestWriteRepository) Save(ctx context.Context, description string, requestorID int64) (*models.RequestDB, error) {
	query := `
		INSERT INTO requests (description, requestor_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING ` + requestColumns + `
	`
	args := []any{description, requestorID}

	var request models.RequestDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &request, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", request,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &request, nil
}
