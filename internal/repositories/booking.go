package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"shareit/internal/logger"
	"shareit/internal/models"
)

const bookingColumns = "id, item_id, booker_id, start_date, end_date, status, created_at, updated_at"

type BookingReadRepository struct {
	db *sqlx.DB
}

func NewBookingReadRepository(db *sqlx.DB) *BookingReadRepository {
	return &BookingReadRepository{db: db}
}

// GetByID returns the booking with the given id, or nil when no such row exists.
func (r *BookingReadRepository) GetByID(ctx context.Context, id int64) (*models.BookingDB, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", booking,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

// Finder clauses per list filter. Bookings are always returned start
// time descending so listings stay deterministic.
const (
	bookerClauseAll     = ``
	bookerClauseStatus  = ` AND status = $2`
	bookerClausePast    = ` AND end_date < $2`
	bookerClauseCurrent = ` AND start_date <= $2 AND end_date >= $2`
	bookerClauseFuture  = ` AND start_date > $2`
)

// ListForBooker returns bookings placed by the given user, filtered by state.
func (r *BookingReadRepository) ListForBooker(ctx context.Context, bookerID int64, state string, now time.Time) ([]models.BookingDB, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booker_id = $1`

	var args []any
	query, args = applyStateFilter(query, state, now, bookerID)
	query += ` ORDER BY start_date DESC`

	var bookings []models.BookingDB
	err := r.db.SelectContext(ctx, &bookings, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}

// ListForOwner returns bookings on any item listed by the given owner,
// filtered by state.
func (r *BookingReadRepository) ListForOwner(ctx context.Context, ownerID int64, state string, now time.Time) ([]models.BookingDB, error) {
	query := `
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE i.owner_id = $1`

	var args []any
	query, args = applyOwnerStateFilter(query, state, now, ownerID)
	query += ` ORDER BY b.start_date DESC`

	var bookings []models.BookingDB
	err := r.db.SelectContext(ctx, &bookings, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}

func applyStateFilter(query, state string, now time.Time, id int64) (string, []any) {
	switch state {
	case models.StateWaiting:
		return query + bookerClauseStatus, []any{id, models.StatusWaiting}
	case models.StateRejected:
		return query + bookerClauseStatus, []any{id, models.StatusRejected}
	case models.StatePast:
		return query + bookerClausePast, []any{id, now}
	case models.StateCurrent:
		return query + bookerClauseCurrent, []any{id, now}
	case models.StateFuture:
		return query + bookerClauseFuture, []any{id, now}
	default:
		return query + bookerClauseAll, []any{id}
	}
}

func applyOwnerStateFilter(query, state string, now time.Time, id int64) (string, []any) {
	switch state {
	case models.StateWaiting:
		return query + ` AND b.status = $2`, []any{id, models.StatusWaiting}
	case models.StateRejected:
		return query + ` AND b.status = $2`, []any{id, models.StatusRejected}
	case models.StatePast:
		return query + ` AND b.end_date < $2`, []any{id, now}
	case models.StateCurrent:
		return query + ` AND b.start_date <= $2 AND b.end_date >= $2`, []any{id, now}
	case models.StateFuture:
		return query + ` AND b.start_date > $2`, []any{id, now}
	default:
		return query, []any{id}
	}
}

// ListByItemID returns every booking on an item, start time ascending.
// Used for computing the last and next booking windows of an item view.
func (r *BookingReadRepository) ListByItemID(ctx context.Context, itemID int64) ([]models.BookingDB, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE item_id = $1
		ORDER BY start_date
	`

	var bookings []models.BookingDB
	err := r.db.SelectContext(ctx, &bookings, query, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"result", len(bookings),
		"error", err,
	)

	return bookings, err
}

// GetPastByBookerAndItem returns the most recent booking by a user on an
// item whose rental period has already ended, or nil when none exists.
func (r *BookingReadRepository) GetPastByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) (*models.BookingDB, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booker_id = $1 AND item_id = $2 AND end_date < $3
		ORDER BY end_date DESC
		LIMIT 1
	`

	var booking models.BookingDB
	err := r.db.GetContext(ctx, &booking, query, bookerID, itemID, now)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookerID, itemID, now},
		"result", booking,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &booking, nil
}

type BookingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookingWriteRepository {
	return &BookingWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new booking in WAITING status and returns the stored row.
func (r *BookingWriteRepository) Save(ctx context.Context, itemID, bookerID int64, start, end time.Time) (*models.BookingDB, error) {
	query := `
		INSERT INTO bookings (item_id, booker_id, start_date, end_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + bookingColumns + `
	`
	args := []any{itemID, bookerID, start, end, models.StatusWaiting}

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &booking, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", booking,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus sets the status of an existing booking and returns the
// stored row, or nil when the booking does not exist.
func (r *BookingWriteRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.BookingDB, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns + `
	`
	args := []any{id, status}

	var booking models.BookingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &booking, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", booking,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}
