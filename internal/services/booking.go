package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"shareit/internal/logger"
	"shareit/internal/metrics"
	"shareit/internal/models"
)

// Error variables
var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrItemUnavailable       = errors.New("item is not available for booking")
	ErrNotOwner              = errors.New("user is not the owner of the item")
	ErrAccessDenied          = errors.New("user has no access to this booking")
	ErrUnknownState          = errors.New("unknown booking state filter")
	ErrBookingAlreadyDecided = errors.New("booking has already been decided")
)

// BookingItemReader defines the item reads the booking rules need.
type BookingItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.ItemDB, error)
}

// BookingReader defines read-only operations for bookings.
type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*models.BookingDB, error)
	ListForBooker(ctx context.Context, bookerID int64, state string, now time.Time) ([]models.BookingDB, error)
	ListForOwner(ctx context.Context, ownerID int64, state string, now time.Time) ([]models.BookingDB, error)
}

// BookingWriter defines write operations for bookings.
type BookingWriter interface {
	Save(ctx context.Context, itemID, bookerID int64, start, end time.Time) (*models.BookingDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.BookingDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BookingService enforces the rental reservation lifecycle.
type BookingService struct {
	userReader  UserReader
	itemReader  BookingItemReader
	reader      BookingReader
	writer      BookingWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewBookingService creates a new BookingService. nowFn may be nil, in
// which case time.Now is used.
func NewBookingService(
	userReader UserReader,
	itemReader BookingItemReader,
	reader BookingReader,
	writer BookingWriter,
	kafkaWriter KafkaWriter,
	nowFn func() time.Time,
) *BookingService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &BookingService{
		userReader:  userReader,
		itemReader:  itemReader,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         nowFn,
	}
}

// publishEvent publishes a booking lifecycle event, fire-and-forget.
func (svc *BookingService) publishEvent(ctx context.Context, booking *models.BookingDB, operation string) {
	metrics.IncBookingEvent(operation)

	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "booking_id", booking.ID)
		return
	}

	event := models.BookingEvent{
		EventID:   uuid.NewString(),
		Timestamp: svc.now().Unix(),
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		BookerID:  booking.BookerID,
		Status:    booking.Status,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal booking event", "booking_id", booking.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish booking event", "booking_id", booking.ID, "error", err)
	} else {
		logger.Log.Infow("booking event published", "booking_id", booking.ID, "operation", operation)
	}
}

// Create places a new WAITING booking of an item for a rental period.
// The item must exist and be available, and the booker must exist.
func (svc *BookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.BookingDB, error) {
	item, err := svc.itemReader.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to load item for booking", "item_id", itemID, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !item.Available {
		return nil, ErrItemUnavailable
	}

	booker, err := svc.userReader.GetByID(ctx, bookerID)
	if err != nil {
		logger.Log.Errorw("failed to load booker", "booker_id", bookerID, "err", err)
		return nil, err
	}
	if booker == nil {
		return nil, ErrUserNotFound
	}

	booking, err := svc.writer.Save(ctx, itemID, bookerID, start, end)
	if err != nil {
		logger.Log.Errorw("failed to save booking", "item_id", itemID, "booker_id", bookerID, "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, booking, "created")

	return booking, nil
}

// Decide approves or rejects a WAITING booking. Only the owner of the
// booked item may decide, and a decision is terminal.
func (svc *BookingService) Decide(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.BookingDB, error) {
	owner, err := svc.userReader.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load deciding user", "owner_id", ownerID, "err", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrItemUnavailable
	}

	booking, err := svc.reader.GetByID(ctx, bookingID)
	if err != nil {
		logger.Log.Errorw("failed to load booking", "booking_id", bookingID, "err", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	item, err := svc.itemReader.GetByID(ctx, booking.ItemID)
	if err != nil {
		logger.Log.Errorw("failed to load booked item", "item_id", booking.ItemID, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	if booking.Status != models.StatusWaiting {
		return nil, ErrBookingAlreadyDecided
	}

	status := models.StatusRejected
	operation := "rejected"
	if approved {
		status = models.StatusApproved
		operation = "approved"
	}

	updated, err := svc.writer.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		logger.Log.Errorw("failed to update booking status", "booking_id", bookingID, "status", status, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookingNotFound
	}

	svc.publishEvent(ctx, updated, operation)

	return updated, nil
}

// Get returns a booking to its booker or to the owner of the booked item.
func (svc *BookingService) Get(ctx context.Context, userID, bookingID int64) (*models.BookingDB, error) {
	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load requesting user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	booking, err := svc.reader.GetByID(ctx, bookingID)
	if err != nil {
		logger.Log.Errorw("failed to load booking", "booking_id", bookingID, "err", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.BookerID != userID {
		item, err := svc.itemReader.GetByID(ctx, booking.ItemID)
		if err != nil {
			logger.Log.Errorw("failed to load booked item", "item_id", booking.ItemID, "err", err)
			return nil, err
		}
		if item == nil || item.OwnerID != userID {
			return nil, ErrAccessDenied
		}
	}

	return booking, nil
}

// ListForBooker returns bookings placed by a user, filtered by state.
func (svc *BookingService) ListForBooker(ctx context.Context, userID int64, state string) ([]models.BookingDB, error) {
	if !models.ValidState(state) {
		return nil, ErrUnknownState
	}

	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load booker", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return svc.reader.ListForBooker(ctx, userID, state, svc.now())
}

// ListForOwner returns bookings on items listed by a user, filtered by state.
func (svc *BookingService) ListForOwner(ctx context.Context, userID int64, state string) ([]models.BookingDB, error) {
	if !models.ValidState(state) {
		return nil, ErrUnknownState
	}

	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load owner", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return svc.reader.ListForOwner(ctx, userID, state, svc.now())
}
