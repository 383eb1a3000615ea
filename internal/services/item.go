package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/logger"
	"shareit/internal/models"
)

// Error variables
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrNotItemOwner       = errors.New("only the owner may edit an item")
	ErrNoCompletedBooking = errors.New("no completed booking for this item")
)

// ItemReader defines read-only operations for items.
type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.ItemDB, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]models.ItemDB, error)
	SearchAvailable(ctx context.Context, text string) ([]models.ItemDB, error)
	GetByRequestID(ctx context.Context, requestID int64) ([]models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, name, description string, available bool, ownerID int64, requestID *int64) (*models.ItemDB, error)
	Update(ctx context.Context, id int64, name, description string, available bool) (*models.ItemDB, error)
}

// ItemBookingReader defines the booking reads item enrichment needs.
type ItemBookingReader interface {
	ListByItemID(ctx context.Context, itemID int64) ([]models.BookingDB, error)
	GetPastByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) (*models.BookingDB, error)
}

// CommentReader defines read-only operations for comments.
type CommentReader interface {
	GetByItemID(ctx context.Context, itemID int64) ([]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, text string, itemID, authorID int64) (*models.CommentDB, error)
}

// SearchCache caches search result sets by search text.
type SearchCache interface {
	GetSearch(ctx context.Context, text string) ([]models.ItemDB, error)
	SetSearch(ctx context.Context, text string, items []models.ItemDB) error
}

// ItemService handles item CRUD, search and display enrichment.
type ItemService struct {
	userReader    UserReader
	reader        ItemReader
	writer        ItemWriter
	bookingReader ItemBookingReader
	commentReader CommentReader
	commentWriter CommentWriter
	cache         SearchCache
	now           func() time.Time
}

// NewItemService creates a new ItemService. cache may be nil to disable
// search caching; nowFn may be nil, in which case time.Now is used.
func NewItemService(
	userReader UserReader,
	reader ItemReader,
	writer ItemWriter,
	bookingReader ItemBookingReader,
	commentReader CommentReader,
	commentWriter CommentWriter,
	cache SearchCache,
	nowFn func() time.Time,
) *ItemService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &ItemService{
		userReader:    userReader,
		reader:        reader,
		writer:        writer,
		bookingReader: bookingReader,
		commentReader: commentReader,
		commentWriter: commentWriter,
		cache:         cache,
		now:           nowFn,
	}
}

// Create lists a new item for the given owner. The owner must exist.
func (svc *ItemService) Create(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*models.ItemDB, error) {
	owner, err := svc.userReader.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load owner", "owner_id", ownerID, "err", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	item, err := svc.writer.Save(ctx, name, description, available, ownerID, requestID)
	if err != nil {
		logger.Log.Errorw("failed to save item", "owner_id", ownerID, "err", err)
		return nil, err
	}
	return item, nil
}

// Update applies the set fields of patch to an item. Only the owner may
// update, and the owner itself is immutable.
func (svc *ItemService) Update(ctx context.Context, ownerID, itemID int64, patch models.ItemPatch) (*models.ItemDB, error) {
	item, err := svc.reader.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to load item for update", "item_id", itemID, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotItemOwner
	}

	name := item.Name
	description := item.Description
	available := item.Available
	if patch.Name != nil {
		name = *patch.Name
	}
	if patch.Description != nil {
		description = *patch.Description
	}
	if patch.Available != nil {
		available = *patch.Available
	}

	updated, err := svc.writer.Update(ctx, itemID, name, description, available)
	if err != nil {
		logger.Log.Errorw("failed to update item", "item_id", itemID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}
	return updated, nil
}

// Get returns an item enriched with its comments and adjacent booking
// windows.
func (svc *ItemService) Get(ctx context.Context, requesterID, itemID int64) (*models.ItemView, error) {
	item, err := svc.reader.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to load item", "item_id", itemID, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	view, err := svc.enrich(ctx, *item)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetByOwner returns the owner's items, each enriched like Get.
func (svc *ItemService) GetByOwner(ctx context.Context, ownerID int64) ([]models.ItemView, error) {
	owner, err := svc.userReader.GetByID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load owner", "owner_id", ownerID, "err", err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	items, err := svc.reader.GetByOwnerID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to load owner items", "owner_id", ownerID, "err", err)
		return nil, err
	}

	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		view, err := svc.enrich(ctx, item)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// enrich attaches comments and the last/next booking windows to an item.
// The windows are only reported for items with more than one booking on
// file, preserving the listing display behavior.
func (svc *ItemService) enrich(ctx context.Context, item models.ItemDB) (*models.ItemView, error) {
	comments, err := svc.commentReader.GetByItemID(ctx, item.ID)
	if err != nil {
		logger.Log.Errorw("failed to load comments", "item_id", item.ID, "err", err)
		return nil, err
	}

	view := models.ItemView{
		Item:     item,
		Comments: comments,
	}

	bookings, err := svc.bookingReader.ListByItemID(ctx, item.ID)
	if err != nil {
		logger.Log.Errorw("failed to load item bookings", "item_id", item.ID, "err", err)
		return nil, err
	}

	if len(bookings) > 1 {
		now := svc.now()
		for i := range bookings {
			b := bookings[i]
			if b.End.Before(now) {
				if view.LastBooking == nil || b.End.After(view.LastBooking.End) {
					view.LastBooking = &bookings[i]
				}
			}
			if b.Start.After(now) {
				if view.NextBooking == nil || b.Start.Before(view.NextBooking.Start) {
					view.NextBooking = &bookings[i]
				}
			}
		}
	}

	return &view, nil
}

// Search returns available items matching text. Blank text yields an
// empty result without touching storage. Results are cached with a
// short TTL; cache failures fall through to the store.
func (svc *ItemService) Search(ctx context.Context, text string) ([]models.ItemDB, error) {
	if strings.TrimSpace(text) == "" {
		return []models.ItemDB{}, nil
	}

	if svc.cache != nil {
		cached, err := svc.cache.GetSearch(ctx, text)
		if err != nil {
			logger.Log.Warnw("search cache read failed", "text", text, "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	items, err := svc.reader.SearchAvailable(ctx, text)
	if err != nil {
		logger.Log.Errorw("failed to search items", "text", text, "err", err)
		return nil, err
	}
	if items == nil {
		items = []models.ItemDB{}
	}

	if svc.cache != nil {
		if err := svc.cache.SetSearch(ctx, text, items); err != nil {
			logger.Log.Warnw("search cache write failed", "text", text, "err", err)
		}
	}

	return items, nil
}

// SaveComment posts a comment on an item. The author must have a booking
// on the item whose rental period has already ended; author and item of
// the stored comment come from that booking.
func (svc *ItemService) SaveComment(ctx context.Context, authorID, itemID int64, text string) (*models.CommentDB, error) {
	booking, err := svc.bookingReader.GetPastByBookerAndItem(ctx, authorID, itemID, svc.now())
	if err != nil {
		logger.Log.Errorw("failed to look up completed booking", "author_id", authorID, "item_id", itemID, "err", err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrNoCompletedBooking
	}

	comment, err := svc.commentWriter.Save(ctx, text, booking.ItemID, booking.BookerID)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "item_id", itemID, "err", err)
		return nil, err
	}
	return comment, nil
}

// GetByRequestID returns items listed in answer to an item request.
func (svc *ItemService) GetByRequestID(ctx context.Context, requestID int64) ([]models.ItemDB, error) {
	items, err := svc.reader.GetByRequestID(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to load items for request", "request_id", requestID, "err", err)
		return nil, err
	}
	return items, nil
}
