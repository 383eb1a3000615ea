package services

import (
	"context"
	"errors"

	"shareit/internal/logger"
	"shareit/internal/models"
)

// Error variables
var (
	ErrRequestNotFound = errors.New("item request not found")
)

// RequestReader defines read-only operations for item requests.
type RequestReader interface {
	GetByID(ctx context.Context, id int64) (*models.RequestDB, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]models.RequestDB, error)
	ListOthers(ctx context.Context, requestorID int64) ([]models.RequestDB, error)
}

// RequestWriter defines write operations for item requests.
type RequestWriter interface {
	Save(ctx context.Context, description string, requestorID int64) (*models.RequestDB, error)
}

// RequestItemReader resolves the items listed in answer to a request.
// Satisfied by ItemService.
type RequestItemReader interface {
	GetByRequestID(ctx context.Context, requestID int64) ([]models.ItemDB, error)
}

// RequestService records broadcast requests for unlisted items and
// attaches matching items when queried.
type RequestService struct {
	userReader UserReader
	reader     RequestReader
	writer     RequestWriter
	itemReader RequestItemReader
}

// NewRequestService creates a new RequestService instance.
func NewRequestService(
	userReader UserReader,
	reader RequestReader,
	writer RequestWriter,
	itemReader RequestItemReader,
) *RequestService {
	return &RequestService{
		userReader: userReader,
		reader:     reader,
		writer:     writer,
		itemReader: itemReader,
	}
}

// Add records a new request for the given requestor.
func (svc *RequestService) Add(ctx context.Context, requestorID int64, description string) (*models.RequestDB, error) {
	requestor, err := svc.userReader.GetByID(ctx, requestorID)
	if err != nil {
		logger.Log.Errorw("failed to load requestor", "requestor_id", requestorID, "err", err)
		return nil, err
	}
	if requestor == nil {
		return nil, ErrUserNotFound
	}

	request, err := svc.writer.Save(ctx, description, requestorID)
	if err != nil {
		logger.Log.Errorw("failed to save request", "requestor_id", requestorID, "err", err)
		return nil, err
	}
	return request, nil
}

// GetMine returns the requestor's own requests, newest first, each
// enriched with the items answering it.
func (svc *RequestService) GetMine(ctx context.Context, requestorID int64) ([]models.RequestView, error) {
	requestor, err := svc.userReader.GetByID(ctx, requestorID)
	if err != nil {
		logger.Log.Errorw("failed to load requestor", "requestor_id", requestorID, "err", err)
		return nil, err
	}
	if requestor == nil {
		return nil, ErrUserNotFound
	}

	requests, err := svc.reader.ListByRequestor(ctx, requestorID)
	if err != nil {
		logger.Log.Errorw("failed to list requests", "requestor_id", requestorID, "err", err)
		return nil, err
	}

	views := make([]models.RequestView, 0, len(requests))
	for _, request := range requests {
		items, err := svc.itemReader.GetByRequestID(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.RequestView{Request: request, Items: items})
	}
	return views, nil
}

// GetOthers returns everyone else's requests, newest first, without
// item enrichment.
func (svc *RequestService) GetOthers(ctx context.Context, requestorID int64) ([]models.RequestDB, error) {
	requests, err := svc.reader.ListOthers(ctx, requestorID)
	if err != nil {
		logger.Log.Errorw("failed to list other requests", "requestor_id", requestorID, "err", err)
		return nil, err
	}
	return requests, nil
}

// GetOne returns a single request enriched with the items answering it.
func (svc *RequestService) GetOne(ctx context.Context, requestID int64) (*models.RequestView, error) {
	request, err := svc.reader.GetByID(ctx, requestID)
	if err != nil {
		logger.Log.Errorw("failed to load request", "request_id", requestID, "err", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	items, err := svc.itemReader.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	return &models.RequestView{Request: *request, Items: items}, nil
}
