package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"shareit/internal/logger"
	"shareit/internal/models"
	"shareit/internal/services"
)

// ErrorResponse is the JSON body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: item not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotOwner),
		errors.Is(err, services.ErrNotItemOwner),
		errors.Is(err, services.ErrAccessDenied):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrUnknownState),
		errors.Is(err, services.ErrBookingAlreadyDecided),
		errors.Is(err, services.ErrNoCompletedBooking):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrEmailAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// pathID parses a numeric chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// UserResponse is the wire shape of a user
// swagger:model UserResponse
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *models.UserDB) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// CommentResponse is the wire shape of a comment
// swagger:model CommentResponse
type CommentResponse struct {
	ID         int64           `json:"id"`
	Text       string          `json:"text"`
	AuthorName string          `json:"authorName"`
	Created    models.DateTime `json:"created"`
}

func toCommentResponse(c models.CommentDB) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    models.NewDateTime(c.CreatedAt),
	}
}

// BookingResponse is the wire shape of a booking
// swagger:model BookingResponse
type BookingResponse struct {
	ID       int64           `json:"id"`
	ItemID   int64           `json:"itemId"`
	BookerID int64           `json:"bookerId"`
	Start    models.DateTime `json:"start"`
	End      models.DateTime `json:"end"`
	Status   string          `json:"status"`
}

func toBookingResponse(b *models.BookingDB) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		Start:    models.NewDateTime(b.Start),
		End:      models.NewDateTime(b.End),
		Status:   b.Status,
	}
}

func toBookingResponses(bookings []models.BookingDB) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

// ItemResponse is the wire shape of an item
// swagger:model ItemResponse
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func toItemResponse(i *models.ItemDB) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func toItemResponses(items []models.ItemDB) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out
}

// ItemViewResponse is an item enriched with comments and the adjacent
// booking windows
// swagger:model ItemViewResponse
type ItemViewResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	OwnerID     int64             `json:"ownerId"`
	RequestID   *int64            `json:"requestId,omitempty"`
	Comments    []CommentResponse `json:"comments"`
	LastBooking *BookingResponse  `json:"lastBooking,omitempty"`
	NextBooking *BookingResponse  `json:"nextBooking,omitempty"`
}

func toItemViewResponse(v *models.ItemView) ItemViewResponse {
	resp := ItemViewResponse{
		ID:          v.Item.ID,
		Name:        v.Item.Name,
		Description: v.Item.Description,
		Available:   v.Item.Available,
		OwnerID:     v.Item.OwnerID,
		RequestID:   v.Item.RequestID,
		Comments:    make([]CommentResponse, 0, len(v.Comments)),
	}
	for _, c := range v.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	if v.LastBooking != nil {
		b := toBookingResponse(v.LastBooking)
		resp.LastBooking = &b
	}
	if v.NextBooking != nil {
		b := toBookingResponse(v.NextBooking)
		resp.NextBooking = &b
	}
	return resp
}

// RequestResponse is the wire shape of an item request
// swagger:model RequestResponse
type RequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Created     models.DateTime `json:"created"`
	Items       []ItemResponse  `json:"items,omitempty"`
}

func toRequestResponse(r *models.RequestDB) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     models.NewDateTime(r.CreatedAt),
	}
}

func toRequestViewResponse(v *models.RequestView) RequestResponse {
	resp := toRequestResponse(&v.Request)
	resp.Items = toItemResponses(v.Items)
	if resp.Items == nil {
		resp.Items = []ItemResponse{}
	}
	return resp
}
