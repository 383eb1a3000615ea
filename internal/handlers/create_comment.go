package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// CommentCreator defines the interface that the service must implement.
type CommentCreator interface {
	SaveComment(ctx context.Context, authorID, itemID int64, text string) (*models.CommentDB, error)
}

// CreateCommentRequest represents the JSON body for posting a comment
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	// Comment body
	// required: true
	// default: worked great, thanks!
	Text string `json:"text"`
}

// NewCreateCommentHandler returns an HTTP handler for commenting on an
// item after a completed rental.
// @Summary Comment on an item
// @Description Requires a booking by the author on this item whose rental period has ended.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item id"
// @Param createCommentRequest body handlers.CreateCommentRequest true "Comment"
// @Success 201 {object} handlers.CommentResponse "Comment created"
// @Failure 400 {object} handlers.ErrorResponse "No completed booking for this item"
// @Router /items/{itemId}/comment [post]
func NewCreateCommentHandler(svc CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID := middlewares.GetUserIDFromContext(r.Context())

		itemID, err := pathID(r, "itemId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		comment, err := svc.SaveComment(r.Context(), authorID, itemID, req.Text)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toCommentResponse(*comment))
	}
}
