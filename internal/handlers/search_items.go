package handlers

import (
	"context"
	"net/http"

	"shareit/internal/models"
)

// ItemSearcher defines the interface that the service must implement.
type ItemSearcher interface {
	Search(ctx context.Context, text string) ([]models.ItemDB, error)
}

// NewSearchItemsHandler returns an HTTP handler for text search over
// available items.
// @Summary Search items
// @Description Case-insensitive substring match over name and description of available items. Blank text yields an empty list.
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param text query string true "Search text"
// @Success 200 {array} handlers.ItemResponse "Matching items"
// @Router /items/search [get]
func NewSearchItemsHandler(svc ItemSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("text")

		items, err := svc.Search(r.Context(), text)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toItemResponses(items))
	}
}
