package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"shareit/internal/models"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a partial user update.
// Absent fields are left untouched.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New display name
	Name *string `json:"name"`

	// New email, unique across all users
	Email *string `json:"email"`
}

// NewUpdateUserHandler returns an HTTP handler for patching a user.
// @Summary Update a user
// @Description Applies only the fields present in the body.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /users/{userId} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "userId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		user, err := svc.Update(r.Context(), id, models.UserPatch{Name: req.Name, Email: req.Email})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(user))
	}
}
