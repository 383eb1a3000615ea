package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"shareit/internal/models"
)

// Validator checks the shape of a request body before it is forwarded.
// The backend applies the business rules; the gateway only rejects
// requests that could never be valid.
type Validator func(body []byte) error

// Forwarder is implemented by Client. Split out so handlers can be
// tested without a backend.
type Forwarder interface {
	Forward(w http.ResponseWriter, r *http.Request, body []byte)
}

func writeValidationError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// NewForwardHandler relays a request without body validation.
func NewForwardHandler(client Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeValidationError(w, errors.New("failed to read request body"))
			return
		}
		client.Forward(w, r, body)
	}
}

// NewValidatedHandler relays a request after checking its body shape.
func NewValidatedHandler(client Forwarder, validate Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeValidationError(w, errors.New("failed to read request body"))
			return
		}
		if err := validate(body); err != nil {
			writeValidationError(w, err)
			return
		}
		client.Forward(w, r, body)
	}
}

// NewListBookingsHandler relays a booking listing after checking the
// state query parameter.
func NewListBookingsHandler(client Forwarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if state != "" && !models.ValidState(state) {
			writeValidationError(w, errors.New("unknown state: "+state))
			return
		}
		client.Forward(w, r, nil)
	}
}

// ValidateCreateUser requires a non-blank name and a plausible email.
func ValidateCreateUser(body []byte) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errors.New("invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name must not be blank")
	}
	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		return errors.New("email must be a valid address")
	}
	return nil
}

// ValidateCreateItem requires a non-blank name and description and an
// explicit availability flag.
func ValidateCreateItem(body []byte) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Available   *bool  `json:"available"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errors.New("invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name must not be blank")
	}
	if strings.TrimSpace(req.Description) == "" {
		return errors.New("description must not be blank")
	}
	if req.Available == nil {
		return errors.New("available must be set")
	}
	return nil
}

// NewValidateCreateBooking requires a positive item id and a rental
// period that starts in the future and ends after it starts.
func NewValidateCreateBooking(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return func(body []byte) error {
		var req struct {
			ItemID int64            `json:"itemId"`
			Start  *models.DateTime `json:"start"`
			End    *models.DateTime `json:"end"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			return errors.New("invalid request body")
		}
		if req.ItemID <= 0 {
			return errors.New("itemId must be positive")
		}
		if req.Start == nil || req.End == nil || req.Start.IsZero() || req.End.IsZero() {
			return errors.New("start and end must be set")
		}
		if !req.Start.Time.Before(req.End.Time) {
			return errors.New("start must be before end")
		}
		if req.Start.Time.Before(now()) {
			return errors.New("start must not be in the past")
		}
		return nil
	}
}

// ValidateCreateComment requires a non-blank text.
func ValidateCreateComment(body []byte) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errors.New("invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return errors.New("text must not be blank")
	}
	return nil
}

// ValidateCreateRequest requires a non-blank description.
func ValidateCreateRequest(body []byte) error {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errors.New("invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return errors.New("description must not be blank")
	}
	return nil
}
