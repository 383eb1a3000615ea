package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"shareit/internal/models"
	"shareit/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockUserCreator)
		expectedStatusCode int
	}{
		{
			name:        "successful creation",
			requestBody: CreateUserRequest{Name: "alice", Email: "alice@example.com"},
			setupMocks: func(svc *MockUserCreator) {
				svc.EXPECT().Create(gomock.Any(), "alice", "alice@example.com").
					Return(&models.UserDB{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(svc *MockUserCreator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "duplicate email",
			requestBody: CreateUserRequest{Name: "eve", Email: "alice@example.com"},
			setupMocks: func(svc *MockUserCreator) {
				svc.EXPECT().Create(gomock.Any(), "eve", "alice@example.com").
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockUserCreator(ctrl)
			tt.setupMocks(svc)

			r := chi.NewRouter()
			r.Post("/users", NewCreateUserHandler(svc))

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusCreated {
				var resp UserResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "alice", resp.Name)
			}
		})
	}
}
