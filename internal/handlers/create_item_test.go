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

	"shareit/internal/middlewares"
	"shareit/internal/models"
	"shareit/internal/services"
)

func TestCreateItemHandler(t *testing.T) {
	tests := []struct {
		name               string
		sharerHeader       string
		requestBody        any
		setupMocks         func(svc *MockItemCreator)
		expectedStatusCode int
	}{
		{
			name:         "successful listing",
			sharerHeader: "1",
			requestBody:  CreateItemRequest{Name: "drill", Description: "cordless drill", Available: true},
			setupMocks: func(svc *MockItemCreator) {
				svc.EXPECT().Create(gomock.Any(), int64(1), "drill", "cordless drill", true, (*int64)(nil)).
					Return(&models.ItemDB{ID: 10, Name: "drill", Description: "cordless drill", Available: true, OwnerID: 1}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:         "owner does not exist",
			sharerHeader: "99",
			requestBody:  CreateItemRequest{Name: "drill", Description: "cordless drill", Available: true},
			setupMocks: func(svc *MockItemCreator) {
				svc.EXPECT().Create(gomock.Any(), int64(99), "drill", "cordless drill", true, (*int64)(nil)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "missing sharer header",
			sharerHeader:       "",
			requestBody:        CreateItemRequest{Name: "drill", Description: "cordless drill", Available: true},
			setupMocks:         func(svc *MockItemCreator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "invalid request body",
			sharerHeader:       "1",
			requestBody:        "not-json",
			setupMocks:         func(svc *MockItemCreator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockItemCreator(ctrl)
			tt.setupMocks(svc)

			r := chi.NewRouter()
			r.With(middlewares.UserIDMiddleware()).Post("/items", NewCreateItemHandler(svc))

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
			if tt.sharerHeader != "" {
				req.Header.Set(middlewares.SharerUserIDHeader, tt.sharerHeader)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedStatusCode == http.StatusCreated {
				var resp ItemResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, int64(10), resp.ID)
				assert.Equal(t, int64(1), resp.OwnerID)
			}
		})
	}
}
