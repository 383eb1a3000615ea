package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"shareit/internal/logger"
)

// SharerUserIDHeader carries the acting user on every item, booking and
// request endpoint. There is no session mechanism beyond this trusted
// header.
const SharerUserIDHeader = "X-Sharer-User-Id"

type userIDContextKey struct{}

var userIDKey = userIDContextKey{}

// UserIDMiddleware extracts the acting user from the X-Sharer-User-Id
// header and stores it in the request context. Requests without a
// parseable positive id are rejected.
func UserIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(SharerUserIDHeader)

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Log.Errorw("missing or invalid user header", "value", raw)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "missing or invalid " + SharerUserIDHeader + " header",
				})
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the acting user stored by
// UserIDMiddleware, or 0 when absent.
func GetUserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
