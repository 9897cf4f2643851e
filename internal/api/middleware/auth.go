package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDHeader заголовок с проверенным идентификатором пользователя.
// Аутентификацию выполняет внешний слой (gateway), сервис доверяет заголовку.
const UserIDHeader = "X-User-ID"

// Auth извлекает идентификатор пользователя из заголовка и кладёт в контекст.
// Запросы без корректного заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "требуется аутентификация",
			})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из контекста
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
