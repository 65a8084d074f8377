package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/avelkin/SPM-BookingService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const msgUnauthorized = "требуется заголовок X-User-ID с корректным UUID"

// Auth извлекает ID пользователя из заголовка X-User-ID.
// Сама аутентификация выполняется на API gateway - сюда запрос приходит
// уже проверенным, заголовок несет только идентификатор.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
