package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/playgrid/facility-booking/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя
// Аутентификация и сессии живут в AuthService; сюда запрос приходит уже
// с проставленным заголовком
const UserIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth middleware, требующий заголовок X-User-ID
// Принципал кладется в контекст запроса и достается через UserIDFromContext
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(UserIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, "missing "+UserIDHeader+" header")
			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+UserIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID принципала, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}
