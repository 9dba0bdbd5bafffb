package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/EDU-SchedulingService/internal/api/handlers"
)

type ctxKey string

// adminIDKey ключ контекста с идентификатором администратора
const adminIDKey ctxKey = "adminID"

const msgMissingAdminID = "отсутствует заголовок X-Admin-ID"

// Auth проверяет наличие заголовка X-Admin-ID и кладет его в контекст запроса
// Полноценная аутентификация - ответственность внешнего шлюза
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get("X-Admin-ID")
		if adminID == "" {
			handlers.RespondUnauthorized(w, msgMissingAdminID)
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext возвращает идентификатор администратора из контекста
func AdminIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok
}
