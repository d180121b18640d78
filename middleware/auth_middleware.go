package middleware

import (
	"context"
	"net/http"
	"strings"

	"a_notes_go/auth"
	"a_notes_go/pkg/log"
)

type contextKey string

// UsernameKey - ключ для хранения имени пользователя в контексте запроса.
const UsernameKey contextKey = "username"

// JWTMiddleware проверяет наличие и валидность JWT в заголовке
// Authorization. Если токен валиден, имя пользователя добавляется в
// контекст запроса.
func JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.S.Warnf("JWTMiddleware: отсутствует заголовок Authorization для %s %s", r.Method, r.URL.Path)
			http.Error(w, "Отсутствует заголовок Authorization", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.S.Warnf("JWTMiddleware: неверный формат заголовка Authorization для %s %s", r.Method, r.URL.Path)
			http.Error(w, "Неверный формат заголовка Authorization (ожидается Bearer {token})", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			log.S.Warnf("JWTMiddleware: невалидный токен для %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Невалидный токен: "+err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
