package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/mlebedeva/libris/internal/token"
)

// Имя cookie с токеном сессии.
const TokenCookieName = "jwt_token"

// Тип для ключа контекста.
type contextKey string

// Ключи для хранения данных сессии в контексте запроса.
const (
	UserIDKey   contextKey = "userID"
	RoleKey     contextKey = "userRole"
	FullNameKey contextKey = "userFullName"
)

// extractToken достает токен из запроса: сначала из cookie, затем из
// заголовка Authorization в формате "Bearer <token>".
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return ""
	}
	return headerParts[1]
}

// Authenticator проверяет токен сессии и кладет проверенные данные
// пользователя в контекст запроса. Причина отказа логируется, но клиенту
// все ошибки проверки возвращаются одинаково, чтобы не раскрывать, какая
// именно проверка не прошла.
func Authenticator(tokens token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				log.Println("[AuthMiddleware] Токен отсутствует в cookie и заголовке Authorization")
				http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}

			identity, err := tokens.Verify(tokenString)
			if err != nil {
				log.Printf("[AuthMiddleware] Ошибка проверки токена: %v", err)
				http.Error(w, "Невалидный токен", http.StatusUnauthorized)
				return
			}

			// Добавляем проверенные данные сессии в контекст запроса
			ctx := context.WithValue(r.Context(), UserIDKey, identity.UserID)
			ctx = context.WithValue(ctx, RoleKey, identity.Role)
			ctx = context.WithValue(ctx, FullNameKey, identity.FullName)

			log.Printf("[AuthMiddleware] Пользователь %d (%s) успешно аутентифицирован", identity.UserID, identity.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает дальше только запросы пользователей с указанной ролью.
// Применяется после Authenticator.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole, ok := GetRoleFromContext(r.Context())
			if !ok {
				log.Println("[AuthMiddleware] Роль отсутствует в контексте запроса")
				http.Error(w, "Требуется аутентификация", http.StatusUnauthorized)
				return
			}
			if userRole != role {
				userID, _ := GetUserIDFromContext(r.Context())
				log.Printf("[AuthMiddleware] Доступ запрещен: у пользователя %d роль '%s', требуется '%s'",
					userID, userRole, role)
				http.Error(w, "Доступ запрещен", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext извлекает ID пользователя из контекста запроса.
// Возвращает ID и true, если ID найден, иначе 0 и false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetRoleFromContext извлекает роль пользователя из контекста запроса.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetFullNameFromContext извлекает отображаемое имя пользователя из контекста запроса.
func GetFullNameFromContext(ctx context.Context) (string, bool) {
	fullName, ok := ctx.Value(FullNameKey).(string)
	return fullName, ok
}
