package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/mlebedeva/libris/internal/middleware"
	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/services"
	"github.com/mlebedeva/libris/internal/token"
)

// Время жизни cookie с токеном — совпадает со сроком действия самого токена.
const tokenCookieTTL = 4 * time.Hour

// AuthService определяет интерфейс для сервиса аутентификации.
// Это позволит нам легко подменять реализацию (например, для тестов).
type AuthService interface {
	Register(fullName, email, password, confirmPassword string) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
// Токен сессии выпускается здесь, композицией сервиса аутентификации
// и сервиса токенов.
type AuthHandler struct {
	service AuthService   // Зависимость от интерфейса, а не конкретной реализации
	tokens  token.Service // Сервис выпуска токенов сессии
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s AuthService, tokens token.Service) *AuthHandler {
	return &AuthHandler{service: s, tokens: tokens}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	// Валидация входных данных (простая)
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		log.Println("[AuthHandler] Пустые обязательные поля при регистрации")
		writeError(w, http.StatusBadRequest, "Имя, email и пароль не могут быть пустыми")
		return
	}

	log.Printf("[AuthHandler] Попытка регистрации пользователя: %s", req.Email)

	user, err := h.service.Register(req.FullName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			writeError(w, http.StatusBadRequest, "Пароли не совпадают")
		case errors.Is(err, services.ErrEmailTaken):
			writeError(w, http.StatusBadRequest, "Пользователь с таким email уже существует")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	log.Printf("[AuthHandler] Успешная регистрация пользователя %d (%s)", user.ID, user.Email)
	writeSuccess(w, http.StatusCreated, "Регистрация успешна")
}

// Login обрабатывает запрос на вход пользователя. При успехе выпускает токен
// сессии и кладет его в HTTP-only cookie; тело ответа также содержит токен
// для клиентов, работающих через заголовок Authorization.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if req.Email == "" || req.Password == "" {
		log.Println("[AuthHandler] Пустой email или пароль при входе")
		writeError(w, http.StatusBadRequest, "Email и пароль не могут быть пустыми")
		return
	}

	log.Printf("[AuthHandler] Попытка входа пользователя: %s", req.Email)

	user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Неверный email или пароль")
			return
		}
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	signedToken, err := h.tokens.Issue(user.ID, user.Role, user.FullName)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка выпуска токена для '%s': %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    signedToken,
		Path:     "/",
		Expires:  time.Now().Add(tokenCookieTTL),
		MaxAge:   int(tokenCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	log.Printf("[AuthHandler] Успешный вход пользователя %d (%s)", user.ID, user.Email)
	writeJSON(w, http.StatusOK, models.LoginResponse{Token: signedToken, Role: user.Role})
}

// Logout удаляет cookie с токеном сессии.
// Сам токен остается валидным до истечения срока действия (отзыв не реализован).
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	writeSuccess(w, http.StatusOK, "Выход выполнен")
}
