package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlebedeva/libris/internal/handlers"
	"github.com/mlebedeva/libris/internal/middleware"
	"github.com/mlebedeva/libris/internal/mocks"
	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/services"
	"github.com/mlebedeva/libris/internal/token"
)

func newTestTokenService(t *testing.T) token.Service {
	t.Helper()
	svc, err := token.NewService(token.Config{
		SecretKey: "test-secret-key-with-32-plus-characters",
		Issuer:    "libris-server",
		Audience:  "libris-client",
	})
	require.NoError(t, err)
	return svc
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(mockAuthService *mocks.AuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Успешная регистрация",
			body: `{"full_name":"Иван Иванов","email":"ivan@example.com","password":"pass123","confirm_password":"pass123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Register("Иван Иванов", "ivan@example.com", "pass123", "pass123").
					Return(&models.User{ID: 1, Email: "ivan@example.com", Role: models.RoleStudent}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Регистрация успешна",
		},
		{
			name:           "Неверный формат запроса",
			body:           `{not-json`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Неверный формат запроса",
		},
		{
			name:           "Пустые обязательные поля",
			body:           `{"full_name":"","email":"","password":""}`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Имя, email и пароль не могут быть пустыми",
		},
		{
			name: "Пароли не совпадают",
			body: `{"full_name":"Иван Иванов","email":"ivan@example.com","password":"pass123","confirm_password":"other"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Register("Иван Иванов", "ivan@example.com", "pass123", "other").
					Return(nil, services.ErrPasswordMismatch).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Пароли не совпадают",
		},
		{
			name: "Email занят",
			body: `{"full_name":"Иван Иванов","email":"taken@example.com","password":"pass123","confirm_password":"pass123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Register("Иван Иванов", "taken@example.com", "pass123", "pass123").
					Return(nil, services.ErrEmailTaken).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Пользователь с таким email уже существует",
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"full_name":"Иван Иванов","email":"ivan@example.com","password":"pass123","confirm_password":"pass123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Register("Иван Иванов", "ivan@example.com", "pass123", "pass123").
					Return(nil, errors.New("some internal error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(mocks.AuthService)
			tt.mockSetup(mockAuthService)

			handler := handlers.NewAuthHandler(mockAuthService, newTestTokenService(t))
			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	user := &models.User{ID: 1, FullName: "Иван Иванов", Email: "ivan@example.com", Role: models.RoleStudent}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(mockAuthService *mocks.AuthService)
		expectedStatus int
	}{
		{
			name: "Успешный вход",
			body: `{"email":"ivan@example.com","password":"pass123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().Login("ivan@example.com", "pass123").Return(user, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Неверный формат запроса",
			body:           `{not-json`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Пустые поля",
			body:           `{"email":"","password":""}`,
			mockSetup:      func(_ *mocks.AuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Неверные учетные данные",
			body: `{"email":"ivan@example.com","password":"wrong"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Login("ivan@example.com", "wrong").
					Return(nil, services.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Внутренняя ошибка сервиса",
			body: `{"email":"ivan@example.com","password":"pass123"}`,
			mockSetup: func(mockAuthService *mocks.AuthService) {
				mockAuthService.EXPECT().
					Login("ivan@example.com", "pass123").
					Return(nil, errors.New("some internal error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(mocks.AuthService)
			tt.mockSetup(mockAuthService)

			handler := handlers.NewAuthHandler(mockAuthService, newTestTokenService(t))
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			mockAuthService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	tokens := newTestTokenService(t)
	user := &models.User{ID: 1, FullName: "Иван Иванов", Email: "ivan@example.com", Role: models.RoleStudent}

	mockAuthService := new(mocks.AuthService)
	mockAuthService.EXPECT().Login("ivan@example.com", "pass123").Return(user, nil).Once()

	handler := handlers.NewAuthHandler(mockAuthService, tokens)
	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"ivan@example.com","password":"pass123"}`))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.TokenCookieName, cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly, "Cookie должна быть недоступна из JavaScript")
	assert.True(t, cookie.Secure, "Cookie должна передаваться только по HTTPS")
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Positive(t, cookie.MaxAge)

	// Токен из cookie проходит проверку и содержит данные пользователя
	identity, err := tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, user.Role, identity.Role)
	assert.Equal(t, user.FullName, identity.FullName)

	// Тот же токен возвращается в теле ответа
	assert.Contains(t, rr.Body.String(), cookie.Value)
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := handlers.NewAuthHandler(new(mocks.AuthService), newTestTokenService(t))
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rr := httptest.NewRecorder()

	handler.Logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.TokenCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "Cookie должна немедленно истекать")
}
