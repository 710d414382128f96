package services

import (
	"context"
	"errors"
	"log"

	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService определяет интерфейс для сервиса аутентификации.
// Сервис возвращает профиль пользователя; выпуск токена сессии — обязанность
// вызывающего слоя, который компонует его с сервисом токенов.
type AuthService interface {
	Register(fullName, email, password, confirmPassword string) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo repository.UserRepository // Зависимость от репозитория пользователей
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register регистрирует нового пользователя. Новые аккаунты всегда получают
// роль студента; повышение роли — отдельное административное действие.
func (s *authService) Register(fullName, email, password, confirmPassword string) (*models.User, error) {
	ctx := context.Background() // Используем фоновый контекст для операций сервиса

	if password != confirmPassword {
		log.Printf("[AuthService] Пароли не совпадают при регистрации '%s'", email)
		return nil, ErrPasswordMismatch
	}

	// Хешируем пароль; открытый пароль не сохраняется и не логируется
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при хешировании пароля")
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleStudent,
	}

	// Создаем пользователя через репозиторий
	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Printf("[AuthService] Попытка регистрации с занятым email: %s", email)
			return nil, ErrEmailTaken // Возвращаем ошибку слоя сервиса
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при создании пользователя")
	}

	user.ID = userID
	user.PasswordHash = "" // Хеш не покидает сервис

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован с ID %d", email, userID)
	return user, nil
}

// Login аутентифицирует пользователя и возвращает его профиль.
// Несуществующий email и неверный пароль неразличимы для вызывающего,
// чтобы не раскрывать, какая из проверок не прошла.
func (s *authService) Login(email, password string) (*models.User, error) {
	ctx := context.Background()

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Попытка входа несуществующего пользователя: %s", email)
			return nil, ErrInvalidCredentials // Общая ошибка для несуществующего пользователя и неверного пароля
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске '%s': %v", email, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске пользователя")
	}

	// Сравниваем предоставленный пароль с хешем из базы данных
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", email)
		return nil, ErrInvalidCredentials // Общая ошибка
	}

	user.PasswordHash = ""

	log.Printf("[AuthService] Пользователь '%s' успешно аутентифицирован", email)
	return user, nil
}

// Кастомные ошибки сервиса аутентификации.
var (
	ErrPasswordMismatch   = errors.New("пароли не совпадают")
	ErrEmailTaken         = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)
