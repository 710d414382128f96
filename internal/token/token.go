package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Константы токенов сессии.
const (
	// Время жизни токена — 4 часа с момента выдачи, без допуска на рассинхронизацию часов.
	tokenTTL = 4 * time.Hour
	// Минимальная длина секретного ключа подписи.
	minSecretLength = 32
)

// Config содержит параметры подписи и проверки токенов.
// Заполняется один раз на старте сервера и передается по значению.
type Config struct {
	SecretKey string // Симметричный ключ подписи (HS256)
	Issuer    string // Идентификатор издателя токенов
	Audience  string // Идентификатор получателя токенов
}

// Claims — полезная нагрузка токена сессии.
// Subject содержит ID пользователя, ID (jti) — уникальный идентификатор токена
// на случай будущего отзыва (отзыв пока не реализован).
type Claims struct {
	Role     string `json:"role"`
	FullName string `json:"name"`
	jwt.RegisteredClaims
}

// Identity — проверенные данные сессии, единственный источник личности
// вызывающего для остальных слоев.
type Identity struct {
	UserID   int64
	Role     string
	FullName string
}

// Service определяет интерфейс сервиса токенов сессии.
type Service interface {
	Issue(userID int64, role, fullName string) (string, error)
	Verify(tokenString string) (*Identity, error)
}

// Убедимся, что service удовлетворяет интерфейсу Service.
var _ Service = (*service)(nil)

type service struct {
	cfg Config
}

// NewService создает сервис токенов. Ошибки конфигурации фатальны на старте,
// а не при обработке запросов.
func NewService(cfg Config) (Service, error) {
	if len(cfg.SecretKey) < minSecretLength {
		return nil, fmt.Errorf("секретный ключ подписи отсутствует или короче %d символов", minSecretLength)
	}
	if cfg.Issuer == "" || cfg.Audience == "" {
		return nil, errors.New("issuer и audience токенов не заданы в конфигурации")
	}
	return &service{cfg: cfg}, nil
}

// Issue создает и подписывает токен сессии для пользователя.
func (s *service) Issue(userID int64, role, fullName string) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:     role,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)), // Время истечения
			IssuedAt:  jwt.NewNumericDate(now),               // Время выдачи
			NotBefore: jwt.NewNumericDate(now),               // Время, с которого токен валиден
			ID:        uuid.NewString(),                      // jti — для будущего отзыва токенов
		},
	}

	// Создаем токен с нашими claims и методом подписи HS256
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := tok.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signedToken, nil
}

// Verify проверяет подпись, срок действия, issuer и audience токена.
// Токены, выданные для другого развертывания, отклоняются.
func (s *service) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Убеждаемся, что метод подписи - HS256
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	},
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return nil, ErrMalformedToken
		default:
			return nil, ErrInvalidToken
		}
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	// Обязательные claims должны присутствовать
	if claims.Subject == "" || claims.Role == "" || claims.ID == "" {
		return nil, ErrMalformedToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrMalformedToken
	}

	return &Identity{
		UserID:   userID,
		Role:     claims.Role,
		FullName: claims.FullName,
	}, nil
}

// Кастомные ошибки сервиса токенов.
var (
	ErrInvalidToken   = errors.New("невалидный токен")
	ErrTokenExpired   = errors.New("срок действия токена истек")
	ErrMalformedToken = errors.New("в токене отсутствуют обязательные поля")
)
