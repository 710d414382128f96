package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlebedeva/libris/internal/token"
)

const testSecret = "test-secret-key-with-32-plus-characters"

func testConfig() token.Config {
	return token.Config{
		SecretKey: testSecret,
		Issuer:    "libris-server",
		Audience:  "libris-client",
	}
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       token.Config
		expectErr bool
	}{
		{
			name:      "Корректная конфигурация",
			cfg:       testConfig(),
			expectErr: false,
		},
		{
			name: "Слишком короткий секретный ключ",
			cfg: token.Config{
				SecretKey: "short",
				Issuer:    "libris-server",
				Audience:  "libris-client",
			},
			expectErr: true,
		},
		{
			name: "Пустой секретный ключ",
			cfg: token.Config{
				Issuer:   "libris-server",
				Audience: "libris-client",
			},
			expectErr: true,
		},
		{
			name: "Не задан issuer",
			cfg: token.Config{
				SecretKey: testSecret,
				Audience:  "libris-client",
			},
			expectErr: true,
		},
		{
			name: "Не задан audience",
			cfg: token.Config{
				SecretKey: testSecret,
				Issuer:    "libris-server",
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := token.NewService(tt.cfg)
			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, svc)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc, err := token.NewService(testConfig())
	require.NoError(t, err)

	signed, err := svc.Issue(42, "student", "Иван Иванов")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "student", identity.Role)
	assert.Equal(t, "Иван Иванов", identity.FullName)
}

func TestIssue_UniqueTokenID(t *testing.T) {
	svc, err := token.NewService(testConfig())
	require.NoError(t, err)

	first, err := svc.Issue(1, "student", "Пользователь")
	require.NoError(t, err)
	second, err := svc.Issue(1, "student", "Пользователь")
	require.NoError(t, err)

	// jti уникален для каждой выдачи, поэтому токены различаются
	// даже для одного пользователя.
	assert.NotEqual(t, first, second)
}

// signTestToken подписывает произвольные claims тестовым секретом.
func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestVerify_InvalidTokens(t *testing.T) {
	svc, err := token.NewService(testConfig())
	require.NoError(t, err)

	otherSvc, err := token.NewService(token.Config{
		SecretKey: "another-secret-key-with-32-plus-chars",
		Issuer:    "libris-server",
		Audience:  "libris-client",
	})
	require.NoError(t, err)

	wrongIssuerSvc, err := token.NewService(token.Config{
		SecretKey: testSecret,
		Issuer:    "other-deployment",
		Audience:  "libris-client",
	})
	require.NoError(t, err)

	wrongAudienceSvc, err := token.NewService(token.Config{
		SecretKey: testSecret,
		Issuer:    "libris-server",
		Audience:  "other-client",
	})
	require.NoError(t, err)

	validClaims := func() jwt.RegisteredClaims {
		now := time.Now()
		return jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "libris-server",
			Audience:  jwt.ClaimStrings{"libris-client"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        "test-jti",
		}
	}

	tests := []struct {
		name        string
		tokenString func() string
		expectedErr error
	}{
		{
			name: "Мусор вместо токена",
			tokenString: func() string {
				return "not.a.token"
			},
			expectedErr: token.ErrInvalidToken,
		},
		{
			name: "Подпись другим ключом",
			tokenString: func() string {
				signed, issueErr := otherSvc.Issue(7, "student", "Пользователь")
				require.NoError(t, issueErr)
				return signed
			},
			expectedErr: token.ErrInvalidToken,
		},
		{
			name: "Токен другого издателя",
			tokenString: func() string {
				signed, issueErr := wrongIssuerSvc.Issue(7, "student", "Пользователь")
				require.NoError(t, issueErr)
				return signed
			},
			expectedErr: token.ErrInvalidToken,
		},
		{
			name: "Токен для другого получателя",
			tokenString: func() string {
				signed, issueErr := wrongAudienceSvc.Issue(7, "student", "Пользователь")
				require.NoError(t, issueErr)
				return signed
			},
			expectedErr: token.ErrInvalidToken,
		},
		{
			name: "Истекший токен",
			tokenString: func() string {
				claims := validClaims()
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-5 * time.Hour))
				return signTestToken(t, token.Claims{Role: "student", RegisteredClaims: claims})
			},
			expectedErr: token.ErrTokenExpired,
		},
		{
			name: "Токен без срока действия",
			tokenString: func() string {
				claims := validClaims()
				claims.ExpiresAt = nil
				return signTestToken(t, token.Claims{Role: "student", RegisteredClaims: claims})
			},
			expectedErr: token.ErrMalformedToken,
		},
		{
			name: "Токен без роли",
			tokenString: func() string {
				return signTestToken(t, token.Claims{RegisteredClaims: validClaims()})
			},
			expectedErr: token.ErrMalformedToken,
		},
		{
			name: "Токен без jti",
			tokenString: func() string {
				claims := validClaims()
				claims.ID = ""
				return signTestToken(t, token.Claims{Role: "student", RegisteredClaims: claims})
			},
			expectedErr: token.ErrMalformedToken,
		},
		{
			name: "Нечисловой subject",
			tokenString: func() string {
				claims := validClaims()
				claims.Subject = "not-a-number"
				return signTestToken(t, token.Claims{Role: "student", RegisteredClaims: claims})
			},
			expectedErr: token.ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, verifyErr := svc.Verify(tt.tokenString())
			require.Error(t, verifyErr)
			assert.ErrorIs(t, verifyErr, tt.expectedErr)
			assert.Nil(t, identity)
		})
	}
}
