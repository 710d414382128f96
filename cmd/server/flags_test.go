package main

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Вспомогательная функция для сброса флагов между тестами.
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	// Сохраняем оригинальные аргументы командной строки
	originalArgs := os.Args

	// Сохраняем и очищаем переменные окружения
	managedEnv := []string{
		envServerPort, envTLSCertFile, envTLSKeyFile, envDatabaseDSN,
		envJWTSecretKey, envJWTIssuer, envJWTAudience,
		envMinioEndpoint, envMinioUser, envMinioPassword, envMinioBucket,
	}
	originalEnv := map[string]string{}
	for _, key := range managedEnv {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		for k, v := range originalEnv {
			os.Setenv(k, v)
		}
	}()

	requiredArgs := []string{
		"-cert-file=cert.pem",
		"-key-file=key.pem",
		"-database-dsn=postgres://...",
		"-jwt-secret=flag-secret",
	}

	t.Run("Все параметры из флагов", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Args = append([]string{"cmd", "-port=8080"}, requiredArgs...)
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "cert.pem", cfg.CertFile)
		assert.Equal(t, "key.pem", cfg.KeyFile)
		assert.Equal(t, "postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "flag-secret", cfg.JWTSecretKey)
	})

	t.Run("Все параметры из переменных окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd"}

		os.Setenv(envServerPort, "9090")
		os.Setenv(envTLSCertFile, "env_cert.pem")
		os.Setenv(envTLSKeyFile, "env_key.pem")
		os.Setenv(envDatabaseDSN, "env_postgres://...")
		os.Setenv(envJWTSecretKey, "env-secret")
		defer func() {
			os.Unsetenv(envServerPort)
			os.Unsetenv(envTLSCertFile)
			os.Unsetenv(envTLSKeyFile)
			os.Unsetenv(envDatabaseDSN)
			os.Unsetenv(envJWTSecretKey)
		}()

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "env_cert.pem", cfg.CertFile)
		assert.Equal(t, "env_key.pem", cfg.KeyFile)
		assert.Equal(t, "env_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "env-secret", cfg.JWTSecretKey)
	})

	t.Run("Значения по умолчанию", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = append([]string{"cmd"}, requiredArgs...)

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, defaultServerPort, cfg.Port)
		assert.Equal(t, defaultJWTIssuer, cfg.JWTIssuer)
		assert.Equal(t, defaultJWTAudience, cfg.JWTAudience)
		assert.Equal(t, defaultMinioEndpoint, cfg.MinioEndpoint)
		assert.Equal(t, defaultMinioBucket, cfg.MinioBucket)
	})

	t.Run("Отсутствует обязательный параметр cert-file", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-key-file=key.pem", "-database-dsn=postgres://...", "-jwt-secret=flag-secret"}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указан путь к файлу сертификата")
	})

	t.Run("Отсутствует обязательный параметр key-file", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-cert-file=cert.pem", "-database-dsn=postgres://...", "-jwt-secret=flag-secret"}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указан путь к файлу ключа")
	})

	t.Run("Отсутствует обязательный параметр database-dsn", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-cert-file=cert.pem", "-key-file=key.pem", "-jwt-secret=flag-secret"}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указана строка подключения к БД")
	})

	t.Run("Отсутствует обязательный параметр jwt-secret", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd", "-cert-file=cert.pem", "-key-file=key.pem", "-database-dsn=postgres://..."}

		_, err := parseFlags()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "не указан секретный ключ подписи токенов")
	})

	t.Run("Флаги переопределяют переменные окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Setenv(envServerPort, "9090")
		os.Setenv(envTLSCertFile, "env_cert.pem")
		os.Setenv(envTLSKeyFile, "env_key.pem")
		os.Setenv(envDatabaseDSN, "env_postgres://...")
		os.Setenv(envJWTSecretKey, "env-secret")
		defer func() {
			os.Unsetenv(envServerPort)
			os.Unsetenv(envTLSCertFile)
			os.Unsetenv(envTLSKeyFile)
			os.Unsetenv(envDatabaseDSN)
			os.Unsetenv(envJWTSecretKey)
		}()

		os.Args = []string{
			"cmd",
			"-port=8080",
			"-cert-file=flag_cert.pem",
			"-key-file=flag_key.pem",
			"-database-dsn=flag_postgres://...",
			"-jwt-secret=flag-secret",
		}
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "flag_cert.pem", cfg.CertFile)
		assert.Equal(t, "flag_key.pem", cfg.KeyFile)
		assert.Equal(t, "flag_postgres://...", cfg.DatabaseDSN)
		assert.Equal(t, "flag-secret", cfg.JWTSecretKey)
	})
}

func TestEnvOrDefault(t *testing.T) {
	key := "TEST_ENV_VAR"
	fallback := "default_value"

	t.Run("Переменная окружения установлена", func(t *testing.T) {
		os.Setenv(key, "test_value")
		defer os.Unsetenv(key)

		assert.Equal(t, "test_value", envOrDefault(key, fallback))
	})

	t.Run("Переменная окружения не установлена", func(t *testing.T) {
		os.Unsetenv(key)
		assert.Equal(t, fallback, envOrDefault(key, fallback))
	})
}
