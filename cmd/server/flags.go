package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	// Порт по умолчанию для HTTPS (непривилегированный).
	defaultServerPort = "8443"

	// Идентичность выпускаемых токенов по умолчанию.
	defaultJWTIssuer   = "libris-server"
	defaultJWTAudience = "libris-client"

	// Значения MinIO по умолчанию (из docker-compose).
	defaultMinioEndpoint = "localhost:9000"
	defaultMinioUser     = "minioadmin"
	defaultMinioPassword = "minioadmin"
	defaultMinioBucket   = "libris-covers"

	// Переменные окружения.
	envServerPort    = "SERVER_PORT"
	envTLSCertFile   = "TLS_CERT_FILE"
	envTLSKeyFile    = "TLS_KEY_FILE"
	envDatabaseDSN   = "DATABASE_DSN"
	envJWTSecretKey  = "JWT_SECRET_KEY" //nolint:gosec // Это имя переменной окружения, а не секрет
	envJWTIssuer     = "JWT_ISSUER"
	envJWTAudience   = "JWT_AUDIENCE"
	envMinioEndpoint = "MINIO_ENDPOINT"
	envMinioUser     = "MINIO_USER"
	envMinioPassword = "MINIO_PASSWORD"
	envMinioBucket   = "MINIO_BUCKET"
)

// config хранит конфигурацию сервера. Заполняется один раз на старте;
// внутри основной логики глобальных обращений к окружению нет.
type config struct {
	Port          string
	CertFile      string
	KeyFile       string
	DatabaseDSN   string
	JWTSecretKey  string
	JWTIssuer     string
	JWTAudience   string
	MinioEndpoint string
	MinioUser     string
	MinioPassword string
	MinioBucket   string
}

// envOrDefault возвращает значение переменной окружения или значение по умолчанию.
func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Отсутствие обязательных параметров — фатальная ошибка старта, а не ошибка запроса.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска HTTPS-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecretKey, "jwt-secret", "",
		fmt.Sprintf("Секретный ключ подписи токенов, не короче 32 символов (env: %s)", envJWTSecretKey))
	flag.StringVar(&cfg.JWTIssuer, "jwt-issuer", "",
		fmt.Sprintf("Издатель выпускаемых токенов (env: %s, default: %s)", envJWTIssuer, defaultJWTIssuer))
	flag.StringVar(&cfg.JWTAudience, "jwt-audience", "",
		fmt.Sprintf("Получатель выпускаемых токенов (env: %s, default: %s)", envJWTAudience, defaultJWTAudience))
	flag.StringVar(&cfg.MinioEndpoint, "minio-endpoint", "",
		fmt.Sprintf("Адрес MinIO (env: %s, default: %s)", envMinioEndpoint, defaultMinioEndpoint))
	flag.StringVar(&cfg.MinioUser, "minio-user", "",
		fmt.Sprintf("Логин MinIO (env: %s)", envMinioUser))
	flag.StringVar(&cfg.MinioPassword, "minio-password", "",
		fmt.Sprintf("Пароль MinIO (env: %s)", envMinioPassword))
	flag.StringVar(&cfg.MinioBucket, "minio-bucket", "",
		fmt.Sprintf("Имя бакета для обложек (env: %s, default: %s)", envMinioBucket, defaultMinioBucket))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		cfg.Port = envOrDefault(envServerPort, defaultServerPort)
	}
	if cfg.CertFile == "" {
		cfg.CertFile = envOrDefault(envTLSCertFile, "")
	}
	if cfg.KeyFile == "" {
		cfg.KeyFile = envOrDefault(envTLSKeyFile, "")
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = envOrDefault(envDatabaseDSN, "")
	}
	if cfg.JWTSecretKey == "" {
		cfg.JWTSecretKey = envOrDefault(envJWTSecretKey, "")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = envOrDefault(envJWTIssuer, defaultJWTIssuer)
	}
	if cfg.JWTAudience == "" {
		cfg.JWTAudience = envOrDefault(envJWTAudience, defaultJWTAudience)
	}
	if cfg.MinioEndpoint == "" {
		cfg.MinioEndpoint = envOrDefault(envMinioEndpoint, defaultMinioEndpoint)
	}
	if cfg.MinioUser == "" {
		cfg.MinioUser = envOrDefault(envMinioUser, defaultMinioUser)
	}
	if cfg.MinioPassword == "" {
		cfg.MinioPassword = envOrDefault(envMinioPassword, defaultMinioPassword)
	}
	if cfg.MinioBucket == "" {
		cfg.MinioBucket = envOrDefault(envMinioBucket, defaultMinioBucket)
	}

	// Проверяем обязательные параметры
	if cfg.CertFile == "" {
		return nil, errors.New("не указан путь к файлу сертификата (--cert-file или " + envTLSCertFile + ")")
	}
	if cfg.KeyFile == "" {
		return nil, errors.New("не указан путь к файлу ключа (--key-file или " + envTLSKeyFile + ")")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("не указан секретный ключ подписи токенов (--jwt-secret или " + envJWTSecretKey + ")")
	}

	return cfg, nil
}
