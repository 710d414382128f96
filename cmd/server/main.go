package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL
	"github.com/mlebedeva/libris/internal/handlers"
	appmiddleware "github.com/mlebedeva/libris/internal/middleware"
	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
	"github.com/mlebedeva/libris/internal/services"
	"github.com/mlebedeva/libris/internal/storage"
	"github.com/mlebedeva/libris/internal/token"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// Функция подключения к БД вынесена в переменную для подмены в тестах.
var newPostgresDB = repository.NewPostgresDB

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db              *sqlx.DB
	fileStorage     storage.FileStorage // Используем интерфейс
	tokens          token.Service
	authHandler     *handlers.AuthHandler
	bookHandler     *handlers.BookHandler
	categoryHandler *handlers.CategoryHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера библиотеки...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)

	// Запускаем сервер с TLS
	if err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTPS-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Сервис токенов сессии (ошибки конфигурации фатальны на старте)
	deps.tokens, err = token.NewService(token.Config{
		SecretKey: cfg.JWTSecretKey,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации сервиса токенов: %w", err)
	}

	// 2. Подключение к БД
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	// 3. Инициализация клиента MinIO для хранения обложек
	deps.fileStorage, err = storage.NewMinioClient(storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          false, // Для локальной разработки
		BucketName:      cfg.MinioBucket,
	})
	if err != nil {
		// Закрываем соединение с БД перед выходом
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 4. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	bookRepo := repository.NewPostgresBookRepository(deps.db)
	requestRepo := repository.NewPostgresBookRequestRepository(deps.db)
	categoryRepo := repository.NewPostgresCategoryRepository(deps.db)

	// 5. Создание сервисов
	authService := services.NewAuthService(userRepo)
	bookService := services.NewBookService(bookRepo, deps.fileStorage)
	requestService := services.NewBookRequestService(requestRepo)
	categoryService := services.NewCategoryService(categoryRepo)

	// 6. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService, deps.tokens)
	deps.bookHandler = handlers.NewBookHandler(bookService, requestService)
	deps.categoryHandler = handlers.NewCategoryHandler(categoryService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
// Маршруты разделены по требуемой роли: неаутентифицированные запросы
// отклоняются до вызова бизнес-логики, несовпадение роли — после проверки
// токена, но тоже до вызова.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты (регистрация, вход)
		r.Post("/register", deps.authHandler.Register)
		r.Post("/login", deps.authHandler.Login)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(deps.tokens))

			r.Post("/logout", deps.authHandler.Logout)

			// Каталог и заявки — для студентов
			r.Route("/books", func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(models.RoleStudent))

				r.Get("/paginated", deps.bookHandler.Paginated)
				r.Get("/search", deps.bookHandler.Search)
				r.Get("/new", deps.bookHandler.NewBooks)
				r.Get("/{bookID}/cover", deps.bookHandler.DownloadCover)
				r.Post("/buy", deps.bookHandler.BuyBook)
				r.Post("/rent", deps.bookHandler.RentBook)
			})

			// Управление каталогом — для администраторов
			r.Route("/admin", func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(models.RoleAdmin))

				r.Route("/books", func(r chi.Router) {
					r.Post("/", deps.bookHandler.Create)
					r.Put("/{bookID}", deps.bookHandler.Update)
					r.Delete("/{bookID}", deps.bookHandler.Delete)
					r.Post("/{bookID}/cover", deps.bookHandler.UploadCover)
				})

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", deps.categoryHandler.List)
					r.Post("/", deps.categoryHandler.Create)
					r.Put("/{categoryID}", deps.categoryHandler.Update)
					r.Delete("/{categoryID}", deps.categoryHandler.Delete)
				})
			})
		})
	})
	return r
}
