package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mlebedeva/libris/internal/models"
)

// Код ошибки PostgreSQL для нарушения внешнего ключа.
const pgForeignKeyViolationCode = "23503"

// CategoryRepository определяет методы для работы с категориями каталога.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int64) (*models.Category, error)
	CreateCategory(ctx context.Context, name string) (int64, error)
	UpdateCategory(ctx context.Context, categoryID int64, name string) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// postgresCategoryRepository реализует CategoryRepository для PostgreSQL.
type postgresCategoryRepository struct {
	db *sqlx.DB
}

// NewPostgresCategoryRepository создает новый экземпляр репозитория категорий для PostgreSQL.
func NewPostgresCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

// ListCategories возвращает все категории, отсортированные по имени.
func (r *postgresCategoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	query := `SELECT id, name, created_at FROM categories ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		log.Printf("[CategoryRepo] Ошибка получения списка категорий: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение категорий: %w", err)
	}

	return categories, nil
}

// GetCategoryByID находит категорию по ее ID.
func (r *postgresCategoryRepository) GetCategoryByID(ctx context.Context, categoryID int64) (*models.Category, error) {
	var category models.Category

	err := r.db.GetContext(ctx, &category, `SELECT id, name, created_at FROM categories WHERE id=$1`, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[CategoryRepo] Категория с ID %d не найдена", categoryID)
			return nil, ErrCategoryNotFound
		}
		log.Printf("[CategoryRepo] Ошибка при поиске категории ID %d: %v", categoryID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение категории: %w", err)
	}

	return &category, nil
}

// CreateCategory создает новую категорию. Возвращает ID созданной категории.
func (r *postgresCategoryRepository) CreateCategory(ctx context.Context, name string) (int64, error) {
	var categoryID int64

	err := r.db.QueryRowxContext(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, name).Scan(&categoryID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[CategoryRepo] Ошибка создания категории: имя '%s' уже занято", name)
			return 0, ErrCategoryNameTaken
		}
		log.Printf("[CategoryRepo] Непредвиденная ошибка при создании категории '%s': %v", name, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание категории: %w", err)
	}

	log.Printf("[CategoryRepo] Категория '%s' успешно создана с ID %d", name, categoryID)
	return categoryID, nil
}

// UpdateCategory переименовывает существующую категорию.
func (r *postgresCategoryRepository) UpdateCategory(ctx context.Context, categoryID int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET name=$2 WHERE id=$1`, categoryID, name)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			log.Printf("[CategoryRepo] Ошибка обновления категории %d: имя '%s' уже занято", categoryID, name)
			return ErrCategoryNameTaken
		}
		log.Printf("[CategoryRepo] Непредвиденная ошибка при обновлении категории %d: %v", categoryID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление категории: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[CategoryRepo] Категория с ID %d не найдена для обновления", categoryID)
		return ErrCategoryNotFound
	}

	log.Printf("[CategoryRepo] Категория %d переименована в '%s'", categoryID, name)
	return nil
}

// DeleteCategory удаляет категорию по ID.
func (r *postgresCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, categoryID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			log.Printf("[CategoryRepo] Ошибка удаления категории %d: на нее ссылаются книги", categoryID)
			return ErrCategoryInUse
		}
		log.Printf("[CategoryRepo] Непредвиденная ошибка при удалении категории %d: %v", categoryID, err)
		return fmt.Errorf("ошибка выполнения запроса на удаление категории: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[CategoryRepo] Категория с ID %d не найдена для удаления", categoryID)
		return ErrCategoryNotFound
	}

	log.Printf("[CategoryRepo] Категория %d успешно удалена", categoryID)
	return nil
}

// Кастомные ошибки репозитория категорий.
var (
	ErrCategoryNotFound  = errors.New("категория не найдена")
	ErrCategoryNameTaken = errors.New("имя категории уже занято")
	ErrCategoryInUse     = errors.New("категория используется книгами")
)
