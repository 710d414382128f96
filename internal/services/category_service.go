package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
)

// CategoryService определяет интерфейс для сервиса категорий каталога.
type CategoryService interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(categoryID int64, name string) error
	DeleteCategory(categoryID int64) error
}

// Убедимся, что categoryService удовлетворяет интерфейсу CategoryService.
var _ CategoryService = (*categoryService)(nil)

type categoryService struct {
	categoryRepo repository.CategoryRepository // Зависимость от репозитория категорий
}

// NewCategoryService создает новый экземпляр сервиса категорий.
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// ListCategories возвращает все категории каталога.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.ListCategories(context.Background())
	if err != nil {
		log.Printf("[CategoryService] Ошибка получения списка категорий: %v", err)
		return nil, errors.New("внутренняя ошибка сервера при получении категорий")
	}
	return categories, nil
}

// CreateCategory создает новую категорию с непустым уникальным именем.
func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	ctx := context.Background()

	name = strings.TrimSpace(name)
	if name == "" {
		log.Println("[CategoryService] Отклонено создание категории с пустым именем")
		return nil, ErrEmptyCategoryName
	}

	categoryID, err := s.categoryRepo.CreateCategory(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNameTaken) {
			log.Printf("[CategoryService] Попытка создания категории с занятым именем '%s'", name)
			return nil, ErrCategoryNameTaken
		}
		log.Printf("[CategoryService] Ошибка создания категории '%s': %v", name, err)
		return nil, errors.New("внутренняя ошибка сервера при создании категории")
	}

	return &models.Category{ID: categoryID, Name: name}, nil
}

// UpdateCategory переименовывает категорию.
func (s *categoryService) UpdateCategory(categoryID int64, name string) error {
	ctx := context.Background()

	name = strings.TrimSpace(name)
	if name == "" {
		log.Printf("[CategoryService] Отклонено переименование категории %d в пустое имя", categoryID)
		return ErrEmptyCategoryName
	}

	err := s.categoryRepo.UpdateCategory(ctx, categoryID, name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrCategoryNameTaken):
		return ErrCategoryNameTaken
	default:
		log.Printf("[CategoryService] Ошибка переименования категории %d: %v", categoryID, err)
		return errors.New("внутренняя ошибка сервера при обновлении категории")
	}
}

// DeleteCategory удаляет категорию, если на нее не ссылаются книги.
func (s *categoryService) DeleteCategory(categoryID int64) error {
	err := s.categoryRepo.DeleteCategory(context.Background(), categoryID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrCategoryNotFound
	case errors.Is(err, repository.ErrCategoryInUse):
		return ErrCategoryInUse
	default:
		log.Printf("[CategoryService] Ошибка удаления категории %d: %v", categoryID, err)
		return errors.New("внутренняя ошибка сервера при удалении категории")
	}
}

// Кастомные ошибки сервиса категорий.
var (
	ErrEmptyCategoryName = errors.New("имя категории не может быть пустым")
	ErrCategoryNameTaken = errors.New("категория с таким именем уже существует")
	ErrCategoryInUse     = errors.New("категория используется книгами и не может быть удалена")
)
