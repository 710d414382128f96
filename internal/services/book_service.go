package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
	"github.com/mlebedeva/libris/internal/storage"
)

// Границы пагинации каталога. Размер страницы ограничен сверху независимо
// от того, что прислал клиент.
const (
	defaultPageSize = 6
	maxPageSize     = 10
)

// BookService определяет интерфейс для сервиса каталога:
// читающий путь (список, поиск, новинки) и административное редактирование.
type BookService interface {
	GetPaginatedBooks(page, pageSize int) (*models.PaginatedBooks, error)
	SearchBooks(term string, page, pageSize int) (*models.PaginatedBooks, error)
	GetNewBooks() ([]models.Book, error)
	GetBookByID(bookID int64) (*models.Book, error)
	CreateBook(req *models.SaveBookRequest) (*models.Book, error)
	UpdateBook(bookID int64, req *models.SaveBookRequest) error
	DeleteBook(bookID int64) error
	UploadCover(bookID int64, reader io.Reader, size int64, contentType string) error
	GetCover(bookID int64) (io.ReadCloser, error)
}

// Убедимся, что bookService удовлетворяет интерфейсу BookService.
var _ BookService = (*bookService)(nil)

type bookService struct {
	bookRepo    repository.BookRepository // Зависимость от репозитория каталога
	fileStorage storage.FileStorage       // Хранилище обложек
}

// NewBookService создает новый экземпляр сервиса каталога.
func NewBookService(bookRepo repository.BookRepository, fileStorage storage.FileStorage) BookService {
	return &bookService{bookRepo: bookRepo, fileStorage: fileStorage}
}

// normalizePaging приводит параметры пагинации к допустимым значениям:
// страница 0 становится первой, размер страницы зажимается в [1, 10]
// со значением по умолчанию 6.
func normalizePaging(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// makePaginated собирает страницу каталога с метаданными пагинации.
func makePaginated(books []models.Book, page, pageSize, total int) *models.PaginatedBooks {
	totalPages := (total + pageSize - 1) / pageSize
	return &models.PaginatedBooks{
		Items:       books,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalCount:  total,
	}
}

// GetPaginatedBooks возвращает страницу каталога, отсортированную по названию.
func (s *bookService) GetPaginatedBooks(page, pageSize int) (*models.PaginatedBooks, error) {
	ctx := context.Background()
	page, pageSize = normalizePaging(page, pageSize)

	books, total, err := s.bookRepo.ListBooks(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		log.Printf("[BookService] Ошибка получения страницы %d каталога: %v", page, err)
		return nil, errors.New("внутренняя ошибка сервера при получении каталога")
	}

	return makePaginated(books, page, pageSize, total), nil
}

// SearchBooks возвращает страницу результатов поиска по названию, автору,
// ISBN, издателю и названию категории. Пустой запрос эквивалентен списку.
func (s *bookService) SearchBooks(term string, page, pageSize int) (*models.PaginatedBooks, error) {
	if strings.TrimSpace(term) == "" {
		return s.GetPaginatedBooks(page, pageSize)
	}

	ctx := context.Background()
	page, pageSize = normalizePaging(page, pageSize)

	books, total, err := s.bookRepo.SearchBooks(ctx, term, pageSize, (page-1)*pageSize)
	if err != nil {
		log.Printf("[BookService] Ошибка поиска '%s': %v", term, err)
		return nil, errors.New("внутренняя ошибка сервера при поиске книг")
	}

	return makePaginated(books, page, pageSize, total), nil
}

// GetNewBooks возвращает последние добавленные книги для полки новинок.
func (s *bookService) GetNewBooks() ([]models.Book, error) {
	books, err := s.bookRepo.GetNewBooks(context.Background())
	if err != nil {
		log.Printf("[BookService] Ошибка получения новинок: %v", err)
		return nil, errors.New("внутренняя ошибка сервера при получении новинок")
	}
	return books, nil
}

// GetBookByID возвращает книгу по ее ID.
func (s *bookService) GetBookByID(bookID int64) (*models.Book, error) {
	book, err := s.bookRepo.GetBookByID(context.Background(), bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		log.Printf("[BookService] Ошибка получения книги %d: %v", bookID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении книги")
	}
	return book, nil
}

// validateBook проверяет поля книги перед записью в каталог.
func validateBook(req *models.SaveBookRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Author) == "" {
		return ErrInvalidBookData
	}
	if req.Quantity < 0 || req.Price < 0 {
		return ErrInvalidBookData
	}
	return nil
}

// CreateBook добавляет новую книгу в каталог.
func (s *bookService) CreateBook(req *models.SaveBookRequest) (*models.Book, error) {
	ctx := context.Background()

	if err := validateBook(req); err != nil {
		log.Printf("[BookService] Отклонено создание книги '%s': некорректные данные", req.Name)
		return nil, err
	}

	book := &models.Book{
		Name:            req.Name,
		Author:          req.Author,
		Publisher:       req.Publisher,
		ISBN:            req.ISBN,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		PublicationDate: req.PublicationDate,
		Quantity:        req.Quantity,
	}

	bookID, err := s.bookRepo.CreateBook(ctx, book)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		log.Printf("[BookService] Ошибка создания книги '%s': %v", req.Name, err)
		return nil, errors.New("внутренняя ошибка сервера при создании книги")
	}

	book.ID = bookID
	return book, nil
}

// UpdateBook обновляет книгу каталога. Это же путь пополнения запаса:
// администратор задает новое количество напрямую.
func (s *bookService) UpdateBook(bookID int64, req *models.SaveBookRequest) error {
	ctx := context.Background()

	if err := validateBook(req); err != nil {
		log.Printf("[BookService] Отклонено обновление книги %d: некорректные данные", bookID)
		return err
	}

	book := &models.Book{
		ID:              bookID,
		Name:            req.Name,
		Author:          req.Author,
		Publisher:       req.Publisher,
		ISBN:            req.ISBN,
		CategoryID:      req.CategoryID,
		Price:           req.Price,
		PublicationDate: req.PublicationDate,
		Quantity:        req.Quantity,
	}

	err := s.bookRepo.UpdateBook(ctx, book)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrBookNotFound):
		return ErrBookNotFound
	case errors.Is(err, repository.ErrCategoryNotFound):
		return ErrCategoryNotFound
	default:
		log.Printf("[BookService] Ошибка обновления книги %d: %v", bookID, err)
		return errors.New("внутренняя ошибка сервера при обновлении книги")
	}
}

// DeleteBook удаляет книгу. Если у книги была обложка, соответствующий
// объект освобождается в хранилище файлов.
func (s *bookService) DeleteBook(bookID int64) error {
	ctx := context.Background()

	imageURL, err := s.bookRepo.DeleteBook(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Printf("[BookService] Ошибка удаления книги %d: %v", bookID, err)
		return errors.New("внутренняя ошибка сервера при удалении книги")
	}

	if imageURL != nil && *imageURL != "" {
		// Книга уже удалена из каталога; осиротевший объект при ошибке
		// удаления только логируем.
		if err = s.fileStorage.DeleteFile(ctx, *imageURL); err != nil {
			log.Printf("[BookService] Не удалось освободить обложку '%s' книги %d: %v", *imageURL, bookID, err)
		}
	}

	return nil
}

// coverObjectKey возвращает ключ объекта обложки для книги.
func coverObjectKey(bookID int64) string {
	return fmt.Sprintf("covers/%d", bookID)
}

// UploadCover загружает обложку книги и записывает ссылку на нее.
// Прежняя обложка с другим ключом освобождается.
func (s *bookService) UploadCover(bookID int64, reader io.Reader, size int64, contentType string) error {
	ctx := context.Background()

	book, err := s.bookRepo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Printf("[BookService] Ошибка получения книги %d перед загрузкой обложки: %v", bookID, err)
		return errors.New("внутренняя ошибка сервера при загрузке обложки")
	}

	objectKey := coverObjectKey(bookID)
	if book.ImageURL != nil && *book.ImageURL != "" && *book.ImageURL != objectKey {
		if err = s.fileStorage.DeleteFile(ctx, *book.ImageURL); err != nil {
			log.Printf("[BookService] Не удалось освободить прежнюю обложку '%s' книги %d: %v",
				*book.ImageURL, bookID, err)
		}
	}

	if err = s.fileStorage.UploadFile(ctx, objectKey, reader, size, contentType); err != nil {
		log.Printf("[BookService] Ошибка загрузки обложки книги %d: %v", bookID, err)
		return errors.New("внутренняя ошибка сервера при загрузке обложки")
	}

	if err = s.bookRepo.UpdateBookImageURL(ctx, bookID, &objectKey); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return ErrBookNotFound
		}
		log.Printf("[BookService] Ошибка записи ссылки на обложку книги %d: %v", bookID, err)
		return errors.New("внутренняя ошибка сервера при загрузке обложки")
	}

	log.Printf("[BookService] Обложка книги %d успешно загружена (ключ '%s')", bookID, objectKey)
	return nil
}

// GetCover возвращает поток с обложкой книги.
// Возвращаемый io.ReadCloser нужно закрыть после использования.
func (s *bookService) GetCover(bookID int64) (io.ReadCloser, error) {
	ctx := context.Background()

	book, err := s.bookRepo.GetBookByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, ErrBookNotFound
		}
		log.Printf("[BookService] Ошибка получения книги %d перед скачиванием обложки: %v", bookID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении обложки")
	}
	if book.ImageURL == nil || *book.ImageURL == "" {
		return nil, ErrCoverNotFound
	}

	object, err := s.fileStorage.DownloadFile(ctx, *book.ImageURL)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrCoverNotFound
		}
		log.Printf("[BookService] Ошибка скачивания обложки книги %d: %v", bookID, err)
		return nil, errors.New("внутренняя ошибка сервера при получении обложки")
	}

	return object, nil
}

// Кастомные ошибки сервиса каталога.
var (
	ErrBookNotFound     = errors.New("книга не найдена")
	ErrCategoryNotFound = errors.New("категория не найдена")
	ErrInvalidBookData  = errors.New("некорректные данные книги")
	ErrCoverNotFound    = errors.New("обложка книги не найдена")
)
