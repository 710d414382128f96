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

// Количество книг на полке "новинки".
const newBooksLimit = 4

// Базовый SELECT каталога. Название категории подтягивается явным join-ом,
// чтобы и поиск, и выдача обходились одним запросом без N+1.
const bookSelect = `SELECT b.id, b.name, b.author, b.publisher, b.isbn, b.image_url,
       b.category_id, c.name AS category_name, b.price, b.publication_date, b.quantity, b.created_at
	FROM books b JOIN categories c ON c.id = b.category_id`

// Предикат поиска: регистронезависимое вхождение подстроки в любое из пяти полей.
const bookSearchWhere = ` WHERE b.name ILIKE $1 OR b.author ILIKE $1 OR b.isbn ILIKE $1
	OR b.publisher ILIKE $1 OR c.name ILIKE $1`

// BookRepository определяет методы для работы с каталогом книг.
type BookRepository interface {
	ListBooks(ctx context.Context, limit, offset int) ([]models.Book, int, error)
	SearchBooks(ctx context.Context, term string, limit, offset int) ([]models.Book, int, error)
	GetBookByID(ctx context.Context, bookID int64) (*models.Book, error)
	GetNewBooks(ctx context.Context) ([]models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) (int64, error)
	UpdateBook(ctx context.Context, book *models.Book) error
	UpdateBookImageURL(ctx context.Context, bookID int64, imageURL *string) error
	DeleteBook(ctx context.Context, bookID int64) (*string, error)
}

// postgresBookRepository реализует BookRepository для PostgreSQL.
type postgresBookRepository struct {
	db *sqlx.DB
}

// NewPostgresBookRepository создает новый экземпляр репозитория каталога для PostgreSQL.
func NewPostgresBookRepository(db *sqlx.DB) BookRepository {
	return &postgresBookRepository{db: db}
}

// ListBooks возвращает страницу каталога и общее число книг.
// Сортировка — по названию книги по возрастанию; названия не обязаны быть
// уникальными, поэтому порядок внутри одинаковых названий не определен.
func (r *postgresBookRepository) ListBooks(ctx context.Context, limit, offset int) ([]models.Book, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM books`); err != nil {
		log.Printf("[BookRepo] Ошибка подсчета книг каталога: %v", err)
		return nil, 0, fmt.Errorf("ошибка выполнения запроса на подсчет книг: %w", err)
	}

	query := bookSelect + ` ORDER BY b.name ASC LIMIT $1 OFFSET $2`
	books := make([]models.Book, 0, limit)
	if err := r.db.SelectContext(ctx, &books, query, limit, offset); err != nil {
		log.Printf("[BookRepo] Ошибка получения страницы каталога (limit=%d, offset=%d): %v", limit, offset, err)
		return nil, 0, fmt.Errorf("ошибка выполнения запроса на получение каталога: %w", err)
	}

	log.Printf("[BookRepo] Получено %d книг из %d (limit=%d, offset=%d)", len(books), total, limit, offset)
	return books, total, nil
}

// SearchBooks возвращает страницу результатов поиска и общее число совпадений.
// Количество считается тем же предикатом, что и выборка, поэтому счетчик и
// элементы согласованы в рамках одного вызова.
func (r *postgresBookRepository) SearchBooks(
	ctx context.Context,
	term string,
	limit,
	offset int,
) ([]models.Book, int, error) {
	pattern := "%" + term + "%"

	countQuery := `SELECT COUNT(*) FROM books b JOIN categories c ON c.id = b.category_id` + bookSearchWhere
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, pattern); err != nil {
		log.Printf("[BookRepo] Ошибка подсчета результатов поиска '%s': %v", term, err)
		return nil, 0, fmt.Errorf("ошибка выполнения запроса на подсчет результатов поиска: %w", err)
	}

	query := bookSelect + bookSearchWhere + ` ORDER BY b.name ASC LIMIT $2 OFFSET $3`
	books := make([]models.Book, 0, limit)
	if err := r.db.SelectContext(ctx, &books, query, pattern, limit, offset); err != nil {
		log.Printf("[BookRepo] Ошибка поиска по запросу '%s': %v", term, err)
		return nil, 0, fmt.Errorf("ошибка выполнения запроса на поиск книг: %w", err)
	}

	log.Printf("[BookRepo] Поиск '%s': найдено %d книг, отдано %d (limit=%d, offset=%d)",
		term, total, len(books), limit, offset)
	return books, total, nil
}

// GetBookByID находит книгу по ее ID.
func (r *postgresBookRepository) GetBookByID(ctx context.Context, bookID int64) (*models.Book, error) {
	query := bookSelect + ` WHERE b.id=$1`
	var book models.Book

	err := r.db.GetContext(ctx, &book, query, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[BookRepo] Книга с ID %d не найдена", bookID)
			return nil, ErrBookNotFound
		}
		log.Printf("[BookRepo] Ошибка при поиске книги ID %d: %v", bookID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение книги: %w", err)
	}

	return &book, nil
}

// GetNewBooks возвращает четыре последние добавленные книги, сначала самые новые.
func (r *postgresBookRepository) GetNewBooks(ctx context.Context) ([]models.Book, error) {
	query := bookSelect + ` ORDER BY b.id DESC LIMIT $1`
	books := make([]models.Book, 0, newBooksLimit)

	if err := r.db.SelectContext(ctx, &books, query, newBooksLimit); err != nil {
		log.Printf("[BookRepo] Ошибка получения новинок: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение новинок: %w", err)
	}

	return books, nil
}

// CreateBook создает новую книгу каталога. Возвращает ID созданной книги.
func (r *postgresBookRepository) CreateBook(ctx context.Context, book *models.Book) (int64, error) {
	query := `INSERT INTO books (name, author, publisher, isbn, image_url, category_id, price, publication_date, quantity)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	var bookID int64

	err := r.db.QueryRowxContext(ctx, query,
		book.Name, book.Author, book.Publisher, book.ISBN, book.ImageURL,
		book.CategoryID, book.Price, book.PublicationDate, book.Quantity,
	).Scan(&bookID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			log.Printf("[BookRepo] Ошибка создания книги '%s': категория %d не существует", book.Name, book.CategoryID)
			return 0, ErrCategoryNotFound
		}
		log.Printf("[BookRepo] Непредвиденная ошибка при создании книги '%s': %v", book.Name, err)
		return 0, fmt.Errorf("ошибка выполнения запроса на создание книги: %w", err)
	}

	log.Printf("[BookRepo] Книга '%s' успешно создана с ID %d", book.Name, bookID)
	return bookID, nil
}

// UpdateBook обновляет поля существующей книги, включая количество (пополнение запаса).
func (r *postgresBookRepository) UpdateBook(ctx context.Context, book *models.Book) error {
	query := `UPDATE books SET name=$2, author=$3, publisher=$4, isbn=$5, category_id=$6,
	          price=$7, publication_date=$8, quantity=$9 WHERE id=$1`

	res, err := r.db.ExecContext(ctx, query,
		book.ID, book.Name, book.Author, book.Publisher, book.ISBN,
		book.CategoryID, book.Price, book.PublicationDate, book.Quantity,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			log.Printf("[BookRepo] Ошибка обновления книги %d: категория %d не существует", book.ID, book.CategoryID)
			return ErrCategoryNotFound
		}
		log.Printf("[BookRepo] Непредвиденная ошибка при обновлении книги %d: %v", book.ID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление книги: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[BookRepo] Книга с ID %d не найдена для обновления", book.ID)
		return ErrBookNotFound
	}

	log.Printf("[BookRepo] Книга %d успешно обновлена", book.ID)
	return nil
}

// UpdateBookImageURL записывает новую ссылку на обложку книги (nil очищает ее).
func (r *postgresBookRepository) UpdateBookImageURL(ctx context.Context, bookID int64, imageURL *string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE books SET image_url=$2 WHERE id=$1`, bookID, imageURL)
	if err != nil {
		log.Printf("[BookRepo] Ошибка обновления обложки книги %d: %v", bookID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление обложки: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if rows == 0 {
		log.Printf("[BookRepo] Книга с ID %d не найдена для обновления обложки", bookID)
		return ErrBookNotFound
	}

	return nil
}

// DeleteBook удаляет книгу и возвращает ссылку на ее обложку (если была),
// чтобы вызывающий код мог освободить объект в хранилище файлов.
func (r *postgresBookRepository) DeleteBook(ctx context.Context, bookID int64) (*string, error) {
	var imageURL *string

	err := r.db.QueryRowxContext(ctx, `DELETE FROM books WHERE id=$1 RETURNING image_url`, bookID).Scan(&imageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("[BookRepo] Книга с ID %d не найдена для удаления", bookID)
			return nil, ErrBookNotFound
		}
		log.Printf("[BookRepo] Непредвиденная ошибка при удалении книги %d: %v", bookID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на удаление книги: %w", err)
	}

	log.Printf("[BookRepo] Книга %d успешно удалена", bookID)
	return imageURL, nil
}

// Кастомные ошибки репозитория каталога.
var (
	ErrBookNotFound = errors.New("книга не найдена")
)
