package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/mlebedeva/libris/internal/models"
)

// BookRequestRepository определяет методы для работы с заявками на книги.
type BookRequestRepository interface {
	ReserveBook(ctx context.Context, bookID, userID int64, requestType string) (*models.BookRequest, error)
}

// postgresBookRequestRepository реализует BookRequestRepository для PostgreSQL.
type postgresBookRequestRepository struct {
	db *sqlx.DB
}

// NewPostgresBookRequestRepository создает новый экземпляр репозитория заявок для PostgreSQL.
func NewPostgresBookRequestRepository(db *sqlx.DB) BookRequestRepository {
	return &postgresBookRequestRepository{db: db}
}

// ReserveBook атомарно списывает одну единицу запаса и создает запись заявки.
// Списание и вставка заявки выполняются в одной транзакции: заявка не может
// существовать без успешного списания, а списание — без заявки. Условный
// UPDATE с проверкой quantity > 0 гарантирует, что при конкурентных заявках
// на последний экземпляр успешной окажется ровно одна, а количество никогда
// не станет отрицательным.
func (r *postgresBookRequestRepository) ReserveBook(
	ctx context.Context,
	bookID,
	userID int64,
	requestType string,
) (*models.BookRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Printf("[RequestRepo] Ошибка начала транзакции заявки: %v", err)
		return nil, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	// Откат безопасен и после успешного коммита — тогда он просто ничего не делает.
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, `UPDATE books SET quantity = quantity - 1 WHERE id=$1 AND quantity > 0`, bookID)
	if err != nil {
		log.Printf("[RequestRepo] Ошибка списания запаса книги %d: %v", bookID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на списание запаса: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("ошибка получения числа обновленных строк: %w", err)
	}
	if rows == 0 {
		// Ни одной строки: либо книги нет, либо запас исчерпан. Различаем
		// проверкой существования, это важно для ответа клиенту.
		var exists bool
		if err = tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM books WHERE id=$1)`, bookID); err != nil {
			log.Printf("[RequestRepo] Ошибка проверки существования книги %d: %v", bookID, err)
			return nil, fmt.Errorf("ошибка выполнения запроса на проверку книги: %w", err)
		}
		if !exists {
			log.Printf("[RequestRepo] Заявка отклонена: книга %d не найдена", bookID)
			return nil, ErrBookNotFound
		}
		log.Printf("[RequestRepo] Заявка отклонена: запас книги %d исчерпан", bookID)
		return nil, ErrOutOfStock
	}

	request := &models.BookRequest{
		BookID:      bookID,
		UserID:      userID,
		RequestType: requestType,
	}
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO book_requests (book_id, user_id, request_type) VALUES ($1, $2, $3) RETURNING id, created_at`,
		bookID, userID, requestType,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		log.Printf("[RequestRepo] Ошибка создания заявки на книгу %d: %v", bookID, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание заявки: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Printf("[RequestRepo] Ошибка коммита транзакции заявки на книгу %d: %v", bookID, err)
		return nil, fmt.Errorf("ошибка коммита транзакции заявки: %w", err)
	}

	log.Printf("[RequestRepo] Заявка %d (%s) на книгу %d от пользователя %d успешно создана",
		request.ID, requestType, bookID, userID)
	return request, nil
}

// Кастомные ошибки репозитория заявок.
var (
	ErrOutOfStock = errors.New("запас книги исчерпан")
)
