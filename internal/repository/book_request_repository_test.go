package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
)

var (
	reserveUpdateQuery = regexp.QuoteMeta(
		`UPDATE books SET quantity = quantity - 1 WHERE id=$1 AND quantity > 0`)
	reserveExistsQuery = regexp.QuoteMeta(
		`SELECT EXISTS(SELECT 1 FROM books WHERE id=$1)`)
	reserveInsertQuery = regexp.QuoteMeta(
		`INSERT INTO book_requests (book_id, user_id, request_type) VALUES ($1, $2, $3) RETURNING id, created_at`)
)

func setupBookRequestRepoMock(t *testing.T) (repository.BookRequestRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresBookRequestRepository(sqlxDB)
	return repo, mock
}

func TestReserveBook(t *testing.T) {
	bookID := int64(5)
	userID := int64(42)
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Успешная заявка", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveUpdateQuery).WithArgs(bookID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(reserveInsertQuery).WithArgs(bookID, userID, models.RequestTypeSale).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))
		mock.ExpectCommit()

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.NoError(t, err)
		require.NotNil(t, request)
		assert.Equal(t, int64(1), request.ID)
		assert.Equal(t, bookID, request.BookID)
		assert.Equal(t, userID, request.UserID)
		assert.Equal(t, models.RequestTypeSale, request.RequestType)
		assert.Equal(t, createdAt, request.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet(), "Не все ожидания мока были выполнены")
	})

	t.Run("Запас исчерпан", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin()
		// Условный UPDATE не затронул ни одной строки, но книга существует
		mock.ExpectExec(reserveUpdateQuery).WithArgs(bookID).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(reserveExistsQuery).WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.ErrorIs(t, err, repository.ErrOutOfStock)
		assert.Nil(t, request)
		assert.NoError(t, mock.ExpectationsWereMet(), "Не все ожидания мока были выполнены")
	})

	t.Run("Книга не найдена", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveUpdateQuery).WithArgs(bookID).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(reserveExistsQuery).WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.ErrorIs(t, err, repository.ErrBookNotFound)
		assert.Nil(t, request)
		assert.NoError(t, mock.ExpectationsWereMet(), "Не все ожидания мока были выполнены")
	})

	t.Run("Ошибка списания запаса откатывает транзакцию", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveUpdateQuery).WithArgs(bookID).WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
		assert.Nil(t, request)
		assert.NoError(t, mock.ExpectationsWereMet(), "Не все ожидания мока были выполнены")
	})

	t.Run("Ошибка вставки заявки откатывает списание", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveUpdateQuery).WithArgs(bookID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(reserveInsertQuery).WithArgs(bookID, userID, models.RequestTypeSale).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.NoError(t, mock.ExpectationsWereMet(), "Не все ожидания мока были выполнены")
	})

	t.Run("Ошибка начала транзакции", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin().WillReturnError(errors.New("connection lost"))

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка начала транзакции")
		assert.Nil(t, request)
	})

	t.Run("Ошибка коммита", func(t *testing.T) {
		repo, mock := setupBookRequestRepoMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(reserveUpdateQuery).WithArgs(bookID).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(reserveInsertQuery).WithArgs(bookID, userID, models.RequestTypeSale).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))
		mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		request, err := repo.ReserveBook(context.Background(), bookID, userID, models.RequestTypeSale)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка коммита транзакции")
		assert.Nil(t, request)
	})
}
