package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlebedeva/libris/internal/repository"
)

func setupCategoryRepoMock(t *testing.T) (repository.CategoryRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := repository.NewPostgresCategoryRepository(sqlxDB)
	return repo, mock
}

func TestListCategories(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name, created_at FROM categories ORDER BY name ASC`)
	now := time.Now()

	t.Run("Успешное получение списка", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(1), "Информатика", now).
			AddRow(int64(2), "Математика", now)
		mock.ExpectQuery(query).WillReturnRows(rows)

		categories, err := repo.ListCategories(context.Background())

		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Информатика", categories[0].Name)
		assert.Equal(t, "Математика", categories[1].Name)
	})

	t.Run("Пустой список", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

		categories, err := repo.ListCategories(context.Background())

		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		categories, err := repo.ListCategories(context.Background())

		require.Error(t, err)
		assert.Nil(t, categories)
	})
}

func TestGetCategoryByID(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, name, created_at FROM categories WHERE id=$1`)

	t.Run("Категория найдена", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(int64(1), "Информатика", time.Now())
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(rows)

		category, err := repo.GetCategoryByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
		assert.Equal(t, "Информатика", category.Name)
	})

	t.Run("Категория не найдена", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)

		category, err := repo.GetCategoryByID(context.Background(), 1)

		require.ErrorIs(t, err, repository.ErrCategoryNotFound)
		assert.Nil(t, category)
	})
}

func TestCreateCategory(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO categories (name) VALUES ($1) RETURNING id`)

	t.Run("Успешное создание", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectQuery(query).WithArgs("Информатика").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		categoryID, err := repo.CreateCategory(context.Background(), "Информатика")

		require.NoError(t, err)
		assert.Equal(t, int64(1), categoryID)
	})

	t.Run("Имя занято", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectQuery(query).WithArgs("Информатика").WillReturnError(&pq.Error{Code: "23505"})

		categoryID, err := repo.CreateCategory(context.Background(), "Информатика")

		require.ErrorIs(t, err, repository.ErrCategoryNameTaken)
		assert.Zero(t, categoryID)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectQuery(query).WithArgs("Информатика").WillReturnError(errors.New("database error"))

		categoryID, err := repo.CreateCategory(context.Background(), "Информатика")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка выполнения запроса")
		assert.Zero(t, categoryID)
	})
}

func TestUpdateCategory(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE categories SET name=$2 WHERE id=$1`)

	t.Run("Успешное переименование", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(1), "Физика").WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateCategory(context.Background(), 1, "Физика")

		require.NoError(t, err)
	})

	t.Run("Категория не найдена", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(1), "Физика").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCategory(context.Background(), 1, "Физика")

		require.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("Имя занято", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(1), "Физика").WillReturnError(&pq.Error{Code: "23505"})

		err := repo.UpdateCategory(context.Background(), 1, "Физика")

		require.ErrorIs(t, err, repository.ErrCategoryNameTaken)
	})
}

func TestDeleteCategory(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM categories WHERE id=$1`)

	t.Run("Успешное удаление", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteCategory(context.Background(), 1)

		require.NoError(t, err)
	})

	t.Run("Категория не найдена", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteCategory(context.Background(), 1)

		require.ErrorIs(t, err, repository.ErrCategoryNotFound)
	})

	t.Run("Категория используется книгами", func(t *testing.T) {
		repo, mock := setupCategoryRepoMock(t)
		// Ошибка PostgreSQL foreign_key_violation
		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnError(&pq.Error{Code: "23503"})

		err := repo.DeleteCategory(context.Background(), 1)

		require.ErrorIs(t, err, repository.ErrCategoryInUse)
	})
}
