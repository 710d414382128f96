package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlebedeva/libris/internal/mocks"
	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/repository"
	"github.com/mlebedeva/libris/internal/services"
)

func TestCategoryService_ListCategories(t *testing.T) {
	ctx := context.Background()
	categories := []models.Category{{ID: 1, Name: "Информатика"}, {ID: 2, Name: "Математика"}}

	t.Run("Успешное получение списка", func(t *testing.T) {
		mockCategoryRepo := new(mocks.CategoryRepository)
		mockCategoryRepo.EXPECT().ListCategories(ctx).Return(categories, nil).Once()

		categoryService := services.NewCategoryService(mockCategoryRepo)
		result, err := categoryService.ListCategories()

		require.NoError(t, err)
		assert.Equal(t, categories, result)
		mockCategoryRepo.AssertExpectations(t)
	})

	t.Run("Ошибка репозитория", func(t *testing.T) {
		mockCategoryRepo := new(mocks.CategoryRepository)
		mockCategoryRepo.EXPECT().ListCategories(ctx).Return(nil, errors.New("some db error")).Once()

		categoryService := services.NewCategoryService(mockCategoryRepo)
		result, err := categoryService.ListCategories()

		require.Error(t, err)
		assert.Nil(t, result)
		mockCategoryRepo.AssertExpectations(t)
	})
}

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		categoryName  string
		mockSetup     func(mockCategoryRepo *mocks.CategoryRepository)
		expectedError error
	}{
		{
			name:         "Успешное создание",
			categoryName: "Информатика",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().CreateCategory(ctx, "Информатика").Return(int64(1), nil).Once()
			},
			expectedError: nil,
		},
		{
			name:         "Имя обрезается от пробелов",
			categoryName: "  Информатика  ",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().CreateCategory(ctx, "Информатика").Return(int64(1), nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "Пустое имя",
			categoryName:  "   ",
			mockSetup:     func(_ *mocks.CategoryRepository) {},
			expectedError: services.ErrEmptyCategoryName,
		},
		{
			name:         "Имя занято",
			categoryName: "Информатика",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().
					CreateCategory(ctx, "Информатика").
					Return(int64(0), repository.ErrCategoryNameTaken).Once()
			},
			expectedError: services.ErrCategoryNameTaken,
		},
		{
			name:         "Ошибка репозитория",
			categoryName: "Информатика",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().
					CreateCategory(ctx, "Информатика").
					Return(int64(0), errors.New("some db error")).Once()
			},
			expectedError: errors.New("внутренняя ошибка сервера при создании категории"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategoryRepo := new(mocks.CategoryRepository)
			tt.mockSetup(mockCategoryRepo)

			categoryService := services.NewCategoryService(mockCategoryRepo)
			category, err := categoryService.CreateCategory(tt.categoryName)

			if tt.expectedError != nil {
				require.Error(t, err)
				require.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, category)
			} else {
				require.NoError(t, err)
				require.NotNil(t, category)
				assert.Equal(t, int64(1), category.ID)
				assert.Equal(t, "Информатика", category.Name)
			}

			mockCategoryRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		categoryName  string
		mockSetup     func(mockCategoryRepo *mocks.CategoryRepository)
		expectedError error
	}{
		{
			name:         "Успешное переименование",
			categoryName: "Физика",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().UpdateCategory(ctx, int64(1), "Физика").Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "Пустое имя",
			categoryName:  " ",
			mockSetup:     func(_ *mocks.CategoryRepository) {},
			expectedError: services.ErrEmptyCategoryName,
		},
		{
			name:         "Категория не найдена",
			categoryName: "Физика",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().
					UpdateCategory(ctx, int64(1), "Физика").
					Return(repository.ErrCategoryNotFound).Once()
			},
			expectedError: services.ErrCategoryNotFound,
		},
		{
			name:         "Имя занято",
			categoryName: "Физика",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().
					UpdateCategory(ctx, int64(1), "Физика").
					Return(repository.ErrCategoryNameTaken).Once()
			},
			expectedError: services.ErrCategoryNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategoryRepo := new(mocks.CategoryRepository)
			tt.mockSetup(mockCategoryRepo)

			categoryService := services.NewCategoryService(mockCategoryRepo)
			err := categoryService.UpdateCategory(1, tt.categoryName)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}

			mockCategoryRepo.AssertExpectations(t)
		})
	}
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mockSetup     func(mockCategoryRepo *mocks.CategoryRepository)
		expectedError error
	}{
		{
			name: "Успешное удаление",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().DeleteCategory(ctx, int64(1)).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "Категория не найдена",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().
					DeleteCategory(ctx, int64(1)).
					Return(repository.ErrCategoryNotFound).Once()
			},
			expectedError: services.ErrCategoryNotFound,
		},
		{
			name: "Категория используется книгами",
			mockSetup: func(mockCategoryRepo *mocks.CategoryRepository) {
				mockCategoryRepo.EXPECT().
					DeleteCategory(ctx, int64(1)).
					Return(repository.ErrCategoryInUse).Once()
			},
			expectedError: services.ErrCategoryInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategoryRepo := new(mocks.CategoryRepository)
			tt.mockSetup(mockCategoryRepo)

			categoryService := services.NewCategoryService(mockCategoryRepo)
			err := categoryService.DeleteCategory(1)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}

			mockCategoryRepo.AssertExpectations(t)
		})
	}
}
