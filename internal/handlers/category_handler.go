package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/services"
)

// CategoryService определяет интерфейс для сервиса категорий каталога.
type CategoryService interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
	UpdateCategory(categoryID int64, name string) error
	DeleteCategory(categoryID int64) error
}

// CategoryHandler обрабатывает административные HTTP-запросы категорий.
type CategoryHandler struct {
	service CategoryService
}

// NewCategoryHandler создает новый экземпляр CategoryHandler.
func NewCategoryHandler(s CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// categoryIDParam извлекает ID категории из пути запроса.
func categoryIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
}

// List возвращает все категории каталога.
func (h *CategoryHandler) List(w http.ResponseWriter, _ *http.Request) {
	categories, err := h.service.ListCategories()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create создает новую категорию.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[CategoryHandler] Ошибка декодирования запроса создания категории: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCategoryName):
			writeError(w, http.StatusBadRequest, "Имя категории не может быть пустым")
		case errors.Is(err, services.ErrCategoryNameTaken):
			writeError(w, http.StatusConflict, "Категория с таким именем уже существует")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

// Update переименовывает категорию.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	categoryID, err := categoryIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID категории")
		return
	}

	var req models.SaveCategoryRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[CategoryHandler] Ошибка декодирования запроса обновления категории: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err = h.service.UpdateCategory(categoryID, req.Name); err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCategoryName):
			writeError(w, http.StatusBadRequest, "Имя категории не может быть пустым")
		case errors.Is(err, services.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Категория не найдена")
		case errors.Is(err, services.ErrCategoryNameTaken):
			writeError(w, http.StatusConflict, "Категория с таким именем уже существует")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Категория обновлена")
}

// Delete удаляет категорию.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID, err := categoryIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID категории")
		return
	}

	if err = h.service.DeleteCategory(categoryID); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			writeError(w, http.StatusNotFound, "Категория не найдена")
		case errors.Is(err, services.ErrCategoryInUse):
			writeError(w, http.StatusConflict, "Категория используется книгами")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Категория удалена")
}
