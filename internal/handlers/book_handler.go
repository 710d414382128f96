package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mlebedeva/libris/internal/middleware"
	"github.com/mlebedeva/libris/internal/models"
	"github.com/mlebedeva/libris/internal/services"
)

// Максимальный размер загружаемой обложки.
const maxCoverSize = 10 << 20 // 10 MiB

// BookService определяет интерфейс для сервиса каталога.
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

// BookRequestService определяет интерфейс для сервиса заявок на книги.
type BookRequestService interface {
	RequestBook(bookID, userID int64, requestType string) (*models.BookRequest, error)
}

// BookHandler обрабатывает HTTP-запросы каталога и заявок на книги.
type BookHandler struct {
	books    BookService        // Читающий путь каталога и админское редактирование
	requests BookRequestService // Списание запаса с журналом заявок
}

// NewBookHandler создает новый экземпляр BookHandler.
func NewBookHandler(books BookService, requests BookRequestService) *BookHandler {
	return &BookHandler{books: books, requests: requests}
}

// intQueryParam читает целочисленный query-параметр; отсутствующее или
// некорректное значение превращается в 0 и нормализуется сервисом.
func intQueryParam(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

// bookIDParam извлекает ID книги из пути запроса.
func bookIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
}

// Paginated возвращает страницу каталога.
func (h *BookHandler) Paginated(w http.ResponseWriter, r *http.Request) {
	page := intQueryParam(r, "page")
	size := intQueryParam(r, "size")

	books, err := h.books.GetPaginatedBooks(page, size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// Search возвращает страницу результатов поиска по каталогу.
// Пустой поисковый запрос эквивалентен обычному списку.
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")
	page := intQueryParam(r, "page")
	size := intQueryParam(r, "size")

	books, err := h.books.SearchBooks(term, page, size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// NewBooks возвращает полку новинок.
func (h *BookHandler) NewBooks(w http.ResponseWriter, _ *http.Request) {
	books, err := h.books.GetNewBooks()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// requestBook оформляет заявку указанного типа от имени пользователя из сессии.
func (h *BookHandler) requestBook(w http.ResponseWriter, r *http.Request, requestType string) {
	var req models.RequestBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[BookHandler] Ошибка декодирования заявки: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		// Сюда можно попасть только в обход Authenticator
		writeError(w, http.StatusUnauthorized, "Требуется аутентификация")
		return
	}

	request, err := h.requests.RequestBook(req.BookID, userID, requestType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookNotFound):
			writeError(w, http.StatusNotFound, "Книга не найдена")
		case errors.Is(err, services.ErrOutOfStock):
			writeError(w, http.StatusConflict, "Запас книги исчерпан")
		case errors.Is(err, services.ErrInvalidRequestType):
			writeError(w, http.StatusBadRequest, "Неизвестный тип заявки")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

// BuyBook оформляет заявку на покупку книги.
func (h *BookHandler) BuyBook(w http.ResponseWriter, r *http.Request) {
	h.requestBook(w, r, models.RequestTypeSale)
}

// RentBook оформляет заявку на аренду книги.
func (h *BookHandler) RentBook(w http.ResponseWriter, r *http.Request) {
	h.requestBook(w, r, models.RequestTypeRent)
}

// DownloadCover отдает поток с обложкой книги.
func (h *BookHandler) DownloadCover(w http.ResponseWriter, r *http.Request) {
	bookID, err := bookIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID книги")
		return
	}

	cover, err := h.books.GetCover(bookID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookNotFound):
			writeError(w, http.StatusNotFound, "Книга не найдена")
		case errors.Is(err, services.ErrCoverNotFound):
			writeError(w, http.StatusNotFound, "Обложка книги не найдена")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}
	defer func() {
		if closeErr := cover.Close(); closeErr != nil {
			log.Printf("[BookHandler] Ошибка закрытия потока обложки книги %d: %v", bookID, closeErr)
		}
	}()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err = io.Copy(w, cover); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		log.Printf("[BookHandler] Ошибка отдачи обложки книги %d: %v", bookID, err)
	}
}

// Create добавляет новую книгу в каталог (административная операция).
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[BookHandler] Ошибка декодирования запроса создания книги: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	book, err := h.books.CreateBook(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBookData):
			writeError(w, http.StatusBadRequest, "Некорректные данные книги")
		case errors.Is(err, services.ErrCategoryNotFound):
			writeError(w, http.StatusBadRequest, "Категория не найдена")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusCreated, book)
}

// Update обновляет книгу каталога, включая пополнение запаса (административная операция).
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	bookID, err := bookIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID книги")
		return
	}

	var req models.SaveBookRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[BookHandler] Ошибка декодирования запроса обновления книги: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err = h.books.UpdateBook(bookID, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrBookNotFound):
			writeError(w, http.StatusNotFound, "Книга не найдена")
		case errors.Is(err, services.ErrInvalidBookData):
			writeError(w, http.StatusBadRequest, "Некорректные данные книги")
		case errors.Is(err, services.ErrCategoryNotFound):
			writeError(w, http.StatusBadRequest, "Категория не найдена")
		default:
			writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		}
		return
	}

	writeSuccess(w, http.StatusOK, "Книга обновлена")
}

// Delete удаляет книгу из каталога вместе с ее обложкой (административная операция).
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookID, err := bookIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID книги")
		return
	}

	if err = h.books.DeleteBook(bookID); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, "Книга не найдена")
			return
		}
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeSuccess(w, http.StatusOK, "Книга удалена")
}

// UploadCover принимает multipart-форму с файлом обложки (административная операция).
func (h *BookHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	bookID, err := bookIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Некорректный ID книги")
		return
	}

	if err = r.ParseMultipartForm(maxCoverSize); err != nil {
		log.Printf("[BookHandler] Ошибка разбора multipart-формы обложки: %v", err)
		writeError(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	file, header, err := r.FormFile("cover")
	if err != nil {
		log.Printf("[BookHandler] Файл обложки отсутствует в запросе: %v", err)
		writeError(w, http.StatusBadRequest, "Файл обложки не передан")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if err = h.books.UploadCover(bookID, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		if errors.Is(err, services.ErrBookNotFound) {
			writeError(w, http.StatusNotFound, "Книга не найдена")
			return
		}
		writeError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	writeSuccess(w, http.StatusOK, "Обложка загружена")
}
