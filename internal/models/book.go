package models

import "time"

// Типы заявок на книгу.
const (
	RequestTypeSale = "sale"
	RequestTypeRent = "rent"
)

// Book представляет книгу каталога вместе с названием её категории
// (заполняется join-ом в запросах каталога).
type Book struct {
	ID              int64      `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Author          string     `db:"author" json:"author"`
	Publisher       string     `db:"publisher" json:"publisher"`
	ISBN            string     `db:"isbn" json:"isbn"`
	ImageURL        *string    `db:"image_url" json:"image_url,omitempty"` // может быть NULL
	CategoryID      int64      `db:"category_id" json:"category_id"`
	CategoryName    string     `db:"category_name" json:"category_name"`
	Price           int64      `db:"price" json:"price"`
	PublicationDate *time.Time `db:"publication_date" json:"publication_date,omitempty"`
	Quantity        int        `db:"quantity" json:"quantity"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// PaginatedBooks представляет страницу каталога с метаданными пагинации.
type PaginatedBooks struct {
	Items       []Book `json:"items"`
	CurrentPage int    `json:"current_page"`
	PageSize    int    `json:"page_size"`
	TotalPages  int    `json:"total_pages"`
	TotalCount  int    `json:"total_count"`
}

// BookRequest представляет заявку на покупку или аренду книги.
// Записи только добавляются, существующие не изменяются.
type BookRequest struct {
	ID          int64     `db:"id" json:"id"`
	BookID      int64     `db:"book_id" json:"book_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	RequestType string    `db:"request_type" json:"request_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SaveBookRequest представляет тело запроса на создание/обновление книги.
type SaveBookRequest struct {
	Name            string     `json:"name"`
	Author          string     `json:"author"`
	Publisher       string     `json:"publisher"`
	ISBN            string     `json:"isbn"`
	CategoryID      int64      `json:"category_id"`
	Price           int64      `json:"price"`
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	Quantity        int        `json:"quantity"`
}

// RequestBookRequest представляет тело запроса на покупку/аренду книги.
type RequestBookRequest struct {
	BookID int64 `json:"book_id"`
}
