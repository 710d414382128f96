package models

import "time"

// Category представляет категорию каталога. Имя уникально.
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SaveCategoryRequest представляет тело запроса на создание/обновление категории.
type SaveCategoryRequest struct {
	Name string `json:"name"`
}
