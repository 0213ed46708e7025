package models

import (
	"time"

	"github.com/google/uuid"
)

// Значения по умолчанию для необязательных полей записи каталога
const (
	DefaultAuthor   = "unknown"
	DefaultCategory = "top"
)

// Pfp представляет собой запись каталога аватарок
type Pfp struct {
	ID        uuid.UUID `json:"id" db:"id"`                // Уникальный идентификатор записи
	Title     string    `json:"title" db:"title"`          // Название аватарки
	Author    string    `json:"author" db:"author"`        // Автор (по умолчанию "unknown")
	URL       string    `json:"url" db:"url"`              // Ссылка на изображение
	Category  string    `json:"category" db:"category"`    // Категория (по умолчанию "top")
	Tags      []string  `json:"tags" db:"tags"`            // Массив тегов
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Дата создания
}
