package dto

// CreatePfpRequest представляет собой тело запроса на добавление записи каталога
type CreatePfpRequest struct {
	Title    string   `json:"title" validate:"required"` // Название аватарки
	Author   string   `json:"author"`                    // Автор (необязательно)
	URL      string   `json:"url" validate:"required"`   // Ссылка на изображение
	Category string   `json:"cat"`                       // Категория (необязательно)
	Tags     []string `json:"tags"`                      // Массив тегов (необязательно)
}

// UpdatePfpRequest представляет собой тело частичного обновления записи каталога.
// Указатель на срез отличает отсутствующее поле tags от явно переданного пустого массива.
type UpdatePfpRequest struct {
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	URL      string    `json:"url"`
	Category string    `json:"cat"`
	Tags     *[]string `json:"tags"`
}
