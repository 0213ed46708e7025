package models

// StoredFile описывает файл, принятый в директорию загрузок
type StoredFile struct {
	Name string `json:"filename"` // Сгенерированное имя файла на диске
	URL  string `json:"url"`      // Публичный URL файла
	Size int64  `json:"size"`     // Размер в байтах
}

// GalleryImage представляет один загруженный файл в листинге галереи
type GalleryImage struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
