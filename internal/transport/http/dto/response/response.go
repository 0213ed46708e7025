package response

// Ack представляет собой минимальный успешный ответ
type Ack struct {
	OK bool `json:"ok"`
}

// ItemsResponse оборачивает коллекцию записей
type ItemsResponse struct {
	OK    bool        `json:"ok"`
	Items interface{} `json:"items"`
}

// ItemResponse оборачивает одну запись; Item равен null, если запись не найдена
type ItemResponse struct {
	OK   bool        `json:"ok"`
	Item interface{} `json:"item"`
}

// UploadResponse описывает принятый файл
type UploadResponse struct {
	OK       bool   `json:"ok"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// ErrorResponse представляет собой единый формат ошибки
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func Success() Ack {
	return Ack{OK: true}
}

func Items(items interface{}) ItemsResponse {
	return ItemsResponse{
		OK:    true,
		Items: items,
	}
}

func Item(item interface{}) ItemResponse {
	return ItemResponse{
		OK:   true,
		Item: item,
	}
}

func Uploaded(url, filename string) UploadResponse {
	return UploadResponse{
		OK:       true,
		URL:      url,
		Filename: filename,
	}
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{
		OK:    false,
		Error: msg,
	}
}
