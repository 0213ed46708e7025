package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// MaxNameRand задает верхнюю границу случайного суффикса в имени файла
const MaxNameRand = 1_000_000_000

// SanitizeFilename приводит имя файла к нижнему регистру и заменяет
// все символы, кроме латинских букв, цифр, точки, дефиса и подчеркивания, на "_"
func SanitizeFilename(name string) string {
	lower := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lower))

	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// UniqueFilename вставляет отметку времени в миллисекундах и случайное число
// между базовым именем и расширением: avatar.png -> avatar-1700000000000-123456789.png
func UniqueFilename(original string, ts time.Time, n int64) string {
	sanitized := SanitizeFilename(original)

	ext := filepath.Ext(sanitized)
	base := strings.TrimSuffix(sanitized, ext)

	return fmt.Sprintf("%s-%d-%d%s", base, ts.UnixMilli(), n, ext)
}
