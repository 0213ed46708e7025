package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"pfp_gallery/internal/domain/models"
	"pfp_gallery/internal/lib/logger/sl"
	"pfp_gallery/internal/storage"
	filestorage "pfp_gallery/internal/storage/filestorage"
)

type UploadService struct {
	log         *slog.Logger
	fileStorage filestorage.FileStorage
	maxFileSize int64
}

func NewUploadService(log *slog.Logger, fileStorage filestorage.FileStorage, maxFileSize int64) *UploadService {
	return &UploadService{
		log:         log,
		fileStorage: fileStorage,
		maxFileSize: maxFileSize,
	}
}

// StoreFile сохраняет картинку в директорию загрузок под сгенерированным именем
func (s *UploadService) StoreFile(ctx context.Context, file *multipart.FileHeader) (*models.StoredFile, error) {
	const op = "upload_service.StoreFile"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", file.Filename),
	)

	log.Info("storing file", slog.Int64("size", file.Size))

	// 1. Проверяем тип и размер до записи на диск
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		log.Warn("rejected non-image upload", slog.String("content_type", contentType))
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidFileType)
	}

	if file.Size > s.maxFileSize {
		log.Warn("rejected oversized upload", slog.Int64("size", file.Size))
		return nil, fmt.Errorf("%s: %w", op, storage.ErrFileTooLarge)
	}

	// 2. Сохраняем под уникальным именем
	filename, size, err := s.fileStorage.Save(ctx, file)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file stored", slog.String("stored_as", filename))

	return &models.StoredFile{
		Name: filename,
		URL:  s.fileStorage.BaseURL() + "/" + filename,
		Size: size,
	}, nil
}

// DiscardFile удаляет ранее сохраненный файл
func (s *UploadService) DiscardFile(ctx context.Context, filename string) error {
	const op = "upload_service.DiscardFile"

	log := s.log.With(
		slog.String("op", op),
		slog.String("filename", filename),
	)

	if err := s.fileStorage.Delete(ctx, filename); err != nil {
		log.Error("failed to discard file", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file discarded")

	return nil
}

// ListGallery возвращает все загруженные файлы, кроме скрытых.
// Нечитаемая директория дает пустой список, а не ошибку.
func (s *UploadService) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	const op = "upload_service.ListGallery"

	log := s.log.With(slog.String("op", op))

	names, err := s.fileStorage.List(ctx)
	if err != nil {
		log.Warn("failed to read uploads dir", sl.Err(err))
		return []models.GalleryImage{}, nil
	}

	images := make([]models.GalleryImage, 0, len(names))
	for _, name := range names {
		images = append(images, models.GalleryImage{
			URL:  s.fileStorage.BaseURL() + "/" + name,
			Name: name,
		})
	}

	return images, nil
}
