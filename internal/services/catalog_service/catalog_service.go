package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pfp_gallery/internal/domain/models"
	"pfp_gallery/internal/lib/logger/sl"
	"pfp_gallery/internal/repository"
	"pfp_gallery/internal/storage"
	"pfp_gallery/internal/transport/http/dto"

	"github.com/google/uuid"
)

// ErrValidation возвращается, когда в запросе не хватает обязательных полей
var ErrValidation = errors.New("title and url are required")

type CatalogService struct {
	log  *slog.Logger
	repo repository.PfpRepository
}

func NewCatalogService(log *slog.Logger, repo repository.PfpRepository) *CatalogService {
	return &CatalogService{
		log:  log,
		repo: repo,
	}
}

// ListPfps возвращает все записи каталога, новые первыми
func (s *CatalogService) ListPfps(ctx context.Context) ([]models.Pfp, error) {
	const op = "service.CatalogService.ListPfps"

	log := s.log.With(slog.String("op", op))

	pfps, err := s.repo.ListPfps(ctx)
	if err != nil {
		log.Error("failed to list pfps", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pfps, nil
}

// AddPfp добавляет запись каталога, подставляя значения по умолчанию
// для автора, категории и тегов
func (s *CatalogService) AddPfp(ctx context.Context, req dto.CreatePfpRequest) (*models.Pfp, error) {
	const op = "service.CatalogService.AddPfp"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("adding pfp")

	if req.Title == "" || req.URL == "" {
		log.Warn("missing required fields")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	pfp := models.Pfp{
		Title:    req.Title,
		Author:   req.Author,
		URL:      req.URL,
		Category: req.Category,
		Tags:     req.Tags,
	}

	if pfp.Author == "" {
		pfp.Author = models.DefaultAuthor
	}
	if pfp.Category == "" {
		pfp.Category = models.DefaultCategory
	}
	if pfp.Tags == nil {
		pfp.Tags = []string{}
	}

	created, err := s.repo.CreatePfp(ctx, pfp)
	if err != nil {
		log.Error("failed to create pfp", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("pfp added", slog.String("id", created.ID.String()))

	return created, nil
}

// UpdatePfp применяет только непустые поля запроса к записи каталога.
// Для неизвестного id возвращает (nil, nil), а не ошибку.
func (s *CatalogService) UpdatePfp(ctx context.Context, id uuid.UUID, req dto.UpdatePfpRequest) (*models.Pfp, error) {
	const op = "service.CatalogService.UpdatePfp"

	log := s.log.With(
		slog.String("op", op),
		slog.String("pfp_id", id.String()),
	)

	log.Info("updating pfp")

	updates := make(map[string]interface{})

	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Author != "" {
		updates["author"] = req.Author
	}
	if req.URL != "" {
		updates["url"] = req.URL
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	// Явно переданный пустой массив тегов тоже применяется
	if req.Tags != nil {
		updates["tags"] = *req.Tags
	}

	var (
		updated *models.Pfp
		err     error
	)

	if len(updates) == 0 {
		updated, err = s.repo.GetPfp(ctx, id)
	} else {
		updated, err = s.repo.UpdatePfpFields(ctx, id, updates)
	}

	if err != nil {
		if errors.Is(err, storage.ErrPfpNotFound) {
			log.Warn("pfp not found")
			return nil, nil
		}

		log.Error("failed to update pfp", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("pfp updated")

	return updated, nil
}

// DeletePfp удаляет запись каталога
func (s *CatalogService) DeletePfp(ctx context.Context, id uuid.UUID) error {
	const op = "service.CatalogService.DeletePfp"

	log := s.log.With(
		slog.String("op", op),
		slog.String("pfp_id", id.String()),
	)

	log.Info("deleting pfp")

	if err := s.repo.DeletePfp(ctx, id); err != nil {
		log.Error("failed to delete pfp", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("pfp deleted")

	return nil
}
