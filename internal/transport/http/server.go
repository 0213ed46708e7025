package http

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"pfp_gallery/internal/domain/models"
	"pfp_gallery/internal/lib/logger/sl"
	services "pfp_gallery/internal/services/catalog_service"
	"pfp_gallery/internal/storage"
	"pfp_gallery/internal/transport/http/dto"
	"pfp_gallery/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	ListPfps(ctx context.Context) ([]models.Pfp, error)
	AddPfp(ctx context.Context, req dto.CreatePfpRequest) (*models.Pfp, error)
	UpdatePfp(ctx context.Context, id uuid.UUID, req dto.UpdatePfpRequest) (*models.Pfp, error)
	DeletePfp(ctx context.Context, id uuid.UUID) error
}

type UploadService interface {
	StoreFile(ctx context.Context, file *multipart.FileHeader) (*models.StoredFile, error)
	DiscardFile(ctx context.Context, filename string) error
	ListGallery(ctx context.Context) ([]models.GalleryImage, error)
}

type Authorizer interface {
	Authorize(credential string) bool
}

// Пароль администратора передается в каждом запросе отдельным заголовком
const adminPassHeader = "x-admin-pass"

type Routers struct {
	log            *slog.Logger
	CatalogService CatalogService
	UploadService  UploadService
	Auth           Authorizer
}

func NewRouter(log *slog.Logger, catalogService CatalogService, uploadService UploadService, auth Authorizer) *Routers {
	return &Routers{
		log:            log,
		CatalogService: catalogService,
		UploadService:  uploadService,
		Auth:           auth,
	}
}

func (r *Routers) authorized(c echo.Context) bool {
	return r.Auth.Authorize(c.Request().Header.Get(adminPassHeader))
}

// ListPfps godoc
// @Summary Список аватарок
// @Description Возвращает все записи каталога, новые первыми
// @Tags Каталог
// @Produce json
// @Success 200 {object} response.ItemsResponse{items=[]models.Pfp} "Записи каталога"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/pfps [get]
func (r *Routers) ListPfps(c echo.Context) error {
	const op = "http.routers.ListPfps"

	log := r.log.With(
		slog.String("op", op),
	)

	pfps, err := r.CatalogService.ListPfps(c.Request().Context())
	if err != nil {
		log.Error("failed to list pfps", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}

	return c.JSON(http.StatusOK, response.Items(pfps))
}

// CreatePfp godoc
// @Summary Добавить аватарку
// @Description Создает новую запись каталога. Пустые author, cat и tags получают значения по умолчанию.
// @Tags Каталог
// @Accept json
// @Produce json
// @Param x-admin-pass header string true "Пароль администратора"
// @Param request body dto.CreatePfpRequest true "Данные записи"
// @Success 200 {object} response.ItemResponse{item=models.Pfp} "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль администратора"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/pfps [post]
func (r *Routers) CreatePfp(c echo.Context) error {
	const op = "http.routers.CreatePfp"

	log := r.log.With(
		slog.String("op", op),
	)

	if !r.authorized(c) {
		log.Warn("rejected unauthorized create", slog.String("client_ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	var req dto.CreatePfpRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrMissingRequiredFields)
	}

	pfp, err := r.CatalogService.AddPfp(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			log.Warn("missing required fields", sl.Err(err))
			return c.JSON(http.StatusBadRequest, response.ErrMissingRequiredFields)
		}

		log.Error("failed to add pfp", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}

	log.Info("pfp created", slog.String("id", pfp.ID.String()))

	return c.JSON(http.StatusOK, response.Item(pfp))
}

// UpdatePfp godoc
// @Summary Обновить аватарку
// @Description Применяет только переданные поля. Для неизвестного id возвращает ok с item: null.
// @Tags Каталог
// @Accept json
// @Produce json
// @Param x-admin-pass header string true "Пароль администратора"
// @Param id path string true "UUID записи" format(uuid)
// @Param request body dto.UpdatePfpRequest true "Поля для обновления"
// @Success 200 {object} response.ItemResponse{item=models.Pfp} "Обновленная запись"
// @Failure 400 {object} response.ErrorResponse "Невалидный UUID или формат запроса"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль администратора"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/pfps/{id} [put]
func (r *Routers) UpdatePfp(c echo.Context) error {
	const op = "http.routers.UpdatePfp"

	log := r.log.With(
		slog.String("op", op),
	)

	if !r.authorized(c) {
		log.Warn("rejected unauthorized update", slog.String("client_ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("invalid pfp id format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidIDFormat)
	}

	req := new(dto.UpdatePfpRequest)
	if err := c.Bind(req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	pfp, err := r.CatalogService.UpdatePfp(c.Request().Context(), id, *req)
	if err != nil {
		log.Error("failed to update pfp", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}

	return c.JSON(http.StatusOK, response.Item(pfp))
}

// DeletePfp godoc
// @Summary Удалить аватарку
// @Description Удаляет запись каталога. Повторное удаление тоже отвечает ok.
// @Tags Каталог
// @Produce json
// @Param x-admin-pass header string true "Пароль администратора"
// @Param id path string true "UUID записи" format(uuid)
// @Success 200 {object} response.Ack "Подтверждение удаления"
// @Failure 400 {object} response.ErrorResponse "Невалидный UUID"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль администратора"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/pfps/{id} [delete]
func (r *Routers) DeletePfp(c echo.Context) error {
	const op = "http.routers.DeletePfp"

	log := r.log.With(
		slog.String("op", op),
	)

	if !r.authorized(c) {
		log.Warn("rejected unauthorized delete", slog.String("client_ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("invalid pfp id format", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidIDFormat)
	}

	if err := r.CatalogService.DeletePfp(c.Request().Context(), id); err != nil {
		log.Error("failed to delete pfp", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}

	log.Info("pfp deleted", slog.String("id", id.String()))

	return c.JSON(http.StatusOK, response.Success())
}

// UploadFile godoc
// @Summary Загрузка картинки
// @Description Принимает картинку до 5MB и сохраняет её в директорию загрузок
// @Tags Галерея
// @Accept multipart/form-data
// @Produce json
// @Param x-admin-pass header string true "Пароль администратора"
// @Param file formData file true "Файл картинки (image/*)"
// @Success 200 {object} response.UploadResponse "Ссылка на сохраненный файл"
// @Failure 400 {object} response.ErrorResponse "Нет файла, не картинка или слишком большой файл"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль администратора"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/upload [post]
func (r *Routers) UploadFile(c echo.Context) error {
	const op = "http.routers.UploadFile"

	log := r.log.With(
		slog.String("op", op),
	)

	file, err := c.FormFile("file")
	if err != nil {
		log.Warn("no file in request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrFileRequired)
	}

	log.Debug("got file for upload",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
		slog.String("mime_type", file.Header.Get("Content-Type")))

	// Сначала сохраняем файл и только потом проверяем пароль,
	// как это делал старый фронтенд
	stored, err := r.UploadService.StoreFile(c.Request().Context(), file)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileType) {
			log.Warn("rejected non-image upload", slog.String("filename", file.Filename))
			return c.JSON(http.StatusBadRequest, response.Error(storage.ErrInvalidFileType.Error()))
		}

		if errors.Is(err, storage.ErrFileTooLarge) {
			log.Warn("rejected oversized upload", slog.Int64("size", file.Size))
			return c.JSON(http.StatusBadRequest, response.Error(storage.ErrFileTooLarge.Error()))
		}

		log.Error("failed to store file", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}

	if !r.authorized(c) {
		log.Warn("rejected unauthorized upload", slog.String("client_ip", c.RealIP()))

		if err := r.UploadService.DiscardFile(c.Request().Context(), stored.Name); err != nil {
			log.Error("failed to discard file", sl.Err(err))
		}

		return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
	}

	log.Info("file uploaded",
		slog.String("filename", stored.Name),
		slog.Int64("size", stored.Size))

	return c.JSON(http.StatusOK, response.Uploaded(stored.URL, stored.Name))
}

// ListGallery godoc
// @Summary Галерея загрузок
// @Description Возвращает ссылки на все загруженные картинки
// @Tags Галерея
// @Produce json
// @Success 200 {object} response.ItemsResponse{items=[]models.GalleryImage} "Список картинок"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/gallery [get]
func (r *Routers) ListGallery(c echo.Context) error {
	const op = "http.routers.ListGallery"

	log := r.log.With(
		slog.String("op", op),
	)

	images, err := r.UploadService.ListGallery(c.Request().Context())
	if err != nil {
		log.Error("failed to list gallery", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.Error(err.Error()))
	}

	return c.JSON(http.StatusOK, response.Items(images))
}

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Success())
}
