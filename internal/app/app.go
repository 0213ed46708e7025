package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "pfp_gallery/internal/app/http"
	"pfp_gallery/internal/config"
	"pfp_gallery/internal/repository"
	"pfp_gallery/internal/services/auth"
	catalog "pfp_gallery/internal/services/catalog_service"
	upload "pfp_gallery/internal/services/upload_service"
	storage "pfp_gallery/internal/storage/filestorage"
	httprouters "pfp_gallery/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Repo       *repository.Repository
	log        *slog.Logger
}

// New собирает приложение: базу, файловое хранилище, сервисы и http-сервер
func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := repo.Migrate(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fileStorage, err := storage.NewLocalFileStorage(cfg.FileStorage.BaseDir, cfg.FileStorage.BaseURL)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	catalogService := catalog.NewCatalogService(log, repo.Pfps)
	uploadService := upload.NewUploadService(log, fileStorage, cfg.FileStorage.MaxSize)
	guard := auth.New(cfg.AdminPass)

	routers := httprouters.NewRouter(log, catalogService, uploadService, guard)

	server := httpapp.New(log, cfg, routers)

	return &App{
		HTTPServer: server,
		Repo:       repo,
		log:        log,
	}, nil
}

func (a *App) Stop() error {
	if err := a.HTTPServer.Stop(); err != nil {
		return err
	}

	a.Repo.Close()

	return nil
}
