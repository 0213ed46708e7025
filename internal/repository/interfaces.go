package repository

import (
	"context"

	"pfp_gallery/internal/domain/models"

	"github.com/google/uuid"
)

type PfpRepository interface {
	CreatePfp(ctx context.Context, pfp models.Pfp) (*models.Pfp, error)
	ListPfps(ctx context.Context) ([]models.Pfp, error)
	GetPfp(ctx context.Context, id uuid.UUID) (*models.Pfp, error)
	UpdatePfpFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Pfp, error)
	DeletePfp(ctx context.Context, id uuid.UUID) error
}
