package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"pfp_gallery/internal/domain/models"
	"pfp_gallery/internal/storage"
	"pfp_gallery/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPfpRepository struct {
	mock.Mock
}

func (m *MockPfpRepository) CreatePfp(ctx context.Context, pfp models.Pfp) (*models.Pfp, error) {
	args := m.Called(ctx, pfp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pfp), args.Error(1)
}

func (m *MockPfpRepository) ListPfps(ctx context.Context) ([]models.Pfp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pfp), args.Error(1)
}

func (m *MockPfpRepository) GetPfp(ctx context.Context, id uuid.UUID) (*models.Pfp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pfp), args.Error(1)
}

func (m *MockPfpRepository) UpdatePfpFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Pfp, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pfp), args.Error(1)
}

func (m *MockPfpRepository) DeletePfp(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
}

func TestCatalogService_AddPfp(t *testing.T) {
	ctx := context.Background()

	t.Run("fills defaults for omitted fields", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		expected := models.Pfp{
			Title:    "Cool cat",
			Author:   models.DefaultAuthor,
			URL:      "https://cdn.local/cat.png",
			Category: models.DefaultCategory,
			Tags:     []string{},
		}

		created := expected
		created.ID = uuid.New()
		created.CreatedAt = time.Now().UTC()

		mockRepo.On("CreatePfp", ctx, expected).Return(&created, nil).Once()

		result, err := service.AddPfp(ctx, dto.CreatePfpRequest{
			Title: "Cool cat",
			URL:   "https://cdn.local/cat.png",
		})
		require.NoError(t, err)

		assert.Equal(t, &created, result)
		assert.Equal(t, "unknown", result.Author)
		assert.Equal(t, "top", result.Category)
		mockRepo.AssertExpectations(t)
	})

	t.Run("keeps provided fields", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		expected := models.Pfp{
			Title:    "Anime girl",
			Author:   "artist",
			URL:      "https://cdn.local/a.png",
			Category: "anime",
			Tags:     []string{"cute", "pink"},
		}

		mockRepo.On("CreatePfp", ctx, expected).Return(&expected, nil).Once()

		result, err := service.AddPfp(ctx, dto.CreatePfpRequest{
			Title:    "Anime girl",
			Author:   "artist",
			URL:      "https://cdn.local/a.png",
			Category: "anime",
			Tags:     []string{"cute", "pink"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"cute", "pink"}, result.Tags)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing title", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		_, err := service.AddPfp(ctx, dto.CreatePfpRequest{URL: "https://cdn.local/x.png"})
		assert.ErrorIs(t, err, ErrValidation)

		mockRepo.AssertNotCalled(t, "CreatePfp", mock.Anything, mock.Anything)
	})

	t.Run("missing url", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		_, err := service.AddPfp(ctx, dto.CreatePfpRequest{Title: "No url"})
		assert.ErrorIs(t, err, ErrValidation)

		mockRepo.AssertNotCalled(t, "CreatePfp", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		mockRepo.On("CreatePfp", ctx, mock.AnythingOfType("models.Pfp")).
			Return(nil, errors.New("db error")).Once()

		_, err := service.AddPfp(ctx, dto.CreatePfpRequest{Title: "t", URL: "u"})
		assert.ErrorContains(t, err, "db error")
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_ListPfps(t *testing.T) {
	ctx := context.Background()

	t.Run("returns catalog entries", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		pfps := []models.Pfp{
			{ID: uuid.New(), Title: "newest"},
			{ID: uuid.New(), Title: "oldest"},
		}
		mockRepo.On("ListPfps", ctx).Return(pfps, nil).Once()

		result, err := service.ListPfps(ctx)
		require.NoError(t, err)
		assert.Equal(t, pfps, result)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		mockRepo.On("ListPfps", ctx).Return(nil, errors.New("db down")).Once()

		_, err := service.ListPfps(ctx)
		assert.ErrorContains(t, err, "db down")
	})
}

func TestCatalogService_UpdatePfp(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("applies only provided fields", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		updated := &models.Pfp{ID: id, Title: "New title"}
		mockRepo.On("UpdatePfpFields", ctx, id, map[string]interface{}{"title": "New title"}).
			Return(updated, nil).Once()

		result, err := service.UpdatePfp(ctx, id, dto.UpdatePfpRequest{Title: "New title"})
		require.NoError(t, err)
		assert.Equal(t, updated, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit empty tags are applied", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		updated := &models.Pfp{ID: id, Tags: []string{}}
		mockRepo.On("UpdatePfpFields", ctx, id, map[string]interface{}{"tags": []string{}}).
			Return(updated, nil).Once()

		tags := []string{}
		result, err := service.UpdatePfp(ctx, id, dto.UpdatePfpRequest{Tags: &tags})
		require.NoError(t, err)
		assert.Equal(t, updated, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty patch returns current state", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		current := &models.Pfp{ID: id, Title: "Unchanged"}
		mockRepo.On("GetPfp", ctx, id).Return(current, nil).Once()

		result, err := service.UpdatePfp(ctx, id, dto.UpdatePfpRequest{})
		require.NoError(t, err)
		assert.Equal(t, current, result)

		mockRepo.AssertNotCalled(t, "UpdatePfpFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id gives nil without error", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		mockRepo.On("UpdatePfpFields", ctx, id, mock.Anything).
			Return(nil, storage.ErrPfpNotFound).Once()

		result, err := service.UpdatePfp(ctx, id, dto.UpdatePfpRequest{Title: "x"})
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		mockRepo.On("UpdatePfpFields", ctx, id, mock.Anything).
			Return(nil, errors.New("db error")).Once()

		_, err := service.UpdatePfp(ctx, id, dto.UpdatePfpRequest{Title: "x"})
		assert.ErrorContains(t, err, "db error")
	})
}

func TestCatalogService_DeletePfp(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		mockRepo.On("DeletePfp", ctx, id).Return(nil).Once()

		err := service.DeletePfp(ctx, id)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo := new(MockPfpRepository)
		service := NewCatalogService(newTestLogger(), mockRepo)

		mockRepo.On("DeletePfp", ctx, id).Return(errors.New("db error")).Once()

		err := service.DeletePfp(ctx, id)
		assert.ErrorContains(t, err, "db error")
	})
}
