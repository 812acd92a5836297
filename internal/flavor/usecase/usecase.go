package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/flavor"
	"github.com/lnadoceria/doceria-api/internal/flavor/dto"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
)

type flavorUseCase struct {
	repo       flavor.Repository
	categories flavor.CategoryFinder
	logger     logger.ZapLogger
}

func NewFlavorUseCase(repo flavor.Repository, categories flavor.CategoryFinder, log logger.ZapLogger) flavor.UseCase {
	return &flavorUseCase{
		repo:       repo,
		categories: categories,
		logger:     log,
	}
}

func (uc *flavorUseCase) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	cat, err := uc.categories.FindByID(ctx, *categoryID)
	if err != nil {
		return apperror.Store(err)
	}
	if cat == nil {
		return apperror.NotFound("category not found")
	}
	return nil
}

// attachCategory fills the joined category for responses. A lookup failure
// here only drops the embed, it never fails the request.
func (uc *flavorUseCase) attachCategory(ctx context.Context, f *model.Flavor) {
	if f.CategoryID == nil || *f.CategoryID == "" {
		return
	}
	cat, err := uc.categories.FindByID(ctx, *f.CategoryID)
	if err != nil {
		uc.logger.Warn("failed to load flavor category",
			zap.String("flavorId", f.ID), zap.Error(err))
		return
	}
	f.Category = cat
}

func (uc *flavorUseCase) CreateFlavor(ctx context.Context, input *dto.CreateFlavorInput) (*model.Flavor, error) {
	if err := uc.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	f := &model.Flavor{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       input.Name,
		ImageURL:   input.ImageURL,
		CategoryID: input.CategoryID,
	}

	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, apperror.Store(err)
	}

	uc.logger.Info("flavor created", zap.String("id", f.ID), zap.String("name", f.Name))
	return f, nil
}

func (uc *flavorUseCase) GetFlavor(ctx context.Context, id string) (*model.Flavor, error) {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if f == nil {
		return nil, apperror.NotFound("flavor not found")
	}
	uc.attachCategory(ctx, f)
	return f, nil
}

func (uc *flavorUseCase) ListFlavors(ctx context.Context, categoryID string) ([]model.Flavor, error) {
	flavors, err := uc.repo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	for i := range flavors {
		uc.attachCategory(ctx, &flavors[i])
	}
	return flavors, nil
}

// ListFlavorsByCategory differs from ListFlavors with a filter: the category
// must exist, absent categories are a 404.
func (uc *flavorUseCase) ListFlavorsByCategory(ctx context.Context, categoryID string) ([]model.Flavor, error) {
	cat, err := uc.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if cat == nil {
		return nil, apperror.NotFound("category not found")
	}

	flavors, err := uc.repo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return flavors, nil
}

func (uc *flavorUseCase) UpdateFlavor(ctx context.Context, input *dto.UpdateFlavorInput) (*model.Flavor, error) {
	f, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if f == nil {
		return nil, apperror.NotFound("flavor not found")
	}

	if input.CategoryID != nil {
		if err := uc.checkCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
		f.CategoryID = input.CategoryID
	}
	if input.Name != nil && *input.Name != "" {
		f.Name = *input.Name
	}
	if input.ImageURL != nil {
		f.ImageURL = input.ImageURL
	}
	f.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, apperror.Store(err)
	}
	uc.attachCategory(ctx, f)
	return f, nil
}

func (uc *flavorUseCase) DeleteFlavor(ctx context.Context, id string) error {
	f, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Store(err)
	}
	if f == nil {
		return apperror.NotFound("flavor not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(err)
	}
	uc.logger.Info("flavor deleted", zap.String("id", id))
	return nil
}
