package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/category"
	"github.com/lnadoceria/doceria-api/internal/category/dto"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func validateSellingType(t string) error {
	if t != model.SellingTypeUnit && t != model.SellingTypePackage {
		return apperror.Validation(
			"invalid selling type %q: allowed values are %s",
			t, strings.Join([]string{model.SellingTypeUnit, model.SellingTypePackage}, ", "),
		)
	}
	return nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	sellingType := input.SellingType
	if sellingType == "" {
		sellingType = model.SellingTypeUnit
	}
	if err := validateSellingType(sellingType); err != nil {
		return nil, err
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         input.Name,
		SellingType:  sellingType,
		PackageSizes: model.EncodeStringList(input.PackageSizes),
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, apperror.Store(err)
	}

	uc.logger.Info("category created", zap.String("id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if cat == nil {
		return nil, apperror.NotFound("category not found")
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return categories, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if cat == nil {
		return nil, apperror.NotFound("category not found")
	}

	if input.Name != nil && *input.Name != "" {
		cat.Name = *input.Name
	}
	if input.SellingType != nil && *input.SellingType != "" {
		if err := validateSellingType(*input.SellingType); err != nil {
			return nil, err
		}
		cat.SellingType = *input.SellingType
	}
	if input.PackageSizes != nil {
		if len(*input.PackageSizes) == 0 {
			cat.PackageSizes = nil
		} else {
			cat.PackageSizes = model.EncodeStringList(*input.PackageSizes)
		}
	}
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, apperror.Store(err)
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Store(err)
	}
	if cat == nil {
		return apperror.NotFound("category not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(err)
	}
	uc.logger.Info("category deleted", zap.String("id", id))
	return nil
}
