package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/cache"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/platform/search"
	"github.com/lnadoceria/doceria-api/internal/product"
	"github.com/lnadoceria/doceria-api/internal/product/dto"
)

// ProductIndex is the Elasticsearch index products are mirrored into.
const ProductIndex = "products"

const productMapping = `{
	"mappings": {
		"properties": {
			"name": { "type": "text" },
			"description": { "type": "text" },
			"price": { "type": "double" },
			"discount": { "type": "double" },
			"active": { "type": "boolean" },
			"createdAt": { "type": "date" }
		}
	}
}`

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

// NewProductUseCase wires the product flows. cache and es may be nil; both
// are optional collaborators.
func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if err := uc.checkCategories(ctx, input.CategoryIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Discount:    input.Discount,
		ImageURL:    input.ImageURL,
		Active:      true,
	}

	if err := uc.repo.Create(ctx, p, input.CategoryIDs); err != nil {
		return nil, apperror.Store(err)
	}

	uc.afterWrite(p, false)
	uc.attachCategories(ctx, p)
	uc.logger.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if p == nil {
		return nil, apperror.NotFound("product not found")
	}
	uc.attachCategories(ctx, p)
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	for i := range products {
		uc.attachCategories(ctx, &products[i])
	}
	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if p == nil {
		return nil, apperror.NotFound("product not found")
	}

	if input.Name != nil && *input.Name != "" {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, apperror.Validation("price must be greater than zero")
		}
		p.Price = *input.Price
	}
	if input.Discount != nil {
		if *input.Discount < 0 {
			return nil, apperror.Validation("discount cannot be negative")
		}
		p.Discount = *input.Discount
	}
	if input.ImageURL != nil {
		p.ImageURL = input.ImageURL
	}
	if input.Active != nil {
		p.Active = *input.Active
	}
	p.UpdatedAt = time.Now()

	var categoryIDs []string
	if input.CategoryIDs != nil {
		categoryIDs = *input.CategoryIDs
		if categoryIDs == nil {
			categoryIDs = []string{}
		}
		if err := uc.checkCategories(ctx, categoryIDs); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, p, categoryIDs); err != nil {
		return nil, apperror.Store(err)
	}

	uc.afterWrite(p, false)
	uc.attachCategories(ctx, p)
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Store(err)
	}
	if p == nil {
		return apperror.NotFound("product not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(err)
	}

	uc.afterWrite(p, true)
	uc.logger.Info("product deleted", zap.String("id", id))
	return nil
}

// checkCategories verifies each referenced category exists. A dangling
// reference would otherwise fail at insert time with an opaque constraint
// error.
func (uc *productUseCase) checkCategories(ctx context.Context, categoryIDs []string) error {
	for _, id := range categoryIDs {
		if id == "" {
			return apperror.Validation("category id cannot be empty")
		}
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	count, err := uc.repo.CountCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return apperror.Store(err)
	}
	if count != len(categoryIDs) {
		return apperror.Validation("one or more category ids do not exist")
	}
	return nil
}

func (uc *productUseCase) attachCategories(ctx context.Context, p *model.Product) {
	categories, err := uc.repo.FindCategories(ctx, p.ID)
	if err != nil {
		uc.logger.Warn("failed to load product categories",
			zap.String("productId", p.ID), zap.Error(err))
		return
	}
	p.Categories = categories
}

// afterWrite invalidates the resolved display-settings cache and mirrors the
// product into the search index. Both run detached from the request.
func (uc *productUseCase) afterWrite(p *model.Product, deleted bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if uc.cache != nil {
			if err := uc.cache.DeleteByPattern(ctx, "display:settings:*"); err != nil {
				uc.logger.Warn("failed to invalidate display cache", zap.Error(err))
			}
		}

		if uc.es == nil {
			return
		}
		if deleted {
			if err := uc.es.Delete(ctx, ProductIndex, p.ID); err != nil {
				uc.logger.Warn("failed to remove product from index",
					zap.String("id", p.ID), zap.Error(err))
			}
			return
		}
		_ = uc.es.CreateIndex(ctx, ProductIndex, productMapping)
		if err := uc.es.Index(ctx, ProductIndex, p.ID, p); err != nil {
			uc.logger.Warn("failed to index product",
				zap.String("id", p.ID), zap.Error(err))
		}
	}()
}
