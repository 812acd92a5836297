package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/category"
	"github.com/lnadoceria/doceria-api/internal/flavor"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	essearch "github.com/lnadoceria/doceria-api/internal/platform/search"
	"github.com/lnadoceria/doceria-api/internal/product"
	productuc "github.com/lnadoceria/doceria-api/internal/product/usecase"
	"github.com/lnadoceria/doceria-api/internal/search"
	"github.com/lnadoceria/doceria-api/internal/search/dto"
)

type searchUseCase struct {
	products   product.Repository
	categories category.Repository
	flavors    flavor.Repository
	es         *essearch.Client
	logger     logger.ZapLogger
}

// NewSearchUseCase wires the storefront search flows. es may be nil, in
// which case product search stays on SQL.
func NewSearchUseCase(
	products product.Repository,
	categories category.Repository,
	flavors flavor.Repository,
	es *essearch.Client,
	log logger.ZapLogger,
) search.UseCase {
	return &searchUseCase{
		products:   products,
		categories: categories,
		flavors:    flavors,
		es:         es,
		logger:     log,
	}
}

func normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}
	return page, perPage
}

func (uc *searchUseCase) SearchProducts(ctx context.Context, query string, page, perPage int) (*dto.Response, error) {
	if query == "" {
		return nil, apperror.Validation("search query cannot be empty")
	}
	page, perPage = normalize(page, perPage)

	if uc.es != nil {
		resp, err := uc.searchProductsES(ctx, query, page, perPage)
		if err == nil {
			return resp, nil
		}
		// ES being down is not a reason to fail the request.
		uc.logger.Warn("elasticsearch query failed, falling back to sql", zap.Error(err))
	}

	return uc.searchProductsSQL(ctx, query, page, perPage)
}

func (uc *searchUseCase) searchProductsES(ctx context.Context, query string, page, perPage int) (*dto.Response, error) {
	esQuery := fmt.Sprintf(`{
		"query": {
			"bool": {
				"must": {
					"multi_match": {
						"query": %s,
						"fields": ["name^2", "description"]
					}
				},
				"filter": { "term": { "active": true } }
			}
		}
	}`, mustJSON(query))

	ids, total, err := uc.es.SearchIDs(ctx, productuc.ProductIndex, esQuery, (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	found, err := uc.products.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Store(err)
	}

	// Keep ES score order.
	byID := make(map[string]*model.Product, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}
	ordered := make([]model.Product, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, *p)
		}
	}

	return &dto.Response{
		Data:       ordered,
		Pagination: dto.NewPagination(total, page, perPage),
	}, nil
}

// searchProductsSQL ranks exact-name matches ahead of description, category
// and flavor matches, then paginates the combined list.
func (uc *searchUseCase) searchProductsSQL(ctx context.Context, query string, page, perPage int) (*dto.Response, error) {
	nameMatches, otherMatches, err := uc.products.SearchActive(ctx, query)
	if err != nil {
		return nil, apperror.Store(err)
	}

	all := append(nameMatches, otherMatches...)
	total := len(all)

	skip := (page - 1) * perPage
	if skip > total {
		skip = total
	}
	end := skip + perPage
	if end > total {
		end = total
	}

	return &dto.Response{
		Data:       all[skip:end],
		Pagination: dto.NewPagination(total, page, perPage),
	}, nil
}

func (uc *searchUseCase) SearchCategories(ctx context.Context, query string, page, perPage int) (*dto.Response, error) {
	if query == "" {
		return nil, apperror.Validation("search query cannot be empty")
	}
	page, perPage = normalize(page, perPage)

	categories, total, err := uc.categories.SearchByName(ctx, query, page, perPage)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.Response{
		Data:       categories,
		Pagination: dto.NewPagination(total, page, perPage),
	}, nil
}

func (uc *searchUseCase) SearchFlavors(ctx context.Context, query string, page, perPage int) (*dto.Response, error) {
	if query == "" {
		return nil, apperror.Validation("search query cannot be empty")
	}
	page, perPage = normalize(page, perPage)

	flavors, total, err := uc.flavors.SearchByName(ctx, query, page, perPage)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.Response{
		Data:       flavors,
		Pagination: dto.NewPagination(total, page, perPage),
	}, nil
}

func mustJSON(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}
