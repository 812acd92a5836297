package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/section/dto"
)

const (
	// resolvedProductCap bounds the product list of computed sections.
	resolvedProductCap = 10
	// newArrivalWindow is how far back "new arrivals" looks.
	newArrivalWindow = 30 * 24 * time.Hour

	cacheTTL = 5 * time.Minute
)

func cacheKey(page, limit int) string {
	return fmt.Sprintf("display:settings:p%d:l%d", page, limit)
}

func (uc *sectionUseCase) GetDisplaySettings(ctx context.Context, page, limit int) (*dto.DisplaySettingsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	if cached := uc.cachedSettings(ctx, page, limit); cached != nil {
		return cached, nil
	}

	all, err := uc.repo.FindAllOrdered(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}

	now := uc.now()

	active := make([]model.DisplaySection, 0, len(all))
	for _, s := range all {
		if s.ActiveAt(now) {
			active = append(active, s)
		}
	}
	total := len(active)

	// Pagination applies to the active-section list, not to products.
	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	take := limit
	if skip+take > total {
		take = total - skip
	}
	window := active[skip : skip+take]

	resolved := make([]dto.ResolvedSection, 0, len(window))
	for i := range window {
		s := &window[i]
		uc.attachCategory(ctx, s)
		products, err := uc.resolveProducts(ctx, s, now)
		if err != nil {
			// Partial failure: this section renders empty, the rest of the
			// page is unaffected.
			uc.logger.Warn("section resolution failed",
				zap.String("id", s.ID),
				zap.String("type", s.Type),
				zap.Error(err),
			)
			products = []model.Product{}
		}
		resolved = append(resolved, dto.ResolvedSection{
			SectionResponse: *dto.NewSectionResponse(s),
			Products:        products,
		})
	}

	resp := &dto.DisplaySettingsResponse{
		Sections: resolved,
		Total:    total,
		Page:     page,
		Limit:    limit,
		HasMore:  page*limit < total,
	}

	uc.storeSettings(ctx, page, limit, resp)
	return resp, nil
}

// attachCategory embeds the joined category for sections that reference one.
// A lookup failure only drops the embed, it never fails the read.
func (uc *sectionUseCase) attachCategory(ctx context.Context, s *model.DisplaySection) {
	if s.CategoryID == nil || *s.CategoryID == "" {
		return
	}
	cat, err := uc.categories.FindByID(ctx, *s.CategoryID)
	if err != nil {
		uc.logger.Warn("failed to load section category",
			zap.String("id", s.ID), zap.Error(err))
		return
	}
	s.Category = cat
}

// resolveProducts computes the concrete product list for one section.
func (uc *sectionUseCase) resolveProducts(ctx context.Context, s *model.DisplaySection, now time.Time) ([]model.Product, error) {
	switch s.Type {
	case model.SectionTypeCategory:
		if s.CategoryID == nil || *s.CategoryID == "" {
			return []model.Product{}, nil
		}
		return uc.products.FindActiveByCategory(ctx, *s.CategoryID, resolvedProductCap)

	case model.SectionTypeCustom:
		ids := s.ProductIDList()
		if len(ids) == 0 {
			return []model.Product{}, nil
		}
		found, err := uc.products.FindActiveByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return orderByRequested(ids, found), nil

	case model.SectionTypeDiscounted:
		return uc.products.FindDiscounted(ctx, resolvedProductCap)

	case model.SectionTypeNewArrivals:
		return uc.products.FindCreatedSince(ctx, now.Add(-newArrivalWindow), resolvedProductCap)

	default:
		return nil, fmt.Errorf("unknown section type %q", s.Type)
	}
}

// orderByRequested re-sorts found products to the order the section asked
// for; ids without a matching active product are dropped.
func orderByRequested(ids []string, found []model.Product) []model.Product {
	byID := make(map[string]*model.Product, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	out := make([]model.Product, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

func (uc *sectionUseCase) cachedSettings(ctx context.Context, page, limit int) *dto.DisplaySettingsResponse {
	if uc.cache == nil {
		return nil
	}
	val, err := uc.cache.Client.Get(ctx, cacheKey(page, limit)).Result()
	if err != nil {
		return nil
	}
	var resp dto.DisplaySettingsResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil
	}
	return &resp
}

func (uc *sectionUseCase) storeSettings(ctx context.Context, page, limit int, resp *dto.DisplaySettingsResponse) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := uc.cache.Client.Set(ctx, cacheKey(page, limit), raw, cacheTTL).Err(); err != nil {
		uc.logger.Warn("failed to cache display settings", zap.Error(err))
	}
}
