package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/apperror"
	"github.com/lnadoceria/doceria-api/internal/model"
	"github.com/lnadoceria/doceria-api/internal/platform/cache"
	"github.com/lnadoceria/doceria-api/internal/platform/logger"
	"github.com/lnadoceria/doceria-api/internal/section"
	"github.com/lnadoceria/doceria-api/internal/section/dto"
)

type sectionUseCase struct {
	repo       section.Repository
	products   section.ProductFinder
	categories section.CategoryFinder
	cache      *cache.RedisClient
	logger     logger.ZapLogger
	now        func() time.Time
}

// NewSectionUseCase wires the display-section flows. cache may be nil.
func NewSectionUseCase(
	repo section.Repository,
	products section.ProductFinder,
	categories section.CategoryFinder,
	cache *cache.RedisClient,
	log logger.ZapLogger,
) section.UseCase {
	return &sectionUseCase{
		repo:       repo,
		products:   products,
		categories: categories,
		cache:      cache,
		logger:     log,
		now:        time.Now,
	}
}

// validateWrite runs the cross-reference and shape checks shared by every
// section write.
func (uc *sectionUseCase) validateWrite(ctx context.Context, s *model.DisplaySection) error {
	if !model.ValidSectionType(s.Type) {
		return apperror.Validation(
			"invalid section type %q: allowed values are %s",
			s.Type, strings.Join(model.SectionTypes, ", "),
		)
	}

	if s.Type == model.SectionTypeCategory && s.CategoryID != nil && *s.CategoryID != "" {
		cat, err := uc.categories.FindByID(ctx, *s.CategoryID)
		if err != nil {
			return apperror.Store(err)
		}
		if cat == nil {
			return apperror.Validation("category %s not found", *s.CategoryID)
		}
	}

	if s.Type == model.SectionTypeCustom {
		ids := s.ProductIDList()
		if len(ids) > 0 {
			count, err := uc.products.CountByIDs(ctx, ids)
			if err != nil {
				return apperror.Store(err)
			}
			if count != len(ids) {
				return apperror.Validation("section %q has invalid product ids", s.Title)
			}
		}
	}

	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return apperror.Validation("startDate must not be after endDate")
	}

	return nil
}

func (uc *sectionUseCase) buildSection(input *dto.CreateSectionInput, now time.Time) *model.DisplaySection {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	return &model.DisplaySection{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:      input.Title,
		Type:       input.Type,
		Active:     active,
		CategoryID: input.CategoryID,
		ProductIDs: model.EncodeStringList(input.ProductIDs),
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Tags:       model.EncodeStringList(input.Tags),
	}
}

func (uc *sectionUseCase) CreateSection(ctx context.Context, input *dto.CreateSectionInput) (*dto.SectionResponse, error) {
	s := uc.buildSection(input, uc.now())

	if input.SortOrder != nil {
		s.SortOrder = *input.SortOrder
	} else {
		next, err := uc.repo.NextSortOrder(ctx)
		if err != nil {
			return nil, apperror.Store(err)
		}
		s.SortOrder = next
	}

	if err := uc.validateWrite(ctx, s); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, apperror.Store(err)
	}

	uc.invalidateCache()
	uc.logger.Info("display section created",
		zap.String("id", s.ID), zap.String("type", s.Type))
	return dto.NewSectionResponse(s), nil
}

// applyUpdate merges input into the stored section. Order is only touched
// when the client supplies one.
func applyUpdate(s *model.DisplaySection, input *dto.UpdateSectionInput, now time.Time) {
	if input.Title != nil && *input.Title != "" {
		s.Title = *input.Title
	}
	if input.Type != nil && *input.Type != "" {
		s.Type = *input.Type
	}
	if input.Active != nil {
		s.Active = *input.Active
	}
	if input.CategoryID != nil {
		if *input.CategoryID == "" {
			s.CategoryID = nil
		} else {
			s.CategoryID = input.CategoryID
		}
	}
	if input.ProductIDs != nil {
		s.ProductIDs = model.EncodeStringList(*input.ProductIDs)
	}
	if input.SortOrder != nil {
		s.SortOrder = *input.SortOrder
	}
	if input.StartDate != nil {
		s.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		s.EndDate = input.EndDate
	}
	if input.Tags != nil {
		s.Tags = model.EncodeStringList(*input.Tags)
	}
	s.UpdatedAt = now
}

func (uc *sectionUseCase) updateOne(ctx context.Context, input *dto.UpdateSectionInput) (*model.DisplaySection, error) {
	s, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if s == nil {
		return nil, apperror.NotFound("display section not found")
	}

	applyUpdate(s, input, uc.now())

	if err := uc.validateWrite(ctx, s); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, apperror.Store(err)
	}
	return s, nil
}

func (uc *sectionUseCase) UpdateSection(ctx context.Context, input *dto.UpdateSectionInput) (*dto.SectionResponse, error) {
	s, err := uc.updateOne(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.invalidateCache()
	return dto.NewSectionResponse(s), nil
}

func (uc *sectionUseCase) DeleteSection(ctx context.Context, id string) error {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Store(err)
	}
	if s == nil {
		return apperror.NotFound("display section not found")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(err)
	}
	uc.invalidateCache()
	uc.logger.Info("display section deleted", zap.String("id", id))
	return nil
}

// UpdateSections is the tolerant bulk contract: each section validates and
// commits on its own, failures are collected instead of aborting the batch.
func (uc *sectionUseCase) UpdateSections(ctx context.Context, inputs []dto.UpdateSectionInput) (*dto.BatchUpdateResponse, error) {
	resp := &dto.BatchUpdateResponse{
		UpdatedSections: []dto.SectionResponse{},
	}

	for i := range inputs {
		input := &inputs[i]
		if input.ID == "" {
			resp.Errors = append(resp.Errors, dto.SectionError{
				ID:    "",
				Error: "section id is required",
			})
			continue
		}

		s, err := uc.updateOne(ctx, input)
		if err != nil {
			reason := err.Error()
			if appErr := apperror.As(err); appErr != nil {
				reason = appErr.Message
			}
			uc.logger.Warn("bulk section update failed",
				zap.String("id", input.ID), zap.Error(err))
			resp.Errors = append(resp.Errors, dto.SectionError{
				ID:    input.ID,
				Error: reason,
			})
			continue
		}
		resp.UpdatedSections = append(resp.UpdatedSections, *dto.NewSectionResponse(s))
	}

	resp.Success = len(resp.Errors) == 0
	uc.invalidateCache()
	return resp, nil
}

// ReplaceSections is the atomic bulk contract: every input is validated up
// front and the delete-all-plus-recreate runs in one transaction, so readers
// never observe an empty or partial set.
func (uc *sectionUseCase) ReplaceSections(ctx context.Context, inputs []dto.CreateSectionInput) ([]dto.SectionResponse, error) {
	now := uc.now()
	sections := make([]model.DisplaySection, 0, len(inputs))

	for i := range inputs {
		input := &inputs[i]
		s := uc.buildSection(input, now)
		if input.SortOrder != nil {
			s.SortOrder = *input.SortOrder
		} else {
			s.SortOrder = i
		}
		if err := uc.validateWrite(ctx, s); err != nil {
			return nil, err
		}
		sections = append(sections, *s)
	}

	if err := uc.repo.ReplaceAll(ctx, sections); err != nil {
		return nil, apperror.Store(err)
	}

	uc.invalidateCache()
	uc.logger.Info("display sections replaced", zap.Int("count", len(sections)))

	out := make([]dto.SectionResponse, len(sections))
	for i := range sections {
		out[i] = *dto.NewSectionResponse(&sections[i])
	}
	return out, nil
}

func (uc *sectionUseCase) invalidateCache() {
	if uc.cache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := uc.cache.DeleteByPattern(ctx, "display:settings:*"); err != nil {
			uc.logger.Warn("failed to invalidate display cache", zap.Error(err))
		}
	}()
}
