package section

import (
	"context"

	"github.com/lnadoceria/doceria-api/internal/section/dto"
)

type UseCase interface {
	// GetDisplaySettings resolves the currently active sections for the
	// homepage, paginated over sections.
	GetDisplaySettings(ctx context.Context, page, limit int) (*dto.DisplaySettingsResponse, error)

	CreateSection(ctx context.Context, input *dto.CreateSectionInput) (*dto.SectionResponse, error)
	UpdateSection(ctx context.Context, input *dto.UpdateSectionInput) (*dto.SectionResponse, error)
	DeleteSection(ctx context.Context, id string) error

	// UpdateSections applies a batch section-by-section: one bad section is
	// reported, the rest still commit.
	UpdateSections(ctx context.Context, inputs []dto.UpdateSectionInput) (*dto.BatchUpdateResponse, error)

	// ReplaceSections swaps the full section set in one transaction.
	ReplaceSections(ctx context.Context, inputs []dto.CreateSectionInput) ([]dto.SectionResponse, error)
}
