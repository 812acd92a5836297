package flavor

import (
	"context"

	"github.com/lnadoceria/doceria-api/internal/flavor/dto"
	"github.com/lnadoceria/doceria-api/internal/model"
)

type UseCase interface {
	CreateFlavor(ctx context.Context, input *dto.CreateFlavorInput) (*model.Flavor, error)
	GetFlavor(ctx context.Context, id string) (*model.Flavor, error)
	ListFlavors(ctx context.Context, categoryID string) ([]model.Flavor, error)
	ListFlavorsByCategory(ctx context.Context, categoryID string) ([]model.Flavor, error)
	UpdateFlavor(ctx context.Context, input *dto.UpdateFlavorInput) (*model.Flavor, error)
	DeleteFlavor(ctx context.Context, id string) error
}
