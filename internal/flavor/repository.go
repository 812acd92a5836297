package flavor

import (
	"context"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type Repository interface {
	Create(ctx context.Context, flavor *model.Flavor) error
	FindByID(ctx context.Context, id string) (*model.Flavor, error)
	FindAll(ctx context.Context, categoryID string) ([]model.Flavor, error)
	Update(ctx context.Context, flavor *model.Flavor) error
	Delete(ctx context.Context, id string) error
	SearchByName(ctx context.Context, query string, page, pageSize int) ([]model.Flavor, int, error)
}

// CategoryFinder is the slice of the category store the flavor flows need for
// cross-reference checks.
type CategoryFinder interface {
	FindByID(ctx context.Context, id string) (*model.Category, error)
}
