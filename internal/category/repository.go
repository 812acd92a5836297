package category

import (
	"context"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id string) error
	SearchByName(ctx context.Context, query string, page, pageSize int) ([]model.Category, int, error)
}
