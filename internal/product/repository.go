package product

import (
	"context"
	"time"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product, categoryIDs []string) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product, categoryIDs []string) error
	Delete(ctx context.Context, id string) error

	// CountByIDs reports how many of ids exist, for cross-reference checks.
	CountByIDs(ctx context.Context, ids []string) (int, error)
	// CountCategoriesByIDs reports how many of the referenced categories exist.
	CountCategoriesByIDs(ctx context.Context, ids []string) (int, error)
	FindCategories(ctx context.Context, productID string) ([]model.Category, error)

	// Section resolver queries. All restrict to active products.
	FindActiveByCategory(ctx context.Context, categoryID string, limit int) ([]model.Product, error)
	FindActiveByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	FindDiscounted(ctx context.Context, limit int) ([]model.Product, error)
	FindCreatedSince(ctx context.Context, since time.Time, limit int) ([]model.Product, error)

	// SearchActive returns name matches and secondary matches (description,
	// category name, flavor name) separately so callers can rank them.
	SearchActive(ctx context.Context, query string) ([]model.Product, []model.Product, error)
}
