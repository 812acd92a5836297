package section

import (
	"context"
	"time"

	"github.com/lnadoceria/doceria-api/internal/model"
)

type Repository interface {
	Create(ctx context.Context, section *model.DisplaySection) error
	FindByID(ctx context.Context, id string) (*model.DisplaySection, error)
	// FindAllOrdered returns every section sorted by sort_order ascending,
	// created_at ascending as the stable tie-break.
	FindAllOrdered(ctx context.Context) ([]model.DisplaySection, error)
	Update(ctx context.Context, section *model.DisplaySection) error
	Delete(ctx context.Context, id string) error
	// NextSortOrder is max(sort_order)+1, or 0 when no sections exist.
	NextSortOrder(ctx context.Context) (int, error)
	// ReplaceAll atomically swaps the whole section set. Readers never see a
	// partially replaced state.
	ReplaceAll(ctx context.Context, sections []model.DisplaySection) error
}

// ProductFinder is the slice of the product store the resolver needs.
type ProductFinder interface {
	FindActiveByCategory(ctx context.Context, categoryID string, limit int) ([]model.Product, error)
	FindActiveByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	FindDiscounted(ctx context.Context, limit int) ([]model.Product, error)
	FindCreatedSince(ctx context.Context, since time.Time, limit int) ([]model.Product, error)
	CountByIDs(ctx context.Context, ids []string) (int, error)
}

// CategoryFinder checks category cross-references on the write path.
type CategoryFinder interface {
	FindByID(ctx context.Context, id string) (*model.Category, error)
}
