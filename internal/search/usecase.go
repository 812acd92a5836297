package search

import (
	"context"

	"github.com/lnadoceria/doceria-api/internal/search/dto"
)

type UseCase interface {
	SearchProducts(ctx context.Context, query string, page, perPage int) (*dto.Response, error)
	SearchCategories(ctx context.Context, query string, page, perPage int) (*dto.Response, error)
	SearchFlavors(ctx context.Context, query string, page, perPage int) (*dto.Response, error)
}
