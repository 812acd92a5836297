package dto

import "github.com/lnadoceria/doceria-api/internal/model"

// CategoryResponse is the wire shape of a category, with package sizes
// decoded from their storage blob.
type CategoryResponse struct {
	model.Category
	PackageSizes []string `json:"packageSizes"`
}

func NewCategoryResponse(c *model.Category) *CategoryResponse {
	return &CategoryResponse{
		Category:     *c,
		PackageSizes: c.PackageSizeList(),
	}
}

func NewCategoryListResponse(categories []model.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(categories))
	for i := range categories {
		out[i] = NewCategoryResponse(&categories[i])
	}
	return out
}
