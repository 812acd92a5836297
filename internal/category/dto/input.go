package dto

import "github.com/lnadoceria/doceria-api/internal/types"

type CreateCategoryInput struct {
	Name         string           `json:"name" validate:"required"`
	SellingType  string           `json:"sellingType"`
	PackageSizes types.StringList `json:"packageSizes"`
}

type UpdateCategoryInput struct {
	ID           string            `json:"-"`
	Name         *string           `json:"name"`
	SellingType  *string           `json:"sellingType"`
	PackageSizes *types.StringList `json:"packageSizes"`
}
