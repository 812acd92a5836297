package dto

import "github.com/lnadoceria/doceria-api/internal/types"

type CreateProductInput struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       float64          `json:"price" validate:"required,gt=0"`
	Discount    float64          `json:"discount" validate:"gte=0"`
	ImageURL    *string          `json:"imageUrl"`
	CategoryIDs types.StringList `json:"categoryIds"`
}

type UpdateProductInput struct {
	ID          string            `json:"-"`
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	Discount    *float64          `json:"discount"`
	ImageURL    *string           `json:"imageUrl"`
	Active      *bool             `json:"active"`
	CategoryIDs *types.StringList `json:"categoryIds"`
}
