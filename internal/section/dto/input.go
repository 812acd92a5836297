package dto

import (
	"time"

	"github.com/lnadoceria/doceria-api/internal/types"
)

type CreateSectionInput struct {
	Title      string           `json:"title" validate:"required"`
	Type       string           `json:"type" validate:"required"`
	Active     *bool            `json:"active"`
	CategoryID *string          `json:"categoryId"`
	ProductIDs types.StringList `json:"productIds"`
	SortOrder  *int             `json:"order"`
	StartDate  *time.Time       `json:"startDate"`
	EndDate    *time.Time       `json:"endDate"`
	Tags       types.StringList `json:"tags"`
}

type UpdateSectionInput struct {
	ID         string            `json:"id"`
	Title      *string           `json:"title"`
	Type       *string           `json:"type"`
	Active     *bool             `json:"active"`
	CategoryID *string           `json:"categoryId"`
	ProductIDs *types.StringList `json:"productIds"`
	SortOrder  *int              `json:"order"`
	StartDate  *time.Time        `json:"startDate"`
	EndDate    *time.Time        `json:"endDate"`
	Tags       *types.StringList `json:"tags"`
}
