package dto

import "github.com/lnadoceria/doceria-api/internal/model"

// SectionResponse is the wire shape of a section: the stored record with
// product ids and tags decoded from their storage blobs.
type SectionResponse struct {
	model.DisplaySection
	ProductIDs []string `json:"productIds"`
	Tags       []string `json:"tags"`
}

func NewSectionResponse(s *model.DisplaySection) *SectionResponse {
	return &SectionResponse{
		DisplaySection: *s,
		ProductIDs:     s.ProductIDList(),
		Tags:           s.TagList(),
	}
}

// ResolvedSection is a section enriched with its concrete product list.
type ResolvedSection struct {
	SectionResponse
	Products []model.Product `json:"products"`
}

type DisplaySettingsResponse struct {
	Sections []ResolvedSection `json:"sections"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	HasMore  bool              `json:"hasMore"`
}

type SectionError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type BatchUpdateResponse struct {
	Success         bool              `json:"success"`
	UpdatedSections []SectionResponse `json:"updatedSections"`
	Errors          []SectionError    `json:"errors,omitempty"`
}
