package model

import "time"

const (
	SectionTypeCategory    = "category"
	SectionTypeCustom      = "custom"
	SectionTypeDiscounted  = "discounted"
	SectionTypeNewArrivals = "new_arrivals"
)

// SectionTypes lists the valid display section types, in declaration order.
var SectionTypes = []string{
	SectionTypeCategory,
	SectionTypeCustom,
	SectionTypeDiscounted,
	SectionTypeNewArrivals,
}

func ValidSectionType(t string) bool {
	for _, s := range SectionTypes {
		if s == t {
			return true
		}
	}
	return false
}

// DisplaySection is one configured homepage block. ProductIDs and Tags are
// stored as JSON text blobs; handlers expose them decoded.
type DisplaySection struct {
	BaseModel
	Title      string     `db:"title" json:"title"`
	Type       string     `db:"type" json:"type"`
	Active     bool       `db:"active" json:"active"`
	CategoryID *string    `db:"category_id" json:"categoryId"`
	ProductIDs *string    `db:"product_ids" json:"-"`
	SortOrder  int        `db:"sort_order" json:"order"`
	StartDate  *time.Time `db:"start_date" json:"startDate"`
	EndDate    *time.Time `db:"end_date" json:"endDate"`
	Tags       *string    `db:"tags" json:"-"`
	Category   *Category  `db:"-" json:"category,omitempty"` // Joined data
}

// ActiveAt reports whether the section is inside its active window at now.
// Unset bounds are open.
func (s *DisplaySection) ActiveAt(now time.Time) bool {
	if !s.Active {
		return false
	}
	if s.StartDate != nil && now.Before(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && now.After(*s.EndDate) {
		return false
	}
	return true
}

// ProductIDList decodes the stored product_ids blob, tolerating bad payloads.
func (s *DisplaySection) ProductIDList() []string {
	return DecodeStringList(s.ProductIDs)
}

// TagList decodes the stored tags blob.
func (s *DisplaySection) TagList() []string {
	return DecodeStringList(s.Tags)
}
