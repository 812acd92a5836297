package model

type Flavor struct {
	BaseModel
	Name       string    `db:"name" json:"name"`
	ImageURL   *string   `db:"image_url" json:"imageUrl"`
	CategoryID *string   `db:"category_id" json:"categoryId"` // Nullable
	Category   *Category `db:"-" json:"category,omitempty"`   // Joined data
}
