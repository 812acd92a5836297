package model

type Product struct {
	BaseModel
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Price       float64    `db:"price" json:"price"`
	Discount    float64    `db:"discount" json:"discount"`
	ImageURL    *string    `db:"image_url" json:"imageUrl"`
	Active      bool       `db:"active" json:"active"`
	Categories  []Category `db:"-" json:"categories,omitempty"` // Joined data
}
