package dto

type CreateFlavorInput struct {
	Name       string  `json:"name" validate:"required"`
	ImageURL   *string `json:"imageUrl"`
	CategoryID *string `json:"categoryId"`
}

type UpdateFlavorInput struct {
	ID         string  `json:"-"`
	Name       *string `json:"name"`
	ImageURL   *string `json:"imageUrl"`
	CategoryID *string `json:"categoryId"`
}
