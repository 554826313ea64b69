package dto

type CreateMenuItemRequest struct {
	Name     string  `json:"name"     validate:"required,min=1,max=200"`
	Category string  `json:"category" validate:"required,min=1,max=100"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Image    string  `json:"image"    validate:"omitempty,max=500"`
	Recipe   string  `json:"recipe"`
}

// UpdateMenuItemRequest patches only the fields present in the body.
type UpdateMenuItemRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1,max=200"`
	Category *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0"`
	Image    *string  `json:"image"    validate:"omitempty,max=500"`
	Recipe   *string  `json:"recipe"`
}
