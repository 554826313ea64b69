package dto

// AddCartItemRequest deliberately has no status field: the server
// forces every new cart item to "Pending" regardless of client input.
type AddCartItemRequest struct {
	Email      string  `json:"email"      validate:"required,email"`
	MenuItemID string  `json:"menuItemId" validate:"omitempty,max=100"`
	Name       string  `json:"name"       validate:"required,min=1,max=200"`
	Image      string  `json:"image"      validate:"omitempty,max=500"`
	Price      float64 `json:"price"      validate:"gte=0"`
}
