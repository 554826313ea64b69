package dto

// CreateReviewRequest requires all three fields; rating is a pointer
// so that an absent rating is distinguishable from a zero rating.
type CreateReviewRequest struct {
	Name    string   `json:"name"    validate:"required,min=1,max=100"`
	Details string   `json:"details" validate:"required,min=1"`
	Rating  *float64 `json:"rating"  validate:"required"`
}
