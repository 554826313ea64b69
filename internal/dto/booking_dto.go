package dto

type CreateBookingRequest struct {
	Email  string `json:"email"  validate:"required,email"`
	Name   string `json:"name"   validate:"omitempty,max=100"`
	Phone  string `json:"phone"  validate:"omitempty,max=30"`
	Date   string `json:"date"   validate:"required"`
	Time   string `json:"time"   validate:"omitempty,max=20"`
	Guests int    `json:"guests" validate:"omitempty,gte=1,lte=50"`
}
