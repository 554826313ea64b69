package dto

type RegisterUserRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// RegisterUserResponse carries a nil insertedId when the email was
// already registered — the client treats that as "nothing to do".
type RegisterUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
