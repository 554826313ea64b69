package dto

// TokenRequest is the identity payload submitted after sign-in.
// The email becomes the token's identity claim.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"omitempty,max=100"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
