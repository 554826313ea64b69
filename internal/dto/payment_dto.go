package dto

type CreateIntentRequest struct {
	Price *float64 `json:"price" validate:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettlePaymentRequest arrives after the card processor confirms the
// charge. The id lists arrive as hex strings and are normalized into
// object ids before any store operation.
type SettlePaymentRequest struct {
	Email         string   `json:"email"         validate:"required,email"`
	Price         float64  `json:"price"         validate:"gte=0"`
	TransactionID string   `json:"transactionId" validate:"omitempty,max=100"`
	Date          string   `json:"date"          validate:"omitempty"`
	Status        string   `json:"status"        validate:"omitempty,max=50"`
	MenuItemIDs   []string `json:"menuItemIds"   validate:"omitempty,dive,len=24"`
	CartIDs       []string `json:"cartIds"       validate:"omitempty,dive,len=24"`
}

type SettlePaymentResponse struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}
