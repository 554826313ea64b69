package handler

import (
	"net/http"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/apierror"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentsHandler struct{ svc service.PaymentService }

func NewPaymentsHandler(svc service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

// CreateIntent godoc
// @Summary      Create a card payment intent
// @Description  Validates the price and obtains a client secret from the card processor.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateIntentRequest true "Price in major currency units"
// @Success      200  {object} dto.CreateIntentResponse
// @Failure      400  {object} apierror.APIError
// @Failure      502  {object} apierror.APIError
// @Router       /create-payment-intent [post]
func (h *PaymentsHandler) CreateIntent(c *gin.Context) {
	var req dto.CreateIntentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateIntent(c.Request.Context(), *req.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Settle godoc
// @Summary      Settle a confirmed payment
// @Description  Records the payment document and bulk-deletes the cart items it paid for.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body body dto.SettlePaymentRequest true "Settlement payload"
// @Success      201  {object} dto.SettlePaymentResponse
// @Failure      400  {object} apierror.APIError
// @Failure      500  {object} apierror.APIError
// @Router       /payments [post]
func (h *PaymentsHandler) Settle(c *gin.Context) {
	var req dto.SettlePaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Settle(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByEmail returns the payment history for :email; callers may only
// read their own history.
func (h *PaymentsHandler) ListByEmail(c *gin.Context) {
	email := c.Param("email")
	claims := middleware.GetClaims(c)
	if claims == nil || email != claims.Email {
		c.JSON(http.StatusForbidden, apierror.New("forbidden access"))
		return
	}
	payments, err := h.svc.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
