package handler

import (
	"net/http"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/apierror"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
)

type CartsHandler struct{ svc service.CartService }

func NewCartsHandler(svc service.CartService) *CartsHandler { return &CartsHandler{svc: svc} }

func (h *CartsHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CartsHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Remove enforces the owner-or-admin rule against the stored item, not
// against anything the request claims.
func (h *CartsHandler) Remove(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("unauthorized access"))
		return
	}
	resp, err := h.svc.Remove(c.Request.Context(), c.Param("id"), claims.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
