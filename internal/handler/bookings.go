package handler

import (
	"net/http"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/apierror"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
)

type BookingsHandler struct{ svc service.BookingService }

func NewBookingsHandler(svc service.BookingService) *BookingsHandler {
	return &BookingsHandler{svc: svc}
}

func (h *BookingsHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMine returns bookings for the query-string email, which must
// match the verified token email — owners only see their own bookings.
func (h *BookingsHandler) ListMine(c *gin.Context) {
	email := c.Query("email")
	claims := middleware.GetClaims(c)
	if claims == nil || email != claims.Email {
		c.JSON(http.StatusForbidden, apierror.New("forbidden access"))
		return
	}
	bookings, err := h.svc.ListByEmail(c.Request.Context(), email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingsHandler) ListAll(c *gin.Context) {
	bookings, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingsHandler) Remove(c *gin.Context) {
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
