package handler

import (
	"net/http"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler { return &StatsHandler{svc: svc} }

// AdminStats godoc
// @Summary      Aggregate counts and total revenue
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.AdminStatsResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c *gin.Context) {
	resp, err := h.svc.AdminStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OrderStats godoc
// @Summary      Per-category order aggregation
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.OrderStat
// @Router       /order-stats [get]
func (h *StatsHandler) OrderStats(c *gin.Context) {
	resp, err := h.svc.OrderStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
