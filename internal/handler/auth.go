package handler

import (
	"net/http"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/apierror"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// IssueToken godoc
// @Summary      Issue an identity token
// @Description  Signs a short-lived access token for the submitted identity payload.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.TokenRequest true "Identity payload"
// @Success      200  {object} dto.TokenResponse
// @Failure      400  {object} apierror.ValidationError
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	token, err := h.svc.IssueToken(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to sign token"))
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
