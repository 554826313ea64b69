package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubUserService answers IsAdmin from a fixed set.
type stubUserService struct {
	admins map[string]bool
	asked  []string
}

func (s *stubUserService) Register(context.Context, dto.RegisterUserRequest) (*dto.RegisterUserResponse, error) {
	return nil, nil
}

func (s *stubUserService) List(context.Context) ([]model.User, error) {
	return []model.User{}, nil
}

func (s *stubUserService) IsAdmin(_ context.Context, email string) (bool, error) {
	s.asked = append(s.asked, email)
	return s.admins[email], nil
}

func (s *stubUserService) Promote(context.Context, string) (*dto.UpdateResult, error) {
	return &dto.UpdateResult{}, nil
}

func (s *stubUserService) Delete(context.Context, string) (*dto.DeleteResult, error) {
	return &dto.DeleteResult{}, nil
}

var _ service.UserService = (*stubUserService)(nil)

// asUser injects verified claims the way JWTAuth would.
func asUser(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.Claims{Email: email})
	}
}

func adminCheckRouter(svc service.UserService, callerEmail string) *gin.Engine {
	r := gin.New()
	h := NewUsersHandler(svc)
	r.GET("/users/admin/:email", asUser(callerEmail), h.CheckAdmin)
	return r
}

func TestCheckAdminSelf(t *testing.T) {
	svc := &stubUserService{admins: map[string]bool{"alice@example.com": true}}
	r := adminCheckRouter(svc, "alice@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/alice@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())
}

// Asking about anyone else's role is rejected before the store is
// consulted.
func TestCheckAdminOtherEmailIsForbidden(t *testing.T) {
	svc := &stubUserService{admins: map[string]bool{"bob@example.com": true}}
	r := adminCheckRouter(svc, "alice@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/bob@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, svc.asked)
}
