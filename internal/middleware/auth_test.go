package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, email string, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuth(testSecret), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestJWTAuthMissingHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signToken(t, "alice@example.com", -time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidTokenAttachesClaims(t *testing.T) {
	token := signToken(t, "alice@example.com", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

// stubDirectory resolves emails to canned users.
type stubDirectory struct {
	users map[string]*model.User
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := d.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func adminRouter(dir RoleDirectory) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuth(testSecret), RequireAdmin(dir), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireAdminAllowsStoredAdmin(t *testing.T) {
	dir := &stubDirectory{users: map[string]*model.User{
		"admin@example.com": {Email: "admin@example.com", Role: model.RoleAdmin},
	}}
	token := signToken(t, "admin@example.com", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	adminRouter(dir).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsPlainUser(t *testing.T) {
	dir := &stubDirectory{users: map[string]*model.User{
		"user@example.com": {Email: "user@example.com", Role: model.RoleUser},
	}}
	token := signToken(t, "user@example.com", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	adminRouter(dir).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

// A valid token whose email no longer exists in the store carries no
// privileges at all.
func TestRequireAdminRejectsUnknownEmail(t *testing.T) {
	dir := &stubDirectory{users: map[string]*model.User{}}
	token := signToken(t, "ghost@example.com", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	adminRouter(dir).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
