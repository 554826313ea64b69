package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubReviewService records creates so tests can assert the store was
// never touched on rejected input.
type stubReviewService struct {
	created []dto.CreateReviewRequest
}

func (s *stubReviewService) List(context.Context) ([]model.Review, error) {
	return []model.Review{}, nil
}

func (s *stubReviewService) Create(_ context.Context, req dto.CreateReviewRequest) (*dto.InsertResult, error) {
	s.created = append(s.created, req)
	return &dto.InsertResult{InsertedID: "64f000000000000000000001"}, nil
}

var _ service.ReviewService = (*stubReviewService)(nil)

func reviewsRouter(svc service.ReviewService) *gin.Engine {
	r := gin.New()
	h := NewReviewsHandler(svc)
	r.GET("/reviews", h.List)
	r.POST("/reviews", h.Create)
	return r
}

func TestCreateReviewMissingRatingIsRejected(t *testing.T) {
	svc := &stubReviewService{}
	r := reviewsRouter(svc)

	body := []byte(`{"name":"Alice","details":"Great food"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Rating")
	assert.Empty(t, svc.created)
}

func TestCreateReviewZeroRatingIsAccepted(t *testing.T) {
	svc := &stubReviewService{}
	r := reviewsRouter(svc)

	// rating present but zero is still a rating
	body := []byte(`{"name":"Alice","details":"Awful","rating":0}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, svc.created, 1)
}

func TestCreateReviewReturnsInsertedID(t *testing.T) {
	svc := &stubReviewService{}
	r := reviewsRouter(svc)

	body := []byte(`{"name":"Alice","details":"Great food","rating":4.5}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "insertedId")
}
