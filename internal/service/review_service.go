package service

import (
	"context"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"
)

type ReviewService interface {
	List(ctx context.Context) ([]model.Review, error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (*dto.InsertResult, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.repo.List(ctx)
}

func (s *reviewService) Create(ctx context.Context, req dto.CreateReviewRequest) (*dto.InsertResult, error) {
	id, err := s.repo.Insert(ctx, &model.Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  *req.Rating,
	})
	if err != nil {
		return nil, err
	}
	return &dto.InsertResult{InsertedID: id.Hex()}, nil
}
