package service

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartService interface {
	List(ctx context.Context, email string) ([]model.CartItem, error)
	Add(ctx context.Context, req dto.AddCartItemRequest) (*dto.InsertResult, error)
	Remove(ctx context.Context, id, callerEmail string) (*dto.DeleteResult, error)
}

type cartService struct {
	repo  repository.CartRepository
	users repository.UserRepository
}

func NewCartService(repo repository.CartRepository, users repository.UserRepository) CartService {
	return &cartService{repo: repo, users: users}
}

func (s *cartService) List(ctx context.Context, email string) ([]model.CartItem, error) {
	return s.repo.List(ctx, email)
}

// Add forces the status to Pending — whatever the client claims, a new
// cart item has not been paid for yet.
func (s *cartService) Add(ctx context.Context, req dto.AddCartItemRequest) (*dto.InsertResult, error) {
	id, err := s.repo.Insert(ctx, &model.CartItem{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Status:     model.CartStatusPending,
	})
	if err != nil {
		return nil, err
	}
	return &dto.InsertResult{InsertedID: id.Hex()}, nil
}

// Remove deletes a cart item iff the caller owns it or is an admin.
// The owner is read from the stored item, so a forged email in the
// request cannot authorize the delete.
func (s *cartService) Remove(ctx context.Context, id, callerEmail string) (*dto.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(ctx, s.users, item.Email, callerEmail); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
