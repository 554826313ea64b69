package service

import (
	"context"
	"errors"
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.RegisterUserResponse, error)
	List(ctx context.Context) ([]model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) (*dto.UpdateResult, error)
	Delete(ctx context.Context, id string) (*dto.DeleteResult, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register inserts the user only when the email is not yet present.
// A duplicate registration succeeds with a nil insertedId so repeated
// sign-ins stay idempotent.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*dto.RegisterUserResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return &dto.RegisterUserResponse{Message: "user already exists", InsertedID: nil}, nil
	}

	id, err := s.repo.Insert(ctx, &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      model.RoleUser,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	hex := id.Hex()
	return &dto.RegisterUserResponse{InsertedID: &hex}, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether the stored role for email is "admin".
// An unknown email is simply not an admin.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// Promote sets the role to admin. Roles are monotonic: this is the
// only role mutation the system exposes.
func (s *userService) Promote(ctx context.Context, id string) (*dto.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	matched, modified, err := s.repo.SetRole(ctx, oid, model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *userService) Delete(ctx context.Context, id string) (*dto.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
