package service

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (*dto.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	Remove(ctx context.Context, id, callerEmail string) (*dto.DeleteResult, error)
}

type bookingService struct {
	repo  repository.BookingRepository
	users repository.UserRepository
}

func NewBookingService(repo repository.BookingRepository, users repository.UserRepository) BookingService {
	return &bookingService{repo: repo, users: users}
}

func (s *bookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (*dto.InsertResult, error) {
	id, err := s.repo.Insert(ctx, &model.Booking{
		Email:  req.Email,
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	})
	if err != nil {
		return nil, err
	}
	return &dto.InsertResult{InsertedID: id.Hex()}, nil
}

func (s *bookingService) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *bookingService) ListAll(ctx context.Context) ([]model.Booking, error) {
	return s.repo.ListAll(ctx)
}

// Remove applies the same owner-or-admin rule as cart removal: the
// authoritative owner is the stored booking's email.
func (s *bookingService) Remove(ctx context.Context, id, callerEmail string) (*dto.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	booking, err := s.repo.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(ctx, s.users, booking.Email, callerEmail); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteResult{DeletedCount: deleted}, nil
}
