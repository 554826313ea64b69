package repository

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingsCollection = "bookings"

type BookingRepository interface {
	Insert(ctx context.Context, b *model.Booking) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type bookingRepo struct{ coll *mongo.Collection }

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepo{coll: db.Collection(bookingsCollection)}
}

func (r *bookingRepo) Insert(ctx context.Context, b *model.Booking) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	var b model.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return r.list(ctx, bson.M{"email": email})
}

func (r *bookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *bookingRepo) list(ctx context.Context, filter bson.M) ([]model.Booking, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bookings := []model.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
