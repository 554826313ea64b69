package repository

import (
	"context"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const reviewsCollection = "reviews"

// Reviews are append-only: no update or delete methods exist on purpose.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	Insert(ctx context.Context, review *model.Review) (primitive.ObjectID, error)
}

type reviewRepo struct{ coll *mongo.Collection }

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepo{coll: db.Collection(reviewsCollection)}
}

func (r *reviewRepo) List(ctx context.Context) ([]model.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepo) Insert(ctx context.Context, review *model.Review) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
