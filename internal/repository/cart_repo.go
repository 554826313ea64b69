package repository

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const cartsCollection = "carts"

type CartRepository interface {
	Insert(ctx context.Context, item *model.CartItem) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.CartItem, error)
	List(ctx context.Context, email string) ([]model.CartItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type cartRepo struct{ coll *mongo.Collection }

func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepo{coll: db.Collection(cartsCollection)}
}

func (r *cartRepo) Insert(ctx context.Context, item *model.CartItem) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *cartRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.CartItem, error) {
	var item model.CartItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List filters by owner email; an empty email lists every cart item.
func (r *cartRepo) List(ctx context.Context, email string) ([]model.CartItem, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByIDs removes every item whose id is in the set with a single
// DeleteMany. Deleting ids that no longer exist is a no-op, so the
// call is safe to re-run for the same set.
func (r *cartRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
