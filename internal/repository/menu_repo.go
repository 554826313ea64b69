package repository

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const menuCollection = "menu"

type MenuRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.MenuItem, error)
	Insert(ctx context.Context, item *model.MenuItem) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type menuRepo struct{ coll *mongo.Collection }

func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &menuRepo{coll: db.Collection(menuCollection)}
}

func (r *menuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDs returns only the items that still exist — callers joining
// payment references against the menu get inner-join semantics.
func (r *menuRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}
	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepo) Insert(ctx context.Context, item *model.MenuItem) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *menuRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *menuRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *menuRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}
