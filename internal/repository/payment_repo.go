package repository

import (
	"context"
	"errors"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const paymentsCollection = "payments"

// Payments are never deleted. The only mutation after insert is
// MarkCartsCleared, flipped by settlement or the reconciler once the
// paid cart items are gone.
type PaymentRepository interface {
	Insert(ctx context.Context, p *model.Payment) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
	ListAll(ctx context.Context) ([]model.Payment, error)
	ListUncleared(ctx context.Context, limit int64) ([]model.Payment, error)
	MarkCartsCleared(ctx context.Context, id primitive.ObjectID) error
	EstimatedCount(ctx context.Context) (int64, error)
}

type paymentRepo struct{ coll *mongo.Collection }

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepo{coll: db.Collection(paymentsCollection)}
}

func (r *paymentRepo) Insert(ctx context.Context, p *model.Payment) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *paymentRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Payment, error) {
	var p model.Payment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return r.list(ctx, bson.M{"email": email}, nil)
}

func (r *paymentRepo) ListAll(ctx context.Context) ([]model.Payment, error) {
	return r.list(ctx, bson.M{}, nil)
}

// ListUncleared returns payments whose cart cleanup is still owed.
func (r *paymentRepo) ListUncleared(ctx context.Context, limit int64) ([]model.Payment, error) {
	opts := options.Find().SetLimit(limit)
	return r.list(ctx, bson.M{"cartsCleared": false}, opts)
}

func (r *paymentRepo) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Payment, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	payments := []model.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepo) MarkCartsCleared(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"cartsCleared": true}})
	return err
}

func (r *paymentRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}
