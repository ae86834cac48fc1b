package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// PaymentMongo is a MongoDB implementation of repository.PaymentRepository.
type PaymentMongo struct {
	coll *mongo.Collection
}

func NewPaymentMongo(db *mongo.Database) *PaymentMongo {
	return &PaymentMongo{coll: db.Collection("payments")}
}

var _ repository.PaymentRepository = (*PaymentMongo)(nil)

func (r *PaymentMongo) Create(ctx context.Context, p *model.Payment) error {
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *PaymentMongo) FindByID(ctx context.Context, paymentID string) (*model.Payment, error) {
	return findOne[model.Payment](ctx, r.coll, bson.M{"paymentId": paymentID})
}

func (r *PaymentMongo) List(ctx context.Context, f repository.PaymentFilter, page repository.PageQuery) (repository.PageResult[model.Payment], error) {
	filter := bson.M{}
	if f.FBOID != "" {
		filter["fboId"] = f.FBOID
	}
	if len(f.FBOIDs) > 0 {
		filter["fboId"] = bson.M{"$in": f.FBOIDs}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return findPage[model.Payment](ctx, r.coll, filter, bson.D{{Key: "createdAt", Value: -1}}, page)
}

func (r *PaymentMongo) Update(ctx context.Context, paymentID string, fields map[string]any) error {
	return updateFields(ctx, r.coll, bson.M{"paymentId": paymentID}, fields)
}
