package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// BillMongo is a MongoDB implementation of repository.BillRepository.
type BillMongo struct {
	coll *mongo.Collection
}

func NewBillMongo(db *mongo.Database) *BillMongo {
	return &BillMongo{coll: db.Collection("bills")}
}

var _ repository.BillRepository = (*BillMongo)(nil)

func (r *BillMongo) Create(ctx context.Context, b *model.Bill) error {
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *BillMongo) FindByID(ctx context.Context, billID string) (*model.Bill, error) {
	return findOne[model.Bill](ctx, r.coll, bson.M{"billId": billID})
}

func (r *BillMongo) List(ctx context.Context, f repository.BillFilter, page repository.PageQuery) (repository.PageResult[model.Bill], error) {
	filter := bson.M{}
	if f.FBOID != "" {
		filter["fboId"] = f.FBOID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return findPage[model.Bill](ctx, r.coll, filter, bson.D{{Key: "billDate", Value: -1}}, page)
}

func (r *BillMongo) Update(ctx context.Context, billID string, fields map[string]any) error {
	return updateFields(ctx, r.coll, bson.M{"billId": billID}, fields)
}

func (r *BillMongo) RecordPayment(ctx context.Context, billID string, collections []model.BillCollection, totalPaid, totalBalance float64, status string, txn model.PaymentTransaction) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"billId": billID}, bson.M{
		"$set": bson.M{
			"collections":  collections,
			"totalPaid":    totalPaid,
			"totalBalance": totalBalance,
			"status":       status,
			"updatedAt":    time.Now().UTC(),
		},
		"$push": bson.M{"paymentHistory": txn},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SupportMongo is a MongoDB implementation of repository.SupportRepository.
type SupportMongo struct {
	coll *mongo.Collection
}

func NewSupportMongo(db *mongo.Database) *SupportMongo {
	return &SupportMongo{coll: db.Collection("support_messages")}
}

var _ repository.SupportRepository = (*SupportMongo)(nil)

func (r *SupportMongo) Create(ctx context.Context, m *model.SupportMessage) error {
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *SupportMongo) ListByUser(ctx context.Context, userID string) ([]model.SupportMessage, error) {
	return findAll[model.SupportMessage](ctx, r.coll, bson.M{"userId": userID}, bson.D{{Key: "createdAt", Value: -1}})
}

// ItemMongo is a MongoDB implementation of repository.ItemRepository.
type ItemMongo struct {
	coll *mongo.Collection
}

func NewItemMongo(db *mongo.Database) *ItemMongo {
	return &ItemMongo{coll: db.Collection("item_master")}
}

var _ repository.ItemRepository = (*ItemMongo)(nil)

func (r *ItemMongo) Create(ctx context.Context, it *model.Item) error {
	_, err := r.coll.InsertOne(ctx, it)
	return err
}

func (r *ItemMongo) List(ctx context.Context, f repository.ItemFilter, page repository.PageQuery) (repository.PageResult[model.Item], error) {
	filter := bson.M{}
	if f.Search != "" {
		filter["name"] = regexFilter(f.Search)
	}
	if f.CreatedBy != "" {
		filter["createdBy"] = f.CreatedBy
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateRange["$lte"] = *f.DateTo
		}
		filter["createdAt"] = dateRange
	}
	return findPage[model.Item](ctx, r.coll, filter, bson.D{{Key: "createdAt", Value: -1}}, page)
}
