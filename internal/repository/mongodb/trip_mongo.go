package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// TripMongo is a MongoDB implementation of repository.TripRepository.
type TripMongo struct {
	coll *mongo.Collection
}

func NewTripMongo(db *mongo.Database) *TripMongo {
	return &TripMongo{coll: db.Collection("trips")}
}

var _ repository.TripRepository = (*TripMongo)(nil)

func (r *TripMongo) Create(ctx context.Context, t *model.Trip) error {
	_, err := r.coll.InsertOne(ctx, t)
	return err
}

func (r *TripMongo) FindByID(ctx context.Context, tripID string) (*model.Trip, error) {
	return findOne[model.Trip](ctx, r.coll, bson.M{"tripId": tripID})
}

func (r *TripMongo) FindActive(ctx context.Context, collectorID string) (*model.Trip, error) {
	filter := bson.M{
		"collectorId": collectorID,
		"status":      bson.M{"$in": bson.A{model.TripPlanned, model.TripInProgress}},
	}
	return findOne[model.Trip](ctx, r.coll, filter)
}

func (r *TripMongo) List(ctx context.Context, f repository.TripFilter, page repository.PageQuery) (repository.PageResult[model.Trip], error) {
	filter := bson.M{}
	if f.CollectorID != "" {
		filter["collectorId"] = f.CollectorID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateRange["$lte"] = *f.DateTo
		}
		filter["tripDate"] = dateRange
	}
	return findPage[model.Trip](ctx, r.coll, filter, bson.D{{Key: "tripDate", Value: -1}}, page)
}

func (r *TripMongo) Update(ctx context.Context, tripID string, fields map[string]any) error {
	return updateFields(ctx, r.coll, bson.M{"tripId": tripID}, fields)
}

func (r *TripMongo) AddCompleted(ctx context.Context, tripID string, c model.TripCompletedCollection) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"tripId": tripID}, bson.M{
		"$push": bson.M{"completedCollections": c},
		"$inc": bson.M{
			"totalQuantityCollected": c.QuantityCollected,
			"totalAmountCollected":   c.Amount,
		},
		"$set": bson.M{
			"status":    model.TripInProgress,
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TripMongo) RemoveCompleted(ctx context.Context, tripID, collectionID string, quantity, amount float64) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"tripId": tripID}, bson.M{
		"$pull": bson.M{"completedCollections": bson.M{"collectionId": collectionID}},
		"$inc": bson.M{
			"totalQuantityCollected": -quantity,
			"totalAmountCollected":   -amount,
		},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
