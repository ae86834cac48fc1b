package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// CollectionMongo is a MongoDB implementation of repository.CollectionRepository.
type CollectionMongo struct {
	coll *mongo.Collection
}

func NewCollectionMongo(db *mongo.Database) *CollectionMongo {
	return &CollectionMongo{coll: db.Collection("collections")}
}

var _ repository.CollectionRepository = (*CollectionMongo)(nil)

func collectionFilterQuery(f repository.CollectionFilter) bson.M {
	filter := bson.M{}
	if f.FBOID != "" {
		filter["fboId"] = f.FBOID
	}
	if len(f.FBOIDs) > 0 {
		filter["fboId"] = bson.M{"$in": f.FBOIDs}
	}
	if f.CollectorID != "" {
		filter["collectorId"] = f.CollectorID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}
	if f.PaymentStatus != "" {
		filter["paymentDetails.status"] = f.PaymentStatus
	}
	if f.QualityGrade != "" {
		filter["qualityGrade"] = f.QualityGrade
	}
	if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateRange["$lte"] = *f.DateTo
		}
		filter["collectionDate"] = dateRange
	}
	return filter
}

func (r *CollectionMongo) Create(ctx context.Context, c *model.Collection) error {
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *CollectionMongo) FindByID(ctx context.Context, collectionID string) (*model.Collection, error) {
	return findOne[model.Collection](ctx, r.coll, bson.M{"collectionId": collectionID})
}

func (r *CollectionMongo) FindByIDs(ctx context.Context, collectionIDs []string) ([]model.Collection, error) {
	if len(collectionIDs) == 0 {
		return []model.Collection{}, nil
	}
	return findAll[model.Collection](ctx, r.coll, bson.M{"collectionId": bson.M{"$in": collectionIDs}}, nil)
}

func (r *CollectionMongo) List(ctx context.Context, f repository.CollectionFilter, page repository.PageQuery) (repository.PageResult[model.Collection], error) {
	return findPage[model.Collection](ctx, r.coll, collectionFilterQuery(f), bson.D{{Key: "collectionDate", Value: -1}}, page)
}

func (r *CollectionMongo) Count(ctx context.Context, f repository.CollectionFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, collectionFilterQuery(f))
}

func (r *CollectionMongo) Update(ctx context.Context, collectionID string, fields map[string]any) error {
	return updateFields(ctx, r.coll, bson.M{"collectionId": collectionID}, fields)
}

func (r *CollectionMongo) UpdateMany(ctx context.Context, collectionIDs []string, fields map[string]any) error {
	if len(collectionIDs) == 0 {
		return nil
	}
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"collectionId": bson.M{"$in": collectionIDs}},
		bson.M{"$set": fields},
	)
	return err
}

func (r *CollectionMongo) Delete(ctx context.Context, collectionID string) error {
	return deleteOne(ctx, r.coll, bson.M{"collectionId": collectionID})
}

func (r *CollectionMongo) Summary(ctx context.Context, f repository.CollectionFilter) (repository.AmountSummary, error) {
	var out repository.AmountSummary
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: collectionFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalQuantity": bson.M{"$sum": "$quantityCollected"},
			"totalAmount":   bson.M{"$sum": bson.M{"$ifNull": bson.A{"$totalAmount", 0}}},
		}}},
	})
	if err != nil {
		return out, err
	}
	var rows []struct {
		TotalQuantity float64 `bson:"totalQuantity"`
		TotalAmount   float64 `bson:"totalAmount"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return out, err
	}
	if len(rows) > 0 {
		out.TotalQuantity = rows[0].TotalQuantity
		out.TotalAmount = rows[0].TotalAmount
	}
	return out, nil
}

func (r *CollectionMongo) AverageQuantity(ctx context.Context, f repository.CollectionFilter) (float64, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: collectionFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$quantityCollected"},
		}}},
	})
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Avg, nil
}

func (r *CollectionMongo) MonthlySeries(ctx context.Context, f repository.CollectionFilter) ([]repository.MonthBucket, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: collectionFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$collectionDate"}},
			"revenue": bson.M{"$sum": bson.M{"$ifNull": bson.A{"$totalAmount", 0}}},
			"volume":  bson.M{"$sum": "$quantityCollected"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID      string  `bson:"_id"`
		Revenue float64 `bson:"revenue"`
		Volume  float64 `bson:"volume"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]repository.MonthBucket, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.MonthBucket{Month: row.ID, Revenue: row.Revenue, Volume: row.Volume})
	}
	return out, nil
}

func (r *CollectionMongo) StatusCounts(ctx context.Context, f repository.CollectionFilter) (map[string]repository.StatusAmount, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: collectionFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":    "$status",
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": bson.M{"$ifNull": bson.A{"$totalAmount", 0}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID     string  `bson:"_id"`
		Count  int64   `bson:"count"`
		Amount float64 `bson:"amount"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]repository.StatusAmount, len(rows))
	for _, row := range rows {
		out[row.ID] = repository.StatusAmount{Count: row.Count, Amount: row.Amount}
	}
	return out, nil
}

func (r *CollectionMongo) QualityCounts(ctx context.Context, f repository.CollectionFilter) (map[string]int64, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: collectionFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$qualityGrade", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out, nil
}

func (r *CollectionMongo) PerformanceByFBO(ctx context.Context, f repository.CollectionFilter, limit int) ([]repository.FBOPerformance, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: collectionFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$fboId",
			"fboName": bson.M{"$first": "$fboName"},
			"revenue": bson.M{"$sum": bson.M{"$ifNull": bson.A{"$totalAmount", 0}}},
			"volume":  bson.M{"$sum": "$quantityCollected"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"revenue": -1}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID      string  `bson:"_id"`
		FBOName string  `bson:"fboName"`
		Revenue float64 `bson:"revenue"`
		Volume  float64 `bson:"volume"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]repository.FBOPerformance, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.FBOPerformance{
			FBOID:   row.ID,
			FBOName: row.FBOName,
			Revenue: row.Revenue,
			Volume:  row.Volume,
		})
	}
	return out, nil
}

func (r *CollectionMongo) FindPaidWithHistory(ctx context.Context, fboID string) ([]model.Collection, error) {
	filter := bson.M{
		"fboId":                  fboID,
		"paymentDetails.history": bson.M{"$exists": true, "$ne": bson.A{}},
	}
	return findAll[model.Collection](ctx, r.coll, filter, bson.D{{Key: "collectionDate", Value: -1}})
}
