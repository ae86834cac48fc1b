package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// FBOMongo is a MongoDB implementation of repository.FBORepository.
type FBOMongo struct {
	coll *mongo.Collection
}

func NewFBOMongo(db *mongo.Database) *FBOMongo {
	return &FBOMongo{coll: db.Collection("fbos")}
}

var _ repository.FBORepository = (*FBOMongo)(nil)

func fboFilterQuery(f repository.FBOFilter) bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.City != "" {
		filter["address.city"] = regexFilter(f.City)
	}
	if f.BusinessType != "" {
		filter["businessDetails.type"] = f.BusinessType
	}
	if f.AssignedCollector != "" {
		filter["assignedCollectors"] = f.AssignedCollector
	}
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"businessName": regexFilter(f.Search)},
			bson.M{"contactPerson.name": regexFilter(f.Search)},
			bson.M{"contactPerson.phone": regexFilter(f.Search)},
			bson.M{"fboId": regexFilter(f.Search)},
		}
	}
	if f.EnrolledBy != "" {
		filter["enrollmentDetails.enrolledBy"] = f.EnrolledBy
	}
	if f.EnrollmentStatus != "" {
		filter["enrollmentDetails.status"] = f.EnrollmentStatus
	}
	if f.EnrolledFrom != nil || f.EnrolledTo != nil {
		dateRange := bson.M{}
		if f.EnrolledFrom != nil {
			dateRange["$gte"] = *f.EnrolledFrom
		}
		if f.EnrolledTo != nil {
			dateRange["$lte"] = *f.EnrolledTo
		}
		filter["enrollmentDetails.enrolledAt"] = dateRange
	}
	if f.CreatedFrom != nil || f.CreatedTo != nil {
		dateRange := bson.M{}
		if f.CreatedFrom != nil {
			dateRange["$gte"] = *f.CreatedFrom
		}
		if f.CreatedTo != nil {
			dateRange["$lte"] = *f.CreatedTo
		}
		filter["createdAt"] = dateRange
	}
	return filter
}

func (r *FBOMongo) Create(ctx context.Context, f *model.FBO) error {
	_, err := r.coll.InsertOne(ctx, f)
	return err
}

func (r *FBOMongo) FindByID(ctx context.Context, fboID string) (*model.FBO, error) {
	return findOne[model.FBO](ctx, r.coll, bson.M{"fboId": fboID})
}

func (r *FBOMongo) FindByContactEmail(ctx context.Context, email string) (*model.FBO, error) {
	f, err := findOne[model.FBO](ctx, r.coll, bson.M{"contactPerson.email": email})
	if err == nil || !errors.Is(err, repository.ErrNotFound) {
		return f, err
	}
	// Legacy records may differ in case.
	return findOne[model.FBO](ctx, r.coll, bson.M{
		"contactPerson.email": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"},
	})
}

func (r *FBOMongo) FindFirst(ctx context.Context, status model.Status) (*model.FBO, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findOne[model.FBO](ctx, r.coll, filter)
}

func (r *FBOMongo) ActiveNameExists(ctx context.Context, businessName, excludeFBOID string) (bool, error) {
	filter := bson.M{
		"businessName": businessName,
		"status":       bson.M{"$ne": model.StatusInactive},
	}
	if excludeFBOID != "" {
		filter["fboId"] = bson.M{"$ne": excludeFBOID}
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	return n > 0, err
}

func (r *FBOMongo) List(ctx context.Context, f repository.FBOFilter, page repository.PageQuery) (repository.PageResult[model.FBO], error) {
	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	dir := -1
	if f.SortAsc {
		dir = 1
	}
	return findPage[model.FBO](ctx, r.coll, fboFilterQuery(f), bson.D{{Key: sortBy, Value: dir}}, page)
}

func (r *FBOMongo) Count(ctx context.Context, f repository.FBOFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, fboFilterQuery(f))
}

func (r *FBOMongo) Update(ctx context.Context, fboID string, fields map[string]any) error {
	return updateFields(ctx, r.coll, bson.M{"fboId": fboID}, fields)
}

func (r *FBOMongo) Delete(ctx context.Context, fboID string) error {
	return deleteOne(ctx, r.coll, bson.M{"fboId": fboID})
}

func (r *FBOMongo) PushDocument(ctx context.Context, fboID string, doc model.FBODocument) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"fboId": fboID}, bson.M{
		"$push": bson.M{"documents": doc},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *FBOMongo) RecordCollection(ctx context.Context, fboID string, quantity, amount float64, at time.Time) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"fboId": fboID}, bson.M{
		"$inc": bson.M{
			"totalCollections":       1,
			"totalQuantityCollected": quantity,
			"totalAmountPaid":        amount,
		},
		"$set": bson.M{
			"lastCollectionDate": at,
			"updatedAt":          time.Now().UTC(),
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

func (r *FBOMongo) RollbackCollection(ctx context.Context, fboID string, quantity, amount float64) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"fboId": fboID}, bson.M{
		"$inc": bson.M{
			"totalCollections":       -1,
			"totalQuantityCollected": -quantity,
			"totalAmountPaid":        -amount,
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

func (r *FBOMongo) CountAssigned(ctx context.Context, collectorID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"assignedCollectors": collectorID})
}

func (r *FBOMongo) StatusCounts(ctx context.Context, f repository.FBOFilter) (map[string]int64, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: fboFilterQuery(f)}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
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

func (r *FBOMongo) MonthlyEnrollments(ctx context.Context, enrolledBy string, since time.Time) (map[string]int64, error) {
	match := bson.M{"enrollmentDetails.enrolledAt": bson.M{"$gte": since}}
	if enrolledBy != "" {
		match["enrollmentDetails.enrolledBy"] = enrolledBy
	}
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$enrollmentDetails.enrolledAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
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
