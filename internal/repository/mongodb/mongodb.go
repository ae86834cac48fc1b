// Package mongodb contains the MongoDB implementations of the repository
// interfaces. All methods map driver errors to repository sentinel errors and
// contain no business logic.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ucoportal/internal/repository"
)

func wrapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

// regexFilter builds a case-insensitive substring match.
func regexFilter(value string) bson.M {
	return bson.M{"$regex": primitive.Regex{Pattern: value, Options: "i"}}
}

// findPage runs a filtered, sorted, paged find plus a count on the same filter.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, page repository.PageQuery) (repository.PageResult[T], error) {
	var out repository.PageResult[T]

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return out, err
	}

	opts := options.Find().SetSort(sort)
	if page.Offset > 0 {
		opts.SetSkip(int64(page.Offset))
	}
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return out, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return out, err
	}

	out.Items = items
	out.Total = total
	return out, nil
}

// findAll runs an unpaged find.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// findOne decodes a single document or returns repository.ErrNotFound.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		return nil, wrapErr(err)
	}
	return &doc, nil
}

// updateFields applies a $set of fields to documents matching filter and
// reports ErrNotFound when nothing matched.
func updateFields(ctx context.Context, coll *mongo.Collection, filter bson.M, fields map[string]any) error {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
