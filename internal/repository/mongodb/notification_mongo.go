package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// NotificationMongo is a MongoDB implementation of repository.NotificationRepository.
type NotificationMongo struct {
	coll *mongo.Collection
}

func NewNotificationMongo(db *mongo.Database) *NotificationMongo {
	return &NotificationMongo{coll: db.Collection("notifications")}
}

var _ repository.NotificationRepository = (*NotificationMongo)(nil)

func (r *NotificationMongo) Insert(ctx context.Context, n *model.Notification) error {
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *NotificationMongo) InsertMany(ctx context.Context, ns []model.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	docs := make([]any, len(ns))
	for i := range ns {
		docs[i] = ns[i]
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *NotificationMongo) List(ctx context.Context, userID string, unreadOnly bool, page repository.PageQuery) (repository.PageResult[model.Notification], error) {
	filter := bson.M{"userId": userID}
	if unreadOnly {
		filter["isRead"] = false
	}
	return findPage[model.Notification](ctx, r.coll, filter, bson.D{{Key: "createdAt", Value: -1}}, page)
}

func (r *NotificationMongo) CountUnread(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"userId": userID, "isRead": false})
}

func (r *NotificationMongo) MarkRead(ctx context.Context, userID, notificationID string) (int64, error) {
	filter := bson.M{"userId": userID, "isRead": false}
	if notificationID != "" {
		filter = bson.M{"userId": userID, "notificationId": notificationID}
	}
	update := bson.M{"$set": bson.M{"isRead": true, "readAt": time.Now().UTC()}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	if notificationID != "" && res.MatchedCount == 0 {
		return 0, repository.ErrNotFound
	}
	return res.ModifiedCount, nil
}
