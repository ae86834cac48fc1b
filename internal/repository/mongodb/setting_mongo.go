package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// SettingMongo is a MongoDB implementation of repository.SettingRepository.
type SettingMongo struct {
	coll *mongo.Collection
}

func NewSettingMongo(db *mongo.Database) *SettingMongo {
	return &SettingMongo{coll: db.Collection("settings")}
}

var _ repository.SettingRepository = (*SettingMongo)(nil)

func (r *SettingMongo) Values(ctx context.Context, keys []string) (map[string]any, error) {
	filter := bson.M{}
	if len(keys) > 0 {
		filter["settingKey"] = bson.M{"$in": keys}
	}
	settings, err := findAll[model.Setting](ctx, r.coll, filter, nil)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(settings))
	for _, s := range settings {
		out[s.SettingKey] = s.SettingValue
	}
	return out, nil
}

func (r *SettingMongo) All(ctx context.Context) ([]model.Setting, error) {
	return findAll[model.Setting](ctx, r.coll, bson.M{}, bson.D{{Key: "category", Value: 1}, {Key: "settingKey", Value: 1}})
}

func (r *SettingMongo) Upsert(ctx context.Context, s *model.Setting) error {
	update := bson.M{"$set": bson.M{
		"settingValue": s.SettingValue,
		"description":  s.Description,
		"dataType":     s.DataType,
		"category":     s.Category,
		"updatedBy":    s.UpdatedBy,
		"updatedAt":    s.UpdatedAt,
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"settingKey": s.SettingKey}, update, options.Update().SetUpsert(true))
	return err
}

// PricingMongo is a MongoDB implementation of repository.PricingRepository.
type PricingMongo struct {
	coll *mongo.Collection
}

func NewPricingMongo(db *mongo.Database) *PricingMongo {
	return &PricingMongo{coll: db.Collection("pricing")}
}

var _ repository.PricingRepository = (*PricingMongo)(nil)

func (r *PricingMongo) ListActive(ctx context.Context) ([]model.Pricing, error) {
	return findAll[model.Pricing](ctx, r.coll, bson.M{"status": model.StatusActive}, bson.D{{Key: "qualityGrade", Value: 1}})
}
