package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection("users")}
}

var _ repository.UserRepository = (*UserMongo)(nil)

func (r *UserMongo) Create(ctx context.Context, u *model.User) error {
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *UserMongo) FindByUserID(ctx context.Context, userID string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"userId": userID})
}

func (r *UserMongo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"email": email})
}

func (r *UserMongo) FindByUserIDs(ctx context.Context, userIDs []string) ([]model.User, error) {
	if len(userIDs) == 0 {
		return []model.User{}, nil
	}
	return findAll[model.User](ctx, r.coll, bson.M{"userId": bson.M{"$in": userIDs}}, nil)
}

func (r *UserMongo) FindByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return findAll[model.User](ctx, r.coll, bson.M{"role": role}, nil)
}

func (r *UserMongo) FindFirstByRole(ctx context.Context, role model.Role) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"role": role})
}

func (r *UserMongo) List(ctx context.Context, f repository.UserFilter, page repository.PageQuery) (repository.PageResult[model.User], error) {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": regexFilter(f.Search)},
			bson.M{"email": regexFilter(f.Search)},
			bson.M{"phone": regexFilter(f.Search)},
		}
	}
	return findPage[model.User](ctx, r.coll, filter, bson.D{{Key: "createdAt", Value: -1}}, page)
}

func (r *UserMongo) Update(ctx context.Context, userID string, fields map[string]any) error {
	return updateFields(ctx, r.coll, bson.M{"userId": userID}, fields)
}

func (r *UserMongo) Delete(ctx context.Context, userID string) error {
	return deleteOne(ctx, r.coll, bson.M{"userId": userID})
}

func (r *UserMongo) EmployeeIDs(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.M{"employeeId": bson.M{"$regex": "^" + prefix}}
	users, err := findAll[model.User](ctx, r.coll, filter, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if u.EmployeeID != "" {
			ids = append(ids, u.EmployeeID)
		}
	}
	return ids, nil
}
