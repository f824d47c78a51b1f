package repository

import (
	"context"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/database"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryRepository defines data access for categories and sub-categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, cat *model.Category) error
	GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error

	CreateSubCategory(ctx context.Context, sub *model.SubCategory) error
	GetSubCategory(ctx context.Context, id primitive.ObjectID) (*model.SubCategory, error)
	ListSubCategories(ctx context.Context) ([]model.SubCategory, error)
	ListSubCategoriesByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error
}

type categoryRepository struct {
	categories    *mongo.Collection
	subCategories *mongo.Collection
}

// NewCategoryRepository returns a new instance of CategoryRepository
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{
		categories:    db.Collection(database.CollectionCategories),
		subCategories: db.Collection(database.CollectionSubCategories),
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, cat *model.Category) error {
	res, err := r.categories.InsertOne(ctx, cat)
	if err != nil {
		return wrapErr(err)
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	var cat model.Category
	if err := r.categories.FindOne(ctx, bson.M{"_id": id}).Decode(&cat); err != nil {
		return nil, wrapErr(err)
	}
	return &cat, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	cur, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	var cats []model.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, wrapErr(err)
	}
	return cats, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.categories.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.categories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) CreateSubCategory(ctx context.Context, sub *model.SubCategory) error {
	res, err := r.subCategories.InsertOne(ctx, sub)
	if err != nil {
		return wrapErr(err)
	}
	sub.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *categoryRepository) GetSubCategory(ctx context.Context, id primitive.ObjectID) (*model.SubCategory, error) {
	var sub model.SubCategory
	if err := r.subCategories.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		return nil, wrapErr(err)
	}
	return &sub, nil
}

func (r *categoryRepository) ListSubCategories(ctx context.Context) ([]model.SubCategory, error) {
	cur, err := r.subCategories.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	var subs []model.SubCategory
	if err := cur.All(ctx, &subs); err != nil {
		return nil, wrapErr(err)
	}
	return subs, nil
}

func (r *categoryRepository) ListSubCategoriesByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]model.SubCategory, error) {
	cur, err := r.subCategories.Find(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return nil, wrapErr(err)
	}
	var subs []model.SubCategory
	if err := cur.All(ctx, &subs); err != nil {
		return nil, wrapErr(err)
	}
	return subs, nil
}

func (r *categoryRepository) UpdateSubCategory(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.subCategories.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.subCategories.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
