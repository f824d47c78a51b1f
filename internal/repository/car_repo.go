package repository

import (
	"context"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/database"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CarRepository defines the interface for data access of Car documents and
// their 1:1 detail records.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Car, error)
	List(ctx context.Context, skip, limit int64) ([]model.Car, int64, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Car, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	UpsertDetails(ctx context.Context, carID primitive.ObjectID, fields bson.M) (*model.CarDetails, error)
	GetDetails(ctx context.Context, carID primitive.ObjectID) (*model.CarDetails, error)
}

type carRepository struct {
	cars    *mongo.Collection
	details *mongo.Collection
}

// NewCarRepository returns a new instance of CarRepository
func NewCarRepository(db *mongo.Database) CarRepository {
	return &carRepository{
		cars:    db.Collection(database.CollectionCars),
		details: db.Collection(database.CollectionCarDetails),
	}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	now := time.Now().UTC()
	car.CreatedAt = now
	car.UpdatedAt = now

	res, err := r.cars.InsertOne(ctx, car)
	if err != nil {
		return wrapErr(err)
	}
	car.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *carRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
	var car model.Car
	if err := r.cars.FindOne(ctx, bson.M{"_id": id}).Decode(&car); err != nil {
		return nil, wrapErr(err)
	}
	return &car, nil
}

func (r *carRepository) List(ctx context.Context, skip, limit int64) ([]model.Car, int64, error) {
	total, err := r.cars.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	cur, err := r.cars.Find(ctx, bson.M{}, findPage(skip, limit))
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	var cars []model.Car
	if err := cur.All(ctx, &cars); err != nil {
		return nil, 0, wrapErr(err)
	}
	return cars, total, nil
}

func (r *carRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Car, error) {
	cur, err := r.cars.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, wrapErr(err)
	}

	var cars []model.Car
	if err := cur.All(ctx, &cars); err != nil {
		return nil, wrapErr(err)
	}
	return cars, nil
}

func (r *carRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now().UTC()
	res, err := r.cars.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.cars.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	// The detail record is functionally owned by the car; drop it too.
	// A missing record is fine.
	_, _ = r.details.DeleteOne(ctx, bson.M{"car_id": id})
	return nil
}

// UpsertDetails merges the supplied fields into the detail record for the
// car, inserting one if absent, and returns the record after the write.
// Fields not present in this call keep their previous values.
func (r *carRepository) UpsertDetails(ctx context.Context, carID primitive.ObjectID, fields bson.M) (*model.CarDetails, error) {
	fields["updated_at"] = time.Now().UTC()
	update := bson.M{
		"$set":         fields,
		"$setOnInsert": bson.M{"car_id": carID},
	}

	_, err := r.details.UpdateOne(ctx, bson.M{"car_id": carID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, wrapErr(err)
	}
	return r.GetDetails(ctx, carID)
}

func (r *carRepository) GetDetails(ctx context.Context, carID primitive.ObjectID) (*model.CarDetails, error) {
	var details model.CarDetails
	if err := r.details.FindOne(ctx, bson.M{"car_id": carID}).Decode(&details); err != nil {
		return nil, wrapErr(err)
	}
	return &details, nil
}
