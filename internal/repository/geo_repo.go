package repository

import (
	"context"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/database"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GeoRepository covers the state → city → area hierarchy. The collections
// are small and share identical access patterns, so one repository serves
// all three levels.
type GeoRepository interface {
	CreateState(ctx context.Context, state *model.State) error
	GetState(ctx context.Context, id primitive.ObjectID) (*model.State, error)
	ListStates(ctx context.Context) ([]model.State, error)
	UpdateState(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteState(ctx context.Context, id primitive.ObjectID) error

	CreateCity(ctx context.Context, city *model.City) error
	GetCity(ctx context.Context, id primitive.ObjectID) (*model.City, error)
	ListCities(ctx context.Context) ([]model.City, error)
	ListCitiesByState(ctx context.Context, stateID primitive.ObjectID) ([]model.City, error)
	UpdateCity(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteCity(ctx context.Context, id primitive.ObjectID) error

	CreateArea(ctx context.Context, area *model.Area) error
	GetArea(ctx context.Context, id primitive.ObjectID) (*model.Area, error)
	ListAreas(ctx context.Context) ([]model.Area, error)
	ListAreasByCity(ctx context.Context, cityID primitive.ObjectID) ([]model.Area, error)
	UpdateArea(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteArea(ctx context.Context, id primitive.ObjectID) error
}

type geoRepository struct {
	states *mongo.Collection
	cities *mongo.Collection
	areas  *mongo.Collection
}

// NewGeoRepository returns a new instance of GeoRepository
func NewGeoRepository(db *mongo.Database) GeoRepository {
	return &geoRepository{
		states: db.Collection(database.CollectionStates),
		cities: db.Collection(database.CollectionCities),
		areas:  db.Collection(database.CollectionAreas),
	}
}

// --- States ---

func (r *geoRepository) CreateState(ctx context.Context, state *model.State) error {
	res, err := r.states.InsertOne(ctx, state)
	if err != nil {
		return wrapErr(err)
	}
	state.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *geoRepository) GetState(ctx context.Context, id primitive.ObjectID) (*model.State, error) {
	var state model.State
	if err := r.states.FindOne(ctx, bson.M{"_id": id}).Decode(&state); err != nil {
		return nil, wrapErr(err)
	}
	return &state, nil
}

func (r *geoRepository) ListStates(ctx context.Context) ([]model.State, error) {
	cur, err := r.states.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	var states []model.State
	if err := cur.All(ctx, &states); err != nil {
		return nil, wrapErr(err)
	}
	return states, nil
}

func (r *geoRepository) UpdateState(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.updateOne(ctx, r.states, id, fields)
}

func (r *geoRepository) DeleteState(ctx context.Context, id primitive.ObjectID) error {
	return r.deleteOne(ctx, r.states, id)
}

// --- Cities ---

func (r *geoRepository) CreateCity(ctx context.Context, city *model.City) error {
	res, err := r.cities.InsertOne(ctx, city)
	if err != nil {
		return wrapErr(err)
	}
	city.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *geoRepository) GetCity(ctx context.Context, id primitive.ObjectID) (*model.City, error) {
	var city model.City
	if err := r.cities.FindOne(ctx, bson.M{"_id": id}).Decode(&city); err != nil {
		return nil, wrapErr(err)
	}
	return &city, nil
}

func (r *geoRepository) ListCities(ctx context.Context) ([]model.City, error) {
	cur, err := r.cities.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	var cities []model.City
	if err := cur.All(ctx, &cities); err != nil {
		return nil, wrapErr(err)
	}
	return cities, nil
}

func (r *geoRepository) ListCitiesByState(ctx context.Context, stateID primitive.ObjectID) ([]model.City, error) {
	cur, err := r.cities.Find(ctx, bson.M{"state_id": stateID})
	if err != nil {
		return nil, wrapErr(err)
	}
	var cities []model.City
	if err := cur.All(ctx, &cities); err != nil {
		return nil, wrapErr(err)
	}
	return cities, nil
}

func (r *geoRepository) UpdateCity(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.updateOne(ctx, r.cities, id, fields)
}

func (r *geoRepository) DeleteCity(ctx context.Context, id primitive.ObjectID) error {
	return r.deleteOne(ctx, r.cities, id)
}

// --- Areas ---

func (r *geoRepository) CreateArea(ctx context.Context, area *model.Area) error {
	res, err := r.areas.InsertOne(ctx, area)
	if err != nil {
		return wrapErr(err)
	}
	area.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *geoRepository) GetArea(ctx context.Context, id primitive.ObjectID) (*model.Area, error) {
	var area model.Area
	if err := r.areas.FindOne(ctx, bson.M{"_id": id}).Decode(&area); err != nil {
		return nil, wrapErr(err)
	}
	return &area, nil
}

func (r *geoRepository) ListAreas(ctx context.Context) ([]model.Area, error) {
	cur, err := r.areas.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	var areas []model.Area
	if err := cur.All(ctx, &areas); err != nil {
		return nil, wrapErr(err)
	}
	return areas, nil
}

func (r *geoRepository) ListAreasByCity(ctx context.Context, cityID primitive.ObjectID) ([]model.Area, error) {
	cur, err := r.areas.Find(ctx, bson.M{"city_id": cityID})
	if err != nil {
		return nil, wrapErr(err)
	}
	var areas []model.Area
	if err := cur.All(ctx, &areas); err != nil {
		return nil, wrapErr(err)
	}
	return areas, nil
}

func (r *geoRepository) UpdateArea(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.updateOne(ctx, r.areas, id, fields)
}

func (r *geoRepository) DeleteArea(ctx context.Context, id primitive.ObjectID) error {
	return r.deleteOne(ctx, r.areas, id)
}

// --- shared helpers ---

func (r *geoRepository) updateOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, fields bson.M) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *geoRepository) deleteOne(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
