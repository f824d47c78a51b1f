package service

import (
	"context"
	"testing"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockGeoRepo is a function-field mock of repository.GeoRepository.
type mockGeoRepo struct {
	GetStateFunc        func(ctx context.Context, id primitive.ObjectID) (*model.State, error)
	GetCityFunc         func(ctx context.Context, id primitive.ObjectID) (*model.City, error)
	GetAreaFunc         func(ctx context.Context, id primitive.ObjectID) (*model.Area, error)
	ListAreasByCityFunc func(ctx context.Context, cityID primitive.ObjectID) ([]model.Area, error)
	CreateAreaFunc      func(ctx context.Context, area *model.Area) error
}

func (m *mockGeoRepo) CreateState(ctx context.Context, state *model.State) error {
	state.ID = primitive.NewObjectID()
	return nil
}

func (m *mockGeoRepo) GetState(ctx context.Context, id primitive.ObjectID) (*model.State, error) {
	if m.GetStateFunc != nil {
		return m.GetStateFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockGeoRepo) ListStates(ctx context.Context) ([]model.State, error) { return nil, nil }
func (m *mockGeoRepo) UpdateState(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}
func (m *mockGeoRepo) DeleteState(ctx context.Context, id primitive.ObjectID) error { return nil }

func (m *mockGeoRepo) CreateCity(ctx context.Context, city *model.City) error {
	city.ID = primitive.NewObjectID()
	return nil
}

func (m *mockGeoRepo) GetCity(ctx context.Context, id primitive.ObjectID) (*model.City, error) {
	if m.GetCityFunc != nil {
		return m.GetCityFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockGeoRepo) ListCities(ctx context.Context) ([]model.City, error) { return nil, nil }
func (m *mockGeoRepo) ListCitiesByState(ctx context.Context, stateID primitive.ObjectID) ([]model.City, error) {
	return nil, nil
}
func (m *mockGeoRepo) UpdateCity(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}
func (m *mockGeoRepo) DeleteCity(ctx context.Context, id primitive.ObjectID) error { return nil }

func (m *mockGeoRepo) CreateArea(ctx context.Context, area *model.Area) error {
	if m.CreateAreaFunc != nil {
		return m.CreateAreaFunc(ctx, area)
	}
	area.ID = primitive.NewObjectID()
	return nil
}

func (m *mockGeoRepo) GetArea(ctx context.Context, id primitive.ObjectID) (*model.Area, error) {
	if m.GetAreaFunc != nil {
		return m.GetAreaFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockGeoRepo) ListAreas(ctx context.Context) ([]model.Area, error) { return nil, nil }
func (m *mockGeoRepo) ListAreasByCity(ctx context.Context, cityID primitive.ObjectID) ([]model.Area, error) {
	if m.ListAreasByCityFunc != nil {
		return m.ListAreasByCityFunc(ctx, cityID)
	}
	return nil, nil
}
func (m *mockGeoRepo) UpdateArea(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}
func (m *mockGeoRepo) DeleteArea(ctx context.Context, id primitive.ObjectID) error { return nil }

func TestGeoService_GetArea_EmbedsParents(t *testing.T) {
	state := &model.State{ID: primitive.NewObjectID(), Name: "Gujarat"}
	city := &model.City{ID: primitive.NewObjectID(), Name: "Ahmedabad", StateID: state.ID}
	area := &model.Area{ID: primitive.NewObjectID(), Name: "Navrangpura", CityID: city.ID}

	geo := &mockGeoRepo{
		GetStateFunc: func(ctx context.Context, id primitive.ObjectID) (*model.State, error) {
			return state, nil
		},
		GetCityFunc: func(ctx context.Context, id primitive.ObjectID) (*model.City, error) {
			return city, nil
		},
		GetAreaFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Area, error) {
			return area, nil
		},
	}
	svc := NewGeoService(geo)

	resp, err := svc.GetArea(context.Background(), area.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Navrangpura", resp.Name)
	assert.NotNil(t, resp.City)
	assert.Equal(t, "Ahmedabad", resp.City.Name)
	assert.NotNil(t, resp.City.State)
	assert.Equal(t, "Gujarat", resp.City.State.Name)
}

func TestGeoService_GetArea_MissingParentTolerated(t *testing.T) {
	// The parent city was deleted. The area is still readable; only the
	// embedded city is omitted.
	area := &model.Area{ID: primitive.NewObjectID(), Name: "Orphan", CityID: primitive.NewObjectID()}
	geo := &mockGeoRepo{
		GetAreaFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Area, error) {
			return area, nil
		},
	}
	svc := NewGeoService(geo)

	resp, err := svc.GetArea(context.Background(), area.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Orphan", resp.Name)
	assert.Nil(t, resp.City)
}

func TestGeoService_CreateArea_RequiresLiveCity(t *testing.T) {
	svc := NewGeoService(&mockGeoRepo{})

	_, err := svc.CreateArea(context.Background(), AreaRequest{
		Name:   "New Area",
		CityID: primitive.NewObjectID().Hex(),
	})
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.From(err).Code)
}

func TestGeoService_CreateArea_MalformedCityID(t *testing.T) {
	svc := NewGeoService(&mockGeoRepo{})

	_, err := svc.CreateArea(context.Background(), AreaRequest{Name: "X", CityID: "bad"})
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.From(err).Code)
}

func TestGeoService_GetCity_MissingStateTolerated(t *testing.T) {
	city := &model.City{ID: primitive.NewObjectID(), Name: "Ghost Town", StateID: primitive.NewObjectID()}
	geo := &mockGeoRepo{
		GetCityFunc: func(ctx context.Context, id primitive.ObjectID) (*model.City, error) {
			return city, nil
		},
	}
	svc := NewGeoService(geo)

	resp, err := svc.GetCity(context.Background(), city.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Ghost Town", resp.Name)
	assert.Nil(t, resp.State)
}
