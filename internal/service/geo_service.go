package service

import (
	"context"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

type StateRequest struct {
	Name string `json:"name" binding:"required"`
}

type CityRequest struct {
	Name    string `json:"name" binding:"required"`
	StateID string `json:"state_id" binding:"required"`
}

type AreaRequest struct {
	Name   string `json:"name" binding:"required"`
	CityID string `json:"city_id" binding:"required"`
}

type StateResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CityResponse embeds the parent state. State is nil when the parent
// reference no longer resolves; the city is still returned.
type CityResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	State *StateResponse `json:"state"`
}

// AreaResponse embeds the parent city the same way CityResponse embeds
// the state.
type AreaResponse struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	City *CityResponse `json:"city"`
}

// GeoService manages the state, city and area hierarchy.
type GeoService interface {
	CreateState(ctx context.Context, req StateRequest) (*StateResponse, error)
	GetState(ctx context.Context, id string) (*StateResponse, error)
	ListStates(ctx context.Context) ([]StateResponse, error)
	UpdateState(ctx context.Context, id string, req StateRequest) (*StateResponse, error)
	DeleteState(ctx context.Context, id string) error

	CreateCity(ctx context.Context, req CityRequest) (*CityResponse, error)
	GetCity(ctx context.Context, id string) (*CityResponse, error)
	ListCities(ctx context.Context) ([]CityResponse, error)
	ListCitiesByState(ctx context.Context, stateID string) ([]CityResponse, error)
	UpdateCity(ctx context.Context, id string, req CityRequest) (*CityResponse, error)
	DeleteCity(ctx context.Context, id string) error

	CreateArea(ctx context.Context, req AreaRequest) (*AreaResponse, error)
	GetArea(ctx context.Context, id string) (*AreaResponse, error)
	ListAreas(ctx context.Context) ([]AreaResponse, error)
	ListAreasByCity(ctx context.Context, cityID string) ([]AreaResponse, error)
	UpdateArea(ctx context.Context, id string, req AreaRequest) (*AreaResponse, error)
	DeleteArea(ctx context.Context, id string) error
}

type geoService struct {
	geo repository.GeoRepository
}

// NewGeoService returns a new instance of GeoService
func NewGeoService(geo repository.GeoRepository) GeoService {
	return &geoService{geo: geo}
}

func toStateResponse(state *model.State) *StateResponse {
	return &StateResponse{ID: state.ID.Hex(), Name: state.Name}
}

// toCityResponse resolves the parent state. A dangling reference leaves
// the embedded state nil rather than failing the read.
func (s *geoService) toCityResponse(ctx context.Context, city *model.City) *CityResponse {
	resp := &CityResponse{ID: city.ID.Hex(), Name: city.Name}
	if state, err := s.geo.GetState(ctx, city.StateID); err == nil {
		resp.State = toStateResponse(state)
	}
	return resp
}

func (s *geoService) toAreaResponse(ctx context.Context, area *model.Area) *AreaResponse {
	resp := &AreaResponse{ID: area.ID.Hex(), Name: area.Name}
	if city, err := s.geo.GetCity(ctx, area.CityID); err == nil {
		resp.City = s.toCityResponse(ctx, city)
	}
	return resp
}

// --- States ---

func (s *geoService) CreateState(ctx context.Context, req StateRequest) (*StateResponse, error) {
	state := &model.State{Name: req.Name}
	if err := s.geo.CreateState(ctx, state); err != nil {
		return nil, apperrors.Storage(err)
	}
	return toStateResponse(state), nil
}

func (s *geoService) GetState(ctx context.Context, id string) (*StateResponse, error) {
	oid, err := parseID(id, "state")
	if err != nil {
		return nil, err
	}
	state, err := s.geo.GetState(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "State not found")
	}
	return toStateResponse(state), nil
}

func (s *geoService) ListStates(ctx context.Context) ([]StateResponse, error) {
	states, err := s.geo.ListStates(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]StateResponse, 0, len(states))
	for i := range states {
		responses = append(responses, *toStateResponse(&states[i]))
	}
	return responses, nil
}

func (s *geoService) UpdateState(ctx context.Context, id string, req StateRequest) (*StateResponse, error) {
	oid, err := parseID(id, "state")
	if err != nil {
		return nil, err
	}
	if err := s.geo.UpdateState(ctx, oid, bson.M{"name": req.Name}); err != nil {
		return nil, storageErr(err, "State not found")
	}
	return s.GetState(ctx, id)
}

func (s *geoService) DeleteState(ctx context.Context, id string) error {
	oid, err := parseID(id, "state")
	if err != nil {
		return err
	}
	if err := s.geo.DeleteState(ctx, oid); err != nil {
		return storageErr(err, "State not found")
	}
	return nil
}

// --- Cities ---

func (s *geoService) CreateCity(ctx context.Context, req CityRequest) (*CityResponse, error) {
	stateID, err := parseID(req.StateID, "state")
	if err != nil {
		return nil, err
	}
	if _, err := s.geo.GetState(ctx, stateID); err != nil {
		return nil, storageErr(err, "State not found")
	}

	city := &model.City{Name: req.Name, StateID: stateID}
	if err := s.geo.CreateCity(ctx, city); err != nil {
		return nil, apperrors.Storage(err)
	}
	return s.toCityResponse(ctx, city), nil
}

func (s *geoService) GetCity(ctx context.Context, id string) (*CityResponse, error) {
	oid, err := parseID(id, "city")
	if err != nil {
		return nil, err
	}
	city, err := s.geo.GetCity(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "City not found")
	}
	return s.toCityResponse(ctx, city), nil
}

func (s *geoService) ListCities(ctx context.Context) ([]CityResponse, error) {
	cities, err := s.geo.ListCities(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]CityResponse, 0, len(cities))
	for i := range cities {
		responses = append(responses, *s.toCityResponse(ctx, &cities[i]))
	}
	return responses, nil
}

func (s *geoService) ListCitiesByState(ctx context.Context, stateID string) ([]CityResponse, error) {
	oid, err := parseID(stateID, "state")
	if err != nil {
		return nil, err
	}
	cities, err := s.geo.ListCitiesByState(ctx, oid)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]CityResponse, 0, len(cities))
	for i := range cities {
		responses = append(responses, *s.toCityResponse(ctx, &cities[i]))
	}
	return responses, nil
}

func (s *geoService) UpdateCity(ctx context.Context, id string, req CityRequest) (*CityResponse, error) {
	oid, err := parseID(id, "city")
	if err != nil {
		return nil, err
	}

	fields := bson.M{"name": req.Name}
	if req.StateID != "" {
		stateID, err := parseID(req.StateID, "state")
		if err != nil {
			return nil, err
		}
		if _, err := s.geo.GetState(ctx, stateID); err != nil {
			return nil, storageErr(err, "State not found")
		}
		fields["state_id"] = stateID
	}

	if err := s.geo.UpdateCity(ctx, oid, fields); err != nil {
		return nil, storageErr(err, "City not found")
	}
	return s.GetCity(ctx, id)
}

func (s *geoService) DeleteCity(ctx context.Context, id string) error {
	oid, err := parseID(id, "city")
	if err != nil {
		return err
	}
	if err := s.geo.DeleteCity(ctx, oid); err != nil {
		return storageErr(err, "City not found")
	}
	return nil
}

// --- Areas ---

func (s *geoService) CreateArea(ctx context.Context, req AreaRequest) (*AreaResponse, error) {
	cityID, err := parseID(req.CityID, "city")
	if err != nil {
		return nil, err
	}
	if _, err := s.geo.GetCity(ctx, cityID); err != nil {
		return nil, storageErr(err, "City not found")
	}

	area := &model.Area{Name: req.Name, CityID: cityID}
	if err := s.geo.CreateArea(ctx, area); err != nil {
		return nil, apperrors.Storage(err)
	}
	return s.toAreaResponse(ctx, area), nil
}

func (s *geoService) GetArea(ctx context.Context, id string) (*AreaResponse, error) {
	oid, err := parseID(id, "area")
	if err != nil {
		return nil, err
	}
	area, err := s.geo.GetArea(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Area not found")
	}
	return s.toAreaResponse(ctx, area), nil
}

func (s *geoService) ListAreas(ctx context.Context) ([]AreaResponse, error) {
	areas, err := s.geo.ListAreas(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]AreaResponse, 0, len(areas))
	for i := range areas {
		responses = append(responses, *s.toAreaResponse(ctx, &areas[i]))
	}
	return responses, nil
}

func (s *geoService) ListAreasByCity(ctx context.Context, cityID string) ([]AreaResponse, error) {
	oid, err := parseID(cityID, "city")
	if err != nil {
		return nil, err
	}
	areas, err := s.geo.ListAreasByCity(ctx, oid)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	responses := make([]AreaResponse, 0, len(areas))
	for i := range areas {
		responses = append(responses, *s.toAreaResponse(ctx, &areas[i]))
	}
	return responses, nil
}

func (s *geoService) UpdateArea(ctx context.Context, id string, req AreaRequest) (*AreaResponse, error) {
	oid, err := parseID(id, "area")
	if err != nil {
		return nil, err
	}

	fields := bson.M{"name": req.Name}
	if req.CityID != "" {
		cityID, err := parseID(req.CityID, "city")
		if err != nil {
			return nil, err
		}
		if _, err := s.geo.GetCity(ctx, cityID); err != nil {
			return nil, storageErr(err, "City not found")
		}
		fields["city_id"] = cityID
	}

	if err := s.geo.UpdateArea(ctx, oid, fields); err != nil {
		return nil, storageErr(err, "Area not found")
	}
	return s.GetArea(ctx, id)
}

func (s *geoService) DeleteArea(ctx context.Context, id string) error {
	oid, err := parseID(id, "area")
	if err != nil {
		return err
	}
	if err := s.geo.DeleteArea(ctx, oid); err != nil {
		return storageErr(err, "Area not found")
	}
	return nil
}
