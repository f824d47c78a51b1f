package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	ws "github.com/SnehSutariya72/Vehicle-Vault-backend/internal/websocket"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

type CreateCarRequest struct {
	Make      string
	Model     string
	Price     decimal.Decimal
	Color     string
	UserID    string
	CityID    string
	KmsDriven int
}

// AgentCarRequest is the JSON body for the agent-gated creation path. The
// owner is always the authenticated agent; no user id is accepted.
type AgentCarRequest struct {
	Make      string          `json:"make" binding:"required"`
	Model     string          `json:"model" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Color     string          `json:"color" binding:"required"`
	CityID    string          `json:"cityId" binding:"required"`
	KmsDriven int             `json:"kmsDriven" binding:"required"`
}

// UpdateCarRequest carries partial updates: only non-nil fields are
// written. Ownership (user_id) is not updatable through this path.
type UpdateCarRequest struct {
	Make      *string          `json:"make"`
	Model     *string          `json:"model"`
	Price     *decimal.Decimal `json:"price"`
	Color     *string          `json:"color"`
	CityID    *string          `json:"cityId"`
	KmsDriven *int             `json:"kmsDriven"`
}

type CarResponse struct {
	ID        string  `json:"id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Price     float64 `json:"price"`
	Color     string  `json:"color"`
	UserID    string  `json:"user_id"`
	CityID    string  `json:"city_id"`
	KmsDriven int     `json:"kms_driven"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// CarDetailsRequest is the multipart form for the 1:1 detail upsert. The
// image path is resolved by the handler after saving the upload.
type CarDetailsRequest struct {
	CarID       string
	Description string
	Features    []string
	Accessories []string
	ImagePath   string
}

// ListingEvent is the payload broadcast to WebSocket subscribers on car
// mutations.
type ListingEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// CarService defines car CRUD plus the agent-gated mutation paths and the
// 1:1 detail records.
type CarService interface {
	CreateCar(ctx context.Context, req CreateCarRequest) (*CarResponse, error)
	GetCar(ctx context.Context, id string) (*CarResponse, error)
	ListCars(ctx context.Context, skip, limit int64) ([]CarResponse, int64, error)
	ListCarsByUser(ctx context.Context, userID string) ([]CarResponse, error)
	UpdateCar(ctx context.Context, id string, req UpdateCarRequest) (*CarResponse, error)
	DeleteCar(ctx context.Context, id string) error

	AgentAddCar(ctx context.Context, agent *model.User, req AgentCarRequest) (*CarResponse, error)
	AgentUpdateCar(ctx context.Context, agent *model.User, carID string, req UpdateCarRequest) (*CarResponse, error)
	AgentDeleteCar(ctx context.Context, agent *model.User, carID string) error
	AgentListCars(ctx context.Context, userID string) ([]CarResponse, error)

	AddCarDetails(ctx context.Context, req CarDetailsRequest) (*model.CarDetails, error)
	GetCarWithDetails(ctx context.Context, carID string) (map[string]interface{}, error)
}

type carService struct {
	cars  repository.CarRepository
	users repository.UserRepository
	roles repository.RoleRepository
	audit repository.AuditRepository
	hub   *ws.Hub
}

// NewCarService returns a new instance of CarService
func NewCarService(
	cars repository.CarRepository,
	users repository.UserRepository,
	roles repository.RoleRepository,
	audit repository.AuditRepository,
	hub *ws.Hub,
) CarService {
	return &carService{cars: cars, users: users, roles: roles, audit: audit, hub: hub}
}

func toCarResponse(car *model.Car) *CarResponse {
	return &CarResponse{
		ID:        car.ID.Hex(),
		Make:      car.Make,
		Model:     car.Model,
		Price:     car.Price,
		Color:     car.Color,
		UserID:    car.UserID.Hex(),
		CityID:    car.CityID.Hex(),
		KmsDriven: car.KmsDriven,
		CreatedAt: car.CreatedAt.Format(time.RFC3339),
		UpdatedAt: car.UpdatedAt.Format(time.RFC3339),
	}
}

// broadcast pushes a listing event to connected WebSocket clients. It is
// best-effort: a missing hub (tests) or marshal failure never fails the
// request that triggered it.
func (s *carService) broadcast(event string, data interface{}) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(ListingEvent{Event: event, Data: data})
	if err != nil {
		log.Printf("listing event marshal failed: %v", err)
		return
	}
	s.hub.Broadcast <- payload
}

func (s *carService) CreateCar(ctx context.Context, req CreateCarRequest) (*CarResponse, error) {
	if !req.Price.IsPositive() {
		return nil, apperrors.Validation("Price must be greater than zero")
	}

	userID, err := parseID(req.UserID, "user")
	if err != nil {
		return nil, err
	}
	cityID, err := parseID(req.CityID, "city")
	if err != nil {
		return nil, err
	}

	// The owner reference must resolve at creation time; storage does
	// not enforce it.
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, storageErr(err, "User not found")
	}

	car := &model.Car{
		Make:      req.Make,
		Model:     req.Model,
		Price:     req.Price.InexactFloat64(),
		Color:     req.Color,
		UserID:    userID,
		CityID:    cityID,
		KmsDriven: req.KmsDriven,
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, apperrors.Storage(err)
	}

	resp := toCarResponse(car)
	s.broadcast("car_created", resp)
	return resp, nil
}

func (s *carService) GetCar(ctx context.Context, id string) (*CarResponse, error) {
	oid, err := parseID(id, "car")
	if err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Car not found")
	}
	return toCarResponse(car), nil
}

func (s *carService) ListCars(ctx context.Context, skip, limit int64) ([]CarResponse, int64, error) {
	cars, total, err := s.cars.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, apperrors.Storage(err)
	}

	responses := make([]CarResponse, 0, len(cars))
	for i := range cars {
		responses = append(responses, *toCarResponse(&cars[i]))
	}
	return responses, total, nil
}

func (s *carService) ListCarsByUser(ctx context.Context, userID string) ([]CarResponse, error) {
	oid, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	cars, err := s.cars.ListByUser(ctx, oid)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	responses := make([]CarResponse, 0, len(cars))
	for i := range cars {
		responses = append(responses, *toCarResponse(&cars[i]))
	}
	return responses, nil
}

// updateFields converts the non-nil request fields to a $set document.
func (s *carService) updateFields(req UpdateCarRequest) (bson.M, error) {
	fields := bson.M{}
	if req.Make != nil {
		fields["make"] = *req.Make
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, apperrors.Validation("Price must be greater than zero")
		}
		fields["price"] = req.Price.InexactFloat64()
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.CityID != nil {
		cityID, err := parseID(*req.CityID, "city")
		if err != nil {
			return nil, err
		}
		fields["city_id"] = cityID
	}
	if req.KmsDriven != nil {
		fields["kms_driven"] = *req.KmsDriven
	}
	return fields, nil
}

func (s *carService) UpdateCar(ctx context.Context, id string, req UpdateCarRequest) (*CarResponse, error) {
	oid, err := parseID(id, "car")
	if err != nil {
		return nil, err
	}

	fields, err := s.updateFields(req)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.cars.UpdateFields(ctx, oid, fields); err != nil {
			return nil, storageErr(err, "Car not found")
		}
	}

	car, err := s.cars.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Car not found")
	}

	resp := toCarResponse(car)
	s.broadcast("car_updated", resp)
	return resp, nil
}

func (s *carService) DeleteCar(ctx context.Context, id string) error {
	oid, err := parseID(id, "car")
	if err != nil {
		return err
	}

	if err := s.cars.Delete(ctx, oid); err != nil {
		return storageErr(err, "Car not found")
	}

	s.broadcast("car_deleted", map[string]string{"id": id})
	return nil
}

// requireAgent is the role gate for agent endpoints. A user without a
// role reference is Forbidden; a reference pointing at a vanished role
// document is a server-side data problem, not the caller's fault.
func (s *carService) requireAgent(ctx context.Context, user *model.User) error {
	if user.RoleID == nil {
		return apperrors.Forbidden("User has no role assigned")
	}

	role, err := s.roles.GetByID(ctx, *user.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.RoleNotFound("user references a missing role")
		}
		return apperrors.Storage(err)
	}

	if role.Name != model.RoleAgent {
		return apperrors.Forbidden("User is not authorized to manage cars")
	}
	return nil
}

func (s *carService) AgentAddCar(ctx context.Context, agent *model.User, req AgentCarRequest) (*CarResponse, error) {
	if err := s.requireAgent(ctx, agent); err != nil {
		return nil, err
	}

	resp, err := s.CreateCar(ctx, CreateCarRequest{
		Make:      req.Make,
		Model:     req.Model,
		Price:     req.Price,
		Color:     req.Color,
		UserID:    agent.ID.Hex(),
		CityID:    req.CityID,
		KmsDriven: req.KmsDriven,
	})
	if err != nil {
		return nil, err
	}

	s.auditAgentAction(ctx, agent, model.ActionAgentAddCar, resp.ID)
	return resp, nil
}

// AgentUpdateCar checks, in order: car existence, ownership, agent role.
// A missing car always reports NotFound before any authorization check
// runs; this matches the long-observed API behavior (see DESIGN.md).
func (s *carService) AgentUpdateCar(ctx context.Context, agent *model.User, carID string, req UpdateCarRequest) (*CarResponse, error) {
	oid, err := parseID(carID, "car")
	if err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Car not found")
	}
	if car.UserID != agent.ID {
		return nil, apperrors.Forbidden("Not authorized to update this car")
	}
	if err := s.requireAgent(ctx, agent); err != nil {
		return nil, err
	}

	fields, err := s.updateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.cars.UpdateFields(ctx, oid, fields); err != nil {
			return nil, storageErr(err, "Car not found")
		}
	}

	updated, err := s.cars.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Car not found")
	}

	s.auditAgentAction(ctx, agent, model.ActionAgentUpdateCar, carID)
	resp := toCarResponse(updated)
	s.broadcast("car_updated", resp)
	return resp, nil
}

func (s *carService) AgentDeleteCar(ctx context.Context, agent *model.User, carID string) error {
	oid, err := parseID(carID, "car")
	if err != nil {
		return err
	}

	car, err := s.cars.GetByID(ctx, oid)
	if err != nil {
		return storageErr(err, "Car not found")
	}
	if car.UserID != agent.ID {
		return apperrors.Forbidden("Not authorized to delete this car")
	}
	if err := s.requireAgent(ctx, agent); err != nil {
		return err
	}

	if err := s.cars.Delete(ctx, oid); err != nil {
		return storageErr(err, "Car not found")
	}

	s.auditAgentAction(ctx, agent, model.ActionAgentDeleteCar, carID)
	s.broadcast("car_deleted", map[string]string{"id": carID})
	return nil
}

func (s *carService) AgentListCars(ctx context.Context, userID string) ([]CarResponse, error) {
	oid, err := parseID(userID, "agent")
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, oid); err != nil {
		return nil, storageErr(err, "Agent not found")
	}
	return s.ListCarsByUser(ctx, userID)
}

func (s *carService) auditAgentAction(ctx context.Context, agent *model.User, action, carID string) {
	if err := s.audit.Log(ctx, &model.AuditLog{
		UserID:   &agent.ID,
		Action:   action,
		EntityID: carID,
	}); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

// AddCarDetails upserts the 1:1 detail record for a car. Only supplied
// fields are written, so repeated calls merge rather than replace.
func (s *carService) AddCarDetails(ctx context.Context, req CarDetailsRequest) (*model.CarDetails, error) {
	oid, err := parseID(req.CarID, "car")
	if err != nil {
		return nil, err
	}

	if _, err := s.cars.GetByID(ctx, oid); err != nil {
		return nil, storageErr(err, "Car not found")
	}

	fields := bson.M{}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if len(req.Features) > 0 {
		fields["features"] = req.Features
	}
	if len(req.Accessories) > 0 {
		fields["accessories"] = req.Accessories
	}
	if req.ImagePath != "" {
		fields["image"] = req.ImagePath
	}

	details, err := s.cars.UpsertDetails(ctx, oid, fields)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return details, nil
}

// GetCarWithDetails returns the base car document with any detail fields
// merged on top. A car without a detail record is not an error.
func (s *carService) GetCarWithDetails(ctx context.Context, carID string) (map[string]interface{}, error) {
	oid, err := parseID(carID, "car")
	if err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "Car not found")
	}

	merged := map[string]interface{}{
		"id":         car.ID.Hex(),
		"make":       car.Make,
		"model":      car.Model,
		"price":      car.Price,
		"color":      car.Color,
		"user_id":    car.UserID.Hex(),
		"city_id":    car.CityID.Hex(),
		"kms_driven": car.KmsDriven,
	}

	details, err := s.cars.GetDetails(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return merged, nil
		}
		return nil, apperrors.Storage(err)
	}

	if details.Description != "" {
		merged["description"] = details.Description
	}
	if len(details.Features) > 0 {
		merged["features"] = details.Features
	}
	if len(details.Accessories) > 0 {
		merged["accessories"] = details.Accessories
	}
	if details.Image != "" {
		merged["image"] = details.Image
	}
	return merged, nil
}
