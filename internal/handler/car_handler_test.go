package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockCarService is a function-field mock of service.CarService.
type mockCarService struct {
	CreateCarFunc         func(ctx context.Context, req service.CreateCarRequest) (*service.CarResponse, error)
	GetCarFunc            func(ctx context.Context, id string) (*service.CarResponse, error)
	ListCarsFunc          func(ctx context.Context, skip, limit int64) ([]service.CarResponse, int64, error)
	ListCarsByUserFunc    func(ctx context.Context, userID string) ([]service.CarResponse, error)
	UpdateCarFunc         func(ctx context.Context, id string, req service.UpdateCarRequest) (*service.CarResponse, error)
	DeleteCarFunc         func(ctx context.Context, id string) error
	AgentAddCarFunc       func(ctx context.Context, agent *model.User, req service.AgentCarRequest) (*service.CarResponse, error)
	AgentUpdateCarFunc    func(ctx context.Context, agent *model.User, carID string, req service.UpdateCarRequest) (*service.CarResponse, error)
	AgentDeleteCarFunc    func(ctx context.Context, agent *model.User, carID string) error
	AgentListCarsFunc     func(ctx context.Context, userID string) ([]service.CarResponse, error)
	AddCarDetailsFunc     func(ctx context.Context, req service.CarDetailsRequest) (*model.CarDetails, error)
	GetCarWithDetailsFunc func(ctx context.Context, carID string) (map[string]interface{}, error)
}

func (m *mockCarService) CreateCar(ctx context.Context, req service.CreateCarRequest) (*service.CarResponse, error) {
	if m.CreateCarFunc != nil {
		return m.CreateCarFunc(ctx, req)
	}
	return &service.CarResponse{Make: req.Make, Model: req.Model}, nil
}

func (m *mockCarService) GetCar(ctx context.Context, id string) (*service.CarResponse, error) {
	if m.GetCarFunc != nil {
		return m.GetCarFunc(ctx, id)
	}
	return nil, apperrors.NotFound("Car not found")
}

func (m *mockCarService) ListCars(ctx context.Context, skip, limit int64) ([]service.CarResponse, int64, error) {
	if m.ListCarsFunc != nil {
		return m.ListCarsFunc(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (m *mockCarService) ListCarsByUser(ctx context.Context, userID string) ([]service.CarResponse, error) {
	if m.ListCarsByUserFunc != nil {
		return m.ListCarsByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCarService) UpdateCar(ctx context.Context, id string, req service.UpdateCarRequest) (*service.CarResponse, error) {
	if m.UpdateCarFunc != nil {
		return m.UpdateCarFunc(ctx, id, req)
	}
	return &service.CarResponse{ID: id}, nil
}

func (m *mockCarService) DeleteCar(ctx context.Context, id string) error {
	if m.DeleteCarFunc != nil {
		return m.DeleteCarFunc(ctx, id)
	}
	return nil
}

func (m *mockCarService) AgentAddCar(ctx context.Context, agent *model.User, req service.AgentCarRequest) (*service.CarResponse, error) {
	if m.AgentAddCarFunc != nil {
		return m.AgentAddCarFunc(ctx, agent, req)
	}
	return &service.CarResponse{}, nil
}

func (m *mockCarService) AgentUpdateCar(ctx context.Context, agent *model.User, carID string, req service.UpdateCarRequest) (*service.CarResponse, error) {
	if m.AgentUpdateCarFunc != nil {
		return m.AgentUpdateCarFunc(ctx, agent, carID, req)
	}
	return &service.CarResponse{}, nil
}

func (m *mockCarService) AgentDeleteCar(ctx context.Context, agent *model.User, carID string) error {
	if m.AgentDeleteCarFunc != nil {
		return m.AgentDeleteCarFunc(ctx, agent, carID)
	}
	return nil
}

func (m *mockCarService) AgentListCars(ctx context.Context, userID string) ([]service.CarResponse, error) {
	if m.AgentListCarsFunc != nil {
		return m.AgentListCarsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCarService) AddCarDetails(ctx context.Context, req service.CarDetailsRequest) (*model.CarDetails, error) {
	if m.AddCarDetailsFunc != nil {
		return m.AddCarDetailsFunc(ctx, req)
	}
	return &model.CarDetails{}, nil
}

func (m *mockCarService) GetCarWithDetails(ctx context.Context, carID string) (map[string]interface{}, error) {
	if m.GetCarWithDetailsFunc != nil {
		return m.GetCarWithDetailsFunc(ctx, carID)
	}
	return map[string]interface{}{}, nil
}

func newCarRouter(svc service.CarService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCarHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCarHandler_CreateCar(t *testing.T) {
	var captured service.CreateCarRequest
	svc := &mockCarService{
		CreateCarFunc: func(ctx context.Context, req service.CreateCarRequest) (*service.CarResponse, error) {
			captured = req
			return &service.CarResponse{Make: req.Make, Model: req.Model, Price: 850000}, nil
		},
	}
	router := newCarRouter(svc)

	form := url.Values{
		"make":      {"Tata"},
		"model":     {"Nexon"},
		"price":     {"850000.50"},
		"color":     {"blue"},
		"userId":    {"64f1a2b3c4d5e6f708192a3b"},
		"cityId":    {"64f1a2b3c4d5e6f708192a3c"},
		"kmsDriven": {"12000"},
	}
	w := postForm(router, "/api/cars/create_car", form)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Tata", captured.Make)
	assert.Equal(t, "850000.5", captured.Price.String())
	assert.Equal(t, 12000, captured.KmsDriven)
}

func TestCarHandler_CreateCar_BadForm(t *testing.T) {
	router := newCarRouter(&mockCarService{})

	tests := []struct {
		name string
		form url.Values
	}{
		{
			name: "missing make",
			form: url.Values{
				"model": {"Nexon"}, "price": {"100"}, "color": {"blue"},
				"userId": {"x"}, "cityId": {"y"}, "kmsDriven": {"1"},
			},
		},
		{
			name: "unparseable price",
			form: url.Values{
				"make": {"Tata"}, "model": {"Nexon"}, "price": {"lots"},
				"color": {"blue"}, "userId": {"x"}, "cityId": {"y"}, "kmsDriven": {"1"},
			},
		},
		{
			name: "unparseable kms",
			form: url.Values{
				"make": {"Tata"}, "model": {"Nexon"}, "price": {"100"},
				"color": {"blue"}, "userId": {"x"}, "cityId": {"y"}, "kmsDriven": {"many"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postForm(router, "/api/cars/create_car", tt.form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCarHandler_UpdateCar_PartialForm(t *testing.T) {
	var captured service.UpdateCarRequest
	svc := &mockCarService{
		UpdateCarFunc: func(ctx context.Context, id string, req service.UpdateCarRequest) (*service.CarResponse, error) {
			captured = req
			return &service.CarResponse{ID: id}, nil
		},
	}
	router := newCarRouter(svc)

	form := url.Values{"color": {"red"}}
	req, _ := http.NewRequest(http.MethodPut, "/api/cars/update_car/abc123", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, captured.Color)
	assert.Equal(t, "red", *captured.Color)
	// Absent fields stay nil so the service leaves them untouched.
	assert.Nil(t, captured.Make)
	assert.Nil(t, captured.Price)
	assert.Nil(t, captured.KmsDriven)
}

func TestCarHandler_GetCar_NotFound(t *testing.T) {
	router := newCarRouter(&mockCarService{})

	req, _ := http.NewRequest(http.MethodGet, "/api/cars/get_car/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Car not found", envelope["error"])
}

func TestCarHandler_ListCars_Pagination(t *testing.T) {
	var gotSkip, gotLimit int64
	svc := &mockCarService{
		ListCarsFunc: func(ctx context.Context, skip, limit int64) ([]service.CarResponse, int64, error) {
			gotSkip, gotLimit = skip, limit
			return []service.CarResponse{}, 0, nil
		},
	}
	router := newCarRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/api/cars/get_cars?page=3&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(20), gotSkip)
	assert.Equal(t, int64(10), gotLimit)
}
