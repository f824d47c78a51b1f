package service

import (
	"context"
	"testing"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func agentFixture(roleID primitive.ObjectID) *model.User {
	return &model.User{
		ID:     primitive.NewObjectID(),
		Email:  "agent@example.com",
		RoleID: &roleID,
	}
}

func agentRoleRepo(roleID primitive.ObjectID, roleName string) *mockRoleRepo {
	return &mockRoleRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
			if id == roleID {
				return &model.Role{ID: roleID, Name: roleName}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

func TestCarService_CreateCar(t *testing.T) {
	owner := &model.User{ID: primitive.NewObjectID()}
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
			if id == owner.ID {
				return owner, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewCarService(&mockCarRepo{}, users, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	resp, err := svc.CreateCar(context.Background(), CreateCarRequest{
		Make:      "Tata",
		Model:     "Nexon",
		Price:     decimal.NewFromInt(850000),
		Color:     "blue",
		UserID:    owner.ID.Hex(),
		CityID:    primitive.NewObjectID().Hex(),
		KmsDriven: 12000,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Tata", resp.Make)
	assert.Equal(t, owner.ID.Hex(), resp.UserID)
	assert.Equal(t, float64(850000), resp.Price)
}

func TestCarService_CreateCar_Validation(t *testing.T) {
	svc := NewCarService(&mockCarRepo{}, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	tests := []struct {
		name string
		req  CreateCarRequest
		code apperrors.Code
	}{
		{
			name: "zero price",
			req: CreateCarRequest{
				Price:  decimal.Zero,
				UserID: primitive.NewObjectID().Hex(),
				CityID: primitive.NewObjectID().Hex(),
			},
			code: apperrors.CodeValidation,
		},
		{
			name: "negative price",
			req: CreateCarRequest{
				Price:  decimal.NewFromInt(-1),
				UserID: primitive.NewObjectID().Hex(),
				CityID: primitive.NewObjectID().Hex(),
			},
			code: apperrors.CodeValidation,
		},
		{
			name: "malformed user id",
			req: CreateCarRequest{
				Price:  decimal.NewFromInt(100),
				UserID: "not-an-id",
				CityID: primitive.NewObjectID().Hex(),
			},
			code: apperrors.CodeValidation,
		},
		{
			name: "owner does not exist",
			req: CreateCarRequest{
				Price:  decimal.NewFromInt(100),
				UserID: primitive.NewObjectID().Hex(),
				CityID: primitive.NewObjectID().Hex(),
			},
			code: apperrors.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCar(context.Background(), tt.req)
			assert.Error(t, err)
			assert.Equal(t, tt.code, apperrors.From(err).Code)
		})
	}
}

// The agent mutation path checks existence, then ownership, then role. A
// caller probing someone else's car id learns only that it exists, and a
// missing car is 404 regardless of who asks.
func TestCarService_AgentUpdateCar_CheckOrder(t *testing.T) {
	agentRoleID := primitive.NewObjectID()
	userRoleID := primitive.NewObjectID()
	agent := agentFixture(agentRoleID)
	plainUser := agentFixture(userRoleID)

	ownCar := &model.Car{ID: primitive.NewObjectID(), UserID: agent.ID, Make: "Honda"}
	otherCar := &model.Car{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID()}
	plainUserCar := &model.Car{ID: primitive.NewObjectID(), UserID: plainUser.ID}

	cars := &mockCarRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			switch id {
			case ownCar.ID:
				return ownCar, nil
			case otherCar.ID:
				return otherCar, nil
			case plainUserCar.ID:
				return plainUserCar, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	roles := &mockRoleRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
			switch id {
			case agentRoleID:
				return &model.Role{ID: agentRoleID, Name: model.RoleAgent}, nil
			case userRoleID:
				return &model.Role{ID: userRoleID, Name: model.RoleUser}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewCarService(cars, &mockUserRepo{}, roles, &mockAuditRepo{}, nil)

	newMake := "Toyota"
	req := UpdateCarRequest{Make: &newMake}

	tests := []struct {
		name   string
		caller *model.User
		carID  string
		code   apperrors.Code
	}{
		{
			name:   "missing car is 404 before any authorization",
			caller: plainUser,
			carID:  primitive.NewObjectID().Hex(),
			code:   apperrors.CodeNotFound,
		},
		{
			name:   "not the owner is 403 even for an agent",
			caller: agent,
			carID:  otherCar.ID.Hex(),
			code:   apperrors.CodeForbidden,
		},
		{
			name:   "owner without agent role is 403",
			caller: plainUser,
			carID:  plainUserCar.ID.Hex(),
			code:   apperrors.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AgentUpdateCar(context.Background(), tt.caller, tt.carID, req)
			assert.Error(t, err)
			assert.Equal(t, tt.code, apperrors.From(err).Code)
		})
	}

	t.Run("owning agent succeeds and is audited", func(t *testing.T) {
		audit := &mockAuditRepo{}
		svcAudited := NewCarService(cars, &mockUserRepo{}, roles, audit, nil)

		resp, err := svcAudited.AgentUpdateCar(context.Background(), agent, ownCar.ID.Hex(), req)
		assert.NoError(t, err)
		assert.Equal(t, ownCar.ID.Hex(), resp.ID)
		assert.Len(t, audit.Entries, 1)
		assert.Equal(t, model.ActionAgentUpdateCar, audit.Entries[0].Action)
	})
}

func TestCarService_AgentDeleteCar_NoRoleAssigned(t *testing.T) {
	noRoleUser := &model.User{ID: primitive.NewObjectID()}
	car := &model.Car{ID: primitive.NewObjectID(), UserID: noRoleUser.ID}

	cars := &mockCarRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			return car, nil
		},
	}
	svc := NewCarService(cars, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	err := svc.AgentDeleteCar(context.Background(), noRoleUser, car.ID.Hex())
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.From(err).Code)
}

func TestCarService_AgentAddCar_DanglingRole(t *testing.T) {
	// The role reference points at a deleted role document. That is a
	// server-side data problem, so the caller sees a 500-class error.
	agent := agentFixture(primitive.NewObjectID())
	svc := NewCarService(&mockCarRepo{}, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	_, err := svc.AgentAddCar(context.Background(), agent, AgentCarRequest{
		Make:      "Honda",
		Model:     "City",
		Price:     decimal.NewFromInt(700000),
		Color:     "white",
		CityID:    primitive.NewObjectID().Hex(),
		KmsDriven: 5000,
	})
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeRoleNotFound, apperrors.From(err).Code)
}

func TestCarService_AgentAddCar_OwnedByAgent(t *testing.T) {
	agentRoleID := primitive.NewObjectID()
	agent := agentFixture(agentRoleID)

	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
			if id == agent.ID {
				return agent, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	audit := &mockAuditRepo{}
	svc := NewCarService(&mockCarRepo{}, users, agentRoleRepo(agentRoleID, model.RoleAgent), audit, nil)

	resp, err := svc.AgentAddCar(context.Background(), agent, AgentCarRequest{
		Make:      "Honda",
		Model:     "City",
		Price:     decimal.NewFromInt(700000),
		Color:     "white",
		CityID:    primitive.NewObjectID().Hex(),
		KmsDriven: 5000,
	})
	assert.NoError(t, err)
	assert.Equal(t, agent.ID.Hex(), resp.UserID)
	assert.Len(t, audit.Entries, 1)
	assert.Equal(t, model.ActionAgentAddCar, audit.Entries[0].Action)
}

func TestCarService_GetCarWithDetails_Merged(t *testing.T) {
	car := &model.Car{
		ID:     primitive.NewObjectID(),
		Make:   "Maruti",
		Model:  "Swift",
		Price:  550000,
		UserID: primitive.NewObjectID(),
		CityID: primitive.NewObjectID(),
	}
	cars := &mockCarRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			return car, nil
		},
		GetDetailsFunc: func(ctx context.Context, carID primitive.ObjectID) (*model.CarDetails, error) {
			return &model.CarDetails{
				CarID:       car.ID,
				Description: "well maintained",
				Features:    []string{"sunroof"},
			}, nil
		},
	}
	svc := NewCarService(cars, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	merged, err := svc.GetCarWithDetails(context.Background(), car.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Maruti", merged["make"])
	assert.Equal(t, "well maintained", merged["description"])
	assert.Equal(t, []string{"sunroof"}, merged["features"])
}

func TestCarService_GetCarWithDetails_AbsentDetails(t *testing.T) {
	car := &model.Car{ID: primitive.NewObjectID(), Make: "Maruti"}
	cars := &mockCarRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			return car, nil
		},
	}
	svc := NewCarService(cars, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	merged, err := svc.GetCarWithDetails(context.Background(), car.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Maruti", merged["make"])
	assert.NotContains(t, merged, "description")
}

func TestCarService_AddCarDetails_PartialMerge(t *testing.T) {
	car := &model.Car{ID: primitive.NewObjectID()}
	var upserted bson.M
	cars := &mockCarRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
			return car, nil
		},
		UpsertDetailsFunc: func(ctx context.Context, carID primitive.ObjectID, fields bson.M) (*model.CarDetails, error) {
			upserted = fields
			return &model.CarDetails{CarID: carID, Description: "fresh paint"}, nil
		},
	}
	svc := NewCarService(cars, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	details, err := svc.AddCarDetails(context.Background(), CarDetailsRequest{
		CarID:       car.ID.Hex(),
		Description: "fresh paint",
	})
	assert.NoError(t, err)
	assert.Equal(t, "fresh paint", details.Description)

	// Only supplied fields reach the upsert; absent ones stay untouched.
	assert.Contains(t, upserted, "description")
	assert.NotContains(t, upserted, "features")
	assert.NotContains(t, upserted, "image")
}

func TestCarService_AddCarDetails_CarMissing(t *testing.T) {
	svc := NewCarService(&mockCarRepo{}, &mockUserRepo{}, &mockRoleRepo{}, &mockAuditRepo{}, nil)

	_, err := svc.AddCarDetails(context.Background(), CarDetailsRequest{
		CarID: primitive.NewObjectID().Hex(),
	})
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.From(err).Code)
}
