package service

import (
	"context"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockUserRepo is a function-field mock of repository.UserRepository.
type mockUserRepo struct {
	CreateFunc              func(ctx context.Context, user *model.User) error
	GetByIDFunc             func(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmailFunc          func(ctx context.Context, email string) (*model.User, error)
	ListFunc                func(ctx context.Context, skip, limit int64) ([]model.User, int64, error)
	UpdateFieldsFunc        func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	UpdateFieldsByEmailFunc func(ctx context.Context, email string, fields bson.M) error
	DeleteFunc              func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = primitive.NewObjectID()
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) List(ctx context.Context, skip, limit int64) ([]model.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (m *mockUserRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockUserRepo) UpdateFieldsByEmail(ctx context.Context, email string, fields bson.M) error {
	if m.UpdateFieldsByEmailFunc != nil {
		return m.UpdateFieldsByEmailFunc(ctx, email, fields)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockRoleRepo is a function-field mock of repository.RoleRepository.
type mockRoleRepo struct {
	CreateFunc             func(ctx context.Context, role *model.Role) error
	GetByIDFunc            func(ctx context.Context, id primitive.ObjectID) (*model.Role, error)
	GetByNameFunc          func(ctx context.Context, name string) (*model.Role, error)
	ListFunc               func(ctx context.Context) ([]model.Role, error)
	FindOrCreateByNameFunc func(ctx context.Context, name string) (*model.Role, error)
}

func (m *mockRoleRepo) Create(ctx context.Context, role *model.Role) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, role)
	}
	role.ID = primitive.NewObjectID()
	return nil
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockRoleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, repository.ErrNotFound
}

func (m *mockRoleRepo) List(ctx context.Context) ([]model.Role, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRoleRepo) FindOrCreateByName(ctx context.Context, name string) (*model.Role, error) {
	if m.FindOrCreateByNameFunc != nil {
		return m.FindOrCreateByNameFunc(ctx, name)
	}
	return &model.Role{ID: primitive.NewObjectID(), Name: name}, nil
}

// mockCarRepo is a function-field mock of repository.CarRepository.
type mockCarRepo struct {
	CreateFunc        func(ctx context.Context, car *model.Car) error
	GetByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*model.Car, error)
	ListFunc          func(ctx context.Context, skip, limit int64) ([]model.Car, int64, error)
	ListByUserFunc    func(ctx context.Context, userID primitive.ObjectID) ([]model.Car, error)
	UpdateFieldsFunc  func(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteFunc        func(ctx context.Context, id primitive.ObjectID) error
	UpsertDetailsFunc func(ctx context.Context, carID primitive.ObjectID, fields bson.M) (*model.CarDetails, error)
	GetDetailsFunc    func(ctx context.Context, carID primitive.ObjectID) (*model.CarDetails, error)
}

func (m *mockCarRepo) Create(ctx context.Context, car *model.Car) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, car)
	}
	car.ID = primitive.NewObjectID()
	return nil
}

func (m *mockCarRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Car, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCarRepo) List(ctx context.Context, skip, limit int64) ([]model.Car, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, skip, limit)
	}
	return nil, 0, nil
}

func (m *mockCarRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Car, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCarRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockCarRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCarRepo) UpsertDetails(ctx context.Context, carID primitive.ObjectID, fields bson.M) (*model.CarDetails, error) {
	if m.UpsertDetailsFunc != nil {
		return m.UpsertDetailsFunc(ctx, carID, fields)
	}
	return &model.CarDetails{CarID: carID}, nil
}

func (m *mockCarRepo) GetDetails(ctx context.Context, carID primitive.ObjectID) (*model.CarDetails, error) {
	if m.GetDetailsFunc != nil {
		return m.GetDetailsFunc(ctx, carID)
	}
	return nil, repository.ErrNotFound
}

// mockAuditRepo records every logged entry for assertion.
type mockAuditRepo struct {
	Entries []model.AuditLog
	LogFunc func(ctx context.Context, entry *model.AuditLog) error
}

func (m *mockAuditRepo) Log(ctx context.Context, entry *model.AuditLog) error {
	if m.LogFunc != nil {
		return m.LogFunc(ctx, entry)
	}
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *mockAuditRepo) List(ctx context.Context, skip, limit int64) ([]model.AuditLog, int64, error) {
	return m.Entries, int64(len(m.Entries)), nil
}
