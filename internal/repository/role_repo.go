package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/database"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RoleRepository defines the interface for data access of Role documents
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	FindOrCreateByName(ctx context.Context, name string) (*model.Role, error)
}

type roleRepository struct {
	coll *mongo.Collection
}

// NewRoleRepository returns a new instance of RoleRepository
func NewRoleRepository(db *mongo.Database) RoleRepository {
	return &roleRepository{coll: db.Collection(database.CollectionRoles)}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	role.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, role)
	if err != nil {
		return wrapErr(err)
	}
	role.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *roleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	var role model.Role
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&role); err != nil {
		return nil, wrapErr(err)
	}
	return &role, nil
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&role); err != nil {
		return nil, wrapErr(err)
	}
	return &role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}

	var roles []model.Role
	if err := cur.All(ctx, &roles); err != nil {
		return nil, wrapErr(err)
	}
	return roles, nil
}

// FindOrCreateByName returns the role with the given name, inserting it if
// absent. Two concurrent first references race on the insert; the loser
// hits the unique index and re-fetches, so the operation is idempotent.
func (r *roleRepository) FindOrCreateByName(ctx context.Context, name string) (*model.Role, error) {
	role, err := r.GetByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created := &model.Role{Name: name}
	if err := r.Create(ctx, created); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return r.GetByName(ctx, name)
		}
		return nil, err
	}
	return created, nil
}
