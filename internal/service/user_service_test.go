package service

import (
	"context"
	"testing"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/auth"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(users *mockUserRepo, roles *mockRoleRepo, audit *mockAuditRepo) UserService {
	return NewUserService(users, roles, audit, auth.NewHasher(bcrypt.MinCost))
}

func TestUserService_GetUserByID_RoleLabels(t *testing.T) {
	liveRoleID := primitive.NewObjectID()
	danglingRoleID := primitive.NewObjectID()

	roles := &mockRoleRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
			if id == liveRoleID {
				return &model.Role{ID: liveRoleID, Name: "Agent"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}

	tests := []struct {
		name     string
		roleID   *primitive.ObjectID
		wantRole string
	}{
		{"resolved role", &liveRoleID, "Agent"},
		{"no role assigned", nil, "No Role Assigned"},
		{"dangling role reference", &danglingRoleID, "Unknown Role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &model.User{
				ID:     primitive.NewObjectID(),
				Name:   "Priya",
				Email:  "priya@example.com",
				RoleID: tt.roleID,
			}
			users := &mockUserRepo{
				GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
					return user, nil
				},
			}
			svc := newTestUserService(users, roles, &mockAuditRepo{})

			resp, err := svc.GetUserByID(context.Background(), user.ID.Hex())
			assert.NoError(t, err)
			assert.Equal(t, tt.wantRole, resp.Role)
		})
	}
}

func TestUserService_CreateUser_InvalidRoleFallsBack(t *testing.T) {
	defaultRole := &model.Role{ID: primitive.NewObjectID(), Name: model.RoleUser}
	roles := &mockRoleRepo{
		FindOrCreateByNameFunc: func(ctx context.Context, name string) (*model.Role, error) {
			return defaultRole, nil
		},
	}
	var created *model.User
	users := &mockUserRepo{
		CreateFunc: func(ctx context.Context, user *model.User) error {
			user.ID = primitive.NewObjectID()
			created = user
			return nil
		},
	}
	svc := newTestUserService(users, roles, &mockAuditRepo{})

	// The supplied role id is garbage; creation proceeds on the default.
	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "secret123",
		RoleID:   "not-an-object-id",
	})
	assert.NoError(t, err)
	assert.Equal(t, defaultRole.ID, *created.RoleID)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Email: "priya@example.com"}
	var fields bson.M
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
			return user, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, id primitive.ObjectID, f bson.M) error {
			fields = f
			return nil
		},
	}
	svc := newTestUserService(users, &mockRoleRepo{}, &mockAuditRepo{})

	_, err := svc.UpdateUser(context.Background(), user.ID.Hex(), UpdateUserRequest{
		Password: "new-password",
	})
	assert.NoError(t, err)

	stored, ok := fields["password"].(string)
	assert.True(t, ok)
	assert.True(t, auth.IsHash(stored))
	assert.NotEqual(t, "new-password", stored)
}

func TestUserService_UpdateUser_EmailConflict(t *testing.T) {
	target := &model.User{ID: primitive.NewObjectID()}
	other := &model.User{ID: primitive.NewObjectID(), Email: "taken@example.com"}
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
			return target, nil
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return other, nil
		},
	}
	svc := newTestUserService(users, &mockRoleRepo{}, &mockAuditRepo{})

	_, err := svc.UpdateUser(context.Background(), target.ID.Hex(), UpdateUserRequest{
		Email: "taken@example.com",
	})
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeConflict, apperrors.From(err).Code)
}

func TestUserService_DeleteUser_Audited(t *testing.T) {
	audit := &mockAuditRepo{}
	svc := newTestUserService(&mockUserRepo{}, &mockRoleRepo{}, audit)

	id := primitive.NewObjectID()
	err := svc.DeleteUser(context.Background(), id.Hex())
	assert.NoError(t, err)
	assert.Len(t, audit.Entries, 1)
	assert.Equal(t, model.ActionDeleteUser, audit.Entries[0].Action)
	assert.Equal(t, id.Hex(), audit.Entries[0].EntityID)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	users := &mockUserRepo{
		DeleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
			return repository.ErrNotFound
		},
	}
	svc := newTestUserService(users, &mockRoleRepo{}, &mockAuditRepo{})

	err := svc.DeleteUser(context.Background(), primitive.NewObjectID().Hex())
	assert.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.From(err).Code)
}
