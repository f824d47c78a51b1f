package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/auth"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

// Role-name placeholders used when a user's role reference cannot be
// resolved to a live role document.
const (
	roleNoneLabel    = "No Role Assigned"
	roleUnknownLabel = "Unknown Role"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	RoleID   string `json:"role_id"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	RoleID   string `json:"role_id"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	RoleID    string `json:"role_id,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserService defines the interface for business logic related to User
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	GetUserByID(ctx context.Context, id string) (*UserResponse, error)
	ListUsers(ctx context.Context, skip, limit int64) ([]UserResponse, int64, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	audit  repository.AuditRepository
	hasher auth.Hasher
}

// NewUserService returns a new instance of UserService
func NewUserService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	audit repository.AuditRepository,
	hasher auth.Hasher,
) UserService {
	return &userService{users: users, roles: roles, audit: audit, hasher: hasher}
}

// resolveRoleName maps a user's role reference to a display name without
// failing the read: nil reference and dangling reference each get their
// own placeholder, mirroring how listings tolerate missing parents.
func (s *userService) resolveRoleName(ctx context.Context, user *model.User) string {
	if user.RoleID == nil {
		return roleNoneLabel
	}
	role, err := s.roles.GetByID(ctx, *user.RoleID)
	if err != nil {
		return roleUnknownLabel
	}
	return role.Name
}

func (s *userService) toResponse(ctx context.Context, user *model.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      s.resolveRoleName(ctx, user),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
	if user.RoleID != nil {
		resp.RoleID = user.RoleID.Hex()
	}
	return resp
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("User with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Storage(err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
	}

	// An invalid or dangling role reference falls back to the default
	// role rather than failing the signup.
	if req.RoleID != "" {
		if roleID, err := parseID(req.RoleID, "role"); err == nil {
			if role, err := s.roles.GetByID(ctx, roleID); err == nil {
				user.RoleID = &role.ID
			}
		}
	}
	if user.RoleID == nil {
		role, err := s.roles.FindOrCreateByName(ctx, model.RoleUser)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		user.RoleID = &role.ID
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.Conflict("User with this email already exists")
		}
		return nil, apperrors.Storage(err)
	}

	return s.toResponse(ctx, user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*UserResponse, error) {
	oid, err := parseID(id, "user")
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "User not found")
	}
	return s.toResponse(ctx, user), nil
}

func (s *userService) ListUsers(ctx context.Context, skip, limit int64) ([]UserResponse, int64, error) {
	users, total, err := s.users.List(ctx, skip, limit)
	if err != nil {
		return nil, 0, apperrors.Storage(err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *s.toResponse(ctx, &users[i]))
	}
	return responses, total, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	oid, err := parseID(id, "user")
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Email != "" {
		existing, err := s.users.GetByEmail(ctx, req.Email)
		if err == nil && existing.ID != oid {
			return nil, apperrors.Conflict("User with this email already exists")
		}
		fields["email"] = req.Email
	}
	if req.Password != "" {
		// Never write a plaintext password, whatever the caller sent.
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		fields["password"] = hashed
	}
	if req.RoleID != "" {
		roleID, err := parseID(req.RoleID, "role")
		if err != nil {
			return nil, err
		}
		fields["role_id"] = roleID
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFields(ctx, oid, fields); err != nil {
			return nil, storageErr(err, "User not found")
		}
	}

	user, err := s.users.GetByID(ctx, oid)
	if err != nil {
		return nil, storageErr(err, "User not found")
	}
	return s.toResponse(ctx, user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	oid, err := parseID(id, "user")
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, oid); err != nil {
		return storageErr(err, "User not found")
	}

	if err := s.audit.Log(ctx, &model.AuditLog{
		Action:   model.ActionDeleteUser,
		EntityID: id,
	}); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
	return nil
}
