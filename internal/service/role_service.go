package service

import (
	"context"
	"errors"
	"log"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type AssignRoleRequest struct {
	UserID string `json:"user_id" binding:"required"`
	RoleID string `json:"role_id" binding:"required"`
}

type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateRoleResponse struct {
	Message string `json:"message"`
	RoleID  string `json:"role_id"`
}

// RoleService defines the interface for role management
type RoleService interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) (*CreateRoleResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	AssignRole(ctx context.Context, req AssignRoleRequest) (string, error)
}

type roleService struct {
	roles repository.RoleRepository
	users repository.UserRepository
	audit repository.AuditRepository
}

// NewRoleService returns a new instance of RoleService
func NewRoleService(
	roles repository.RoleRepository,
	users repository.UserRepository,
	audit repository.AuditRepository,
) RoleService {
	return &roleService{roles: roles, users: users, audit: audit}
}

// CreateRole is idempotent on the role name: creating an existing role
// reports the existing id instead of failing.
func (s *roleService) CreateRole(ctx context.Context, req CreateRoleRequest) (*CreateRoleResponse, error) {
	if existing, err := s.roles.GetByName(ctx, req.Name); err == nil {
		return &CreateRoleResponse{Message: "Role already exists", RoleID: existing.ID.Hex()}, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Storage(err)
	}

	role := &model.Role{Name: req.Name, Description: req.Description}
	if err := s.roles.Create(ctx, role); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Lost a creation race; the role exists now, which is what
			// the caller wanted.
			if existing, lookupErr := s.roles.GetByName(ctx, req.Name); lookupErr == nil {
				return &CreateRoleResponse{Message: "Role already exists", RoleID: existing.ID.Hex()}, nil
			}
		}
		return nil, apperrors.Storage(err)
	}

	return &CreateRoleResponse{Message: "Role created successfully", RoleID: role.ID.Hex()}, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	responses := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, RoleResponse{
			ID:          r.ID.Hex(),
			Name:        r.Name,
			Description: r.Description,
		})
	}
	return responses, nil
}

// AssignRole points an existing user at an existing role and returns a
// confirmation message naming the role.
func (s *roleService) AssignRole(ctx context.Context, req AssignRoleRequest) (string, error) {
	userID, err := parseID(req.UserID, "user")
	if err != nil {
		return "", err
	}
	roleID, err := parseID(req.RoleID, "role")
	if err != nil {
		return "", err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return "", storageErr(err, "User not found")
	}
	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return "", storageErr(err, "Role not found")
	}

	if err := s.users.UpdateFields(ctx, userID, bson.M{"role_id": roleID}); err != nil {
		return "", storageErr(err, "User not found")
	}

	if err := s.audit.Log(ctx, &model.AuditLog{
		UserID:   &userID,
		Action:   model.ActionAssignRole,
		EntityID: req.RoleID,
		Details:  "assigned role " + role.Name,
	}); err != nil {
		log.Printf("audit log write failed: %v", err)
	}

	return "Role '" + role.Name + "' assigned to user successfully", nil
}
