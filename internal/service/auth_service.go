package service

import (
	"context"
	"errors"
	"log"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/auth"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
)

// DTOs for Request validation
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// AuthService covers signup and login, including the legacy plaintext
// credential migration path.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	audit  repository.AuditRepository
	hasher auth.Hasher
	issuer *auth.TokenIssuer
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	audit repository.AuditRepository,
	hasher auth.Hasher,
	issuer *auth.TokenIssuer,
) AuthService {
	return &authService{users: users, roles: roles, audit: audit, hasher: hasher, issuer: issuer}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Storage(err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	// New accounts get the default role, created on first reference.
	role, err := s.roles.FindOrCreateByName(ctx, model.RoleUser)
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		RoleID:   &role.ID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index can still fire when two signups race.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.Conflict("Email already registered")
		}
		return nil, apperrors.Storage(err)
	}

	return &SignupResponse{
		Message: "User registered successfully!",
		UserID:  user.ID.Hex(),
	}, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same message as a bad password; do not reveal which one it was.
			return nil, apperrors.Unauthenticated("Invalid credentials")
		}
		return nil, apperrors.Storage(err)
	}

	if err := s.verifyCredential(ctx, user, req.Password); err != nil {
		return nil, err
	}

	token, _, err := s.issuer.Issue(user.ID.Hex(), map[string]interface{}{
		"email": user.Email,
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &LoginResponse{
		Message:     "Login successful!",
		UserID:      user.ID.Hex(),
		AccessToken: token,
	}, nil
}

// verifyCredential checks the supplied password against the stored value.
// A stored value without a bcrypt prefix is legacy plaintext: it is
// compared by equality and, on success, transparently re-hashed and
// persisted. That path exists only to migrate pre-hashing records and is
// audit-logged every time it fires.
func (s *authService) verifyCredential(ctx context.Context, user *model.User, password string) error {
	if auth.IsHash(user.Password) {
		ok, err := s.hasher.Verify(password, user.Password)
		if err != nil {
			return apperrors.Internal(err)
		}
		if !ok {
			return apperrors.Unauthenticated("Invalid credentials")
		}
		return nil
	}

	if user.Password != password {
		return apperrors.Unauthenticated("Invalid credentials")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return apperrors.Internal(err)
	}
	if err := s.users.UpdateFields(ctx, user.ID, bson.M{"password": hashed}); err != nil {
		return apperrors.Storage(err)
	}

	log.Printf("Upgraded legacy plaintext credential for user %s", user.ID.Hex())
	if err := s.audit.Log(ctx, &model.AuditLog{
		UserID:   &user.ID,
		Action:   model.ActionPasswordUpgrade,
		EntityID: user.ID.Hex(),
		Details:  "plaintext credential re-hashed on login",
	}); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
	return nil
}
