package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/auth"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContextUserKey is where Authenticate stores the resolved user.
const ContextUserKey = "currentUser"

// Auth resolves bearer tokens to live user records. Verification alone is
// not enough: the subject must still exist in storage, so a deleted
// account is locked out the moment its record goes away.
type Auth struct {
	issuer *auth.TokenIssuer
	users  repository.UserRepository
	roles  repository.RoleRepository
}

// NewAuth returns a new instance of Auth middleware
func NewAuth(issuer *auth.TokenIssuer, users repository.UserRepository, roles repository.RoleRepository) *Auth {
	return &Auth{issuer: issuer, users: users, roles: roles}
}

// CurrentUser pulls the authenticated user out of the request context.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

// Authenticate validates the Authorization header and loads the subject's
// user record into the context. All failures report the same 401 so a
// caller cannot probe which accounts exist.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := a.issuer.Verify(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Token has expired"))
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}

		subject := auth.Subject(claims)
		oid, err := primitive.ObjectIDFromHex(subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}

		user, err := a.users.GetByID(c.Request.Context(), oid)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
				return
			}
			response.AbortFromError(c, "authenticate", apperrors.Storage(err))
			return
		}

		// The hash never travels further than this point.
		user.Password = ""
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireRole gates a route on the authenticated user's stored role. It
// must run after Authenticate. The role is resolved from storage on every
// request, so an assignment change takes effect without re-login.
func (a *Auth) RequireRole(roleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
			return
		}

		if user.RoleID == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "User has no role assigned"))
			return
		}

		role, err := a.roles.GetByID(c.Request.Context(), *user.RoleID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// A user pointing at a deleted role is a data integrity
				// problem on our side, not a caller mistake.
				response.AbortFromError(c, "require role", apperrors.RoleNotFound("user references a missing role"))
				return
			}
			response.AbortFromError(c, "require role", apperrors.Storage(err))
			return
		}

		if role.Name != roleName {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		c.Next()
	}
}
