// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate for handlers to read.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// AccessTokenCookie is the cookie browser clients carry the access token in.
// API clients use the Authorization header instead.
const AccessTokenCookie = "token"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the access token and attaches the caller's identity
// to the request context. The token comes from the "token" cookie or the
// Authorization bearer header. It runs before any handler side effect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrNoToken
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// The account must still resolve and be enabled; a disabled user's
		// outstanding tokens stop working immediately.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrAuthUserNotFound
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}
		if !user.IsActive() {
			return domainerrors.ErrAuthUserNotFound
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRoles gates a route on the closed role enum. Every route goes
// through this single capability check, so accepted role sets cannot drift.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRoles(required ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).(entity.Roles)
			if !ok {
				return domainerrors.ErrForbidden.WrapMessage("role information missing")
			}

			if !roles.ContainsAny(required...) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireAdmin gates a route on dashboard administration rights.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return m.RequireRoles(entity.RoleAdmin, entity.RoleSuperAdmin)
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}
