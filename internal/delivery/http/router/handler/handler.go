// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"wellkart/internal/delivery/http/middleware"
	"wellkart/internal/delivery/http/response"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("user id missing from request context")
	}

	return id, nil
}

// currentRoles reads the authenticated user's roles set by the auth middleware.
func currentRoles(c echo.Context) entity.Roles {
	roles, _ := c.Get(middleware.ContextKeyRoles).(entity.Roles)

	return roles
}

// pathUUID parses a uuid path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// pagination reads limit/offset query parameters with sane bounds.
func pagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = min(v, maxPageSize)
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}

	return limit, offset
}
