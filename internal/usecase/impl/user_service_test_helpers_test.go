package impl

import (
	"io"
	"log/slog"

	"wellkart/config"
	"wellkart/internal/domain/entity"
	"wellkart/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Roles:  []string{string(entity.RoleCustomer)},
		Type:   "refresh",
	}
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}
