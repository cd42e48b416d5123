package repository

import (
	"context"

	"wellkart/internal/domain/entity"
	"wellkart/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session lookup matches nothing.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository manages persisted login sessions (hashed refresh tokens).
// This supports multi-device login and remote logout functionality.
type SessionRepository interface {
	// CreateSession persists a new session, representing one logged-in device.
	CreateSession(ctx context.Context, session *entity.Session) error

	// FindSessionByTokenHash retrieves a session by the hash of its refresh token.
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindSessionByID retrieves a session by its unique ID.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindSessionsByUserID retrieves all sessions for a user, newest first.
	FindSessionsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)

	// DeleteSession removes a session by its ID, effectively ending it.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// DeleteSessionByTokenHash removes a session by its token hash (logout).
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteSessionsByUserID removes every session for a user ("logout everywhere").
	DeleteSessionsByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredSessions removes sessions past their expiry. Called periodically.
	DeleteExpiredSessions(ctx context.Context) error

	// CountActiveSessionsByUserID returns the number of non-expired sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
