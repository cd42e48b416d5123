package impl

import (
	"context"
	"testing"
	"time"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	txManager   *mockRepo.MockTransactionManager
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	service := NewSessionService(txManager, sessionRepo, newDiscardLogger())

	return sessionServiceFixtures{
		service:     service,
		txManager:   txManager,
		sessionRepo: sessionRepo,
	}
}

func TestSessionService_GetActiveSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessions := []*entity.Session{
		{ID: uuid.New(), UserID: userID, UserAgent: "Mozilla/5.0", IP: "203.0.113.10", ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, UserAgent: "curl/8.4.0", IP: "203.0.113.11", ExpiresAt: time.Now().Add(time.Hour)},
	}

	fx.sessionRepo.EXPECT().FindSessionsByUserID(ctx, userID).Return(sessions, nil)

	got, err := fx.service.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, sessions, got)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{ID: sessionID, UserID: userID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)
			mockSessionRepo.EXPECT().DeleteSession(ctx, sessionID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_NotOwned(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{ID: sessionID, UserID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindSessionByID(ctx, sessionID).Return(session, nil)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, userID, sessionID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestSessionService_RevokeAllSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteSessionsByUserID(ctx, userID).Return(nil)

	err := fx.service.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
}

func TestSessionService_CleanupExpiredSessions_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteExpiredSessions(ctx).Return(nil)

	err := fx.service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
}
