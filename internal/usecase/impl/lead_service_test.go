package impl

import (
	"context"
	"testing"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	mockSvc "wellkart/internal/mocks/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// leadServiceFixtures holds all test dependencies for lead service tests.
type leadServiceFixtures struct {
	service   usecase.LeadUsecase
	txManager *mockRepo.MockTransactionManager
	leadRepo  *mockRepo.MockLeadRepository
	mailer    *mockSvc.MockMailer
}

func createTestLeadService(t *testing.T) leadServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	leadRepo := mockRepo.NewMockLeadRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewLeadService(txManager, leadRepo, mailer, newDiscardLogger())

	return leadServiceFixtures{
		service:   service,
		txManager: txManager,
		leadRepo:  leadRepo,
		mailer:    mailer,
	}
}

func TestLeadService_CaptureLead_Success(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	input := &usecase.CaptureLeadInput{
		Name:    "Meera Shah",
		Email:   "meera@example.com",
		Source:  "landing-page",
		Message: "Interested in the wellness consultation.",
	}

	fx.leadRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Lead")).
		RunAndReturn(func(ctx context.Context, lead *entity.Lead) error {
			assert.Equal(t, entity.LeadStatusNew, lead.Status)
			lead.ID = uuid.New()

			return nil
		})
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).Return(nil)

	lead, err := fx.service.CaptureLead(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
}

func TestLeadService_CaptureLead_MailFailureDoesNotFail(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	input := &usecase.CaptureLeadInput{Name: "Meera Shah", Email: "meera@example.com"}

	fx.leadRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Lead")).Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.Mail")).
		Return(errors.New("smtp unreachable"))

	lead, err := fx.service.CaptureLead(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, lead)
}

func TestLeadService_CaptureLead_MissingFields(t *testing.T) {
	fx := createTestLeadService(t)

	lead, err := fx.service.CaptureLead(context.Background(), &usecase.CaptureLeadInput{Name: "No Email"})

	require.Error(t, err)
	assert.Nil(t, lead)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLeadService_ListLeads_Success(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	input := &usecase.ListLeadsInput{Status: entity.LeadStatusNew, Limit: 20}
	leads := []*entity.Lead{{ID: uuid.New(), Name: "Meera Shah", Status: entity.LeadStatusNew}}

	fx.leadRepo.EXPECT().
		List(ctx, repository.LeadFilter{Status: entity.LeadStatusNew, Limit: 20}).
		Return(leads, nil)

	got, err := fx.service.ListLeads(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, leads, got)
}

func TestLeadService_SetLeadStatus_Success(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	leadID := uuid.New()
	lead := &entity.Lead{ID: leadID, Status: entity.LeadStatusNew}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLeadRepo := mockRepo.NewMockLeadRepository(t)

			mockFactory.EXPECT().LeadRepo().Return(mockLeadRepo)
			mockLeadRepo.EXPECT().FindByID(ctx, leadID).Return(lead, nil)
			mockLeadRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Lead")).
				RunAndReturn(func(ctx context.Context, updated *entity.Lead) error {
					assert.Equal(t, entity.LeadStatusContacted, updated.Status)

					return nil
				})

			return fn(mockFactory)
		})

	updated, err := fx.service.SetLeadStatus(ctx, leadID, entity.LeadStatusContacted)

	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusContacted, updated.Status)
}

func TestLeadService_SetLeadStatus_UnknownStatus(t *testing.T) {
	fx := createTestLeadService(t)

	updated, err := fx.service.SetLeadStatus(context.Background(), uuid.New(), entity.LeadStatus("junk"))

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLeadService_DeleteLead_NotFound(t *testing.T) {
	fx := createTestLeadService(t)

	ctx := context.Background()
	leadID := uuid.New()

	fx.leadRepo.EXPECT().Delete(ctx, leadID).Return(repository.ErrLeadNotFound)

	err := fx.service.DeleteLead(ctx, leadID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
