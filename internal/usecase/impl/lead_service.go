package impl

import (
	"context"
	"log/slog"

	deliverycontext "wellkart/internal/delivery/context"
	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	"wellkart/internal/domain/service"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// leadService implements the LeadUsecase interface.
type leadService struct {
	txManager repository.TransactionManager
	leadRepo  repository.LeadRepository
	mailer    service.Mailer
	logger    *slog.Logger
}

// NewLeadService is the constructor for leadService.
func NewLeadService(
	txManager repository.TransactionManager,
	leadRepo repository.LeadRepository,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.LeadUsecase {
	return &leadService{
		txManager: txManager,
		leadRepo:  leadRepo,
		mailer:    mailer,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *leadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CaptureLead records a contact from a storefront or campaign form and sends
// a best-effort acknowledgement email.
func (srv *leadService) CaptureLead(ctx context.Context, input *usecase.CaptureLeadInput) (*entity.Lead, error) {
	srv.log(ctx).Info("Capturing lead", slog.String("source", input.Source))

	if input.Name == "" || input.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "lead name and email are required")
	}

	lead := &entity.Lead{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Source:  input.Source,
		Message: input.Message,
		Status:  entity.LeadStatusNew,
	}

	if err := srv.leadRepo.Create(ctx, lead); err != nil {
		srv.log(ctx).Error("Failed to capture lead", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to capture lead")
	}

	mail := &service.Mail{
		To:      lead.Email,
		Subject: "Thanks for reaching out",
		Body:    "Hi " + lead.Name + ",\r\n\r\nWe have received your message and will get back to you shortly.\r\n",
	}
	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Warn("Failed to send lead acknowledgement", slog.Any("leadID", lead.ID), slog.Any("error", err))
	}

	return lead, nil
}

// ListLeads retrieves leads matching the filter, newest first.
func (srv *leadService) ListLeads(ctx context.Context, input *usecase.ListLeadsInput) ([]*entity.Lead, error) {
	leads, err := srv.leadRepo.List(ctx, repository.LeadFilter{
		Status: input.Status,
		Source: input.Source,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

// GetLead retrieves a lead by id.
func (srv *leadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := srv.leadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "lead not found")
		}

		return nil, errors.Wrap(err, "failed to find lead")
	}

	return lead, nil
}

// SetLeadStatus progresses a lead along new → contacted → converted.
func (srv *leadService) SetLeadStatus(ctx context.Context, id uuid.UUID, status entity.LeadStatus) (*entity.Lead, error) {
	srv.log(ctx).Debug("Setting lead status", slog.Any("leadID", id), slog.Any("status", status))

	switch status {
	case entity.LeadStatusNew, entity.LeadStatusContacted, entity.LeadStatusConverted:
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown lead status")
	}

	var updated *entity.Lead
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		leadRepo := repoFactory.LeadRepo()

		lead, err := leadRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrLeadNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "lead not found")
			}

			return errors.Wrap(err, "failed to find lead")
		}

		lead.Status = status
		if err := leadRepo.Update(ctx, lead); err != nil {
			return errors.Wrap(err, "failed to update lead")
		}

		updated = lead

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set lead status", slog.Any("error", err), slog.Any("leadID", id))

		return nil, errors.Wrap(err, "failed to set lead status")
	}

	return updated, nil
}

// DeleteLead removes a lead.
func (srv *leadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Debug("Deleting lead", slog.Any("leadID", id))

	if err := srv.leadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "lead not found")
		}

		return errors.Wrap(err, "failed to delete lead")
	}

	return nil
}
