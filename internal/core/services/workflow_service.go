package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
)

type workflowService struct {
	workflowRepo portsrepo.WorkflowRepositoryFacade
	configRepo   portsrepo.ConfigRepositoryFacade
	engine       portssvc.CalculationEngineSvcFacade
	publisher    portssvc.NotificationPublisher
}

// NewWorkflowService creates the period approval workflow service.
func NewWorkflowService(
	workflowRepo portsrepo.WorkflowRepositoryFacade,
	configRepo portsrepo.ConfigRepositoryFacade,
	engine portssvc.CalculationEngineSvcFacade,
	publisher portssvc.NotificationPublisher,
) *workflowService {
	return &workflowService{
		workflowRepo: workflowRepo,
		configRepo:   configRepo,
		engine:       engine,
		publisher:    publisher,
	}
}

func (s *workflowService) SubmitForReview(ctx context.Context, organizationID, periodID, userID, notes string) (*domain.PeriodWorkflow, error) {
	workflow, err := s.loadForAction(ctx, organizationID, periodID, domain.ActionSubmitForReview)
	if err != nil {
		return nil, err
	}

	// The validation gate must pass before a period can leave DRAFT.
	validation, err := s.engine.ValidateCalculation(ctx, organizationID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate period before submission: %w", err)
	}
	if !validation.Approved {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, joinValidationErrors(validation))
	}

	now := time.Now()
	from := workflow.State
	workflow.State = domain.StateInReview
	workflow.SubmittedAt = &now
	workflow.SubmittedBy = userID
	workflow.ReviewNotes = notes
	workflow.ValidationsPassed = validation.Validations
	s.touch(workflow, userID, now)

	if err := s.workflowRepo.TransitionWorkflow(ctx, from, *workflow); err != nil {
		return nil, fmt.Errorf("failed to submit period for review: %w", err)
	}

	s.notify(ctx, organizationID, portssvc.PayrollEvent{
		Type:           portssvc.EventReviewPending,
		OrganizationID: organizationID,
		PeriodID:       periodID,
		Title:          "Nómina pendiente de revisión",
		Message:        fmt.Sprintf("El período %s fue enviado a revisión", periodID),
		RequiresAction: true,
		OccurredAt:     now,
	})
	middleware.GetLoggerFromCtx(ctx).Info("Period submitted for review",
		slog.String("period_id", periodID), slog.String("submitted_by", userID))
	return workflow, nil
}

func (s *workflowService) Approve(ctx context.Context, organizationID, periodID, userID, notes string) (*domain.PeriodWorkflow, error) {
	workflow, err := s.loadForAction(ctx, organizationID, periodID, domain.ActionApprove)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := workflow.State
	workflow.State = domain.StateApproved
	workflow.ApprovedAt = &now
	workflow.ApprovedBy = userID
	workflow.ApprovalNotes = notes
	s.touch(workflow, userID, now)

	if err := s.workflowRepo.TransitionWorkflow(ctx, from, *workflow); err != nil {
		return nil, fmt.Errorf("failed to approve period: %w", err)
	}

	if s.notifyApprovalEnabled(ctx, organizationID) {
		s.notify(ctx, organizationID, portssvc.PayrollEvent{
			Type:           portssvc.EventApproved,
			OrganizationID: organizationID,
			PeriodID:       periodID,
			Title:          "Nómina aprobada",
			Message:        fmt.Sprintf("El período %s fue aprobado", periodID),
			OccurredAt:     now,
		})
	}
	middleware.GetLoggerFromCtx(ctx).Info("Period approved",
		slog.String("period_id", periodID), slog.String("approved_by", userID))
	return workflow, nil
}

func (s *workflowService) Reject(ctx context.Context, organizationID, periodID, userID, reason string) (*domain.PeriodWorkflow, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}
	workflow, err := s.loadForAction(ctx, organizationID, periodID, domain.ActionReject)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := workflow.State
	workflow.State = domain.StateRejected
	workflow.RejectedAt = &now
	workflow.RejectedBy = userID
	workflow.RejectionReason = reason
	s.touch(workflow, userID, now)

	if err := s.workflowRepo.TransitionWorkflow(ctx, from, *workflow); err != nil {
		return nil, fmt.Errorf("failed to reject period: %w", err)
	}

	if s.notifyApprovalEnabled(ctx, organizationID) {
		s.notify(ctx, organizationID, portssvc.PayrollEvent{
			Type:           portssvc.EventRejected,
			OrganizationID: organizationID,
			PeriodID:       periodID,
			Title:          "Nómina rechazada",
			Message:        fmt.Sprintf("El período %s fue rechazado: %s", periodID, reason),
			RequiresAction: true,
			OccurredAt:     now,
		})
	}
	middleware.GetLoggerFromCtx(ctx).Info("Period rejected",
		slog.String("period_id", periodID), slog.String("rejected_by", userID), slog.String("reason", reason))
	return workflow, nil
}

func (s *workflowService) Process(ctx context.Context, organizationID, periodID, userID string) (*domain.PeriodWorkflow, error) {
	workflow, err := s.loadForAction(ctx, organizationID, periodID, domain.ActionProcess)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := workflow.State
	workflow.State = domain.StateProcessed
	workflow.ProcessedAt = &now
	workflow.ProcessedBy = userID
	s.touch(workflow, userID, now)

	if err := s.workflowRepo.TransitionWorkflow(ctx, from, *workflow); err != nil {
		return nil, fmt.Errorf("failed to process period: %w", err)
	}

	if s.notifyProcessedEnabled(ctx, organizationID) {
		s.notify(ctx, organizationID, portssvc.PayrollEvent{
			Type:           portssvc.EventProcessed,
			OrganizationID: organizationID,
			PeriodID:       periodID,
			Title:          "Nómina procesada",
			Message:        fmt.Sprintf("El período %s fue procesado y queda listo para pago", periodID),
			OccurredAt:     now,
		})
	}
	middleware.GetLoggerFromCtx(ctx).Info("Period processed",
		slog.String("period_id", periodID), slog.String("processed_by", userID))
	return workflow, nil
}

func (s *workflowService) GetWorkflow(ctx context.Context, organizationID, periodID string) (*domain.PeriodWorkflow, error) {
	workflow, err := s.workflowRepo.FindWorkflowByPeriod(ctx, organizationID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	return workflow, nil
}

// loadForAction fetches the workflow and checks the transition table. An
// action illegal from the current state maps to a conflict.
func (s *workflowService) loadForAction(ctx context.Context, organizationID, periodID string, action domain.WorkflowAction) (*domain.PeriodWorkflow, error) {
	workflow, err := s.workflowRepo.FindWorkflowByPeriod(ctx, organizationID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow: %w", err)
	}
	if _, err := workflow.State.NextState(action); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, err.Error())
	}
	return workflow, nil
}

func (s *workflowService) touch(w *domain.PeriodWorkflow, userID string, now time.Time) {
	w.LastUpdatedAt = now
	w.LastUpdatedBy = userID
}

// notify publishes best-effort: a broker failure is logged and swallowed so
// the state transition it accompanies is never rolled back.
func (s *workflowService) notify(ctx context.Context, organizationID string, event portssvc.PayrollEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish payroll event",
			slog.String("event_type", event.Type),
			slog.String("period_id", event.PeriodID),
			slog.String("error", err.Error()))
	}
}

func (s *workflowService) notifyApprovalEnabled(ctx context.Context, organizationID string) bool {
	return s.notifyFlag(ctx, organizationID, func(c *domain.AutomationConfig) bool { return c.NotifyApproval })
}

func (s *workflowService) notifyProcessedEnabled(ctx context.Context, organizationID string) bool {
	return s.notifyFlag(ctx, organizationID, func(c *domain.AutomationConfig) bool { return c.NotifyProcessed })
}

func (s *workflowService) notifyFlag(ctx context.Context, organizationID string, pick func(*domain.AutomationConfig) bool) bool {
	config, err := s.configRepo.FindConfig(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Warn("Failed to load config for notification flags", slog.String("error", err.Error()))
		}
		return true
	}
	return pick(config)
}
