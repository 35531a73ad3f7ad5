package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
)

type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates the manual period management service.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) *periodService {
	return &periodService{periodRepo: periodRepo}
}

// CreatePeriod registers a manually defined DRAFT period with its workflow.
func (s *periodService) CreatePeriod(ctx context.Context, organizationID string, req dto.CreatePeriodRequest, userID string) (*domain.PayrollPeriod, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}
	if req.PayDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: pay date cannot precede the period start", apperrors.ErrValidation)
	}

	now := time.Now()
	period := domain.PayrollPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Type:           req.Type,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PayDate:        req.PayDate,
		Status:         domain.PeriodDraft,
		Notes:          req.Notes,
		AuditFields:    newAudit(userID, now),
	}
	workflow := domain.PeriodWorkflow{
		WorkflowID:     uuid.NewString(),
		OrganizationID: organizationID,
		PeriodID:       period.PeriodID,
		State:          domain.StateDraft,
		DraftedAt:      now,
		AuditFields:    newAudit(userID, now),
	}
	if err := s.periodRepo.SavePeriod(ctx, period, workflow); err != nil {
		return nil, fmt.Errorf("failed to create period: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Period created",
		slog.String("period_id", period.PeriodID), slog.String("name", period.Name))
	return &period, nil
}

func (s *periodService) GetPeriod(ctx context.Context, organizationID, periodID string) (*domain.PayrollPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context, organizationID string, limit int, nextToken string) ([]domain.PayrollPeriod, string, error) {
	var tokenPtr *string
	if nextToken != "" {
		tokenPtr = &nextToken
	}
	periods, next, err := s.periodRepo.ListPeriods(ctx, organizationID, limit, tokenPtr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list periods: %w", err)
	}
	out := ""
	if next != nil {
		out = *next
	}
	return periods, out, nil
}

func (s *periodService) ListAssignments(ctx context.Context, organizationID, periodID string, includedOnly bool) ([]domain.EmployeePeriodAssignment, error) {
	assignments, err := s.periodRepo.ListAssignments(ctx, organizationID, periodID, includedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// UpdateAssignment applies manual adjustments and flags the assignment for
// recalculation. The enclosing period must still be editable.
func (s *periodService) UpdateAssignment(ctx context.Context, organizationID, assignmentID string, req dto.UpdateAssignmentRequest, userID string) (*domain.EmployeePeriodAssignment, error) {
	assignment, err := s.periodRepo.FindAssignmentByID(ctx, organizationID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, assignment.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to get period: %w", err)
	}
	if period.Status != domain.PeriodDraft && period.Status != domain.PeriodRejected {
		return nil, fmt.Errorf("%w: period %s is %s and no longer editable", apperrors.ErrValidation, period.PeriodID, period.Status)
	}

	if req.Included != nil {
		assignment.Included = *req.Included
	}
	if req.ExclusionReason != nil {
		assignment.ExclusionReason = *req.ExclusionReason
	}
	if req.PeriodSalary != nil {
		if !req.PeriodSalary.IsPositive() {
			return nil, fmt.Errorf("%w: period salary must be positive", apperrors.ErrValidation)
		}
		assignment.PeriodSalary = *req.PeriodSalary
	}
	if req.DaysWorked != nil {
		commercial := period.Type.CommercialDays()
		if *req.DaysWorked < 0 || *req.DaysWorked > commercial {
			return nil, fmt.Errorf("%w: days worked must be between 0 and %d", apperrors.ErrValidation, commercial)
		}
		assignment.DaysWorked = *req.DaysWorked
	}
	if req.ExtraAccruals != nil {
		extras := make([]domain.ExtraAccrual, len(req.ExtraAccruals))
		for i, e := range req.ExtraAccruals {
			extras[i] = domain.ExtraAccrual{ConceptCode: e.ConceptCode, Quantity: e.Quantity, UnitValue: e.UnitValue}
		}
		assignment.ExtraAccruals = extras
	}
	if req.FixedDeductions != nil {
		fixed := make([]domain.FixedDeduction, len(req.FixedDeductions))
		for i, f := range req.FixedDeductions {
			fixed[i] = domain.FixedDeduction{ConceptCode: f.ConceptCode, Amount: f.Amount}
		}
		assignment.FixedDeductions = fixed
	}

	// Manual edits invalidate the stored calculation until the next run.
	assignment.AutoCalculated = false
	assignment.NeedsRecalculation = true
	assignment.LastUpdatedAt = time.Now()
	assignment.LastUpdatedBy = userID

	if err := s.periodRepo.UpdateAssignment(ctx, *assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Assignment updated",
		slog.String("assignment_id", assignmentID), slog.String("period_id", assignment.PeriodID))
	return assignment, nil
}

func (s *periodService) GetEntry(ctx context.Context, organizationID, assignmentID string) (*domain.PayrollEntry, error) {
	assignment, err := s.periodRepo.FindAssignmentByID(ctx, organizationID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	entry, err := s.periodRepo.FindEntry(ctx, organizationID, assignment.PeriodID, assignment.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll entry: %w", err)
	}
	return entry, nil
}
