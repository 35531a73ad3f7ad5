package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
	"github.com/NominaCol/payroll_automation_app/internal/utils/dates"
)

type automationService struct {
	configRepo   portsrepo.ConfigRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	periodRepo   portsrepo.PeriodRepositoryFacade
	conceptSvc   portssvc.ConceptSvcFacade
	engine       portssvc.CalculationEngineSvcFacade
	publisher    portssvc.NotificationPublisher
}

// NewAutomationService creates the scheduled draft-generation service.
func NewAutomationService(
	configRepo portsrepo.ConfigRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	conceptSvc portssvc.ConceptSvcFacade,
	engine portssvc.CalculationEngineSvcFacade,
	publisher portssvc.NotificationPublisher,
) *automationService {
	return &automationService{
		configRepo:   configRepo,
		employeeRepo: employeeRepo,
		periodRepo:   periodRepo,
		conceptSvc:   conceptSvc,
		engine:       engine,
		publisher:    publisher,
	}
}

// GenerateDraft builds the full DRAFT period for the cycle containing `at`:
// period + workflow rows, one assignment per eligible employee, an initial
// calculation run, and a notification. Creating the same cycle twice fails
// with a duplicate error, which makes scheduler retries safe.
func (s *automationService) GenerateDraft(ctx context.Context, organizationID string, periodType domain.PeriodType, at time.Time, triggeredBy string) (*portssvc.DraftGeneration, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	config, err := s.getOrCreateConfig(ctx, organizationID, triggeredBy)
	if err != nil {
		return nil, err
	}

	// The engine cannot run without the statutory concepts.
	if _, err := s.conceptSvc.EnsureDefaults(ctx, organizationID, triggeredBy); err != nil {
		return nil, fmt.Errorf("failed to ensure default concepts: %w", err)
	}

	start, end, payDate, name := cycleBounds(periodType, at, config)
	now := time.Now()
	period := domain.PayrollPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: organizationID,
		Name:           name,
		Type:           periodType,
		StartDate:      start,
		EndDate:        end,
		PayDate:        payDate,
		Status:         domain.PeriodDraft,
		AuditFields:    newAudit(triggeredBy, now),
	}
	workflow := domain.PeriodWorkflow{
		WorkflowID:     uuid.NewString(),
		OrganizationID: organizationID,
		PeriodID:       period.PeriodID,
		State:          domain.StateDraft,
		DraftedAt:      now,
		AuditFields:    newAudit(triggeredBy, now),
	}
	if err := s.periodRepo.SavePeriod(ctx, period, workflow); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a period named %q already exists", apperrors.ErrDuplicate, name)
		}
		return nil, fmt.Errorf("failed to save draft period: %w", err)
	}

	assigned, err := s.AssignEmployees(ctx, organizationID, period, triggeredBy)
	if err != nil {
		return nil, fmt.Errorf("failed to assign employees: %w", err)
	}

	result, err := s.engine.CalculatePeriod(ctx, organizationID, period.PeriodID, domain.RunAutomatic, triggeredBy)
	if err != nil {
		return nil, fmt.Errorf("initial calculation failed: %w", err)
	}

	// Re-read the period so the response carries the freshly written totals.
	saved, err := s.periodRepo.FindPeriodByID(ctx, organizationID, period.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload generated period: %w", err)
	}

	if config.NotifyDraftGenerated && s.publisher != nil {
		event := portssvc.PayrollEvent{
			Type:           portssvc.EventDraftGenerated,
			OrganizationID: organizationID,
			PeriodID:       period.PeriodID,
			Title:          "Borrador de nómina generado",
			Message:        fmt.Sprintf("Se generó el borrador %q con %d empleados", name, assigned),
			RequiresAction: true,
			OccurredAt:     time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.Warn("Failed to publish draft-generated event",
				slog.String("period_id", period.PeriodID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Draft period generated",
		slog.String("period_id", period.PeriodID),
		slog.String("name", name),
		slog.Int("employees_assigned", assigned),
		slog.Int("employees_processed", result.EmployeesProcessed))
	return &portssvc.DraftGeneration{
		Period:            *saved,
		Workflow:          workflow,
		EmployeesAssigned: assigned,
		Calculation:       *result,
	}, nil
}

// AssignEmployees creates one assignment per active payroll-eligible
// employee whose employment overlaps the period. Employees already assigned
// are skipped, so the operation is safe to repeat.
func (s *automationService) AssignEmployees(ctx context.Context, organizationID string, period domain.PayrollPeriod, createdBy string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employees, err := s.employeeRepo.ListPayrollEligible(ctx, organizationID)
	if err != nil {
		return 0, fmt.Errorf("failed to list payroll-eligible employees: %w", err)
	}

	commercialDays := period.Type.CommercialDays()
	now := time.Now()
	assigned := 0
	for i := range employees {
		emp := &employees[i]
		days := dates.WorkedDays(period.StartDate, period.EndDate, commercialDays, emp.HireDate, emp.TerminationDate)
		if days == 0 {
			logger.Debug("Employee outside period dates, skipping",
				slog.String("employee_id", emp.EmployeeID), slog.String("period_id", period.PeriodID))
			continue
		}

		assignment := domain.EmployeePeriodAssignment{
			AssignmentID:   uuid.NewString(),
			OrganizationID: organizationID,
			PeriodID:       period.PeriodID,
			EmployeeID:     emp.EmployeeID,
			EmployeeName:   emp.FullName(),
			Included:       true,
			PeriodSalary:   emp.BaseSalary,
			DaysWorked:     days,
			AutoCalculated: true,
			AuditFields:    newAudit(createdBy, now),
		}
		if err := s.periodRepo.SaveAssignment(ctx, assignment); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return assigned, fmt.Errorf("failed to assign employee %s: %w", emp.EmployeeID, err)
		}
		assigned++
	}

	logger.Info("Employees assigned to period",
		slog.String("period_id", period.PeriodID), slog.Int("assigned", assigned))
	return assigned, nil
}

// getOrCreateConfig loads the organization's configuration, creating it with
// the statutory defaults on first use.
func (s *automationService) getOrCreateConfig(ctx context.Context, organizationID, createdBy string) (*domain.AutomationConfig, error) {
	config, err := s.configRepo.FindConfig(ctx, organizationID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load automation configuration: %w", err)
	}

	created := domain.DefaultAutomationConfig(organizationID)
	created.ConfigID = uuid.NewString()
	created.AuditFields = newAudit(createdBy, time.Now())
	if err := s.configRepo.SaveConfig(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create default configuration: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Default automation configuration created",
		slog.String("organization_id", organizationID))
	return &created, nil
}

// cycleBounds resolves the period dates, pay date and display name for the
// cycle containing `at`.
func cycleBounds(periodType domain.PeriodType, at time.Time, config *domain.AutomationConfig) (start, end, payDate time.Time, name string) {
	first, last := dates.MonthBounds(at)
	if periodType == domain.PeriodBiweekly {
		if at.Day() <= 15 {
			start = first
			end = time.Date(at.Year(), at.Month(), 15, 0, 0, 0, 0, time.UTC)
			payDate = dates.DayOfMonthOrLast(at, config.BiweeklyPayDay1)
			name = fmt.Sprintf("Nómina %04d-%02d Q1", at.Year(), at.Month())
		} else {
			start = time.Date(at.Year(), at.Month(), 16, 0, 0, 0, 0, time.UTC)
			end = last
			payDate = dates.DayOfMonthOrLast(at, config.BiweeklyPayDay2)
			name = fmt.Sprintf("Nómina %04d-%02d Q2", at.Year(), at.Month())
		}
		return start, end, payDate, name
	}
	start = first
	end = last
	payDate = dates.DayOfMonthOrLast(at, config.MonthlyPayDay)
	name = fmt.Sprintf("Nómina %04d-%02d", at.Year(), at.Month())
	return start, end, payDate, name
}

// newAudit builds audit fields for a freshly created row.
func newAudit(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
