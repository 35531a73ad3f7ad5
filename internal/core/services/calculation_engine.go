package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
)

var oneHundred = decimal.NewFromInt(100)

// thirtyDays is the monthly divisor of the commercial calendar; the transport
// subsidy is always a monthly amount prorated over 30 regardless of period
// type.
var thirtyDays = decimal.NewFromInt(30)

type calculationEngine struct {
	periodRepo   portsrepo.PeriodRepositoryFacade
	conceptRepo  portsrepo.ConceptRepositoryFacade
	configRepo   portsrepo.ConfigRepositoryFacade
	workflowRepo portsrepo.WorkflowRepositoryFacade
}

// NewCalculationEngine creates the payroll calculation engine service.
func NewCalculationEngine(
	periodRepo portsrepo.PeriodRepositoryFacade,
	conceptRepo portsrepo.ConceptRepositoryFacade,
	configRepo portsrepo.ConfigRepositoryFacade,
	workflowRepo portsrepo.WorkflowRepositoryFacade,
) *calculationEngine {
	return &calculationEngine{
		periodRepo:   periodRepo,
		conceptRepo:  conceptRepo,
		configRepo:   configRepo,
		workflowRepo: workflowRepo,
	}
}

// CalculatePeriod runs the batch calculation over every included assignment.
// Per-employee failures are collected into the result and the batch keeps
// going; only run-level failures (missing period, missing configuration,
// missing catalog) abort the whole run. Every run, successful or aborted,
// leaves one calculation log record.
func (s *calculationEngine) CalculatePeriod(ctx context.Context, organizationID, periodID string, runType domain.CalculationRunType, triggeredBy string) (*domain.CalculationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	startedAt := time.Now()
	if runType == "" {
		runType = domain.RunManual
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		logger.Error("Failed to load period for calculation", slog.String("period_id", periodID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load period: %w", err)
	}
	if period.Status != domain.PeriodDraft && period.Status != domain.PeriodRejected {
		return nil, fmt.Errorf("%w: period %s is %s, only DRAFT or REJECTED periods can be calculated", apperrors.ErrValidation, periodID, period.Status)
	}

	config, err := s.configRepo.FindConfig(ctx, organizationID)
	if err != nil {
		s.logAbortedRun(ctx, organizationID, periodID, runType, triggeredBy, startedAt, "automation configuration missing")
		logger.Error("Calculation aborted, configuration missing", slog.String("period_id", periodID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load automation configuration: %w", err)
	}

	catalog, err := s.conceptRepo.LoadCatalog(ctx, organizationID)
	if err != nil {
		s.logAbortedRun(ctx, organizationID, periodID, runType, triggeredBy, startedAt, "concept catalog unavailable")
		logger.Error("Calculation aborted, concept catalog unavailable", slog.String("period_id", periodID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load concept catalog: %w", err)
	}

	assignments, err := s.periodRepo.ListAssignments(ctx, organizationID, periodID, true)
	if err != nil {
		s.logAbortedRun(ctx, organizationID, periodID, runType, triggeredBy, startedAt, "assignments unavailable")
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	result := &domain.CalculationResult{
		PeriodID:      periodID,
		TotalAccrued:  decimal.Zero,
		TotalDeducted: decimal.Zero,
		TotalNet:      decimal.Zero,
	}
	now := time.Now()

	for i := range assignments {
		assignment := assignments[i]
		calc, calcErr := s.calculateOne(period, config, catalog, &assignment)
		if calcErr == nil {
			calcErr = s.periodRepo.ReplaceEntryLines(ctx, assignment, *calc, now)
		}
		if calcErr != nil {
			result.EmployeesFailed++
			result.Errors = append(result.Errors, domain.CalculationError{
				EmployeeID:   assignment.EmployeeID,
				EmployeeName: assignment.EmployeeName,
				Message:      calcErr.Error(),
			})
			logger.Warn("Employee calculation failed",
				slog.String("period_id", periodID),
				slog.String("employee_id", assignment.EmployeeID),
				slog.String("error", calcErr.Error()))
			continue
		}
		result.EmployeesProcessed++
		result.TotalAccrued = result.TotalAccrued.Add(calc.TotalAccrued)
		result.TotalDeducted = result.TotalDeducted.Add(calc.TotalDeducted)
		result.TotalNet = result.TotalNet.Add(calc.NetPay)
	}

	if err := s.periodRepo.UpdatePeriodTotals(ctx, organizationID, periodID, result.TotalAccrued, result.TotalDeducted, result.TotalNet, triggeredBy, now); err != nil {
		logger.Error("Failed to update period totals", slog.String("period_id", periodID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update period totals: %w", err)
	}

	// A recalculated REJECTED period returns to DRAFT so it can re-enter
	// review with the corrected figures.
	if period.Status == domain.PeriodRejected {
		if err := s.workflowRepo.ResetWorkflowToDraft(ctx, organizationID, periodID, triggeredBy); err != nil {
			logger.Error("Failed to reset rejected period to draft", slog.String("period_id", periodID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to reset workflow to draft: %w", err)
		}
	}

	s.appendLog(ctx, organizationID, periodID, runType, triggeredBy, startedAt, result)

	logger.Info("Period calculation finished",
		slog.String("period_id", periodID),
		slog.Int("processed", result.EmployeesProcessed),
		slog.Int("failed", result.EmployeesFailed),
		slog.String("total_net", result.TotalNet.String()))
	return result, nil
}

// CalculateAssignment recalculates a single assignment and swaps its
// persisted line items. The enclosing period must still be editable.
func (s *calculationEngine) CalculateAssignment(ctx context.Context, organizationID, assignmentID, triggeredBy string) (*domain.EmployeeCalculation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	assignment, err := s.periodRepo.FindAssignmentByID(ctx, organizationID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if !assignment.Included {
		return nil, fmt.Errorf("%w: assignment %s is excluded from payroll", apperrors.ErrValidation, assignmentID)
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, assignment.PeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load period: %w", err)
	}
	if period.Status != domain.PeriodDraft && period.Status != domain.PeriodRejected {
		return nil, fmt.Errorf("%w: period %s is %s and no longer editable", apperrors.ErrValidation, period.PeriodID, period.Status)
	}

	config, err := s.configRepo.FindConfig(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load automation configuration: %w", err)
	}
	catalog, err := s.conceptRepo.LoadCatalog(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load concept catalog: %w", err)
	}

	calc, err := s.calculateOne(period, config, catalog, assignment)
	if err != nil {
		return nil, err
	}
	if err := s.periodRepo.ReplaceEntryLines(ctx, *assignment, *calc, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to persist entry lines: %w", err)
	}

	logger.Info("Assignment recalculated",
		slog.String("assignment_id", assignmentID),
		slog.String("employee_id", assignment.EmployeeID),
		slog.String("net_pay", calc.NetPay.String()))
	return calc, nil
}

// ValidateCalculation is the gate consulted before a period may leave DRAFT.
func (s *calculationEngine) ValidateCalculation(ctx context.Context, organizationID, periodID string) (*domain.ValidationResult, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to load period: %w", err)
	}
	config, err := s.configRepo.FindConfig(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load automation configuration: %w", err)
	}
	assignments, err := s.periodRepo.ListAssignments(ctx, organizationID, periodID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	result := &domain.ValidationResult{
		Validations: map[string]bool{
			domain.CheckTotals: true,
		},
	}
	if len(assignments) == 0 {
		result.Validations[domain.CheckTotals] = false
		result.Errors = append(result.Errors, "period has no included employees")
	}

	sumAccrued, sumDeducted := decimal.Zero, decimal.Zero
	for i := range assignments {
		a := &assignments[i]
		if a.CalculatedAt == nil || a.NeedsRecalculation {
			result.Validations[domain.CheckTotals] = false
			result.Errors = append(result.Errors, fmt.Sprintf("employee %s has pending calculation", a.EmployeeName))
			continue
		}
		sumAccrued = sumAccrued.Add(a.TotalAccrued)
		sumDeducted = sumDeducted.Add(a.TotalDeducted)
	}
	if result.Validations[domain.CheckTotals] {
		if !sumAccrued.Equal(period.TotalAccrued) || !sumDeducted.Equal(period.TotalDeducted) {
			result.Validations[domain.CheckTotals] = false
			result.Errors = append(result.Errors, "period totals do not match the sum of employee entries")
		}
	}

	if config.ValidateMinimumWage {
		result.Validations[domain.CheckMinimumWage] = true
		for i := range assignments {
			a := &assignments[i]
			if a.PeriodSalary.Cmp(config.MinimumWage) < 0 {
				result.Validations[domain.CheckMinimumWage] = false
				result.Errors = append(result.Errors, fmt.Sprintf("employee %s earns below the minimum wage", a.EmployeeName))
			}
		}
	}

	result.Approved = true
	for _, passed := range result.Validations {
		if !passed {
			result.Approved = false
			break
		}
	}
	return result, nil
}

// calculateOne computes the full set of line items for one assignment fully
// in memory. Nothing is persisted here.
func (s *calculationEngine) calculateOne(period *domain.PayrollPeriod, config *domain.AutomationConfig, catalog *domain.ConceptCatalog, a *domain.EmployeePeriodAssignment) (*domain.EmployeeCalculation, error) {
	if a.PeriodSalary.Cmp(decimal.Zero) <= 0 {
		return nil, fmt.Errorf("%w: period salary must be positive", apperrors.ErrValidation)
	}
	commercialDays := period.Type.CommercialDays()
	if a.DaysWorked <= 0 || a.DaysWorked > commercialDays {
		return nil, fmt.Errorf("%w: days worked must be between 1 and %d", apperrors.ErrValidation, commercialDays)
	}

	days := decimal.NewFromInt(int64(a.DaysWorked))
	commercial := decimal.NewFromInt(int64(commercialDays))
	calc := &domain.EmployeeCalculation{
		AssignmentID: a.AssignmentID,
		EmployeeID:   a.EmployeeID,
	}

	// Base salary, prorated by days worked. Multiply before dividing so the
	// rounding happens once, on the line total.
	salaryConcept, ok := catalog.AccrualByCode(domain.ConceptCodeSalary)
	if !ok {
		return nil, fmt.Errorf("%w: salary concept %s not in catalog", apperrors.ErrValidation, domain.ConceptCodeSalary)
	}
	salaryTotal := a.PeriodSalary.Mul(days).Div(commercial).Round(2)
	calc.Accruals = append(calc.Accruals, domain.Accrual{
		ConceptID:            salaryConcept.ConceptID,
		ConceptCode:          salaryConcept.Code,
		Quantity:             days,
		UnitValue:            a.PeriodSalary.Div(commercial).Round(2),
		Total:                salaryTotal,
		CountsSocialSecurity: salaryConcept.CountsSocialSecurity,
		CountsBenefitsBase:   salaryConcept.CountsBenefitsBase,
	})

	// Transport subsidy: eligibility is decided on the unprorated period
	// salary; the amount itself is prorated by days over 30.
	if config.CalcTransportSubsidy && a.PeriodSalary.Cmp(config.TransportSubsidyThreshold()) <= 0 {
		subsidyConcept, ok := catalog.AccrualByCode(domain.ConceptCodeTransportSubsidy)
		if !ok {
			return nil, fmt.Errorf("%w: transport subsidy concept %s not in catalog", apperrors.ErrValidation, domain.ConceptCodeTransportSubsidy)
		}
		subsidyTotal := config.TransportSubsidy.Mul(days).Div(thirtyDays).Round(2)
		calc.Accruals = append(calc.Accruals, domain.Accrual{
			ConceptID:            subsidyConcept.ConceptID,
			ConceptCode:          subsidyConcept.Code,
			Quantity:             days,
			UnitValue:            config.TransportSubsidy.Div(thirtyDays).Round(2),
			Total:                subsidyTotal,
			CountsSocialSecurity: subsidyConcept.CountsSocialSecurity,
			CountsBenefitsBase:   subsidyConcept.CountsBenefitsBase,
		})
	}

	// Manually attached accruals (overtime, bonuses, commissions).
	for _, extra := range a.ExtraAccruals {
		concept, ok := catalog.AccrualByCode(extra.ConceptCode)
		if !ok {
			return nil, fmt.Errorf("%w: accrual concept %s not in catalog", apperrors.ErrValidation, extra.ConceptCode)
		}
		calc.Accruals = append(calc.Accruals, domain.Accrual{
			ConceptID:            concept.ConceptID,
			ConceptCode:          concept.Code,
			Quantity:             extra.Quantity,
			UnitValue:            extra.UnitValue,
			Total:                extra.Quantity.Mul(extra.UnitValue).Round(2),
			CountsSocialSecurity: concept.CountsSocialSecurity,
			CountsBenefitsBase:   concept.CountsBenefitsBase,
		})
	}

	ssBase := domain.SocialSecurityBase(calc.Accruals)

	// Statutory deductions on the social-security base.
	healthPct := config.HealthPercentage
	healthConcept, ok := catalog.DeductionByCode(domain.ConceptCodeHealth)
	if !ok {
		return nil, fmt.Errorf("%w: health concept %s not in catalog", apperrors.ErrValidation, domain.ConceptCodeHealth)
	}
	if healthConcept.BasePercentage != nil {
		healthPct = *healthConcept.BasePercentage
	}
	calc.Deductions = append(calc.Deductions, percentageDeduction(healthConcept, ssBase, healthPct))

	pensionPct := config.PensionPercentage
	pensionConcept, ok := catalog.DeductionByCode(domain.ConceptCodePension)
	if !ok {
		return nil, fmt.Errorf("%w: pension concept %s not in catalog", apperrors.ErrValidation, domain.ConceptCodePension)
	}
	if pensionConcept.BasePercentage != nil {
		pensionPct = *pensionConcept.BasePercentage
	}
	calc.Deductions = append(calc.Deductions, percentageDeduction(pensionConcept, ssBase, pensionPct))

	if fspPct, owed := config.SolidarityFundPercentage(ssBase); owed {
		fspConcept, ok := catalog.DeductionByCode(domain.ConceptCodeSolidarityFund)
		if !ok {
			return nil, fmt.Errorf("%w: solidarity fund concept %s not in catalog", apperrors.ErrValidation, domain.ConceptCodeSolidarityFund)
		}
		calc.Deductions = append(calc.Deductions, percentageDeduction(fspConcept, ssBase, fspPct))
	}

	// Manually attached fixed deductions (loans, garnishments, savings).
	for _, fixed := range a.FixedDeductions {
		concept, ok := catalog.DeductionByCode(fixed.ConceptCode)
		if !ok {
			return nil, fmt.Errorf("%w: deduction concept %s not in catalog", apperrors.ErrValidation, fixed.ConceptCode)
		}
		calc.Deductions = append(calc.Deductions, domain.Deduction{
			ConceptID:   concept.ConceptID,
			ConceptCode: concept.Code,
			Base:        fixed.Amount,
			Total:       fixed.Amount.Round(2),
		})
	}

	calc.TotalAccrued = domain.SumAccruals(calc.Accruals)
	calc.TotalDeducted = domain.SumDeductions(calc.Deductions)
	calc.NetPay = calc.TotalAccrued.Sub(calc.TotalDeducted)
	if calc.NetPay.IsNegative() {
		return nil, fmt.Errorf("%w: deductions exceed accruals, net pay would be negative", apperrors.ErrValidation)
	}
	return calc, nil
}

func percentageDeduction(concept domain.DeductionConcept, base, pct decimal.Decimal) domain.Deduction {
	p := pct
	return domain.Deduction{
		ConceptID:   concept.ConceptID,
		ConceptCode: concept.Code,
		Base:        base,
		Percentage:  &p,
		Total:       base.Mul(pct).Div(oneHundred).Round(2),
	}
}

func (s *calculationEngine) appendLog(ctx context.Context, organizationID, periodID string, runType domain.CalculationRunType, triggeredBy string, startedAt time.Time, result *domain.CalculationResult) {
	finishedAt := time.Now()
	log := domain.CalculationLog{
		OrganizationID:     organizationID,
		PeriodID:           periodID,
		RunType:            runType,
		EmployeesProcessed: result.EmployeesProcessed,
		EmployeesFailed:    result.EmployeesFailed,
		TotalAccrued:       result.TotalAccrued,
		TotalDeducted:      result.TotalDeducted,
		TotalNet:           result.TotalNet,
		Errors:             result.Errors,
		Warnings:           result.Warnings,
		StartedAt:          startedAt,
		FinishedAt:         finishedAt,
		DurationSeconds:    finishedAt.Sub(startedAt).Seconds(),
		TriggeredBy:        triggeredBy,
	}
	if err := s.periodRepo.AppendCalculationLog(ctx, log); err != nil {
		// The log is an audit convenience; a failed append never fails the run.
		middleware.GetLoggerFromCtx(ctx).Error("Failed to append calculation log",
			slog.String("period_id", periodID), slog.String("error", err.Error()))
	}
}

// logAbortedRun records an aborted run with zero employees so the audit
// trail shows the attempt.
func (s *calculationEngine) logAbortedRun(ctx context.Context, organizationID, periodID string, runType domain.CalculationRunType, triggeredBy string, startedAt time.Time, reason string) {
	result := &domain.CalculationResult{
		PeriodID:      periodID,
		TotalAccrued:  decimal.Zero,
		TotalDeducted: decimal.Zero,
		TotalNet:      decimal.Zero,
		Warnings:      []string{"run aborted: " + reason},
	}
	s.appendLog(ctx, organizationID, periodID, runType, triggeredBy, startedAt, result)
}

// joinValidationErrors flattens validation failures into one message.
func joinValidationErrors(v *domain.ValidationResult) string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return strings.Join(v.Errors, "; ")
}
