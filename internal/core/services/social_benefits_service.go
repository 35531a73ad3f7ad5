package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
	"github.com/NominaCol/payroll_automation_app/internal/utils/dates"
)

// Statutory rates for Colombian social benefits.
var (
	commercialYear      = decimal.NewFromInt(360)
	severanceInterest   = decimal.NewFromInt(12) // 12% annual
	vacationDaysPerYear = decimal.NewFromInt(15)

	// Flat monthly provision factors on the base salary.
	provisionSeverance = decimal.RequireFromString("0.0833")
	provisionInterest  = decimal.RequireFromString("0.000833")
	provisionBonus     = decimal.RequireFromString("0.0833")
	provisionVacation  = decimal.RequireFromString("0.0417")
)

type socialBenefitsService struct {
	benefitRepo  portsrepo.BenefitRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	periodRepo   portsrepo.PeriodRepositoryFacade
}

// NewSocialBenefitsService creates the social benefits calculator service.
func NewSocialBenefitsService(
	benefitRepo portsrepo.BenefitRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
) *socialBenefitsService {
	return &socialBenefitsService{
		benefitRepo:  benefitRepo,
		employeeRepo: employeeRepo,
		periodRepo:   periodRepo,
	}
}

// Severance: one month of salary per year of service, prorated over the
// 360-day commercial year. Days are counted end-exclusive.
func (s *socialBenefitsService) Severance(start, end time.Time, averageSalary decimal.Decimal) domain.BenefitAmount {
	days := dates.DaysBetween(start, end)
	value := averageSalary.Mul(decimal.NewFromInt(int64(days))).Div(commercialYear).Round(2)
	return domain.BenefitAmount{Days: days, Value: value, BaseSalary: averageSalary}
}

// SeveranceInterest: 12% annual interest on the severance balance, prorated
// by days.
func (s *socialBenefitsService) SeveranceInterest(balance decimal.Decimal, days int) domain.BenefitAmount {
	value := balance.
		Mul(decimal.NewFromInt(int64(days))).
		Mul(severanceInterest).
		Div(commercialYear.Mul(oneHundred)).
		Round(2)
	return domain.BenefitAmount{Days: days, Value: value, BaseSalary: balance}
}

// ServiceBonus: one month of salary per year, accrued per semester. The
// span is clipped to the semester window containing its end date.
func (s *socialBenefitsService) ServiceBonus(start, end time.Time, averageSalary decimal.Decimal) domain.BenefitAmount {
	windowStart, windowEnd := dates.SemesterWindow(end)
	start, end = dates.ClipToWindow(start, end, windowStart, windowEnd)
	days := dates.DaysBetween(start, end)
	value := averageSalary.Mul(decimal.NewFromInt(int64(days))).Div(commercialYear).Round(2)
	return domain.BenefitAmount{Days: days, Value: value, BaseSalary: averageSalary}
}

// Vacation: 15 paid days per 360 worked, valued at the current salary's
// daily rate.
func (s *socialBenefitsService) Vacation(start, end time.Time, currentSalary decimal.Decimal) domain.VacationAmount {
	workedDays := dates.DaysBetween(start, end)
	vacationDays := decimal.NewFromInt(int64(workedDays)).Mul(vacationDaysPerYear).Div(commercialYear)
	value := currentSalary.Mul(vacationDays).Div(thirtyDays).Round(2)
	return domain.VacationAmount{
		WorkedDays:   workedDays,
		VacationDays: vacationDays.Round(2),
		Value:        value,
		BaseSalary:   currentSalary,
	}
}

// Liquidate settles every benefit for the employee's active contract up to
// the cutoff date and records one benefit row per kind.
func (s *socialBenefitsService) Liquidate(ctx context.Context, organizationID, employeeID string, cutoff time.Time, actor string) (*domain.LiquidationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if cutoff.IsZero() {
		cutoff = time.Now()
	}

	contract, err := s.benefitRepo.FindActiveContract(ctx, organizationID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active contract: %w", err)
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, organizationID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	salary := employee.BaseSalary

	severance := s.Severance(contract.StartDate, cutoff, salary)
	interest := s.SeveranceInterest(severance.Value, severance.Days)
	bonus := s.ServiceBonus(contract.StartDate, cutoff, salary)
	vacation := s.Vacation(contract.StartDate, cutoff, salary)

	result := &domain.LiquidationResult{
		EmployeeID:        employeeID,
		ContractID:        contract.ContractID,
		CutoffDate:        cutoff,
		Severance:         severance,
		SeveranceInterest: interest,
		ServiceBonus:      bonus,
		Vacation:          vacation,
		Total:             severance.Value.Add(interest.Value).Add(bonus.Value).Add(vacation.Value),
	}

	now := time.Now()
	records := []struct {
		kind  domain.BenefitKind
		start time.Time
		value decimal.Decimal
	}{
		{domain.BenefitSeverance, contract.StartDate, severance.Value},
		{domain.BenefitSeveranceInterest, contract.StartDate, interest.Value},
		{domain.BenefitServiceBonus, contract.StartDate, bonus.Value},
		{domain.BenefitVacation, contract.StartDate, vacation.Value},
	}
	for _, r := range records {
		benefit := domain.SocialBenefit{
			BenefitID:      uuid.NewString(),
			OrganizationID: organizationID,
			EmployeeID:     employeeID,
			Kind:           r.kind,
			StartDate:      r.start,
			EndDate:        cutoff,
			AccruedValue:   r.value,
			PaidValue:      decimal.Zero,
			AuditFields:    newAudit(actor, now),
		}
		if err := s.benefitRepo.SaveBenefit(ctx, benefit); err != nil {
			return nil, fmt.Errorf("failed to record %s benefit: %w", r.kind, err)
		}
	}

	logger.Info("Contract liquidated",
		slog.String("employee_id", employeeID),
		slog.String("contract_id", contract.ContractID),
		slog.String("total", result.Total.String()))
	return result, nil
}

// GenerateMonthlyProvision upserts the benefit provision for one employee in
// one period, applying the flat monthly factors to the assignment's salary.
func (s *socialBenefitsService) GenerateMonthlyProvision(ctx context.Context, organizationID, periodID, employeeID, actor string) (*domain.MonthlyProvision, error) {
	assignments, err := s.periodRepo.ListAssignments(ctx, organizationID, periodID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	for i := range assignments {
		if assignments[i].EmployeeID == employeeID {
			return s.provisionFor(ctx, &assignments[i], actor)
		}
	}
	return nil, fmt.Errorf("employee %s is not included in period %s", employeeID, periodID)
}

// GenerateProvisionsForPeriod upserts provisions for every included
// assignment. Per-employee failures are logged and skipped so one bad row
// never blocks the rest.
func (s *socialBenefitsService) GenerateProvisionsForPeriod(ctx context.Context, organizationID, periodID, actor string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	assignments, err := s.periodRepo.ListAssignments(ctx, organizationID, periodID, true)
	if err != nil {
		return 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	created := 0
	for i := range assignments {
		if _, err := s.provisionFor(ctx, &assignments[i], actor); err != nil {
			logger.Warn("Failed to generate provision",
				slog.String("employee_id", assignments[i].EmployeeID),
				slog.String("period_id", periodID),
				slog.String("error", err.Error()))
			continue
		}
		created++
	}

	logger.Info("Monthly provisions generated",
		slog.String("period_id", periodID), slog.Int("created", created))
	return created, nil
}

// BenefitBalances aggregates the employee's benefit records into one running
// balance per kind, in liquidation order.
func (s *socialBenefitsService) BenefitBalances(ctx context.Context, organizationID, employeeID string) ([]domain.BenefitBalance, error) {
	benefits, err := s.benefitRepo.ListBenefits(ctx, organizationID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}

	byKind := make(map[domain.BenefitKind]*domain.BenefitBalance, len(domain.BenefitKinds))
	balances := make([]domain.BenefitBalance, len(domain.BenefitKinds))
	for i, kind := range domain.BenefitKinds {
		balances[i] = domain.BenefitBalance{
			Kind:    kind,
			Accrued: decimal.Zero,
			Paid:    decimal.Zero,
			Balance: decimal.Zero,
		}
		byKind[kind] = &balances[i]
	}
	for i := range benefits {
		b := &benefits[i]
		agg, ok := byKind[b.Kind]
		if !ok {
			continue
		}
		agg.Accrued = agg.Accrued.Add(b.AccruedValue)
		agg.Paid = agg.Paid.Add(b.PaidValue)
		agg.Balance = agg.Accrued.Sub(agg.Paid)
	}
	return balances, nil
}

func (s *socialBenefitsService) provisionFor(ctx context.Context, assignment *domain.EmployeePeriodAssignment, actor string) (*domain.MonthlyProvision, error) {
	base := assignment.PeriodSalary
	now := time.Now()
	provision := domain.MonthlyProvision{
		ProvisionID:       uuid.NewString(),
		OrganizationID:    assignment.OrganizationID,
		EmployeeID:        assignment.EmployeeID,
		PeriodID:          assignment.PeriodID,
		BaseSalary:        base,
		Severance:         base.Mul(provisionSeverance).Round(2),
		SeveranceInterest: base.Mul(provisionInterest).Round(2),
		ServiceBonus:      base.Mul(provisionBonus).Round(2),
		Vacation:          base.Mul(provisionVacation).Round(2),
		AutoCalculated:    true,
		CalculatedAt:      &now,
		AuditFields:       newAudit(actor, now),
	}
	provision.Total = provision.Severance.
		Add(provision.SeveranceInterest).
		Add(provision.ServiceBonus).
		Add(provision.Vacation)

	if err := s.benefitRepo.UpsertProvision(ctx, provision); err != nil {
		return nil, fmt.Errorf("failed to upsert provision: %w", err)
	}
	return &provision, nil
}
