package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// SocialBenefitsSvcFacade computes Colombian social benefits. The pure
// calculation methods take the salary base explicitly so callers can supply
// an averaged salary where the law requires one.
type SocialBenefitsSvcFacade interface {
	// Severance computes the severance accrued over [start, end] at one
	// month of salary per year of service, day-prorated over 360.
	Severance(start, end time.Time, averageSalary decimal.Decimal) domain.BenefitAmount

	// SeveranceInterest computes the 12% annual interest on a severance
	// balance, prorated by days.
	SeveranceInterest(balance decimal.Decimal, days int) domain.BenefitAmount

	// ServiceBonus computes the semester service bonus (prima) accrued over
	// [start, end], clipped to the semester window containing end.
	ServiceBonus(start, end time.Time, averageSalary decimal.Decimal) domain.BenefitAmount

	// Vacation computes accrued vacation at 15 paid days per year of
	// service, valued at the current base salary.
	Vacation(start, end time.Time, currentSalary decimal.Decimal) domain.VacationAmount

	// Liquidate computes the full settlement of an employee's active
	// contract at the cutoff date and persists the resulting benefit
	// records.
	Liquidate(ctx context.Context, organizationID, employeeID string, cutoff time.Time, actor string) (*domain.LiquidationResult, error)

	// GenerateMonthlyProvision upserts the accounting provision for one
	// employee in one period.
	GenerateMonthlyProvision(ctx context.Context, organizationID, periodID, employeeID string, actor string) (*domain.MonthlyProvision, error)

	// GenerateProvisionsForPeriod upserts provisions for every included
	// assignment of the period. Returns the number of provisions written.
	GenerateProvisionsForPeriod(ctx context.Context, organizationID, periodID, actor string) (int, error)

	// BenefitBalances aggregates the employee's persisted benefit records
	// into one running balance per benefit kind.
	BenefitBalances(ctx context.Context, organizationID, employeeID string) ([]domain.BenefitBalance, error)
}
