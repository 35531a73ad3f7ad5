package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BenefitKind identifies one of the four Colombian social benefits.
type BenefitKind string

const (
	BenefitSeverance         BenefitKind = "SEVERANCE"          // cesantías
	BenefitSeveranceInterest BenefitKind = "SEVERANCE_INTEREST" // intereses sobre cesantías
	BenefitServiceBonus      BenefitKind = "SERVICE_BONUS"      // prima de servicios
	BenefitVacation          BenefitKind = "VACATION"           // vacaciones
)

// BenefitKinds lists all benefit kinds in liquidation order.
var BenefitKinds = []BenefitKind{
	BenefitSeverance,
	BenefitSeveranceInterest,
	BenefitServiceBonus,
	BenefitVacation,
}

// ContractStatus is the lifecycle state of a labor contract.
type ContractStatus string

const (
	ContractActive     ContractStatus = "ACTIVE"
	ContractTerminated ContractStatus = "TERMINATED"
)

// LaborContract is the formal employment record liquidation runs against.
type LaborContract struct {
	ContractID     string         `json:"contractID"`
	OrganizationID string         `json:"organizationID"`
	EmployeeID     string         `json:"employeeID"`
	Type           ContractType   `json:"type"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Status         ContractStatus `json:"status"`
	AuditFields
}

// SocialBenefit is one accrual record of a benefit over a date range.
// Balance is always accrued minus paid.
type SocialBenefit struct {
	BenefitID      string          `json:"benefitID"`
	OrganizationID string          `json:"organizationID"`
	EmployeeID     string          `json:"employeeID"`
	Kind           BenefitKind     `json:"kind"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	AccruedValue   decimal.Decimal `json:"accruedValue"`
	PaidValue      decimal.Decimal `json:"paidValue"`
	AuditFields
}

// Balance returns the unpaid portion of the benefit.
func (b SocialBenefit) Balance() decimal.Decimal {
	return b.AccruedValue.Sub(b.PaidValue)
}

// BenefitBalance aggregates accrued/paid/balance for one benefit kind.
type BenefitBalance struct {
	Kind    BenefitKind     `json:"kind"`
	Accrued decimal.Decimal `json:"accrued"`
	Paid    decimal.Decimal `json:"paid"`
	Balance decimal.Decimal `json:"balance"`
}

// BenefitAmount is the result of one proration formula.
type BenefitAmount struct {
	Days       int             `json:"days"`
	Value      decimal.Decimal `json:"value"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
}

// VacationAmount extends BenefitAmount with the accrued vacation days.
type VacationAmount struct {
	WorkedDays   int             `json:"workedDays"`
	VacationDays decimal.Decimal `json:"vacationDays"`
	Value        decimal.Decimal `json:"value"`
	BaseSalary   decimal.Decimal `json:"baseSalary"`
}

// LiquidationResult is the full termination settlement of an employee.
type LiquidationResult struct {
	EmployeeID        string          `json:"employeeID"`
	ContractID        string          `json:"contractID"`
	CutoffDate        time.Time       `json:"cutoffDate"`
	Severance         BenefitAmount   `json:"severance"`
	SeveranceInterest BenefitAmount   `json:"severanceInterest"`
	ServiceBonus      BenefitAmount   `json:"serviceBonus"`
	Vacation          VacationAmount  `json:"vacation"`
	Total             decimal.Decimal `json:"total"`
}

// MonthlyProvision records one month's accrual of all four benefits for one
// employee in one period. Recomputation replaces the prior values.
type MonthlyProvision struct {
	ProvisionID       string          `json:"provisionID"`
	OrganizationID    string          `json:"organizationID"`
	EmployeeID        string          `json:"employeeID"`
	PeriodID          string          `json:"periodID"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	Severance         decimal.Decimal `json:"severance"`
	SeveranceInterest decimal.Decimal `json:"severanceInterest"`
	ServiceBonus      decimal.Decimal `json:"serviceBonus"`
	Vacation          decimal.Decimal `json:"vacation"`
	Total             decimal.Decimal `json:"total"`
	AutoCalculated    bool            `json:"autoCalculated"`
	CalculatedAt      *time.Time      `json:"calculatedAt,omitempty"`
	AuditFields
}
