package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LaborContract represents a row in the labor_contracts table.
type LaborContract struct {
	ContractID     string     `db:"contract_id"`
	OrganizationID string     `db:"organization_id"`
	EmployeeID     string     `db:"employee_id"`
	ContractType   string     `db:"contract_type"`
	StartDate      time.Time  `db:"start_date"`
	EndDate        *time.Time `db:"end_date"`
	Status         string     `db:"status"`
	AuditFields
}

// SocialBenefit represents a row in the social_benefits table.
type SocialBenefit struct {
	BenefitID      string          `db:"benefit_id"`
	OrganizationID string          `db:"organization_id"`
	EmployeeID     string          `db:"employee_id"`
	Kind           string          `db:"kind"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	AccruedValue   decimal.Decimal `db:"accrued_value"`
	PaidValue      decimal.Decimal `db:"paid_value"`
	AuditFields
}

// MonthlyProvision represents a row in the monthly_provisions table, unique
// per (organization, period, employee).
type MonthlyProvision struct {
	ProvisionID       string          `db:"provision_id"`
	OrganizationID    string          `db:"organization_id"`
	EmployeeID        string          `db:"employee_id"`
	PeriodID          string          `db:"period_id"`
	BaseSalary        decimal.Decimal `db:"base_salary"`
	Severance         decimal.Decimal `db:"severance"`
	SeveranceInterest decimal.Decimal `db:"severance_interest"`
	ServiceBonus      decimal.Decimal `db:"service_bonus"`
	Vacation          decimal.Decimal `db:"vacation"`
	Total             decimal.Decimal `db:"total"`
	AutoCalculated    bool            `db:"auto_calculated"`
	CalculatedAt      *time.Time      `db:"calculated_at"`
	AuditFields
}
