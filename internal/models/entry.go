package models

import "github.com/shopspring/decimal"

// PayrollEntry represents a row in the payroll_entries table. Line items live
// in their own tables and are regenerated wholesale on every recalculation.
type PayrollEntry struct {
	EntryID        string          `db:"entry_id"`
	OrganizationID string          `db:"organization_id"`
	PeriodID       string          `db:"period_id"`
	EmployeeID     string          `db:"employee_id"`
	DaysWorked     int             `db:"days_worked"`
	TotalAccrued   decimal.Decimal `db:"total_accrued"`
	TotalDeducted  decimal.Decimal `db:"total_deducted"`
	NetPay         decimal.Decimal `db:"net_pay"`
	AuditFields
}

// Accrual represents a row in the entry_accruals table. The base flags are
// denormalized from the concept at calculation time.
type Accrual struct {
	AccrualID            string          `db:"accrual_id"`
	EntryID              string          `db:"entry_id"`
	ConceptID            string          `db:"concept_id"`
	ConceptCode          string          `db:"concept_code"`
	Quantity             decimal.Decimal `db:"quantity"`
	UnitValue            decimal.Decimal `db:"unit_value"`
	Total                decimal.Decimal `db:"total"`
	CountsSocialSecurity bool            `db:"counts_social_security"`
	CountsBenefitsBase   bool            `db:"counts_benefits_base"`
}

// Deduction represents a row in the entry_deductions table. Percentage is
// NULL for fixed-amount deductions.
type Deduction struct {
	DeductionID string              `db:"deduction_id"`
	EntryID     string              `db:"entry_id"`
	ConceptID   string              `db:"concept_id"`
	ConceptCode string              `db:"concept_code"`
	Base        decimal.Decimal     `db:"base"`
	Percentage  decimal.NullDecimal `db:"percentage"`
	Total       decimal.Decimal     `db:"total"`
}
