package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollPeriod represents a row in the payroll_periods table. Status mirrors
// the workflow state so listings avoid a join.
type PayrollPeriod struct {
	PeriodID       string          `db:"period_id"`
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	PeriodType     string          `db:"period_type"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	PayDate        time.Time       `db:"pay_date"`
	Status         string          `db:"status"`
	TotalAccrued   decimal.Decimal `db:"total_accrued"`
	TotalDeducted  decimal.Decimal `db:"total_deducted"`
	TotalNet       decimal.Decimal `db:"total_net"`
	Notes          string          `db:"notes"`
	AuditFields
}

// EmployeePeriodAssignment represents a row in the period_assignments table.
// The manual line inputs (extra accruals, fixed deductions) are stored as
// JSONB documents since they are engine inputs, not queryable line items.
type EmployeePeriodAssignment struct {
	AssignmentID       string          `db:"assignment_id"`
	OrganizationID     string          `db:"organization_id"`
	PeriodID           string          `db:"period_id"`
	EmployeeID         string          `db:"employee_id"`
	EmployeeName       string          `db:"employee_name"`
	Included           bool            `db:"included"`
	ExclusionReason    string          `db:"exclusion_reason"`
	PeriodSalary       decimal.Decimal `db:"period_salary"`
	DaysWorked         int             `db:"days_worked"`
	TotalAccrued       decimal.Decimal `db:"total_accrued"`
	TotalDeducted      decimal.Decimal `db:"total_deducted"`
	NetPay             decimal.Decimal `db:"net_pay"`
	AutoCalculated     bool            `db:"auto_calculated"`
	CalculatedAt       *time.Time      `db:"calculated_at"`
	NeedsRecalculation bool            `db:"needs_recalculation"`
	ExtraAccruals      []byte          `db:"extra_accruals"`
	FixedDeductions    []byte          `db:"fixed_deductions"`
	AuditFields
}
