package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodType is the payroll cycle length.
type PeriodType string

const (
	PeriodMonthly  PeriodType = "MONTHLY"
	PeriodBiweekly PeriodType = "BIWEEKLY"
)

// PeriodStatus mirrors the workflow state on the period itself so listings
// don't need a join against the workflow row.
type PeriodStatus string

const (
	PeriodDraft     PeriodStatus = "DRAFT"
	PeriodInReview  PeriodStatus = "IN_REVIEW"
	PeriodApproved  PeriodStatus = "APPROVED"
	PeriodProcessed PeriodStatus = "PROCESSED"
	PeriodRejected  PeriodStatus = "REJECTED"
)

// CommercialDays is the day count a full period represents under the
// Colombian 360-day commercial convention.
func (t PeriodType) CommercialDays() int {
	if t == PeriodBiweekly {
		return 15
	}
	return 30
}

// PayrollPeriod is one payroll cycle for one organization. Totals are
// recomputed by the calculation engine; they always equal the sum over the
// period's included assignments.
type PayrollPeriod struct {
	PeriodID       string          `json:"periodID"`
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	Type           PeriodType      `json:"type"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	PayDate        time.Time       `json:"payDate"`
	Status         PeriodStatus    `json:"status"`
	TotalAccrued   decimal.Decimal `json:"totalAccrued"`
	TotalDeducted  decimal.Decimal `json:"totalDeducted"`
	TotalNet       decimal.Decimal `json:"totalNet"`
	Notes          string          `json:"notes,omitempty"`
	AuditFields
}

// Length returns the inclusive calendar day count of the period.
func (p PayrollPeriod) Length() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// EmployeePeriodAssignment links an employee to a period. The salary here may
// differ from the employee's current base salary (raises mid-cycle, manual
// adjustments); DaysWorked is clipped to the overlap between employment dates
// and period dates and never exceeds the period's commercial length.
type EmployeePeriodAssignment struct {
	AssignmentID       string          `json:"assignmentID"`
	OrganizationID     string          `json:"organizationID"`
	PeriodID           string          `json:"periodID"`
	EmployeeID         string          `json:"employeeID"`
	EmployeeName       string          `json:"employeeName"`
	Included           bool            `json:"included"`
	ExclusionReason    string          `json:"exclusionReason,omitempty"`
	PeriodSalary       decimal.Decimal `json:"periodSalary"`
	DaysWorked         int             `json:"daysWorked"`
	TotalAccrued       decimal.Decimal `json:"totalAccrued"`
	TotalDeducted      decimal.Decimal `json:"totalDeducted"`
	NetPay             decimal.Decimal `json:"netPay"`
	AutoCalculated     bool            `json:"autoCalculated"`
	CalculatedAt       *time.Time      `json:"calculatedAt,omitempty"`
	NeedsRecalculation bool            `json:"needsRecalculation"`
	// ExtraAccruals are additive line items (overtime, bonuses, commissions)
	// recorded against this assignment outside the automatic salary path.
	ExtraAccruals   []ExtraAccrual   `json:"extraAccruals,omitempty"`
	FixedDeductions []FixedDeduction `json:"fixedDeductions,omitempty"`
	AuditFields
}

// ExtraAccrual is a manually attached accrual input for one assignment.
type ExtraAccrual struct {
	ConceptCode string          `json:"conceptCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unitValue"`
}

// FixedDeduction is a manually attached deduction input (loans, garnishments,
// savings plans) applied per the concept's calculation base.
type FixedDeduction struct {
	ConceptCode string          `json:"conceptCode"`
	Amount      decimal.Decimal `json:"amount"`
}
