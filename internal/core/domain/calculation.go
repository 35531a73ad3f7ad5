package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationRunType tags why a calculation ran.
type CalculationRunType string

const (
	RunInitial   CalculationRunType = "INITIAL"
	RunRecalc    CalculationRunType = "RECALC"
	RunAutomatic CalculationRunType = "AUTOMATIC"
	RunManual    CalculationRunType = "MANUAL"
)

// CalculationError records one employee's failure inside a batch run.
type CalculationError struct {
	EmployeeID   string `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
	Message      string `json:"message"`
}

// CalculationResult is the outcome of one batch calculation over a period.
// Partial failure is an expected outcome: employees that failed are listed
// in Errors and the rest are committed.
type CalculationResult struct {
	PeriodID           string             `json:"periodID"`
	EmployeesProcessed int                `json:"employeesProcessed"`
	EmployeesFailed    int                `json:"employeesFailed"`
	TotalAccrued       decimal.Decimal    `json:"totalAccrued"`
	TotalDeducted      decimal.Decimal    `json:"totalDeducted"`
	TotalNet           decimal.Decimal    `json:"totalNet"`
	Errors             []CalculationError `json:"errors,omitempty"`
	Warnings           []string           `json:"warnings,omitempty"`
}

// EmployeeCalculation is the per-employee outcome: fully formed line items
// plus their totals, computed in memory before any persistence.
type EmployeeCalculation struct {
	AssignmentID  string          `json:"assignmentID"`
	EmployeeID    string          `json:"employeeID"`
	Accruals      []Accrual       `json:"accruals"`
	Deductions    []Deduction     `json:"deductions"`
	TotalAccrued  decimal.Decimal `json:"totalAccrued"`
	TotalDeducted decimal.Decimal `json:"totalDeducted"`
	NetPay        decimal.Decimal `json:"netPay"`
}

// ValidationResult is the gate consulted before a period may leave DRAFT.
type ValidationResult struct {
	Validations map[string]bool `json:"validations"`
	Errors      []string        `json:"errors"`
	Warnings    []string        `json:"warnings"`
	Approved    bool            `json:"approved"`
}

// Validation check names.
const (
	CheckMinimumWage = "minimum_wage"
	CheckTotals      = "totals"
)

// CalculationLog is the append-only audit record of one calculation run.
// It is never mutated after creation.
type CalculationLog struct {
	LogID              string             `json:"logID"`
	OrganizationID     string             `json:"organizationID"`
	PeriodID           string             `json:"periodID"`
	RunType            CalculationRunType `json:"runType"`
	EmployeesProcessed int                `json:"employeesProcessed"`
	EmployeesFailed    int                `json:"employeesFailed"`
	TotalAccrued       decimal.Decimal    `json:"totalAccrued"`
	TotalDeducted      decimal.Decimal    `json:"totalDeducted"`
	TotalNet           decimal.Decimal    `json:"totalNet"`
	Errors             []CalculationError `json:"errors,omitempty"`
	Warnings           []string           `json:"warnings,omitempty"`
	StartedAt          time.Time          `json:"startedAt"`
	FinishedAt         time.Time          `json:"finishedAt"`
	DurationSeconds    float64            `json:"durationSeconds"`
	TriggeredBy        string             `json:"triggeredBy,omitempty"`
}
