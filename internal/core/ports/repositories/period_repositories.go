package repositories

import (
	"context"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodReader defines read operations for payroll periods.
type PeriodReader interface {
	// FindPeriodByID retrieves one period by its identifier.
	FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.PayrollPeriod, error)

	// ListPeriods retrieves a paginated list of periods, newest first.
	ListPeriods(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.PayrollPeriod, *string, error)
}

// PeriodWriter defines write operations for payroll periods.
type PeriodWriter interface {
	// SavePeriod persists a new period together with its DRAFT workflow row
	// in one transaction. Returns apperrors.ErrDuplicate on a name clash.
	SavePeriod(ctx context.Context, period domain.PayrollPeriod, workflow domain.PeriodWorkflow) error

	// UpdatePeriodTotals writes the aggregate totals once at the end of a
	// calculation run.
	UpdatePeriodTotals(ctx context.Context, organizationID, periodID string, accrued, deducted, net decimal.Decimal, updatedBy string, updatedAt time.Time) error

	// UpdatePeriodStatus mirrors the workflow state onto the period row.
	UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error
}

// AssignmentReader defines read operations for employee-period assignments.
type AssignmentReader interface {
	// FindAssignmentByID retrieves one assignment.
	FindAssignmentByID(ctx context.Context, organizationID, assignmentID string) (*domain.EmployeePeriodAssignment, error)

	// ListAssignments retrieves the assignments of a period. includedOnly
	// restricts to assignments flagged for inclusion.
	ListAssignments(ctx context.Context, organizationID, periodID string, includedOnly bool) ([]domain.EmployeePeriodAssignment, error)
}

// AssignmentWriter defines write operations for assignments.
type AssignmentWriter interface {
	// SaveAssignment persists a new assignment; one row per (period,
	// employee), apperrors.ErrDuplicate otherwise.
	SaveAssignment(ctx context.Context, assignment domain.EmployeePeriodAssignment) error

	// UpdateAssignment updates the mutable assignment fields (inclusion,
	// salary, days, manual line inputs, recalculation flag).
	UpdateAssignment(ctx context.Context, assignment domain.EmployeePeriodAssignment) error

	// ReplaceEntryLines atomically swaps an employee's computed line items:
	// upserts the entry, deletes the old accrual/deduction rows, inserts the
	// new ones, and updates the entry and assignment totals — all in one
	// database transaction.
	ReplaceEntryLines(ctx context.Context, assignment domain.EmployeePeriodAssignment, calc domain.EmployeeCalculation, calculatedAt time.Time) error
}

// EntryReader defines read operations for computed payroll entries.
type EntryReader interface {
	// FindEntry retrieves the entry with its line items for one employee in
	// one period.
	FindEntry(ctx context.Context, organizationID, periodID, employeeID string) (*domain.PayrollEntry, error)
}

// CalculationLogWriter appends audit records for calculation runs. The log
// is append-only; there is deliberately no update or delete operation.
type CalculationLogWriter interface {
	AppendCalculationLog(ctx context.Context, log domain.CalculationLog) error
}

// PeriodRepositoryFacade combines all period-related repository interfaces.
type PeriodRepositoryFacade interface {
	PeriodReader
	PeriodWriter
	AssignmentReader
	AssignmentWriter
	EntryReader
	CalculationLogWriter
}
