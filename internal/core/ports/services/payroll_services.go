package services

import (
	"context"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// CalculationEngineSvcFacade is the public contract of the payroll
// calculation engine.
type CalculationEngineSvcFacade interface {
	// CalculatePeriod runs the full batch calculation over every included
	// assignment of the period. Per-employee failures are aggregated into
	// the result; fatal errors (missing configuration, missing period)
	// abort the run before any totals are committed.
	CalculatePeriod(ctx context.Context, organizationID, periodID string, runType domain.CalculationRunType, triggeredBy string) (*domain.CalculationResult, error)

	// CalculateAssignment recalculates a single employee's assignment,
	// replacing its persisted line items.
	CalculateAssignment(ctx context.Context, organizationID, assignmentID, triggeredBy string) (*domain.EmployeeCalculation, error)

	// ValidateCalculation runs the pre-submission validation gate.
	ValidateCalculation(ctx context.Context, organizationID, periodID string) (*domain.ValidationResult, error)
}

// DraftGeneration is the outcome of an automatic draft run.
type DraftGeneration struct {
	Period            domain.PayrollPeriod     `json:"period"`
	Workflow          domain.PeriodWorkflow    `json:"workflow"`
	EmployeesAssigned int                      `json:"employeesAssigned"`
	Calculation       domain.CalculationResult `json:"calculation"`
}

// AutomationSvcFacade orchestrates scheduled period generation. The external
// scheduler calls GenerateDraft once per organization per cycle.
type AutomationSvcFacade interface {
	// GenerateDraft creates a DRAFT period for the cycle containing `at`,
	// assigns every active payroll-eligible employee, runs the engine and
	// publishes a draft-generated notification.
	GenerateDraft(ctx context.Context, organizationID string, periodType domain.PeriodType, at time.Time, triggeredBy string) (*DraftGeneration, error)

	// AssignEmployees assigns all active payroll-eligible employees to an
	// existing period, computing each employee's days worked from the
	// overlap of employment dates and period dates. Returns the number of
	// assignments created.
	AssignEmployees(ctx context.Context, organizationID string, period domain.PayrollPeriod, createdBy string) (int, error)
}

// WorkflowSvcFacade drives a period through its approval workflow. All
// transitions are all-or-nothing: an illegal transition returns an error and
// leaves state untouched.
type WorkflowSvcFacade interface {
	// SubmitForReview moves DRAFT to IN_REVIEW, gated on the validation
	// result reporting approved.
	SubmitForReview(ctx context.Context, organizationID, periodID, userID, notes string) (*domain.PeriodWorkflow, error)

	// Approve moves IN_REVIEW to APPROVED.
	Approve(ctx context.Context, organizationID, periodID, userID, notes string) (*domain.PeriodWorkflow, error)

	// Reject moves IN_REVIEW to REJECTED; the reason is mandatory.
	Reject(ctx context.Context, organizationID, periodID, userID, reason string) (*domain.PeriodWorkflow, error)

	// Process moves APPROVED to PROCESSED, the hand-off point to document
	// generation and submission.
	Process(ctx context.Context, organizationID, periodID, userID string) (*domain.PeriodWorkflow, error)

	// GetWorkflow retrieves the current workflow record of a period.
	GetWorkflow(ctx context.Context, organizationID, periodID string) (*domain.PeriodWorkflow, error)
}
