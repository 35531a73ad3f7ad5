package services

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
)

// PeriodSvcFacade defines payroll period and assignment operations that are
// not driven by the automation service.
type PeriodSvcFacade interface {
	// CreatePeriod registers a manually created DRAFT period with its
	// workflow row.
	CreatePeriod(ctx context.Context, organizationID string, req dto.CreatePeriodRequest, userID string) (*domain.PayrollPeriod, error)

	// GetPeriod retrieves a single period.
	GetPeriod(ctx context.Context, organizationID, periodID string) (*domain.PayrollPeriod, error)

	// ListPeriods returns a page of periods, newest first, using token
	// pagination.
	ListPeriods(ctx context.Context, organizationID string, limit int, nextToken string) ([]domain.PayrollPeriod, string, error)

	// ListAssignments returns the period's assignments.
	ListAssignments(ctx context.Context, organizationID, periodID string, includedOnly bool) ([]domain.EmployeePeriodAssignment, error)

	// UpdateAssignment applies manual adjustments (days worked, inclusion,
	// extra accruals, fixed deductions) to one assignment and flags it for
	// recalculation. Only allowed while the period is in DRAFT or REJECTED.
	UpdateAssignment(ctx context.Context, organizationID, assignmentID string, req dto.UpdateAssignmentRequest, userID string) (*domain.EmployeePeriodAssignment, error)

	// GetEntry retrieves the calculated entry with its line items for one
	// assignment.
	GetEntry(ctx context.Context, organizationID, assignmentID string) (*domain.PayrollEntry, error)
}
