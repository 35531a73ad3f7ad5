package repositories

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// WorkflowReader defines read operations for period workflows.
type WorkflowReader interface {
	// FindWorkflowByPeriod retrieves the workflow row of a period.
	FindWorkflowByPeriod(ctx context.Context, organizationID, periodID string) (*domain.PeriodWorkflow, error)
}

// WorkflowWriter defines write operations for period workflows.
type WorkflowWriter interface {
	// TransitionWorkflow applies a state transition with compare-and-set
	// semantics: the update only succeeds when the stored state still equals
	// workflow.State's source recorded in fromState. It also mirrors the new
	// state onto the period row in the same transaction. Returns
	// apperrors.ErrConflict when the stored state no longer matches, leaving
	// everything unchanged.
	TransitionWorkflow(ctx context.Context, fromState domain.WorkflowState, workflow domain.PeriodWorkflow) error

	// ResetWorkflowToDraft returns a REJECTED workflow (and its period) to
	// DRAFT after a successful recalculation. Compare-and-set on REJECTED.
	ResetWorkflowToDraft(ctx context.Context, organizationID, periodID, updatedBy string) error
}

// WorkflowRepositoryFacade combines the workflow repository interfaces.
type WorkflowRepositoryFacade interface {
	WorkflowReader
	WorkflowWriter
}
