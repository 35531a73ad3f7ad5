package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/models"
	"github.com/NominaCol/payroll_automation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkflowRepository struct {
	BaseRepository
}

// newPgxWorkflowRepository creates a new repository for period workflows.
func newPgxWorkflowRepository(pool *pgxpool.Pool) portsrepo.WorkflowRepositoryFacade {
	return &PgxWorkflowRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WorkflowRepositoryFacade = (*PgxWorkflowRepository)(nil)

// FindWorkflowByPeriod retrieves the workflow row of a period.
func (r *PgxWorkflowRepository) FindWorkflowByPeriod(ctx context.Context, organizationID, periodID string) (*domain.PeriodWorkflow, error) {
	query := `
		SELECT workflow_id, organization_id, period_id, state,
			drafted_at, submitted_at, approved_at, processed_at, rejected_at,
			submitted_by, approved_by, processed_by, rejected_by,
			review_notes, approval_notes, rejection_reason, validations_passed,
			created_at, created_by, last_updated_at, last_updated_by
		FROM period_workflows
		WHERE organization_id = $1 AND period_id = $2;
	`
	var m models.PeriodWorkflow
	err := r.Pool.QueryRow(ctx, query, organizationID, periodID).Scan(
		&m.WorkflowID, &m.OrganizationID, &m.PeriodID, &m.State,
		&m.DraftedAt, &m.SubmittedAt, &m.ApprovedAt, &m.ProcessedAt, &m.RejectedAt,
		&m.SubmittedBy, &m.ApprovedBy, &m.ProcessedBy, &m.RejectedBy,
		&m.ReviewNotes, &m.ApprovalNotes, &m.RejectionReason, &m.ValidationsPassed,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find workflow for period %s: %w", periodID, err)
	}

	d, err := mapping.ToDomainWorkflow(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// TransitionWorkflow applies a compare-and-set state transition and mirrors
// the new state onto the period row in the same transaction. A zero-row
// update means another actor moved the workflow first.
func (r *PgxWorkflowRepository) TransitionWorkflow(ctx context.Context, fromState domain.WorkflowState, workflow domain.PeriodWorkflow) error {
	m, err := mapping.ToModelWorkflow(workflow)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE period_workflows SET
			state = $4,
			submitted_at = $5, approved_at = $6, processed_at = $7, rejected_at = $8,
			submitted_by = $9, approved_by = $10, processed_by = $11, rejected_by = $12,
			review_notes = $13, approval_notes = $14, rejection_reason = $15,
			validations_passed = $16,
			last_updated_at = $17, last_updated_by = $18
		WHERE organization_id = $1 AND period_id = $2 AND state = $3;
	`
	tag, err := tx.Exec(ctx, query,
		m.OrganizationID, m.PeriodID, string(fromState),
		m.State,
		m.SubmittedAt, m.ApprovedAt, m.ProcessedAt, m.RejectedAt,
		m.SubmittedBy, m.ApprovedBy, m.ProcessedBy, m.RejectedBy,
		m.ReviewNotes, m.ApprovalNotes, m.RejectionReason,
		m.ValidationsPassed,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to transition workflow for period %s: %w", m.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: workflow for period %s is no longer in state %s", apperrors.ErrConflict, m.PeriodID, fromState)
	}

	if err := mirrorPeriodStatus(ctx, tx, m.OrganizationID, m.PeriodID, workflow.State.PeriodStatus(), m.LastUpdatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ResetWorkflowToDraft returns a REJECTED workflow and its period to DRAFT.
func (r *PgxWorkflowRepository) ResetWorkflowToDraft(ctx context.Context, organizationID, periodID, updatedBy string) error {
	now := time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE period_workflows SET
			state = $3,
			submitted_at = NULL, approved_at = NULL, rejected_at = NULL,
			submitted_by = '', approved_by = '', rejected_by = '',
			review_notes = '', approval_notes = '',
			validations_passed = NULL,
			last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND period_id = $2 AND state = $6;
	`
	tag, err := tx.Exec(ctx, query,
		organizationID, periodID, string(domain.StateDraft), now, updatedBy, string(domain.StateRejected),
	)
	if err != nil {
		return fmt.Errorf("failed to reset workflow for period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: workflow for period %s is not in state %s", apperrors.ErrConflict, periodID, domain.StateRejected)
	}

	if err := mirrorPeriodStatus(ctx, tx, organizationID, periodID, domain.PeriodDraft, updatedBy, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func mirrorPeriodStatus(ctx context.Context, tx pgx.Tx, organizationID, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payroll_periods SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND period_id = $2;
	`
	tag, err := tx.Exec(ctx, query, organizationID, periodID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mirror status onto period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
