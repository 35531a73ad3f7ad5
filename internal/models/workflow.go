package models

import "time"

// PeriodWorkflow represents a row in the period_workflows table, one per
// period. ValidationsPassed is the JSONB snapshot taken at submission.
type PeriodWorkflow struct {
	WorkflowID     string `db:"workflow_id"`
	OrganizationID string `db:"organization_id"`
	PeriodID       string `db:"period_id"`
	State          string `db:"state"`

	DraftedAt   time.Time  `db:"drafted_at"`
	SubmittedAt *time.Time `db:"submitted_at"`
	ApprovedAt  *time.Time `db:"approved_at"`
	ProcessedAt *time.Time `db:"processed_at"`
	RejectedAt  *time.Time `db:"rejected_at"`

	SubmittedBy string `db:"submitted_by"`
	ApprovedBy  string `db:"approved_by"`
	ProcessedBy string `db:"processed_by"`
	RejectedBy  string `db:"rejected_by"`

	ReviewNotes     string `db:"review_notes"`
	ApprovalNotes   string `db:"approval_notes"`
	RejectionReason string `db:"rejection_reason"`

	ValidationsPassed []byte `db:"validations_passed"`

	AuditFields
}
