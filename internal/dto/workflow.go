package dto

import (
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// TransitionRequest carries the optional notes attached to a workflow action.
type TransitionRequest struct {
	Notes string `json:"notes"`
}

// RejectRequest carries the mandatory reason for rejecting a period.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// WorkflowResponse defines the data returned for a period workflow.
type WorkflowResponse struct {
	WorkflowID string               `json:"workflowID"`
	PeriodID   string               `json:"periodID"`
	State      domain.WorkflowState `json:"state"`

	DraftedAt   time.Time  `json:"draftedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`

	SubmittedBy string `json:"submittedBy,omitempty"`
	ApprovedBy  string `json:"approvedBy,omitempty"`
	ProcessedBy string `json:"processedBy,omitempty"`
	RejectedBy  string `json:"rejectedBy,omitempty"`

	ReviewNotes     string `json:"reviewNotes,omitempty"`
	ApprovalNotes   string `json:"approvalNotes,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`

	ValidationsPassed map[string]bool `json:"validationsPassed,omitempty"`
}

// ToWorkflowResponse converts a domain.PeriodWorkflow to its DTO.
func ToWorkflowResponse(w *domain.PeriodWorkflow) WorkflowResponse {
	return WorkflowResponse{
		WorkflowID:        w.WorkflowID,
		PeriodID:          w.PeriodID,
		State:             w.State,
		DraftedAt:         w.DraftedAt,
		SubmittedAt:       w.SubmittedAt,
		ApprovedAt:        w.ApprovedAt,
		ProcessedAt:       w.ProcessedAt,
		RejectedAt:        w.RejectedAt,
		SubmittedBy:       w.SubmittedBy,
		ApprovedBy:        w.ApprovedBy,
		ProcessedBy:       w.ProcessedBy,
		RejectedBy:        w.RejectedBy,
		ReviewNotes:       w.ReviewNotes,
		ApprovalNotes:     w.ApprovalNotes,
		RejectionReason:   w.RejectionReason,
		ValidationsPassed: w.ValidationsPassed,
	}
}
