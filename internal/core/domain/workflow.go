package domain

import (
	"fmt"
	"time"
)

// WorkflowState is the approval state of a payroll period.
type WorkflowState string

const (
	StateDraft     WorkflowState = "DRAFT"
	StateInReview  WorkflowState = "IN_REVIEW"
	StateApproved  WorkflowState = "APPROVED"
	StateProcessed WorkflowState = "PROCESSED"
	StateRejected  WorkflowState = "REJECTED"
)

// WorkflowAction is a requested transition on a period workflow.
type WorkflowAction string

const (
	ActionSubmitForReview WorkflowAction = "SUBMIT_FOR_REVIEW"
	ActionApprove         WorkflowAction = "APPROVE"
	ActionReject          WorkflowAction = "REJECT"
	ActionProcess         WorkflowAction = "PROCESS"
)

// transitions is the full legal transition table. Anything absent here is an
// illegal transition and must leave state unchanged.
var transitions = map[WorkflowState]map[WorkflowAction]WorkflowState{
	StateDraft: {
		ActionSubmitForReview: StateInReview,
	},
	StateInReview: {
		ActionApprove: StateApproved,
		ActionReject:  StateRejected,
	},
	StateApproved: {
		ActionProcess: StateProcessed,
	},
}

// NextState resolves the target state for an action from the given state.
// It returns an error wrapping no sentinel; callers classify it as a
// conflict (illegal transition) themselves.
func (s WorkflowState) NextState(action WorkflowAction) (WorkflowState, error) {
	if next, ok := transitions[s][action]; ok {
		return next, nil
	}
	return s, fmt.Errorf("action %s is not allowed from state %s", action, s)
}

// CanTransition reports whether the action is legal from the given state.
func (s WorkflowState) CanTransition(action WorkflowAction) bool {
	_, ok := transitions[s][action]
	return ok
}

// Terminal reports whether no further workflow action can apply.
func (s WorkflowState) Terminal() bool {
	return len(transitions[s]) == 0
}

// PeriodStatus maps the workflow state onto the period's mirrored status.
func (s WorkflowState) PeriodStatus() PeriodStatus {
	switch s {
	case StateInReview:
		return PeriodInReview
	case StateApproved:
		return PeriodApproved
	case StateProcessed:
		return PeriodProcessed
	case StateRejected:
		return PeriodRejected
	default:
		return PeriodDraft
	}
}

// PeriodWorkflow is the approval record for one payroll period: current
// state plus actor/timestamp/notes for each transition taken.
type PeriodWorkflow struct {
	WorkflowID     string        `json:"workflowID"`
	OrganizationID string        `json:"organizationID"`
	PeriodID       string        `json:"periodID"`
	State          WorkflowState `json:"state"`

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

	// ValidationsPassed is the validation snapshot recorded when the period
	// was submitted for review.
	ValidationsPassed map[string]bool `json:"validationsPassed,omitempty"`

	AuditFields
}
