package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
)

// ToModelWorkflow converts a domain PeriodWorkflow to a model PeriodWorkflow,
// serializing the validation snapshot to JSONB.
func ToModelWorkflow(d domain.PeriodWorkflow) (models.PeriodWorkflow, error) {
	var validations []byte
	if d.ValidationsPassed != nil {
		var err error
		validations, err = json.Marshal(d.ValidationsPassed)
		if err != nil {
			return models.PeriodWorkflow{}, fmt.Errorf("failed to marshal validation snapshot: %w", err)
		}
	}
	return models.PeriodWorkflow{
		WorkflowID:        d.WorkflowID,
		OrganizationID:    d.OrganizationID,
		PeriodID:          d.PeriodID,
		State:             string(d.State),
		DraftedAt:         d.DraftedAt,
		SubmittedAt:       d.SubmittedAt,
		ApprovedAt:        d.ApprovedAt,
		ProcessedAt:       d.ProcessedAt,
		RejectedAt:        d.RejectedAt,
		SubmittedBy:       d.SubmittedBy,
		ApprovedBy:        d.ApprovedBy,
		ProcessedBy:       d.ProcessedBy,
		RejectedBy:        d.RejectedBy,
		ReviewNotes:       d.ReviewNotes,
		ApprovalNotes:     d.ApprovalNotes,
		RejectionReason:   d.RejectionReason,
		ValidationsPassed: validations,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainWorkflow converts a model PeriodWorkflow to a domain PeriodWorkflow
func ToDomainWorkflow(m models.PeriodWorkflow) (domain.PeriodWorkflow, error) {
	var validations map[string]bool
	if len(m.ValidationsPassed) > 0 {
		if err := json.Unmarshal(m.ValidationsPassed, &validations); err != nil {
			return domain.PeriodWorkflow{}, fmt.Errorf("failed to unmarshal validation snapshot: %w", err)
		}
	}
	return domain.PeriodWorkflow{
		WorkflowID:        m.WorkflowID,
		OrganizationID:    m.OrganizationID,
		PeriodID:          m.PeriodID,
		State:             domain.WorkflowState(m.State),
		DraftedAt:         m.DraftedAt,
		SubmittedAt:       m.SubmittedAt,
		ApprovedAt:        m.ApprovedAt,
		ProcessedAt:       m.ProcessedAt,
		RejectedAt:        m.RejectedAt,
		SubmittedBy:       m.SubmittedBy,
		ApprovedBy:        m.ApprovedBy,
		ProcessedBy:       m.ProcessedBy,
		RejectedBy:        m.RejectedBy,
		ReviewNotes:       m.ReviewNotes,
		ApprovalNotes:     m.ApprovalNotes,
		RejectionReason:   m.RejectionReason,
		ValidationsPassed: validations,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}, nil
}
