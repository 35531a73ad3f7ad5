package services

import (
	"context"
	"time"
)

// Payroll event types published to the notifications topic.
const (
	EventDraftGenerated = "DRAFT_GENERATED"
	EventReviewPending  = "REVIEW_PENDING"
	EventApproved       = "APPROVED"
	EventRejected       = "REJECTED"
	EventProcessed      = "PROCESSED"
)

// PayrollEvent is the message emitted on workflow and automation milestones.
type PayrollEvent struct {
	Type           string    `json:"type"`
	OrganizationID string    `json:"organizationId"`
	PeriodID       string    `json:"periodId"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RequiresAction bool      `json:"requiresAction"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NotificationPublisher emits payroll events to interested consumers.
// Publishing is best-effort from the caller's point of view: workflow
// transitions never roll back because a notification failed.
type NotificationPublisher interface {
	Publish(ctx context.Context, event PayrollEvent) error
	Close() error
}
