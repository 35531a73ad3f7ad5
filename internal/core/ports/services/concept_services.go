package services

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
)

// ConceptSvcFacade defines payroll concept catalog operations.
type ConceptSvcFacade interface {
	// EnsureDefaults seeds the statutory default concepts for an
	// organization that has none yet and returns the resulting catalog.
	// Existing concepts are never overwritten.
	EnsureDefaults(ctx context.Context, organizationID, userID string) (*domain.ConceptCatalog, error)

	// GetCatalog retrieves the organization's active concept catalog.
	GetCatalog(ctx context.Context, organizationID string) (*domain.ConceptCatalog, error)

	// CreateAccrualConcept registers a custom accrual concept.
	CreateAccrualConcept(ctx context.Context, organizationID string, req dto.CreateAccrualConceptRequest, userID string) (*domain.AccrualConcept, error)

	// CreateDeductionConcept registers a custom deduction concept.
	CreateDeductionConcept(ctx context.Context, organizationID string, req dto.CreateDeductionConceptRequest, userID string) (*domain.DeductionConcept, error)
}
