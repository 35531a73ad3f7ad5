package repositories

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// ConceptReader defines read operations over the concept catalog.
type ConceptReader interface {
	// LoadCatalog retrieves the organization's full concept catalog (active
	// and inactive entries; the engine filters by the Active flag).
	LoadCatalog(ctx context.Context, organizationID string) (*domain.ConceptCatalog, error)
}

// ConceptWriter defines write operations over the concept catalog.
type ConceptWriter interface {
	// SaveAccrualConcept persists a new accrual concept. Returns
	// apperrors.ErrDuplicate when the code already exists.
	SaveAccrualConcept(ctx context.Context, concept domain.AccrualConcept) error

	// SaveDeductionConcept persists a new deduction concept. Returns
	// apperrors.ErrDuplicate when the code already exists.
	SaveDeductionConcept(ctx context.Context, concept domain.DeductionConcept) error
}

// ConceptRepositoryFacade combines the concept catalog interfaces.
type ConceptRepositoryFacade interface {
	ConceptReader
	ConceptWriter
}
