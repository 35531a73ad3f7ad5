package pgsql

import (
	"context"
	"fmt"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/models"
	"github.com/NominaCol/payroll_automation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConceptRepository struct {
	BaseRepository
}

// newPgxConceptRepository creates a new repository for the concept catalog.
func newPgxConceptRepository(pool *pgxpool.Pool) portsrepo.ConceptRepositoryFacade {
	return &PgxConceptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ConceptRepositoryFacade = (*PgxConceptRepository)(nil)

// LoadCatalog retrieves all accrual and deduction concepts of the organization.
func (r *PgxConceptRepository) LoadCatalog(ctx context.Context, organizationID string) (*domain.ConceptCatalog, error) {
	accrualQuery := `
		SELECT concept_id, organization_id, code, name, kind, description, active,
			counts_social_security, counts_benefits_base,
			created_at, created_by, last_updated_at, last_updated_by
		FROM accrual_concepts
		WHERE organization_id = $1
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, accrualQuery, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accrual concepts: %w", err)
	}
	modelAccruals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AccrualConcept, error) {
		var m models.AccrualConcept
		err := row.Scan(
			&m.ConceptID, &m.OrganizationID, &m.Code, &m.Name, &m.Kind, &m.Description, &m.Active,
			&m.CountsSocialSecurity, &m.CountsBenefitsBase,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accrual concepts: %w", err)
	}

	deductionQuery := `
		SELECT concept_id, organization_id, code, name, kind, description, active,
			mandatory, base_percentage, base,
			created_at, created_by, last_updated_at, last_updated_by
		FROM deduction_concepts
		WHERE organization_id = $1
		ORDER BY code;
	`
	rows, err = r.Pool.Query(ctx, deductionQuery, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deduction concepts: %w", err)
	}
	modelDeductions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DeductionConcept, error) {
		var m models.DeductionConcept
		err := row.Scan(
			&m.ConceptID, &m.OrganizationID, &m.Code, &m.Name, &m.Kind, &m.Description, &m.Active,
			&m.Mandatory, &m.BasePercentage, &m.Base,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan deduction concepts: %w", err)
	}

	catalog := &domain.ConceptCatalog{
		Accruals:   make([]domain.AccrualConcept, len(modelAccruals)),
		Deductions: make([]domain.DeductionConcept, len(modelDeductions)),
	}
	for i, m := range modelAccruals {
		catalog.Accruals[i] = mapping.ToDomainAccrualConcept(m)
	}
	for i, m := range modelDeductions {
		catalog.Deductions[i] = mapping.ToDomainDeductionConcept(m)
	}
	return catalog, nil
}

// SaveAccrualConcept inserts a new accrual concept.
func (r *PgxConceptRepository) SaveAccrualConcept(ctx context.Context, concept domain.AccrualConcept) error {
	m := mapping.ToModelAccrualConcept(concept)

	query := `
		INSERT INTO accrual_concepts (concept_id, organization_id, code, name, kind, description, active,
			counts_social_security, counts_benefits_base,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConceptID, m.OrganizationID, m.Code, m.Name, m.Kind, m.Description, m.Active,
		m.CountsSocialSecurity, m.CountsBenefitsBase,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: accrual concept code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save accrual concept %s: %w", m.Code, err)
	}
	return nil
}

// SaveDeductionConcept inserts a new deduction concept.
func (r *PgxConceptRepository) SaveDeductionConcept(ctx context.Context, concept domain.DeductionConcept) error {
	m := mapping.ToModelDeductionConcept(concept)

	query := `
		INSERT INTO deduction_concepts (concept_id, organization_id, code, name, kind, description, active,
			mandatory, base_percentage, base,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConceptID, m.OrganizationID, m.Code, m.Name, m.Kind, m.Description, m.Active,
		m.Mandatory, m.BasePercentage, m.Base,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: deduction concept code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save deduction concept %s: %w", m.Code, err)
	}
	return nil
}
