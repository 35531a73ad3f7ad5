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

type PgxBenefitRepository struct {
	BaseRepository
}

// newPgxBenefitRepository creates a new repository for contracts, benefit
// records and monthly provisions.
func newPgxBenefitRepository(pool *pgxpool.Pool) portsrepo.BenefitRepositoryFacade {
	return &PgxBenefitRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BenefitRepositoryFacade = (*PgxBenefitRepository)(nil)

// SaveContract inserts a new labor contract.
func (r *PgxBenefitRepository) SaveContract(ctx context.Context, contract domain.LaborContract) error {
	m := mapping.ToModelContract(contract)

	query := `
		INSERT INTO labor_contracts (contract_id, organization_id, employee_id, contract_type,
			start_date, end_date, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractID, m.OrganizationID, m.EmployeeID, m.ContractType,
		m.StartDate, m.EndDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee %s already has an active contract", apperrors.ErrDuplicate, m.EmployeeID)
		}
		return fmt.Errorf("failed to save contract for employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// FindActiveContract retrieves the employee's ACTIVE contract.
func (r *PgxBenefitRepository) FindActiveContract(ctx context.Context, organizationID, employeeID string) (*domain.LaborContract, error) {
	query := `
		SELECT contract_id, organization_id, employee_id, contract_type,
			start_date, end_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM labor_contracts
		WHERE organization_id = $1 AND employee_id = $2 AND status = $3;
	`
	var m models.LaborContract
	err := r.Pool.QueryRow(ctx, query, organizationID, employeeID, string(domain.ContractActive)).Scan(
		&m.ContractID, &m.OrganizationID, &m.EmployeeID, &m.ContractType,
		&m.StartDate, &m.EndDate, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active contract for employee %s: %w", employeeID, err)
	}
	d := mapping.ToDomainContract(m)
	return &d, nil
}

// TerminateContract marks a contract TERMINATED with today's end date.
func (r *PgxBenefitRepository) TerminateContract(ctx context.Context, organizationID, contractID, updatedBy string) error {
	now := time.Now().UTC()
	query := `
		UPDATE labor_contracts SET
			status = $3, end_date = $4, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND contract_id = $2 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		organizationID, contractID, string(domain.ContractTerminated), now, updatedBy, string(domain.ContractActive),
	)
	if err != nil {
		return fmt.Errorf("failed to terminate contract %s: %w", contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveBenefit inserts one benefit accrual record.
func (r *PgxBenefitRepository) SaveBenefit(ctx context.Context, benefit domain.SocialBenefit) error {
	m := mapping.ToModelBenefit(benefit)

	query := `
		INSERT INTO social_benefits (benefit_id, organization_id, employee_id, kind,
			start_date, end_date, accrued_value, paid_value,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BenefitID, m.OrganizationID, m.EmployeeID, m.Kind,
		m.StartDate, m.EndDate, m.AccruedValue, m.PaidValue,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s benefit for employee %s: %w", m.Kind, m.EmployeeID, err)
	}
	return nil
}

// ListBenefits retrieves an employee's benefit records, newest first.
func (r *PgxBenefitRepository) ListBenefits(ctx context.Context, organizationID, employeeID string) ([]domain.SocialBenefit, error) {
	query := `
		SELECT benefit_id, organization_id, employee_id, kind,
			start_date, end_date, accrued_value, paid_value,
			created_at, created_by, last_updated_at, last_updated_by
		FROM social_benefits
		WHERE organization_id = $1 AND employee_id = $2
		ORDER BY end_date DESC, kind;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query benefits for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelBenefits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SocialBenefit, error) {
		var m models.SocialBenefit
		err := row.Scan(
			&m.BenefitID, &m.OrganizationID, &m.EmployeeID, &m.Kind,
			&m.StartDate, &m.EndDate, &m.AccruedValue, &m.PaidValue,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan benefits for employee %s: %w", employeeID, err)
	}
	return mapping.ToDomainBenefitSlice(modelBenefits), nil
}

// UpsertProvision inserts or replaces the provision for the (period,
// employee) pair so recomputation never duplicates rows.
func (r *PgxBenefitRepository) UpsertProvision(ctx context.Context, provision domain.MonthlyProvision) error {
	m := mapping.ToModelProvision(provision)

	query := `
		INSERT INTO monthly_provisions (provision_id, organization_id, employee_id, period_id,
			base_salary, severance, severance_interest, service_bonus, vacation, total,
			auto_calculated, calculated_at,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (organization_id, period_id, employee_id) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			severance = EXCLUDED.severance,
			severance_interest = EXCLUDED.severance_interest,
			service_bonus = EXCLUDED.service_bonus,
			vacation = EXCLUDED.vacation,
			total = EXCLUDED.total,
			auto_calculated = EXCLUDED.auto_calculated,
			calculated_at = EXCLUDED.calculated_at,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProvisionID, m.OrganizationID, m.EmployeeID, m.PeriodID,
		m.BaseSalary, m.Severance, m.SeveranceInterest, m.ServiceBonus, m.Vacation, m.Total,
		m.AutoCalculated, m.CalculatedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert provision for employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// FindProvision retrieves the provision for one employee in one period.
func (r *PgxBenefitRepository) FindProvision(ctx context.Context, organizationID, periodID, employeeID string) (*domain.MonthlyProvision, error) {
	query := `
		SELECT provision_id, organization_id, employee_id, period_id,
			base_salary, severance, severance_interest, service_bonus, vacation, total,
			auto_calculated, calculated_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM monthly_provisions
		WHERE organization_id = $1 AND period_id = $2 AND employee_id = $3;
	`
	var m models.MonthlyProvision
	err := r.Pool.QueryRow(ctx, query, organizationID, periodID, employeeID).Scan(
		&m.ProvisionID, &m.OrganizationID, &m.EmployeeID, &m.PeriodID,
		&m.BaseSalary, &m.Severance, &m.SeveranceInterest, &m.ServiceBonus, &m.Vacation, &m.Total,
		&m.AutoCalculated, &m.CalculatedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provision for employee %s in period %s: %w", employeeID, periodID, err)
	}
	d := mapping.ToDomainProvision(m)
	return &d, nil
}
