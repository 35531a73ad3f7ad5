package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/models"
	"github.com/NominaCol/payroll_automation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConfigRepository struct {
	BaseRepository
}

// newPgxConfigRepository creates a new repository for automation configuration.
func newPgxConfigRepository(pool *pgxpool.Pool) portsrepo.ConfigRepositoryFacade {
	return &PgxConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ConfigRepositoryFacade = (*PgxConfigRepository)(nil)

const configColumns = `config_id, organization_id,
	monthly_pay_day, biweekly_pay_day_1, biweekly_pay_day_2, draft_lead_days, auto_generate_drafts,
	notify_draft_generated, notify_approval, notify_processed,
	validate_minimum_wage, calc_transport_subsidy, calc_social_benefits,
	health_percentage, pension_percentage, fsp_brackets,
	minimum_wage, transport_subsidy,
	created_at, created_by, last_updated_at, last_updated_by`

// FindConfig retrieves the organization's automation configuration.
func (r *PgxConfigRepository) FindConfig(ctx context.Context, organizationID string) (*domain.AutomationConfig, error) {
	query := `SELECT ` + configColumns + ` FROM automation_configs WHERE organization_id = $1;`

	var m models.AutomationConfig
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&m.ConfigID, &m.OrganizationID,
		&m.MonthlyPayDay, &m.BiweeklyPayDay1, &m.BiweeklyPayDay2, &m.DraftLeadDays, &m.AutoGenerateDrafts,
		&m.NotifyDraftGenerated, &m.NotifyApproval, &m.NotifyProcessed,
		&m.ValidateMinimumWage, &m.CalcTransportSubsidy, &m.CalcSocialBenefits,
		&m.HealthPercentage, &m.PensionPercentage, &m.FSPBrackets,
		&m.MinimumWage, &m.TransportSubsidy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find automation config for organization %s: %w", organizationID, err)
	}

	d, err := mapping.ToDomainAutomationConfig(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveConfig inserts a new configuration record, one per organization.
func (r *PgxConfigRepository) SaveConfig(ctx context.Context, config domain.AutomationConfig) error {
	m, err := mapping.ToModelAutomationConfig(config)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO automation_configs (` + configColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ConfigID, m.OrganizationID,
		m.MonthlyPayDay, m.BiweeklyPayDay1, m.BiweeklyPayDay2, m.DraftLeadDays, m.AutoGenerateDrafts,
		m.NotifyDraftGenerated, m.NotifyApproval, m.NotifyProcessed,
		m.ValidateMinimumWage, m.CalcTransportSubsidy, m.CalcSocialBenefits,
		m.HealthPercentage, m.PensionPercentage, m.FSPBrackets,
		m.MinimumWage, m.TransportSubsidy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: organization %s already has a configuration", apperrors.ErrDuplicate, m.OrganizationID)
		}
		return fmt.Errorf("failed to save automation config: %w", err)
	}
	return nil
}

// UpdateConfig replaces the mutable configuration columns.
func (r *PgxConfigRepository) UpdateConfig(ctx context.Context, config domain.AutomationConfig) error {
	m, err := mapping.ToModelAutomationConfig(config)
	if err != nil {
		return err
	}

	query := `
		UPDATE automation_configs SET
			monthly_pay_day = $2, biweekly_pay_day_1 = $3, biweekly_pay_day_2 = $4,
			draft_lead_days = $5, auto_generate_drafts = $6,
			notify_draft_generated = $7, notify_approval = $8, notify_processed = $9,
			validate_minimum_wage = $10, calc_transport_subsidy = $11, calc_social_benefits = $12,
			health_percentage = $13, pension_percentage = $14, fsp_brackets = $15,
			minimum_wage = $16, transport_subsidy = $17,
			last_updated_at = $18, last_updated_by = $19
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID,
		m.MonthlyPayDay, m.BiweeklyPayDay1, m.BiweeklyPayDay2,
		m.DraftLeadDays, m.AutoGenerateDrafts,
		m.NotifyDraftGenerated, m.NotifyApproval, m.NotifyProcessed,
		m.ValidateMinimumWage, m.CalcTransportSubsidy, m.CalcSocialBenefits,
		m.HealthPercentage, m.PensionPercentage, m.FSPBrackets,
		m.MinimumWage, m.TransportSubsidy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update automation config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
