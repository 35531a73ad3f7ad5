package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
)

type autoConfigService struct {
	configRepo portsrepo.ConfigRepositoryFacade
}

// NewAutoConfigService creates the automation configuration service.
func NewAutoConfigService(configRepo portsrepo.ConfigRepositoryFacade) *autoConfigService {
	return &autoConfigService{configRepo: configRepo}
}

// GetConfig returns the stored configuration, or the statutory defaults when
// the organization has never saved one. The defaults are not persisted here.
func (s *autoConfigService) GetConfig(ctx context.Context, organizationID string) (*domain.AutomationConfig, error) {
	config, err := s.configRepo.FindConfig(ctx, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultAutomationConfig(organizationID)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to load automation config: %w", err)
	}
	return config, nil
}

// UpdateConfig patches the configuration; nil fields keep their value. The
// first write creates the row from the statutory defaults.
func (s *autoConfigService) UpdateConfig(ctx context.Context, organizationID string, req dto.UpdateAutomationConfigRequest, userID string) (*domain.AutomationConfig, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	config, err := s.configRepo.FindConfig(ctx, organizationID)
	creating := false
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load automation config for update: %w", err)
		}
		defaults := domain.DefaultAutomationConfig(organizationID)
		defaults.ConfigID = uuid.NewString()
		defaults.AuditFields = newAudit(userID, now)
		config = &defaults
		creating = true
	}

	applyConfigPatch(config, req)
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	config.LastUpdatedAt = now
	config.LastUpdatedBy = userID

	if creating {
		err = s.configRepo.SaveConfig(ctx, *config)
	} else {
		err = s.configRepo.UpdateConfig(ctx, *config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist automation config: %w", err)
	}

	logger.Info("Automation config updated",
		slog.String("organization_id", organizationID), slog.Bool("created", creating))
	return config, nil
}

func applyConfigPatch(config *domain.AutomationConfig, req dto.UpdateAutomationConfigRequest) {
	if req.MonthlyPayDay != nil {
		config.MonthlyPayDay = *req.MonthlyPayDay
	}
	if req.BiweeklyPayDay1 != nil {
		config.BiweeklyPayDay1 = *req.BiweeklyPayDay1
	}
	if req.BiweeklyPayDay2 != nil {
		config.BiweeklyPayDay2 = *req.BiweeklyPayDay2
	}
	if req.DraftLeadDays != nil {
		config.DraftLeadDays = *req.DraftLeadDays
	}
	if req.AutoGenerateDrafts != nil {
		config.AutoGenerateDrafts = *req.AutoGenerateDrafts
	}
	if req.NotifyDraftGenerated != nil {
		config.NotifyDraftGenerated = *req.NotifyDraftGenerated
	}
	if req.NotifyApproval != nil {
		config.NotifyApproval = *req.NotifyApproval
	}
	if req.NotifyProcessed != nil {
		config.NotifyProcessed = *req.NotifyProcessed
	}
	if req.ValidateMinimumWage != nil {
		config.ValidateMinimumWage = *req.ValidateMinimumWage
	}
	if req.CalcTransportSubsidy != nil {
		config.CalcTransportSubsidy = *req.CalcTransportSubsidy
	}
	if req.CalcSocialBenefits != nil {
		config.CalcSocialBenefits = *req.CalcSocialBenefits
	}
	if req.HealthPercentage != nil {
		config.HealthPercentage = *req.HealthPercentage
	}
	if req.PensionPercentage != nil {
		config.PensionPercentage = *req.PensionPercentage
	}
	if req.FSPBrackets != nil {
		config.FSPBrackets = req.FSPBrackets
	}
	if req.MinimumWage != nil {
		config.MinimumWage = *req.MinimumWage
	}
	if req.TransportSubsidy != nil {
		config.TransportSubsidy = *req.TransportSubsidy
	}
}

func validateConfig(config *domain.AutomationConfig) error {
	if !config.MinimumWage.IsPositive() {
		return fmt.Errorf("%w: minimum wage must be positive", apperrors.ErrValidation)
	}
	if config.TransportSubsidy.IsNegative() {
		return fmt.Errorf("%w: transport subsidy cannot be negative", apperrors.ErrValidation)
	}
	if config.HealthPercentage.IsNegative() || config.PensionPercentage.IsNegative() {
		return fmt.Errorf("%w: contribution percentages cannot be negative", apperrors.ErrValidation)
	}
	if config.BiweeklyPayDay1 >= config.BiweeklyPayDay2 {
		return fmt.Errorf("%w: first biweekly pay day must precede the second", apperrors.ErrValidation)
	}
	return nil
}
