package services

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
)

// AutoConfigSvcFacade manages the per-organization automation configuration.
type AutoConfigSvcFacade interface {
	// GetConfig returns the stored configuration, or the statutory defaults
	// when none has been persisted yet.
	GetConfig(ctx context.Context, organizationID string) (*domain.AutomationConfig, error)

	// UpdateConfig patches the configuration, creating it from defaults on
	// first write.
	UpdateConfig(ctx context.Context, organizationID string, req dto.UpdateAutomationConfigRequest, userID string) (*domain.AutomationConfig, error)
}
