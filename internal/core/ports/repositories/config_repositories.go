package repositories

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// ConfigReader defines read operations for automation configuration.
type ConfigReader interface {
	// FindConfig retrieves the organization's automation configuration, or
	// apperrors.ErrNotFound when none has been created yet.
	FindConfig(ctx context.Context, organizationID string) (*domain.AutomationConfig, error)
}

// ConfigWriter defines write operations for automation configuration.
type ConfigWriter interface {
	// SaveConfig persists a new configuration record (one per organization).
	SaveConfig(ctx context.Context, config domain.AutomationConfig) error

	// UpdateConfig replaces the mutable configuration fields.
	UpdateConfig(ctx context.Context, config domain.AutomationConfig) error
}

// ConfigRepositoryFacade combines the configuration repository interfaces.
type ConfigRepositoryFacade interface {
	ConfigReader
	ConfigWriter
}
