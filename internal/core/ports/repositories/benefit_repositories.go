package repositories

import (
	"context"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// ContractReader defines read operations for labor contracts.
type ContractReader interface {
	// FindActiveContract retrieves the employee's ACTIVE contract, or
	// apperrors.ErrNotFound when none exists.
	FindActiveContract(ctx context.Context, organizationID, employeeID string) (*domain.LaborContract, error)
}

// ContractWriter defines write operations for labor contracts.
type ContractWriter interface {
	// SaveContract persists a new labor contract.
	SaveContract(ctx context.Context, contract domain.LaborContract) error

	// TerminateContract marks a contract TERMINATED with the given end date.
	TerminateContract(ctx context.Context, organizationID, contractID, updatedBy string) error
}

// BenefitReader defines read operations for social-benefit records.
type BenefitReader interface {
	// ListBenefits retrieves an employee's benefit records, newest first.
	ListBenefits(ctx context.Context, organizationID, employeeID string) ([]domain.SocialBenefit, error)
}

// BenefitWriter defines write operations for social-benefit records.
type BenefitWriter interface {
	// SaveBenefit persists one benefit accrual record.
	SaveBenefit(ctx context.Context, benefit domain.SocialBenefit) error
}

// ProvisionWriter defines write operations for monthly provisions.
type ProvisionWriter interface {
	// UpsertProvision inserts or replaces the provision for the
	// (employee, period) pair — recomputation never duplicates.
	UpsertProvision(ctx context.Context, provision domain.MonthlyProvision) error
}

// ProvisionReader defines read operations for monthly provisions.
type ProvisionReader interface {
	// FindProvision retrieves the provision for one employee in one period.
	FindProvision(ctx context.Context, organizationID, periodID, employeeID string) (*domain.MonthlyProvision, error)
}

// BenefitRepositoryFacade combines all social-benefit repository interfaces.
type BenefitRepositoryFacade interface {
	ContractReader
	ContractWriter
	BenefitReader
	BenefitWriter
	ProvisionReader
	ProvisionWriter
}
