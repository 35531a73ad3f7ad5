package repositories

import (
	"context"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves one employee by its identifier.
	FindEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error)

	// FindEmployeeByDocument retrieves one employee by document number within
	// the organization.
	FindEmployeeByDocument(ctx context.Context, organizationID, documentNumber string) (*domain.Employee, error)

	// ListEmployees retrieves a paginated list of employees using token-based
	// pagination. activeOnly restricts to active, payroll-eligible employees.
	ListEmployees(ctx context.Context, organizationID string, activeOnly bool, limit int, nextToken *string) ([]domain.Employee, *string, error)

	// ListPayrollEligible retrieves every active employee flagged for payroll
	// inclusion, unpaginated (the automation service assigns them all).
	ListPayrollEligible(ctx context.Context, organizationID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. Returns apperrors.ErrDuplicate
	// when the document number already exists in the organization.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates mutable employee fields.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeactivateEmployee marks an employee inactive and records the
	// termination date. Employees are never deleted.
	DeactivateEmployee(ctx context.Context, organizationID, employeeID string, terminationDate *time.Time, updatedBy string) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
