package services

import (
	"context"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
)

// EmployeeSvcFacade defines employee master-data operations.
type EmployeeSvcFacade interface {
	// CreateEmployee registers a new employee and their initial labor
	// contract.
	CreateEmployee(ctx context.Context, organizationID string, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)

	// GetEmployeeByID retrieves a single employee.
	GetEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error)

	// UpdateEmployee applies the mutable employee fields.
	UpdateEmployee(ctx context.Context, organizationID, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)

	// ListEmployees returns a page of employees using token pagination.
	ListEmployees(ctx context.Context, organizationID string, limit int, nextToken string) ([]domain.Employee, string, error)

	// DeactivateEmployee marks an employee inactive, recording the
	// termination date and ending the active contract.
	DeactivateEmployee(ctx context.Context, organizationID, employeeID string, terminationDate *time.Time, userID string) error
}
