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

type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
	benefitRepo  portsrepo.BenefitRepositoryFacade
}

// NewEmployeeService creates the employee master-data service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, benefitRepo portsrepo.BenefitRepositoryFacade) *employeeService {
	return &employeeService{employeeRepo: employeeRepo, benefitRepo: benefitRepo}
}

// CreateEmployee registers the employee and opens their labor contract.
func (s *employeeService) CreateEmployee(ctx context.Context, organizationID string, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	payrollEligible := true
	if req.PayrollEligible != nil {
		payrollEligible = *req.PayrollEligible
	}
	employee := domain.Employee{
		EmployeeID:        uuid.NewString(),
		OrganizationID:    organizationID,
		DocumentType:      req.DocumentType,
		DocumentNumber:    req.DocumentNumber,
		FirstName:         req.FirstName,
		MiddleName:        req.MiddleName,
		LastName:          req.LastName,
		SecondLastName:    req.SecondLastName,
		Email:             req.Email,
		Position:          req.Position,
		ContractType:      req.ContractType,
		HireDate:          req.HireDate,
		BaseSalary:        req.BaseSalary,
		BankName:          req.BankName,
		BankAccountType:   req.BankAccountType,
		BankAccountNumber: req.BankAccountNumber,
		PayrollEligible:   payrollEligible,
		Active:            true,
		AuditFields:       newAudit(creatorUserID, now),
	}
	if !employee.BaseSalary.IsPositive() {
		return nil, fmt.Errorf("%w: base salary must be positive", apperrors.ErrValidation)
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: document %s already registered", apperrors.ErrDuplicate, req.DocumentNumber)
		}
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	contract := domain.LaborContract{
		ContractID:     uuid.NewString(),
		OrganizationID: organizationID,
		EmployeeID:     employee.EmployeeID,
		Type:           req.ContractType,
		StartDate:      req.HireDate,
		Status:         domain.ContractActive,
		AuditFields:    newAudit(creatorUserID, now),
	}
	if err := s.benefitRepo.SaveContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to save labor contract: %w", err)
	}

	logger.Info("Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("document", employee.DocumentNumber))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, organizationID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// UpdateEmployee applies the provided fields; nil pointers leave the stored
// value untouched.
func (s *employeeService) UpdateEmployee(ctx context.Context, organizationID, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, organizationID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee for update: %w", err)
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		employee.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.SecondLastName != nil {
		employee.SecondLastName = *req.SecondLastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.BaseSalary != nil {
		if !req.BaseSalary.IsPositive() {
			return nil, fmt.Errorf("%w: base salary must be positive", apperrors.ErrValidation)
		}
		employee.BaseSalary = *req.BaseSalary
	}
	if req.BankName != nil {
		employee.BankName = *req.BankName
	}
	if req.BankAccountType != nil {
		employee.BankAccountType = *req.BankAccountType
	}
	if req.BankAccountNumber != nil {
		employee.BankAccountNumber = *req.BankAccountNumber
	}
	if req.PayrollEligible != nil {
		employee.PayrollEligible = *req.PayrollEligible
	}
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, organizationID string, limit int, nextToken string) ([]domain.Employee, string, error) {
	var tokenPtr *string
	if nextToken != "" {
		tokenPtr = &nextToken
	}
	employees, next, err := s.employeeRepo.ListEmployees(ctx, organizationID, false, limit, tokenPtr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}
	out := ""
	if next != nil {
		out = *next
	}
	return employees, out, nil
}

// DeactivateEmployee marks the employee inactive and ends the active
// contract. Already-terminated contracts are tolerated.
func (s *employeeService) DeactivateEmployee(ctx context.Context, organizationID, employeeID string, terminationDate *time.Time, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.employeeRepo.DeactivateEmployee(ctx, organizationID, employeeID, terminationDate, userID); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	contract, err := s.benefitRepo.FindActiveContract(ctx, organizationID, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("No active contract to terminate", slog.String("employee_id", employeeID))
			return nil
		}
		return fmt.Errorf("failed to find contract for termination: %w", err)
	}
	if err := s.benefitRepo.TerminateContract(ctx, organizationID, contract.ContractID, userID); err != nil {
		return fmt.Errorf("failed to terminate contract: %w", err)
	}

	logger.Info("Employee deactivated",
		slog.String("employee_id", employeeID), slog.String("contract_id", contract.ContractID))
	return nil
}
