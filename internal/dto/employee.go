package dto

import (
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register a new employee.
type CreateEmployeeRequest struct {
	DocumentType      domain.DocumentType    `json:"documentType" binding:"required,oneof=CC CE PA TI"`
	DocumentNumber    string                 `json:"documentNumber" binding:"required"`
	FirstName         string                 `json:"firstName" binding:"required"`
	MiddleName        string                 `json:"middleName"`
	LastName          string                 `json:"lastName" binding:"required"`
	SecondLastName    string                 `json:"secondLastName"`
	Email             string                 `json:"email" binding:"omitempty,email"`
	Position          string                 `json:"position"`
	ContractType      domain.ContractType    `json:"contractType" binding:"required,oneof=INDEFINITE FIXED_TERM PER_PROJECT APPRENTICESHIP FOR_SERVICES"`
	HireDate          time.Time              `json:"hireDate" binding:"required"`
	BaseSalary        decimal.Decimal        `json:"baseSalary" binding:"required"`
	BankName          string                 `json:"bankName"`
	BankAccountType   domain.BankAccountType `json:"bankAccountType" binding:"omitempty,oneof=SAVINGS CHECKING"`
	BankAccountNumber string                 `json:"bankAccountNumber"`
	PayrollEligible   *bool                  `json:"payrollEligible"` // defaults to true when omitted
}

// UpdateEmployeeRequest defines the mutable employee fields. Pointers
// distinguish zero-value updates from fields not provided.
type UpdateEmployeeRequest struct {
	FirstName         *string                 `json:"firstName"`
	MiddleName        *string                 `json:"middleName"`
	LastName          *string                 `json:"lastName"`
	SecondLastName    *string                 `json:"secondLastName"`
	Email             *string                 `json:"email" binding:"omitempty,email"`
	Position          *string                 `json:"position"`
	BaseSalary        *decimal.Decimal        `json:"baseSalary"`
	BankName          *string                 `json:"bankName"`
	BankAccountType   *domain.BankAccountType `json:"bankAccountType" binding:"omitempty,oneof=SAVINGS CHECKING"`
	BankAccountNumber *string                 `json:"bankAccountNumber"`
	PayrollEligible   *bool                   `json:"payrollEligible"`
}

// DeactivateEmployeeRequest carries the optional termination date recorded on
// deactivation.
type DeactivateEmployeeRequest struct {
	TerminationDate *time.Time `json:"terminationDate"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID      string                 `json:"employeeID"`
	OrganizationID  string                 `json:"organizationID"`
	DocumentType    domain.DocumentType    `json:"documentType"`
	DocumentNumber  string                 `json:"documentNumber"`
	FullName        string                 `json:"fullName"`
	Email           string                 `json:"email,omitempty"`
	Position        string                 `json:"position,omitempty"`
	ContractType    domain.ContractType    `json:"contractType"`
	HireDate        time.Time              `json:"hireDate"`
	TerminationDate *time.Time             `json:"terminationDate,omitempty"`
	BaseSalary      decimal.Decimal        `json:"baseSalary"`
	BankName        string                 `json:"bankName,omitempty"`
	BankAccountType domain.BankAccountType `json:"bankAccountType,omitempty"`
	PayrollEligible bool                   `json:"payrollEligible"`
	Active          bool                   `json:"active"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ListEmployeesResponse is a token-paginated page of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	NextToken string             `json:"nextToken,omitempty"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:      e.EmployeeID,
		OrganizationID:  e.OrganizationID,
		DocumentType:    e.DocumentType,
		DocumentNumber:  e.DocumentNumber,
		FullName:        e.FullName(),
		Email:           e.Email,
		Position:        e.Position,
		ContractType:    e.ContractType,
		HireDate:        e.HireDate,
		TerminationDate: e.TerminationDate,
		BaseSalary:      e.BaseSalary,
		BankName:        e.BankName,
		BankAccountType: e.BankAccountType,
		PayrollEligible: e.PayrollEligible,
		Active:          e.Active,
		CreatedAt:       e.CreatedAt,
		LastUpdatedAt:   e.LastUpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain.Employee to DTOs.
func ToEmployeeResponses(employees []domain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}
