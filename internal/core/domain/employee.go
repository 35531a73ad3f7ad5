package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the legal document presented by an employee.
type DocumentType string

const (
	DocCitizenID  DocumentType = "CC" // Cédula de ciudadanía
	DocForeignID  DocumentType = "CE" // Cédula de extranjería
	DocPassport   DocumentType = "PA"
	DocIdentityCd DocumentType = "TI" // Tarjeta de identidad
)

// ContractType classifies the labor contract an employee is hired under.
type ContractType string

const (
	ContractIndefinite  ContractType = "INDEFINITE"
	ContractFixedTerm   ContractType = "FIXED_TERM"
	ContractPerProject  ContractType = "PER_PROJECT"
	ContractApprentice  ContractType = "APPRENTICESHIP"
	ContractForServices ContractType = "FOR_SERVICES"
)

// BankAccountType is the kind of bank account payroll is deposited into.
type BankAccountType string

const (
	AccountSavings  BankAccountType = "SAVINGS"
	AccountChecking BankAccountType = "CHECKING"
)

// Employee is a person on an organization's payroll. The document number is
// immutable and unique within the organization; employees are deactivated on
// termination, never deleted.
type Employee struct {
	EmployeeID        string          `json:"employeeID"`
	OrganizationID    string          `json:"organizationID"`
	DocumentType      DocumentType    `json:"documentType"`
	DocumentNumber    string          `json:"documentNumber"`
	FirstName         string          `json:"firstName"`
	MiddleName        string          `json:"middleName,omitempty"`
	LastName          string          `json:"lastName"`
	SecondLastName    string          `json:"secondLastName,omitempty"`
	Email             string          `json:"email"`
	Position          string          `json:"position"`
	ContractType      ContractType    `json:"contractType"`
	HireDate          time.Time       `json:"hireDate"`
	TerminationDate   *time.Time      `json:"terminationDate,omitempty"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	BankName          string          `json:"bankName,omitempty"`
	BankAccountType   BankAccountType `json:"bankAccountType,omitempty"`
	BankAccountNumber string          `json:"bankAccountNumber,omitempty"`
	PayrollEligible   bool            `json:"payrollEligible"`
	Active            bool            `json:"active"`
	AuditFields
}

// FullName joins the employee's name parts, skipping empty optionals.
func (e Employee) FullName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName, e.SecondLastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
