package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee represents a row in the employees table. Nullable columns use
// pointers; the document number is unique per organization.
type Employee struct {
	EmployeeID        string          `db:"employee_id"`
	OrganizationID    string          `db:"organization_id"`
	DocumentType      string          `db:"document_type"`
	DocumentNumber    string          `db:"document_number"`
	FirstName         string          `db:"first_name"`
	MiddleName        string          `db:"middle_name"`
	LastName          string          `db:"last_name"`
	SecondLastName    string          `db:"second_last_name"`
	Email             string          `db:"email"`
	Position          string          `db:"position"`
	ContractType      string          `db:"contract_type"`
	HireDate          time.Time       `db:"hire_date"`
	TerminationDate   *time.Time      `db:"termination_date"`
	BaseSalary        decimal.Decimal `db:"base_salary"`
	BankName          string          `db:"bank_name"`
	BankAccountType   string          `db:"bank_account_type"`
	BankAccountNumber string          `db:"bank_account_number"`
	PayrollEligible   bool            `db:"payroll_eligible"`
	Active            bool            `db:"active"`
	AuditFields
}
