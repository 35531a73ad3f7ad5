package mapping

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:        d.EmployeeID,
		OrganizationID:    d.OrganizationID,
		DocumentType:      string(d.DocumentType),
		DocumentNumber:    d.DocumentNumber,
		FirstName:         d.FirstName,
		MiddleName:        d.MiddleName,
		LastName:          d.LastName,
		SecondLastName:    d.SecondLastName,
		Email:             d.Email,
		Position:          d.Position,
		ContractType:      string(d.ContractType),
		HireDate:          d.HireDate,
		TerminationDate:   d.TerminationDate,
		BaseSalary:        d.BaseSalary,
		BankName:          d.BankName,
		BankAccountType:   string(d.BankAccountType),
		BankAccountNumber: d.BankAccountNumber,
		PayrollEligible:   d.PayrollEligible,
		Active:            d.Active,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:        m.EmployeeID,
		OrganizationID:    m.OrganizationID,
		DocumentType:      domain.DocumentType(m.DocumentType),
		DocumentNumber:    m.DocumentNumber,
		FirstName:         m.FirstName,
		MiddleName:        m.MiddleName,
		LastName:          m.LastName,
		SecondLastName:    m.SecondLastName,
		Email:             m.Email,
		Position:          m.Position,
		ContractType:      domain.ContractType(m.ContractType),
		HireDate:          m.HireDate,
		TerminationDate:   m.TerminationDate,
		BaseSalary:        m.BaseSalary,
		BankName:          m.BankName,
		BankAccountType:   domain.BankAccountType(m.BankAccountType),
		BankAccountNumber: m.BankAccountNumber,
		PayrollEligible:   m.PayrollEligible,
		Active:            m.Active,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
