package mapping

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelEntry converts a domain PayrollEntry to a model PayrollEntry
// (line items are mapped separately).
func ToModelEntry(d domain.PayrollEntry) models.PayrollEntry {
	return models.PayrollEntry{
		EntryID:        d.EntryID,
		OrganizationID: d.OrganizationID,
		PeriodID:       d.PeriodID,
		EmployeeID:     d.EmployeeID,
		DaysWorked:     d.DaysWorked,
		TotalAccrued:   d.TotalAccrued,
		TotalDeducted:  d.TotalDeducted,
		NetPay:         d.NetPay,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model PayrollEntry to a domain PayrollEntry
func ToDomainEntry(m models.PayrollEntry) domain.PayrollEntry {
	return domain.PayrollEntry{
		EntryID:        m.EntryID,
		OrganizationID: m.OrganizationID,
		PeriodID:       m.PeriodID,
		EmployeeID:     m.EmployeeID,
		DaysWorked:     m.DaysWorked,
		TotalAccrued:   m.TotalAccrued,
		TotalDeducted:  m.TotalDeducted,
		NetPay:         m.NetPay,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccrual converts a model Accrual to a domain Accrual
func ToDomainAccrual(m models.Accrual) domain.Accrual {
	return domain.Accrual{
		AccrualID:            m.AccrualID,
		EntryID:              m.EntryID,
		ConceptID:            m.ConceptID,
		ConceptCode:          m.ConceptCode,
		Quantity:             m.Quantity,
		UnitValue:            m.UnitValue,
		Total:                m.Total,
		CountsSocialSecurity: m.CountsSocialSecurity,
		CountsBenefitsBase:   m.CountsBenefitsBase,
	}
}

// ToDomainDeduction converts a model Deduction to a domain Deduction
func ToDomainDeduction(m models.Deduction) domain.Deduction {
	var pct *decimal.Decimal
	if m.Percentage.Valid {
		v := m.Percentage.Decimal
		pct = &v
	}
	return domain.Deduction{
		DeductionID: m.DeductionID,
		EntryID:     m.EntryID,
		ConceptID:   m.ConceptID,
		ConceptCode: m.ConceptCode,
		Base:        m.Base,
		Percentage:  pct,
		Total:       m.Total,
	}
}
