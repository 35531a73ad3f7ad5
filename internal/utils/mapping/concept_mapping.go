package mapping

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAccrualConcept converts a domain AccrualConcept to a model AccrualConcept
func ToModelAccrualConcept(d domain.AccrualConcept) models.AccrualConcept {
	return models.AccrualConcept{
		ConceptID:            d.ConceptID,
		OrganizationID:       d.OrganizationID,
		Code:                 d.Code,
		Name:                 d.Name,
		Kind:                 string(d.Kind),
		Description:          d.Description,
		Active:               d.Active,
		CountsSocialSecurity: d.CountsSocialSecurity,
		CountsBenefitsBase:   d.CountsBenefitsBase,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccrualConcept converts a model AccrualConcept to a domain AccrualConcept
func ToDomainAccrualConcept(m models.AccrualConcept) domain.AccrualConcept {
	return domain.AccrualConcept{
		ConceptID:            m.ConceptID,
		OrganizationID:       m.OrganizationID,
		Code:                 m.Code,
		Name:                 m.Name,
		Kind:                 domain.AccrualKind(m.Kind),
		Description:          m.Description,
		Active:               m.Active,
		CountsSocialSecurity: m.CountsSocialSecurity,
		CountsBenefitsBase:   m.CountsBenefitsBase,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDeductionConcept converts a domain DeductionConcept to a model DeductionConcept
func ToModelDeductionConcept(d domain.DeductionConcept) models.DeductionConcept {
	var basePct decimal.NullDecimal
	if d.BasePercentage != nil {
		basePct = decimal.NewNullDecimal(*d.BasePercentage)
	}
	return models.DeductionConcept{
		ConceptID:      d.ConceptID,
		OrganizationID: d.OrganizationID,
		Code:           d.Code,
		Name:           d.Name,
		Kind:           string(d.Kind),
		Description:    d.Description,
		Active:         d.Active,
		Mandatory:      d.Mandatory,
		BasePercentage: basePct,
		Base:           string(d.Base),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeductionConcept converts a model DeductionConcept to a domain DeductionConcept
func ToDomainDeductionConcept(m models.DeductionConcept) domain.DeductionConcept {
	var basePct *decimal.Decimal
	if m.BasePercentage.Valid {
		v := m.BasePercentage.Decimal
		basePct = &v
	}
	return domain.DeductionConcept{
		ConceptID:      m.ConceptID,
		OrganizationID: m.OrganizationID,
		Code:           m.Code,
		Name:           m.Name,
		Kind:           domain.DeductionKind(m.Kind),
		Description:    m.Description,
		Active:         m.Active,
		Mandatory:      m.Mandatory,
		BasePercentage: basePct,
		Base:           domain.CalculationBase(m.Base),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
