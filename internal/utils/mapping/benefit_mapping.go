package mapping

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
)

// ToModelContract converts a domain LaborContract to a model LaborContract
func ToModelContract(d domain.LaborContract) models.LaborContract {
	return models.LaborContract{
		ContractID:     d.ContractID,
		OrganizationID: d.OrganizationID,
		EmployeeID:     d.EmployeeID,
		ContractType:   string(d.Type),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model LaborContract to a domain LaborContract
func ToDomainContract(m models.LaborContract) domain.LaborContract {
	return domain.LaborContract{
		ContractID:     m.ContractID,
		OrganizationID: m.OrganizationID,
		EmployeeID:     m.EmployeeID,
		Type:           domain.ContractType(m.ContractType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         domain.ContractStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBenefit converts a domain SocialBenefit to a model SocialBenefit
func ToModelBenefit(d domain.SocialBenefit) models.SocialBenefit {
	return models.SocialBenefit{
		BenefitID:      d.BenefitID,
		OrganizationID: d.OrganizationID,
		EmployeeID:     d.EmployeeID,
		Kind:           string(d.Kind),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		AccruedValue:   d.AccruedValue,
		PaidValue:      d.PaidValue,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBenefit converts a model SocialBenefit to a domain SocialBenefit
func ToDomainBenefit(m models.SocialBenefit) domain.SocialBenefit {
	return domain.SocialBenefit{
		BenefitID:      m.BenefitID,
		OrganizationID: m.OrganizationID,
		EmployeeID:     m.EmployeeID,
		Kind:           domain.BenefitKind(m.Kind),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		AccruedValue:   m.AccruedValue,
		PaidValue:      m.PaidValue,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBenefitSlice converts model benefits to domain benefits
func ToDomainBenefitSlice(ms []models.SocialBenefit) []domain.SocialBenefit {
	ds := make([]domain.SocialBenefit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBenefit(m)
	}
	return ds
}

// ToModelProvision converts a domain MonthlyProvision to a model MonthlyProvision
func ToModelProvision(d domain.MonthlyProvision) models.MonthlyProvision {
	return models.MonthlyProvision{
		ProvisionID:       d.ProvisionID,
		OrganizationID:    d.OrganizationID,
		EmployeeID:        d.EmployeeID,
		PeriodID:          d.PeriodID,
		BaseSalary:        d.BaseSalary,
		Severance:         d.Severance,
		SeveranceInterest: d.SeveranceInterest,
		ServiceBonus:      d.ServiceBonus,
		Vacation:          d.Vacation,
		Total:             d.Total,
		AutoCalculated:    d.AutoCalculated,
		CalculatedAt:      d.CalculatedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProvision converts a model MonthlyProvision to a domain MonthlyProvision
func ToDomainProvision(m models.MonthlyProvision) domain.MonthlyProvision {
	return domain.MonthlyProvision{
		ProvisionID:       m.ProvisionID,
		OrganizationID:    m.OrganizationID,
		EmployeeID:        m.EmployeeID,
		PeriodID:          m.PeriodID,
		BaseSalary:        m.BaseSalary,
		Severance:         m.Severance,
		SeveranceInterest: m.SeveranceInterest,
		ServiceBonus:      m.ServiceBonus,
		Vacation:          m.Vacation,
		Total:             m.Total,
		AutoCalculated:    m.AutoCalculated,
		CalculatedAt:      m.CalculatedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
