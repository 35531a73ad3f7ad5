package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
)

// ToModelPeriod converts a domain PayrollPeriod to a model PayrollPeriod
func ToModelPeriod(d domain.PayrollPeriod) models.PayrollPeriod {
	return models.PayrollPeriod{
		PeriodID:       d.PeriodID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		PeriodType:     string(d.Type),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		PayDate:        d.PayDate,
		Status:         string(d.Status),
		TotalAccrued:   d.TotalAccrued,
		TotalDeducted:  d.TotalDeducted,
		TotalNet:       d.TotalNet,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model PayrollPeriod to a domain PayrollPeriod
func ToDomainPeriod(m models.PayrollPeriod) domain.PayrollPeriod {
	return domain.PayrollPeriod{
		PeriodID:       m.PeriodID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Type:           domain.PeriodType(m.PeriodType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		PayDate:        m.PayDate,
		Status:         domain.PeriodStatus(m.Status),
		TotalAccrued:   m.TotalAccrued,
		TotalDeducted:  m.TotalDeducted,
		TotalNet:       m.TotalNet,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriodSlice converts a slice of model periods to domain periods
func ToDomainPeriodSlice(ms []models.PayrollPeriod) []domain.PayrollPeriod {
	ds := make([]domain.PayrollPeriod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}

// ToModelAssignment converts a domain assignment to a model assignment,
// serializing the manual line inputs to JSONB payloads.
func ToModelAssignment(d domain.EmployeePeriodAssignment) (models.EmployeePeriodAssignment, error) {
	extras, err := json.Marshal(d.ExtraAccruals)
	if err != nil {
		return models.EmployeePeriodAssignment{}, fmt.Errorf("failed to marshal extra accruals: %w", err)
	}
	fixed, err := json.Marshal(d.FixedDeductions)
	if err != nil {
		return models.EmployeePeriodAssignment{}, fmt.Errorf("failed to marshal fixed deductions: %w", err)
	}
	return models.EmployeePeriodAssignment{
		AssignmentID:       d.AssignmentID,
		OrganizationID:     d.OrganizationID,
		PeriodID:           d.PeriodID,
		EmployeeID:         d.EmployeeID,
		EmployeeName:       d.EmployeeName,
		Included:           d.Included,
		ExclusionReason:    d.ExclusionReason,
		PeriodSalary:       d.PeriodSalary,
		DaysWorked:         d.DaysWorked,
		TotalAccrued:       d.TotalAccrued,
		TotalDeducted:      d.TotalDeducted,
		NetPay:             d.NetPay,
		AutoCalculated:     d.AutoCalculated,
		CalculatedAt:       d.CalculatedAt,
		NeedsRecalculation: d.NeedsRecalculation,
		ExtraAccruals:      extras,
		FixedDeductions:    fixed,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainAssignment converts a model assignment to a domain assignment,
// deserializing the manual line inputs.
func ToDomainAssignment(m models.EmployeePeriodAssignment) (domain.EmployeePeriodAssignment, error) {
	var extras []domain.ExtraAccrual
	if len(m.ExtraAccruals) > 0 {
		if err := json.Unmarshal(m.ExtraAccruals, &extras); err != nil {
			return domain.EmployeePeriodAssignment{}, fmt.Errorf("failed to unmarshal extra accruals: %w", err)
		}
	}
	var fixed []domain.FixedDeduction
	if len(m.FixedDeductions) > 0 {
		if err := json.Unmarshal(m.FixedDeductions, &fixed); err != nil {
			return domain.EmployeePeriodAssignment{}, fmt.Errorf("failed to unmarshal fixed deductions: %w", err)
		}
	}
	return domain.EmployeePeriodAssignment{
		AssignmentID:       m.AssignmentID,
		OrganizationID:     m.OrganizationID,
		PeriodID:           m.PeriodID,
		EmployeeID:         m.EmployeeID,
		EmployeeName:       m.EmployeeName,
		Included:           m.Included,
		ExclusionReason:    m.ExclusionReason,
		PeriodSalary:       m.PeriodSalary,
		DaysWorked:         m.DaysWorked,
		TotalAccrued:       m.TotalAccrued,
		TotalDeducted:      m.TotalDeducted,
		NetPay:             m.NetPay,
		AutoCalculated:     m.AutoCalculated,
		CalculatedAt:       m.CalculatedAt,
		NeedsRecalculation: m.NeedsRecalculation,
		ExtraAccruals:      extras,
		FixedDeductions:    fixed,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}, nil
}
