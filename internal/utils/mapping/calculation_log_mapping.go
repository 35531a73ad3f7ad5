package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
)

// ToModelCalculationLog converts a domain CalculationLog to its model,
// serializing the per-employee errors and warnings to JSONB.
func ToModelCalculationLog(d domain.CalculationLog) (models.CalculationLog, error) {
	errorsJSON, err := json.Marshal(d.Errors)
	if err != nil {
		return models.CalculationLog{}, fmt.Errorf("failed to marshal calculation errors: %w", err)
	}
	warningsJSON, err := json.Marshal(d.Warnings)
	if err != nil {
		return models.CalculationLog{}, fmt.Errorf("failed to marshal calculation warnings: %w", err)
	}
	return models.CalculationLog{
		LogID:              d.LogID,
		OrganizationID:     d.OrganizationID,
		PeriodID:           d.PeriodID,
		RunType:            string(d.RunType),
		EmployeesProcessed: d.EmployeesProcessed,
		EmployeesFailed:    d.EmployeesFailed,
		TotalAccrued:       d.TotalAccrued,
		TotalDeducted:      d.TotalDeducted,
		TotalNet:           d.TotalNet,
		Errors:             errorsJSON,
		Warnings:           warningsJSON,
		StartedAt:          d.StartedAt,
		FinishedAt:         d.FinishedAt,
		DurationSeconds:    d.DurationSeconds,
		TriggeredBy:        d.TriggeredBy,
	}, nil
}
