package dto

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateRequest triggers a batch calculation for a period.
type CalculateRequest struct {
	RunType domain.CalculationRunType `json:"runType" binding:"omitempty,oneof=INITIAL RECALC AUTOMATIC MANUAL"`
}

// CalculationResultResponse defines the data returned after a batch run.
type CalculationResultResponse struct {
	PeriodID           string                    `json:"periodID"`
	EmployeesProcessed int                       `json:"employeesProcessed"`
	EmployeesFailed    int                       `json:"employeesFailed"`
	TotalAccrued       decimal.Decimal           `json:"totalAccrued"`
	TotalDeducted      decimal.Decimal           `json:"totalDeducted"`
	TotalNet           decimal.Decimal           `json:"totalNet"`
	Errors             []domain.CalculationError `json:"errors,omitempty"`
	Warnings           []string                  `json:"warnings,omitempty"`
}

// ValidationResultResponse is the pre-submission validation outcome.
type ValidationResultResponse struct {
	Validations map[string]bool `json:"validations"`
	Errors      []string        `json:"errors,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
	Approved    bool            `json:"approved"`
}

// EmployeeCalculationResponse is the outcome of a single-employee run.
type EmployeeCalculationResponse struct {
	AssignmentID  string              `json:"assignmentID"`
	EmployeeID    string              `json:"employeeID"`
	Accruals      []AccrualResponse   `json:"accruals"`
	Deductions    []DeductionResponse `json:"deductions"`
	TotalAccrued  decimal.Decimal     `json:"totalAccrued"`
	TotalDeducted decimal.Decimal     `json:"totalDeducted"`
	NetPay        decimal.Decimal     `json:"netPay"`
}

// ToEmployeeCalculationResponse converts a domain.EmployeeCalculation to its DTO.
func ToEmployeeCalculationResponse(ec *domain.EmployeeCalculation) EmployeeCalculationResponse {
	resp := EmployeeCalculationResponse{
		AssignmentID:  ec.AssignmentID,
		EmployeeID:    ec.EmployeeID,
		Accruals:      make([]AccrualResponse, len(ec.Accruals)),
		Deductions:    make([]DeductionResponse, len(ec.Deductions)),
		TotalAccrued:  ec.TotalAccrued,
		TotalDeducted: ec.TotalDeducted,
		NetPay:        ec.NetPay,
	}
	for i, a := range ec.Accruals {
		resp.Accruals[i] = AccrualResponse{
			ConceptCode: a.ConceptCode,
			Quantity:    a.Quantity,
			UnitValue:   a.UnitValue,
			Total:       a.Total,
		}
	}
	for i, d := range ec.Deductions {
		resp.Deductions[i] = DeductionResponse{
			ConceptCode: d.ConceptCode,
			Base:        d.Base,
			Percentage:  d.Percentage,
			Total:       d.Total,
		}
	}
	return resp
}

// ToCalculationResultResponse converts a domain.CalculationResult to its DTO.
func ToCalculationResultResponse(r *domain.CalculationResult) CalculationResultResponse {
	return CalculationResultResponse{
		PeriodID:           r.PeriodID,
		EmployeesProcessed: r.EmployeesProcessed,
		EmployeesFailed:    r.EmployeesFailed,
		TotalAccrued:       r.TotalAccrued,
		TotalDeducted:      r.TotalDeducted,
		TotalNet:           r.TotalNet,
		Errors:             r.Errors,
		Warnings:           r.Warnings,
	}
}

// ToValidationResultResponse converts a domain.ValidationResult to its DTO.
func ToValidationResultResponse(v *domain.ValidationResult) ValidationResultResponse {
	return ValidationResultResponse{
		Validations: v.Validations,
		Errors:      v.Errors,
		Warnings:    v.Warnings,
		Approved:    v.Approved,
	}
}
