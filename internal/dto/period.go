package dto

import (
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePeriodRequest defines the data for a manually created payroll period.
type CreatePeriodRequest struct {
	Name      string            `json:"name" binding:"required"`
	Type      domain.PeriodType `json:"type" binding:"required,oneof=MONTHLY BIWEEKLY"`
	StartDate time.Time         `json:"startDate" binding:"required"`
	EndDate   time.Time         `json:"endDate" binding:"required"`
	PayDate   time.Time         `json:"payDate" binding:"required"`
	Notes     string            `json:"notes"`
}

// GenerateDraftRequest triggers an automatic draft run for a cycle.
type GenerateDraftRequest struct {
	Type domain.PeriodType `json:"type" binding:"required,oneof=MONTHLY BIWEEKLY"`
	// At is any date inside the target cycle; defaults to today when omitted.
	At *time.Time `json:"at"`
}

// UpdateAssignmentRequest defines the manual adjustments allowed on an
// assignment while its period is editable.
type UpdateAssignmentRequest struct {
	Included        *bool                 `json:"included"`
	ExclusionReason *string               `json:"exclusionReason"`
	PeriodSalary    *decimal.Decimal      `json:"periodSalary"`
	DaysWorked      *int                  `json:"daysWorked" binding:"omitempty,min=0"`
	ExtraAccruals   []ExtraAccrualInput   `json:"extraAccruals"`
	FixedDeductions []FixedDeductionInput `json:"fixedDeductions"`
}

// ExtraAccrualInput is one manually attached accrual line.
type ExtraAccrualInput struct {
	ConceptCode string          `json:"conceptCode" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitValue   decimal.Decimal `json:"unitValue" binding:"required"`
}

// FixedDeductionInput is one manually attached deduction line.
type FixedDeductionInput struct {
	ConceptCode string          `json:"conceptCode" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// PeriodResponse defines the data returned for a payroll period.
type PeriodResponse struct {
	PeriodID      string              `json:"periodID"`
	Name          string              `json:"name"`
	Type          domain.PeriodType   `json:"type"`
	StartDate     time.Time           `json:"startDate"`
	EndDate       time.Time           `json:"endDate"`
	PayDate       time.Time           `json:"payDate"`
	Status        domain.PeriodStatus `json:"status"`
	TotalAccrued  decimal.Decimal     `json:"totalAccrued"`
	TotalDeducted decimal.Decimal     `json:"totalDeducted"`
	TotalNet      decimal.Decimal     `json:"totalNet"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// ListPeriodsResponse is a token-paginated page of periods.
type ListPeriodsResponse struct {
	Periods   []PeriodResponse `json:"periods"`
	NextToken string           `json:"nextToken,omitempty"`
}

// AssignmentResponse defines the data returned for a period assignment.
type AssignmentResponse struct {
	AssignmentID       string                  `json:"assignmentID"`
	PeriodID           string                  `json:"periodID"`
	EmployeeID         string                  `json:"employeeID"`
	EmployeeName       string                  `json:"employeeName"`
	Included           bool                    `json:"included"`
	ExclusionReason    string                  `json:"exclusionReason,omitempty"`
	PeriodSalary       decimal.Decimal         `json:"periodSalary"`
	DaysWorked         int                     `json:"daysWorked"`
	TotalAccrued       decimal.Decimal         `json:"totalAccrued"`
	TotalDeducted      decimal.Decimal         `json:"totalDeducted"`
	NetPay             decimal.Decimal         `json:"netPay"`
	AutoCalculated     bool                    `json:"autoCalculated"`
	CalculatedAt       *time.Time              `json:"calculatedAt,omitempty"`
	NeedsRecalculation bool                    `json:"needsRecalculation"`
	ExtraAccruals      []domain.ExtraAccrual   `json:"extraAccruals,omitempty"`
	FixedDeductions    []domain.FixedDeduction `json:"fixedDeductions,omitempty"`
}

// EntryResponse is a calculated payroll entry with its line items.
type EntryResponse struct {
	EntryID       string              `json:"entryID"`
	PeriodID      string              `json:"periodID"`
	EmployeeID    string              `json:"employeeID"`
	DaysWorked    int                 `json:"daysWorked"`
	TotalAccrued  decimal.Decimal     `json:"totalAccrued"`
	TotalDeducted decimal.Decimal     `json:"totalDeducted"`
	NetPay        decimal.Decimal     `json:"netPay"`
	Accruals      []AccrualResponse   `json:"accruals"`
	Deductions    []DeductionResponse `json:"deductions"`
}

// AccrualResponse is one positive line item on an entry.
type AccrualResponse struct {
	ConceptCode string          `json:"conceptCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unitValue"`
	Total       decimal.Decimal `json:"total"`
}

// DeductionResponse is one withheld line item on an entry.
type DeductionResponse struct {
	ConceptCode string           `json:"conceptCode"`
	Base        decimal.Decimal  `json:"base"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	Total       decimal.Decimal  `json:"total"`
}

// ToPeriodResponse converts a domain.PayrollPeriod to PeriodResponse DTO.
func ToPeriodResponse(p *domain.PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:      p.PeriodID,
		Name:          p.Name,
		Type:          p.Type,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		PayDate:       p.PayDate,
		Status:        p.Status,
		TotalAccrued:  p.TotalAccrued,
		TotalDeducted: p.TotalDeducted,
		TotalNet:      p.TotalNet,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToPeriodResponses converts a slice of domain.PayrollPeriod to DTOs.
func ToPeriodResponses(periods []domain.PayrollPeriod) []PeriodResponse {
	responses := make([]PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = ToPeriodResponse(&periods[i])
	}
	return responses
}

// ToAssignmentResponse converts a domain.EmployeePeriodAssignment to its DTO.
func ToAssignmentResponse(a *domain.EmployeePeriodAssignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:       a.AssignmentID,
		PeriodID:           a.PeriodID,
		EmployeeID:         a.EmployeeID,
		EmployeeName:       a.EmployeeName,
		Included:           a.Included,
		ExclusionReason:    a.ExclusionReason,
		PeriodSalary:       a.PeriodSalary,
		DaysWorked:         a.DaysWorked,
		TotalAccrued:       a.TotalAccrued,
		TotalDeducted:      a.TotalDeducted,
		NetPay:             a.NetPay,
		AutoCalculated:     a.AutoCalculated,
		CalculatedAt:       a.CalculatedAt,
		NeedsRecalculation: a.NeedsRecalculation,
		ExtraAccruals:      a.ExtraAccruals,
		FixedDeductions:    a.FixedDeductions,
	}
}

// ToAssignmentResponses converts a slice of assignments to DTOs.
func ToAssignmentResponses(assignments []domain.EmployeePeriodAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = ToAssignmentResponse(&assignments[i])
	}
	return responses
}

// ToEntryResponse converts a domain.PayrollEntry with line items to its DTO.
func ToEntryResponse(e *domain.PayrollEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:       e.EntryID,
		PeriodID:      e.PeriodID,
		EmployeeID:    e.EmployeeID,
		DaysWorked:    e.DaysWorked,
		TotalAccrued:  e.TotalAccrued,
		TotalDeducted: e.TotalDeducted,
		NetPay:        e.NetPay,
		Accruals:      make([]AccrualResponse, len(e.Accruals)),
		Deductions:    make([]DeductionResponse, len(e.Deductions)),
	}
	for i, a := range e.Accruals {
		resp.Accruals[i] = AccrualResponse{
			ConceptCode: a.ConceptCode,
			Quantity:    a.Quantity,
			UnitValue:   a.UnitValue,
			Total:       a.Total,
		}
	}
	for i, d := range e.Deductions {
		resp.Deductions[i] = DeductionResponse{
			ConceptCode: d.ConceptCode,
			Base:        d.Base,
			Percentage:  d.Percentage,
			Total:       d.Total,
		}
	}
	return resp
}

// DraftGenerationResponse is the outcome of an automatic draft run.
type DraftGenerationResponse struct {
	Period            PeriodResponse            `json:"period"`
	Workflow          WorkflowResponse          `json:"workflow"`
	EmployeesAssigned int                       `json:"employeesAssigned"`
	Calculation       CalculationResultResponse `json:"calculation"`
}
