package dto

import (
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LiquidateRequest triggers a termination settlement for an employee.
type LiquidateRequest struct {
	// CutoffDate defaults to today when omitted.
	CutoffDate *time.Time `json:"cutoffDate"`
}

// BenefitBalanceResponse is the running balance of one benefit kind.
type BenefitBalanceResponse struct {
	Kind    domain.BenefitKind `json:"kind"`
	Accrued decimal.Decimal    `json:"accrued"`
	Paid    decimal.Decimal    `json:"paid"`
	Balance decimal.Decimal    `json:"balance"`
}

// BenefitBalancesResponse lists an employee's balances across all kinds.
type BenefitBalancesResponse struct {
	EmployeeID string                   `json:"employeeID"`
	Balances   []BenefitBalanceResponse `json:"balances"`
}

// LiquidationResponse is the full termination settlement of an employee.
type LiquidationResponse struct {
	EmployeeID        string                `json:"employeeID"`
	ContractID        string                `json:"contractID"`
	CutoffDate        time.Time             `json:"cutoffDate"`
	Severance         domain.BenefitAmount  `json:"severance"`
	SeveranceInterest domain.BenefitAmount  `json:"severanceInterest"`
	ServiceBonus      domain.BenefitAmount  `json:"serviceBonus"`
	Vacation          domain.VacationAmount `json:"vacation"`
	Total             decimal.Decimal       `json:"total"`
}

// ProvisionResponse is one month's benefit provision for one employee.
type ProvisionResponse struct {
	ProvisionID       string          `json:"provisionID"`
	EmployeeID        string          `json:"employeeID"`
	PeriodID          string          `json:"periodID"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	Severance         decimal.Decimal `json:"severance"`
	SeveranceInterest decimal.Decimal `json:"severanceInterest"`
	ServiceBonus      decimal.Decimal `json:"serviceBonus"`
	Vacation          decimal.Decimal `json:"vacation"`
	Total             decimal.Decimal `json:"total"`
	AutoCalculated    bool            `json:"autoCalculated"`
	CalculatedAt      *time.Time      `json:"calculatedAt,omitempty"`
}

// ToBenefitBalancesResponse converts aggregated balances to their DTO.
func ToBenefitBalancesResponse(employeeID string, balances []domain.BenefitBalance) BenefitBalancesResponse {
	resp := BenefitBalancesResponse{
		EmployeeID: employeeID,
		Balances:   make([]BenefitBalanceResponse, len(balances)),
	}
	for i, b := range balances {
		resp.Balances[i] = BenefitBalanceResponse{
			Kind:    b.Kind,
			Accrued: b.Accrued,
			Paid:    b.Paid,
			Balance: b.Balance,
		}
	}
	return resp
}

// ToLiquidationResponse converts a domain.LiquidationResult to its DTO.
func ToLiquidationResponse(r *domain.LiquidationResult) LiquidationResponse {
	return LiquidationResponse{
		EmployeeID:        r.EmployeeID,
		ContractID:        r.ContractID,
		CutoffDate:        r.CutoffDate,
		Severance:         r.Severance,
		SeveranceInterest: r.SeveranceInterest,
		ServiceBonus:      r.ServiceBonus,
		Vacation:          r.Vacation,
		Total:             r.Total,
	}
}

// ToProvisionResponse converts a domain.MonthlyProvision to its DTO.
func ToProvisionResponse(p *domain.MonthlyProvision) ProvisionResponse {
	return ProvisionResponse{
		ProvisionID:       p.ProvisionID,
		EmployeeID:        p.EmployeeID,
		PeriodID:          p.PeriodID,
		BaseSalary:        p.BaseSalary,
		Severance:         p.Severance,
		SeveranceInterest: p.SeveranceInterest,
		ServiceBonus:      p.ServiceBonus,
		Vacation:          p.Vacation,
		Total:             p.Total,
		AutoCalculated:    p.AutoCalculated,
		CalculatedAt:      p.CalculatedAt,
	}
}
