package dto

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccrualConceptRequest defines the data for a custom accrual concept.
type CreateAccrualConceptRequest struct {
	Code                 string             `json:"code" binding:"required"`
	Name                 string             `json:"name" binding:"required"`
	Kind                 domain.AccrualKind `json:"kind" binding:"required"`
	Description          string             `json:"description"`
	CountsSocialSecurity bool               `json:"countsSocialSecurity"`
	CountsBenefitsBase   bool               `json:"countsBenefitsBase"`
}

// CreateDeductionConceptRequest defines the data for a custom deduction concept.
type CreateDeductionConceptRequest struct {
	Code           string                 `json:"code" binding:"required"`
	Name           string                 `json:"name" binding:"required"`
	Kind           domain.DeductionKind   `json:"kind" binding:"required"`
	Description    string                 `json:"description"`
	Mandatory      bool                   `json:"mandatory"`
	BasePercentage *decimal.Decimal       `json:"basePercentage"`
	Base           domain.CalculationBase `json:"base" binding:"required,oneof=SALARY TOTAL_ACCRUED FIXED_AMOUNT"`
}

// AccrualConceptResponse defines the data returned for an accrual concept.
type AccrualConceptResponse struct {
	ConceptID            string             `json:"conceptID"`
	Code                 string             `json:"code"`
	Name                 string             `json:"name"`
	Kind                 domain.AccrualKind `json:"kind"`
	Description          string             `json:"description,omitempty"`
	Active               bool               `json:"active"`
	CountsSocialSecurity bool               `json:"countsSocialSecurity"`
	CountsBenefitsBase   bool               `json:"countsBenefitsBase"`
}

// DeductionConceptResponse defines the data returned for a deduction concept.
type DeductionConceptResponse struct {
	ConceptID      string                 `json:"conceptID"`
	Code           string                 `json:"code"`
	Name           string                 `json:"name"`
	Kind           domain.DeductionKind   `json:"kind"`
	Description    string                 `json:"description,omitempty"`
	Active         bool                   `json:"active"`
	Mandatory      bool                   `json:"mandatory"`
	BasePercentage *decimal.Decimal       `json:"basePercentage,omitempty"`
	Base           domain.CalculationBase `json:"base"`
}

// CatalogResponse is the organization's full active concept catalog.
type CatalogResponse struct {
	Accruals   []AccrualConceptResponse   `json:"accruals"`
	Deductions []DeductionConceptResponse `json:"deductions"`
}

// ToAccrualConceptResponse converts a domain.AccrualConcept to its DTO.
func ToAccrualConceptResponse(c *domain.AccrualConcept) AccrualConceptResponse {
	return AccrualConceptResponse{
		ConceptID:            c.ConceptID,
		Code:                 c.Code,
		Name:                 c.Name,
		Kind:                 c.Kind,
		Description:          c.Description,
		Active:               c.Active,
		CountsSocialSecurity: c.CountsSocialSecurity,
		CountsBenefitsBase:   c.CountsBenefitsBase,
	}
}

// ToDeductionConceptResponse converts a domain.DeductionConcept to its DTO.
func ToDeductionConceptResponse(c *domain.DeductionConcept) DeductionConceptResponse {
	return DeductionConceptResponse{
		ConceptID:      c.ConceptID,
		Code:           c.Code,
		Name:           c.Name,
		Kind:           c.Kind,
		Description:    c.Description,
		Active:         c.Active,
		Mandatory:      c.Mandatory,
		BasePercentage: c.BasePercentage,
		Base:           c.Base,
	}
}

// ToCatalogResponse converts a domain.ConceptCatalog to its DTO.
func ToCatalogResponse(catalog *domain.ConceptCatalog) CatalogResponse {
	resp := CatalogResponse{
		Accruals:   make([]AccrualConceptResponse, len(catalog.Accruals)),
		Deductions: make([]DeductionConceptResponse, len(catalog.Deductions)),
	}
	for i := range catalog.Accruals {
		resp.Accruals[i] = ToAccrualConceptResponse(&catalog.Accruals[i])
	}
	for i := range catalog.Deductions {
		resp.Deductions[i] = ToDeductionConceptResponse(&catalog.Deductions[i])
	}
	return resp
}
