package domain

import "github.com/shopspring/decimal"

// AccrualKind tags an accrual concept with its legal classification.
type AccrualKind string

const (
	AccrualSalary     AccrualKind = "SALARY"
	AccrualOvertime   AccrualKind = "OVERTIME"
	AccrualSurcharge  AccrualKind = "SURCHARGE"
	AccrualSubsidy    AccrualKind = "SUBSIDY"
	AccrualCommission AccrualKind = "COMMISSION"
	AccrualBonus      AccrualKind = "BONUS"
	AccrualBenefit    AccrualKind = "SOCIAL_BENEFIT"
	AccrualVacation   AccrualKind = "VACATION"
	AccrualIncapacity AccrualKind = "INCAPACITY"
	AccrualLeave      AccrualKind = "LEAVE"
	AccrualOther      AccrualKind = "OTHER"
)

// DeductionKind tags a deduction concept with its legal classification.
type DeductionKind string

const (
	DeductionHealth      DeductionKind = "HEALTH"
	DeductionPension     DeductionKind = "PENSION"
	DeductionSolidarity  DeductionKind = "SOLIDARITY_FUND"
	DeductionWithholding DeductionKind = "WITHHOLDING"
	DeductionLoan        DeductionKind = "LOAN"
	DeductionGarnishment DeductionKind = "GARNISHMENT"
	DeductionCooperative DeductionKind = "COOPERATIVE"
	DeductionUnion       DeductionKind = "UNION"
	DeductionSavings     DeductionKind = "SAVINGS"
	DeductionOther       DeductionKind = "OTHER"
)

// CalculationBase selects what a percentage deduction is applied against.
type CalculationBase string

const (
	BaseSalary       CalculationBase = "SALARY"
	BaseTotalAccrued CalculationBase = "TOTAL_ACCRUED"
	BaseFixedAmount  CalculationBase = "FIXED_AMOUNT"
)

// Default catalog codes the engine looks up by convention.
const (
	ConceptCodeSalary           = "SAL001"
	ConceptCodeTransportSubsidy = "AUX001"
	ConceptCodeOvertime         = "HED001"
	ConceptCodeBonus            = "BON001"
	ConceptCodeCommission       = "COM001"
	ConceptCodeHealth           = "SALUD001"
	ConceptCodePension          = "PENSION001"
	ConceptCodeSolidarityFund   = "FSP001"
	ConceptCodeWithholding      = "RETEFTE001"
	ConceptCodeLoan             = "PRESTAMO001"
)

// AccrualConcept is a catalog entry for a positive compensation line item.
// The two base flags decide whether line items under this concept count
// toward the social-security base and the benefits base respectively.
type AccrualConcept struct {
	ConceptID            string      `json:"conceptID"`
	OrganizationID       string      `json:"organizationID"`
	Code                 string      `json:"code"`
	Name                 string      `json:"name"`
	Kind                 AccrualKind `json:"kind"`
	Description          string      `json:"description,omitempty"`
	Active               bool        `json:"active"`
	CountsSocialSecurity bool        `json:"countsSocialSecurity"`
	CountsBenefitsBase   bool        `json:"countsBenefitsBase"`
	AuditFields
}

// DeductionConcept is a catalog entry for a withheld line item. Mandatory
// statutory deductions (health, pension, solidarity fund) carry a base
// percentage; others may be fixed amounts attached per assignment.
type DeductionConcept struct {
	ConceptID      string           `json:"conceptID"`
	OrganizationID string           `json:"organizationID"`
	Code           string           `json:"code"`
	Name           string           `json:"name"`
	Kind           DeductionKind    `json:"kind"`
	Description    string           `json:"description,omitempty"`
	Active         bool             `json:"active"`
	Mandatory      bool             `json:"mandatory"`
	BasePercentage *decimal.Decimal `json:"basePercentage,omitempty"`
	Base           CalculationBase  `json:"base"`
	AuditFields
}

// ConceptCatalog indexes an organization's active concepts for the engine.
type ConceptCatalog struct {
	Accruals   []AccrualConcept
	Deductions []DeductionConcept
}

// AccrualByCode returns the active accrual concept with the given code.
func (c ConceptCatalog) AccrualByCode(code string) (AccrualConcept, bool) {
	for _, ac := range c.Accruals {
		if ac.Code == code && ac.Active {
			return ac, true
		}
	}
	return AccrualConcept{}, false
}

// DeductionByCode returns the active deduction concept with the given code.
func (c ConceptCatalog) DeductionByCode(code string) (DeductionConcept, bool) {
	for _, dc := range c.Deductions {
		if dc.Code == code && dc.Active {
			return dc, true
		}
	}
	return DeductionConcept{}, false
}
