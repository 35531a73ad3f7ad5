package domain

import "github.com/shopspring/decimal"

// PayrollEntry is the computed payroll record for one employee in one period.
// Its totals always equal the sum of its accruals minus the sum of its
// deductions; the line items are derived data, regenerated wholesale on every
// recalculation.
type PayrollEntry struct {
	EntryID        string          `json:"entryID"`
	OrganizationID string          `json:"organizationID"`
	PeriodID       string          `json:"periodID"`
	EmployeeID     string          `json:"employeeID"`
	DaysWorked     int             `json:"daysWorked"`
	TotalAccrued   decimal.Decimal `json:"totalAccrued"`
	TotalDeducted  decimal.Decimal `json:"totalDeducted"`
	NetPay         decimal.Decimal `json:"netPay"`
	Accruals       []Accrual       `json:"accruals,omitempty"`
	Deductions     []Deduction     `json:"deductions,omitempty"`
	AuditFields
}

// Accrual is one positive line item on a payroll entry.
type Accrual struct {
	AccrualID   string          `json:"accrualID"`
	EntryID     string          `json:"entryID"`
	ConceptID   string          `json:"conceptID"`
	ConceptCode string          `json:"conceptCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unitValue"`
	Total       decimal.Decimal `json:"total"`
	// Base flags denormalized from the concept at calculation time so the
	// entry remains auditable even if the catalog changes later.
	CountsSocialSecurity bool `json:"countsSocialSecurity"`
	CountsBenefitsBase   bool `json:"countsBenefitsBase"`
}

// Deduction is one withheld line item on a payroll entry.
type Deduction struct {
	DeductionID string           `json:"deductionID"`
	EntryID     string           `json:"entryID"`
	ConceptID   string           `json:"conceptID"`
	ConceptCode string           `json:"conceptCode"`
	Base        decimal.Decimal  `json:"base"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	Total       decimal.Decimal  `json:"total"`
}

// SumAccruals totals a set of accrual line items.
func SumAccruals(accruals []Accrual) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accruals {
		sum = sum.Add(a.Total)
	}
	return sum
}

// SumDeductions totals a set of deduction line items.
func SumDeductions(deductions []Deduction) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range deductions {
		sum = sum.Add(d.Total)
	}
	return sum
}

// SocialSecurityBase sums the accruals flagged as counting toward the
// social-security base (the transport subsidy is excluded by its flag).
func SocialSecurityBase(accruals []Accrual) decimal.Decimal {
	base := decimal.Zero
	for _, a := range accruals {
		if a.CountsSocialSecurity {
			base = base.Add(a.Total)
		}
	}
	return base
}
