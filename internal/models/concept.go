package models

import "github.com/shopspring/decimal"

// AccrualConcept represents a row in the accrual_concepts table.
type AccrualConcept struct {
	ConceptID            string `db:"concept_id"`
	OrganizationID       string `db:"organization_id"`
	Code                 string `db:"code"`
	Name                 string `db:"name"`
	Kind                 string `db:"kind"`
	Description          string `db:"description"`
	Active               bool   `db:"active"`
	CountsSocialSecurity bool   `db:"counts_social_security"`
	CountsBenefitsBase   bool   `db:"counts_benefits_base"`
	AuditFields
}

// DeductionConcept represents a row in the deduction_concepts table.
// BasePercentage is NULL for bracket-driven concepts (solidarity fund).
type DeductionConcept struct {
	ConceptID      string              `db:"concept_id"`
	OrganizationID string              `db:"organization_id"`
	Code           string              `db:"code"`
	Name           string              `db:"name"`
	Kind           string              `db:"kind"`
	Description    string              `db:"description"`
	Active         bool                `db:"active"`
	Mandatory      bool                `db:"mandatory"`
	BasePercentage decimal.NullDecimal `db:"base_percentage"`
	Base           string              `db:"base"`
	AuditFields
}
