package models

import "github.com/shopspring/decimal"

// AutomationConfig represents a row in the automation_configs table, one per
// organization. The solidarity-fund bracket table is stored as JSONB.
type AutomationConfig struct {
	ConfigID       string `db:"config_id"`
	OrganizationID string `db:"organization_id"`

	MonthlyPayDay      int  `db:"monthly_pay_day"`
	BiweeklyPayDay1    int  `db:"biweekly_pay_day_1"`
	BiweeklyPayDay2    int  `db:"biweekly_pay_day_2"`
	DraftLeadDays      int  `db:"draft_lead_days"`
	AutoGenerateDrafts bool `db:"auto_generate_drafts"`

	NotifyDraftGenerated bool `db:"notify_draft_generated"`
	NotifyApproval       bool `db:"notify_approval"`
	NotifyProcessed      bool `db:"notify_processed"`

	ValidateMinimumWage  bool `db:"validate_minimum_wage"`
	CalcTransportSubsidy bool `db:"calc_transport_subsidy"`
	CalcSocialBenefits   bool `db:"calc_social_benefits"`

	HealthPercentage  decimal.Decimal `db:"health_percentage"`
	PensionPercentage decimal.Decimal `db:"pension_percentage"`

	FSPBrackets []byte `db:"fsp_brackets"`

	MinimumWage      decimal.Decimal `db:"minimum_wage"`
	TransportSubsidy decimal.Decimal `db:"transport_subsidy"`

	AuditFields
}
