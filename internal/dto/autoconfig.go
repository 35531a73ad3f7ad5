package dto

import (
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateAutomationConfigRequest patches the organization's automation
// configuration; nil fields keep their stored value. The bracket table is
// replaced wholesale when provided.
type UpdateAutomationConfigRequest struct {
	MonthlyPayDay      *int  `json:"monthlyPayDay" binding:"omitempty,min=1,max=30"`
	BiweeklyPayDay1    *int  `json:"biweeklyPayDay1" binding:"omitempty,min=1,max=30"`
	BiweeklyPayDay2    *int  `json:"biweeklyPayDay2" binding:"omitempty,min=1,max=30"`
	DraftLeadDays      *int  `json:"draftLeadDays" binding:"omitempty,min=0,max=30"`
	AutoGenerateDrafts *bool `json:"autoGenerateDrafts"`

	NotifyDraftGenerated *bool `json:"notifyDraftGenerated"`
	NotifyApproval       *bool `json:"notifyApproval"`
	NotifyProcessed      *bool `json:"notifyProcessed"`

	ValidateMinimumWage  *bool `json:"validateMinimumWage"`
	CalcTransportSubsidy *bool `json:"calcTransportSubsidy"`
	CalcSocialBenefits   *bool `json:"calcSocialBenefits"`

	HealthPercentage  *decimal.Decimal    `json:"healthPercentage"`
	PensionPercentage *decimal.Decimal    `json:"pensionPercentage"`
	FSPBrackets       []domain.FSPBracket `json:"fspBrackets"`

	MinimumWage      *decimal.Decimal `json:"minimumWage"`
	TransportSubsidy *decimal.Decimal `json:"transportSubsidy"`
}

// AutomationConfigResponse defines the automation configuration returned to
// clients.
type AutomationConfigResponse struct {
	ConfigID       string `json:"configID"`
	OrganizationID string `json:"organizationID"`

	MonthlyPayDay      int  `json:"monthlyPayDay"`
	BiweeklyPayDay1    int  `json:"biweeklyPayDay1"`
	BiweeklyPayDay2    int  `json:"biweeklyPayDay2"`
	DraftLeadDays      int  `json:"draftLeadDays"`
	AutoGenerateDrafts bool `json:"autoGenerateDrafts"`

	NotifyDraftGenerated bool `json:"notifyDraftGenerated"`
	NotifyApproval       bool `json:"notifyApproval"`
	NotifyProcessed      bool `json:"notifyProcessed"`

	ValidateMinimumWage  bool `json:"validateMinimumWage"`
	CalcTransportSubsidy bool `json:"calcTransportSubsidy"`
	CalcSocialBenefits   bool `json:"calcSocialBenefits"`

	HealthPercentage  decimal.Decimal     `json:"healthPercentage"`
	PensionPercentage decimal.Decimal     `json:"pensionPercentage"`
	FSPBrackets       []domain.FSPBracket `json:"fspBrackets"`

	MinimumWage      decimal.Decimal `json:"minimumWage"`
	TransportSubsidy decimal.Decimal `json:"transportSubsidy"`
}

// ToAutomationConfigResponse converts a domain.AutomationConfig to its DTO.
func ToAutomationConfigResponse(c *domain.AutomationConfig) AutomationConfigResponse {
	return AutomationConfigResponse{
		ConfigID:             c.ConfigID,
		OrganizationID:       c.OrganizationID,
		MonthlyPayDay:        c.MonthlyPayDay,
		BiweeklyPayDay1:      c.BiweeklyPayDay1,
		BiweeklyPayDay2:      c.BiweeklyPayDay2,
		DraftLeadDays:        c.DraftLeadDays,
		AutoGenerateDrafts:   c.AutoGenerateDrafts,
		NotifyDraftGenerated: c.NotifyDraftGenerated,
		NotifyApproval:       c.NotifyApproval,
		NotifyProcessed:      c.NotifyProcessed,
		ValidateMinimumWage:  c.ValidateMinimumWage,
		CalcTransportSubsidy: c.CalcTransportSubsidy,
		CalcSocialBenefits:   c.CalcSocialBenefits,
		HealthPercentage:     c.HealthPercentage,
		PensionPercentage:    c.PensionPercentage,
		FSPBrackets:          c.FSPBrackets,
		MinimumWage:          c.MinimumWage,
		TransportSubsidy:     c.TransportSubsidy,
	}
}
