package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	"github.com/NominaCol/payroll_automation_app/internal/models"
)

// ToModelAutomationConfig converts a domain AutomationConfig to its model,
// serializing the solidarity-fund bracket table to JSONB.
func ToModelAutomationConfig(d domain.AutomationConfig) (models.AutomationConfig, error) {
	brackets, err := json.Marshal(d.FSPBrackets)
	if err != nil {
		return models.AutomationConfig{}, fmt.Errorf("failed to marshal fsp brackets: %w", err)
	}
	return models.AutomationConfig{
		ConfigID:             d.ConfigID,
		OrganizationID:       d.OrganizationID,
		MonthlyPayDay:        d.MonthlyPayDay,
		BiweeklyPayDay1:      d.BiweeklyPayDay1,
		BiweeklyPayDay2:      d.BiweeklyPayDay2,
		DraftLeadDays:        d.DraftLeadDays,
		AutoGenerateDrafts:   d.AutoGenerateDrafts,
		NotifyDraftGenerated: d.NotifyDraftGenerated,
		NotifyApproval:       d.NotifyApproval,
		NotifyProcessed:      d.NotifyProcessed,
		ValidateMinimumWage:  d.ValidateMinimumWage,
		CalcTransportSubsidy: d.CalcTransportSubsidy,
		CalcSocialBenefits:   d.CalcSocialBenefits,
		HealthPercentage:     d.HealthPercentage,
		PensionPercentage:    d.PensionPercentage,
		FSPBrackets:          brackets,
		MinimumWage:          d.MinimumWage,
		TransportSubsidy:     d.TransportSubsidy,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainAutomationConfig converts a model AutomationConfig to its domain form
func ToDomainAutomationConfig(m models.AutomationConfig) (domain.AutomationConfig, error) {
	var brackets []domain.FSPBracket
	if len(m.FSPBrackets) > 0 {
		if err := json.Unmarshal(m.FSPBrackets, &brackets); err != nil {
			return domain.AutomationConfig{}, fmt.Errorf("failed to unmarshal fsp brackets: %w", err)
		}
	}
	return domain.AutomationConfig{
		ConfigID:             m.ConfigID,
		OrganizationID:       m.OrganizationID,
		MonthlyPayDay:        m.MonthlyPayDay,
		BiweeklyPayDay1:      m.BiweeklyPayDay1,
		BiweeklyPayDay2:      m.BiweeklyPayDay2,
		DraftLeadDays:        m.DraftLeadDays,
		AutoGenerateDrafts:   m.AutoGenerateDrafts,
		NotifyDraftGenerated: m.NotifyDraftGenerated,
		NotifyApproval:       m.NotifyApproval,
		NotifyProcessed:      m.NotifyProcessed,
		ValidateMinimumWage:  m.ValidateMinimumWage,
		CalcTransportSubsidy: m.CalcTransportSubsidy,
		CalcSocialBenefits:   m.CalcSocialBenefits,
		HealthPercentage:     m.HealthPercentage,
		PensionPercentage:    m.PensionPercentage,
		FSPBrackets:          brackets,
		MinimumWage:          m.MinimumWage,
		TransportSubsidy:     m.TransportSubsidy,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}, nil
}
