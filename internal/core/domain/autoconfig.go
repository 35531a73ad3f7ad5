package domain

import "github.com/shopspring/decimal"

// FSPBracket is one solidarity-fund bracket expressed in minimum-wage
// multiples. Lower is exclusive, Upper inclusive; a zero Upper means
// unbounded. Brackets are evaluated in order, first match wins.
type FSPBracket struct {
	Lower      decimal.Decimal `json:"lower"`
	Upper      decimal.Decimal `json:"upper"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Contains reports whether the given minimum-wage multiple falls in the
// bracket: Lower < multiple <= Upper (or just Lower < multiple when
// unbounded).
func (b FSPBracket) Contains(multiple decimal.Decimal) bool {
	if multiple.Cmp(b.Lower) <= 0 {
		return false
	}
	if b.Upper.IsZero() {
		return true
	}
	return multiple.Cmp(b.Upper) <= 0
}

// AutomationConfig holds every legally-configurable rate, bracket and
// threshold the engine consumes, one record per organization. Defaults are
// applied only when the record is first created.
type AutomationConfig struct {
	ConfigID       string `json:"configID"`
	OrganizationID string `json:"organizationID"`

	// Payment calendar.
	MonthlyPayDay      int  `json:"monthlyPayDay"`
	BiweeklyPayDay1    int  `json:"biweeklyPayDay1"`
	BiweeklyPayDay2    int  `json:"biweeklyPayDay2"`
	DraftLeadDays      int  `json:"draftLeadDays"`
	AutoGenerateDrafts bool `json:"autoGenerateDrafts"`

	// Notifications.
	NotifyDraftGenerated bool `json:"notifyDraftGenerated"`
	NotifyApproval       bool `json:"notifyApproval"`
	NotifyProcessed      bool `json:"notifyProcessed"`

	// Validations.
	ValidateMinimumWage bool `json:"validateMinimumWage"`

	// Calculation toggles.
	CalcTransportSubsidy bool `json:"calcTransportSubsidy"`
	CalcSocialBenefits   bool `json:"calcSocialBenefits"`

	// Employee contribution percentages (whole percents, e.g. 4.00).
	HealthPercentage  decimal.Decimal `json:"healthPercentage"`
	PensionPercentage decimal.Decimal `json:"pensionPercentage"`

	// Solidarity-fund bracket table, ordered ascending.
	FSPBrackets []FSPBracket `json:"fspBrackets"`

	// Statutory amounts.
	MinimumWage      decimal.Decimal `json:"minimumWage"`
	TransportSubsidy decimal.Decimal `json:"transportSubsidy"`

	AuditFields
}

// FSPThresholdMultiple is the minimum-wage multiple above which the
// solidarity fund applies at all.
var FSPThresholdMultiple = decimal.NewFromInt(4)

// TransportSubsidyThreshold returns the salary ceiling for transport-subsidy
// eligibility: twice the configured minimum wage.
func (c AutomationConfig) TransportSubsidyThreshold() decimal.Decimal {
	return c.MinimumWage.Mul(decimal.NewFromInt(2))
}

// SolidarityFundPercentage selects the bracket percentage for a
// social-security base, or false when the base is at or below 4x minimum
// wage (no solidarity fund owed).
func (c AutomationConfig) SolidarityFundPercentage(socialSecurityBase decimal.Decimal) (decimal.Decimal, bool) {
	if c.MinimumWage.IsZero() {
		return decimal.Zero, false
	}
	multiple := socialSecurityBase.Div(c.MinimumWage)
	if multiple.Cmp(FSPThresholdMultiple) <= 0 {
		return decimal.Zero, false
	}
	for _, b := range c.FSPBrackets {
		if b.Contains(multiple) {
			return b.Percentage, true
		}
	}
	return decimal.Zero, false
}

// DefaultAutomationConfig builds a configuration with the statutory Colombian
// defaults. Used once, at configuration-creation time.
func DefaultAutomationConfig(organizationID string) AutomationConfig {
	pct := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return AutomationConfig{
		OrganizationID:       organizationID,
		MonthlyPayDay:        30,
		BiweeklyPayDay1:      15,
		BiweeklyPayDay2:      30,
		DraftLeadDays:        5,
		AutoGenerateDrafts:   true,
		NotifyDraftGenerated: true,
		NotifyApproval:       true,
		NotifyProcessed:      true,
		ValidateMinimumWage:  true,
		CalcTransportSubsidy: true,
		CalcSocialBenefits:   true,
		HealthPercentage:     pct("4.00"),
		PensionPercentage:    pct("4.00"),
		FSPBrackets: []FSPBracket{
			{Lower: decimal.NewFromInt(4), Upper: decimal.NewFromInt(16), Percentage: pct("1.00")},
			{Lower: decimal.NewFromInt(16), Upper: decimal.NewFromInt(17), Percentage: pct("1.20")},
			{Lower: decimal.NewFromInt(17), Upper: decimal.NewFromInt(18), Percentage: pct("1.40")},
			{Lower: decimal.NewFromInt(18), Upper: decimal.NewFromInt(19), Percentage: pct("1.60")},
			{Lower: decimal.NewFromInt(19), Upper: decimal.NewFromInt(20), Percentage: pct("1.80")},
			{Lower: decimal.NewFromInt(20), Percentage: pct("2.00")},
		},
		MinimumWage:      pct("1300000"),
		TransportSubsidy: pct("162000"),
	}
}
