package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationLog represents a row in the calculation_logs table. The table
// is append-only; errors and warnings are stored as JSONB.
type CalculationLog struct {
	LogID              string          `db:"log_id"`
	OrganizationID     string          `db:"organization_id"`
	PeriodID           string          `db:"period_id"`
	RunType            string          `db:"run_type"`
	EmployeesProcessed int             `db:"employees_processed"`
	EmployeesFailed    int             `db:"employees_failed"`
	TotalAccrued       decimal.Decimal `db:"total_accrued"`
	TotalDeducted      decimal.Decimal `db:"total_deducted"`
	TotalNet           decimal.Decimal `db:"total_net"`
	Errors             []byte          `db:"errors"`
	Warnings           []byte          `db:"warnings"`
	StartedAt          time.Time       `db:"started_at"`
	FinishedAt         time.Time       `db:"finished_at"`
	DurationSeconds    float64         `db:"duration_seconds"`
	TriggeredBy        string          `db:"triggered_by"`
}
