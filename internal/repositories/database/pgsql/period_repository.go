package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/models"
	"github.com/NominaCol/payroll_automation_app/internal/utils/mapping"
	"github.com/NominaCol/payroll_automation_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const periodColumns = `period_id, organization_id, name, period_type,
	start_date, end_date, pay_date, status,
	total_accrued, total_deducted, total_net, notes,
	created_at, created_by, last_updated_at, last_updated_by`

const assignmentColumns = `assignment_id, organization_id, period_id, employee_id, employee_name,
	included, exclusion_reason, period_salary, days_worked,
	total_accrued, total_deducted, net_pay,
	auto_calculated, calculated_at, needs_recalculation,
	extra_accruals, fixed_deductions,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for periods, assignments,
// entries and calculation logs.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

func scanPeriod(row pgx.Row) (models.PayrollPeriod, error) {
	var m models.PayrollPeriod
	err := row.Scan(
		&m.PeriodID, &m.OrganizationID, &m.Name, &m.PeriodType,
		&m.StartDate, &m.EndDate, &m.PayDate, &m.Status,
		&m.TotalAccrued, &m.TotalDeducted, &m.TotalNet, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanAssignment(row pgx.Row) (models.EmployeePeriodAssignment, error) {
	var m models.EmployeePeriodAssignment
	err := row.Scan(
		&m.AssignmentID, &m.OrganizationID, &m.PeriodID, &m.EmployeeID, &m.EmployeeName,
		&m.Included, &m.ExclusionReason, &m.PeriodSalary, &m.DaysWorked,
		&m.TotalAccrued, &m.TotalDeducted, &m.NetPay,
		&m.AutoCalculated, &m.CalculatedAt, &m.NeedsRecalculation,
		&m.ExtraAccruals, &m.FixedDeductions,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SavePeriod inserts the period and its DRAFT workflow row in one transaction.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.PayrollPeriod, workflow domain.PeriodWorkflow) error {
	mp := mapping.ToModelPeriod(period)
	mw, err := mapping.ToModelWorkflow(workflow)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	periodQuery := `
		INSERT INTO payroll_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, periodQuery,
		mp.PeriodID, mp.OrganizationID, mp.Name, mp.PeriodType,
		mp.StartDate, mp.EndDate, mp.PayDate, mp.Status,
		mp.TotalAccrued, mp.TotalDeducted, mp.TotalNet, mp.Notes,
		mp.CreatedAt, mp.CreatedBy, mp.LastUpdatedAt, mp.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: period %s already exists", apperrors.ErrDuplicate, mp.Name)
		}
		return fmt.Errorf("failed to save period %s: %w", mp.Name, err)
	}

	workflowQuery := `
		INSERT INTO period_workflows (workflow_id, organization_id, period_id, state, drafted_at,
			validations_passed, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, workflowQuery,
		mw.WorkflowID, mw.OrganizationID, mw.PeriodID, mw.State, mw.DraftedAt,
		mw.ValidationsPassed, mw.CreatedAt, mw.CreatedBy, mw.LastUpdatedAt, mw.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save workflow for period %s: %w", mp.PeriodID, err)
	}

	return r.Commit(ctx, tx)
}

// FindPeriodByID retrieves one period.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.PayrollPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE organization_id = $1 AND period_id = $2;`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, organizationID, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period %s: %w", periodID, err)
	}
	d := mapping.ToDomainPeriod(m)
	return &d, nil
}

// ListPeriods retrieves a page of periods, newest start date first.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.PayrollPeriod, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{organizationID}
	query := `SELECT ` + periodColumns + ` FROM payroll_periods WHERE organization_id = $1`
	if nextToken != nil && *nextToken != "" {
		startDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, startDate, createdAt)
		query += fmt.Sprintf(` AND (start_date, created_at) < ($%d, $%d)`, len(args)-1, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY start_date DESC, created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	modelPeriods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PayrollPeriod, error) {
		return scanPeriod(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan periods: %w", err)
	}

	var token *string
	if len(modelPeriods) > limit {
		modelPeriods = modelPeriods[:limit]
		last := modelPeriods[limit-1]
		t := pagination.EncodeToken(last.StartDate, last.CreatedAt)
		token = &t
	}
	return mapping.ToDomainPeriodSlice(modelPeriods), token, nil
}

// UpdatePeriodTotals writes the aggregate totals after a calculation run.
func (r *PgxPeriodRepository) UpdatePeriodTotals(ctx context.Context, organizationID, periodID string, accrued, deducted, net decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payroll_periods SET
			total_accrued = $3, total_deducted = $4, total_net = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE organization_id = $1 AND period_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, periodID, accrued, deducted, net, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update totals for period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePeriodStatus mirrors the workflow state onto the period row.
func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payroll_periods SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND period_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, periodID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveAssignment inserts a new employee-period assignment.
func (r *PgxPeriodRepository) SaveAssignment(ctx context.Context, assignment domain.EmployeePeriodAssignment) error {
	m, err := mapping.ToModelAssignment(assignment)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO period_assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.AssignmentID, m.OrganizationID, m.PeriodID, m.EmployeeID, m.EmployeeName,
		m.Included, m.ExclusionReason, m.PeriodSalary, m.DaysWorked,
		m.TotalAccrued, m.TotalDeducted, m.NetPay,
		m.AutoCalculated, m.CalculatedAt, m.NeedsRecalculation,
		m.ExtraAccruals, m.FixedDeductions,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee %s already assigned to period %s", apperrors.ErrDuplicate, m.EmployeeID, m.PeriodID)
		}
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

// UpdateAssignment updates the mutable assignment columns.
func (r *PgxPeriodRepository) UpdateAssignment(ctx context.Context, assignment domain.EmployeePeriodAssignment) error {
	m, err := mapping.ToModelAssignment(assignment)
	if err != nil {
		return err
	}

	query := `
		UPDATE period_assignments SET
			included = $3, exclusion_reason = $4, period_salary = $5, days_worked = $6,
			auto_calculated = $7, needs_recalculation = $8,
			extra_accruals = $9, fixed_deductions = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE organization_id = $1 AND assignment_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.AssignmentID,
		m.Included, m.ExclusionReason, m.PeriodSalary, m.DaysWorked,
		m.AutoCalculated, m.NeedsRecalculation,
		m.ExtraAccruals, m.FixedDeductions,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment %s: %w", m.AssignmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAssignmentByID retrieves one assignment.
func (r *PgxPeriodRepository) FindAssignmentByID(ctx context.Context, organizationID, assignmentID string) (*domain.EmployeePeriodAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM period_assignments WHERE organization_id = $1 AND assignment_id = $2;`

	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, organizationID, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find assignment %s: %w", assignmentID, err)
	}
	d, err := mapping.ToDomainAssignment(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListAssignments retrieves the assignments of a period.
func (r *PgxPeriodRepository) ListAssignments(ctx context.Context, organizationID, periodID string, includedOnly bool) ([]domain.EmployeePeriodAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM period_assignments WHERE organization_id = $1 AND period_id = $2`
	if includedOnly {
		query += ` AND included`
	}
	query += ` ORDER BY employee_name;`

	rows, err := r.Pool.Query(ctx, query, organizationID, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for period %s: %w", periodID, err)
	}
	defer rows.Close()

	modelAssignments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EmployeePeriodAssignment, error) {
		return scanAssignment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments for period %s: %w", periodID, err)
	}

	assignments := make([]domain.EmployeePeriodAssignment, len(modelAssignments))
	for i, m := range modelAssignments {
		assignments[i], err = mapping.ToDomainAssignment(m)
		if err != nil {
			return nil, err
		}
	}
	return assignments, nil
}

// ReplaceEntryLines swaps an employee's computed line items atomically:
// upsert the entry, delete the prior lines, batch-insert the new ones, and
// update the entry and assignment totals, all in one transaction.
func (r *PgxPeriodRepository) ReplaceEntryLines(ctx context.Context, assignment domain.EmployeePeriodAssignment, calc domain.EmployeeCalculation, calculatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	entryQuery := `
		INSERT INTO payroll_entries (entry_id, organization_id, period_id, employee_id, days_worked,
			total_accrued, total_deducted, net_pay,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $8, $9)
		ON CONFLICT (period_id, employee_id) DO UPDATE SET
			days_worked = EXCLUDED.days_worked,
			total_accrued = EXCLUDED.total_accrued,
			total_deducted = EXCLUDED.total_deducted,
			net_pay = EXCLUDED.net_pay,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING entry_id;
	`
	var entryID string
	err = tx.QueryRow(ctx, entryQuery,
		assignment.OrganizationID, assignment.PeriodID, assignment.EmployeeID, assignment.DaysWorked,
		calc.TotalAccrued, calc.TotalDeducted, calc.NetPay,
		calculatedAt, assignment.LastUpdatedBy,
	).Scan(&entryID)
	if err != nil {
		return fmt.Errorf("failed to upsert entry for employee %s: %w", assignment.EmployeeID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM entry_accruals WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to clear accrual lines for entry %s: %w", entryID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM entry_deductions WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to clear deduction lines for entry %s: %w", entryID, err)
	}

	batch := &pgx.Batch{}
	accrualInsert := `
		INSERT INTO entry_accruals (accrual_id, entry_id, concept_id, concept_code,
			quantity, unit_value, total, counts_social_security, counts_benefits_base)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, a := range calc.Accruals {
		batch.Queue(accrualInsert, entryID, a.ConceptID, a.ConceptCode,
			a.Quantity, a.UnitValue, a.Total, a.CountsSocialSecurity, a.CountsBenefitsBase)
	}
	deductionInsert := `
		INSERT INTO entry_deductions (deduction_id, entry_id, concept_id, concept_code,
			base, percentage, total)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6);
	`
	for _, d := range calc.Deductions {
		batch.Queue(deductionInsert, entryID, d.ConceptID, d.ConceptCode, d.Base, d.Percentage, d.Total)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert entry lines for entry %s: %w", entryID, err)
		}
	}

	assignmentUpdate := `
		UPDATE period_assignments SET
			total_accrued = $3, total_deducted = $4, net_pay = $5,
			calculated_at = $6, needs_recalculation = FALSE,
			last_updated_at = $6, last_updated_by = $7
		WHERE organization_id = $1 AND assignment_id = $2;
	`
	tag, err := tx.Exec(ctx, assignmentUpdate,
		assignment.OrganizationID, assignment.AssignmentID,
		calc.TotalAccrued, calc.TotalDeducted, calc.NetPay,
		calculatedAt, assignment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment totals %s: %w", assignment.AssignmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindEntry retrieves the entry with its line items.
func (r *PgxPeriodRepository) FindEntry(ctx context.Context, organizationID, periodID, employeeID string) (*domain.PayrollEntry, error) {
	entryQuery := `
		SELECT entry_id, organization_id, period_id, employee_id, days_worked,
			total_accrued, total_deducted, net_pay,
			created_at, created_by, last_updated_at, last_updated_by
		FROM payroll_entries
		WHERE organization_id = $1 AND period_id = $2 AND employee_id = $3;
	`
	var me models.PayrollEntry
	err := r.Pool.QueryRow(ctx, entryQuery, organizationID, periodID, employeeID).Scan(
		&me.EntryID, &me.OrganizationID, &me.PeriodID, &me.EmployeeID, &me.DaysWorked,
		&me.TotalAccrued, &me.TotalDeducted, &me.NetPay,
		&me.CreatedAt, &me.CreatedBy, &me.LastUpdatedAt, &me.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry for employee %s in period %s: %w", employeeID, periodID, err)
	}

	accrualQuery := `
		SELECT accrual_id, entry_id, concept_id, concept_code,
			quantity, unit_value, total, counts_social_security, counts_benefits_base
		FROM entry_accruals WHERE entry_id = $1 ORDER BY concept_code;
	`
	rows, err := r.Pool.Query(ctx, accrualQuery, me.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accrual lines for entry %s: %w", me.EntryID, err)
	}
	modelAccruals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Accrual, error) {
		var m models.Accrual
		err := row.Scan(&m.AccrualID, &m.EntryID, &m.ConceptID, &m.ConceptCode,
			&m.Quantity, &m.UnitValue, &m.Total, &m.CountsSocialSecurity, &m.CountsBenefitsBase)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accrual lines for entry %s: %w", me.EntryID, err)
	}

	deductionQuery := `
		SELECT deduction_id, entry_id, concept_id, concept_code, base, percentage, total
		FROM entry_deductions WHERE entry_id = $1 ORDER BY concept_code;
	`
	rows, err = r.Pool.Query(ctx, deductionQuery, me.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deduction lines for entry %s: %w", me.EntryID, err)
	}
	modelDeductions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Deduction, error) {
		var m models.Deduction
		err := row.Scan(&m.DeductionID, &m.EntryID, &m.ConceptID, &m.ConceptCode,
			&m.Base, &m.Percentage, &m.Total)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan deduction lines for entry %s: %w", me.EntryID, err)
	}

	entry := mapping.ToDomainEntry(me)
	entry.Accruals = make([]domain.Accrual, len(modelAccruals))
	for i, m := range modelAccruals {
		entry.Accruals[i] = mapping.ToDomainAccrual(m)
	}
	entry.Deductions = make([]domain.Deduction, len(modelDeductions))
	for i, m := range modelDeductions {
		entry.Deductions[i] = mapping.ToDomainDeduction(m)
	}
	return &entry, nil
}

// AppendCalculationLog inserts one audit record; the table is append-only.
func (r *PgxPeriodRepository) AppendCalculationLog(ctx context.Context, log domain.CalculationLog) error {
	m, err := mapping.ToModelCalculationLog(log)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO calculation_logs (log_id, organization_id, period_id, run_type,
			employees_processed, employees_failed,
			total_accrued, total_deducted, total_net,
			errors, warnings, started_at, finished_at, duration_seconds, triggered_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.LogID, m.OrganizationID, m.PeriodID, m.RunType,
		m.EmployeesProcessed, m.EmployeesFailed,
		m.TotalAccrued, m.TotalDeducted, m.TotalNet,
		m.Errors, m.Warnings, m.StartedAt, m.FinishedAt, m.DurationSeconds, m.TriggeredBy,
	)
	if err != nil {
		return fmt.Errorf("failed to append calculation log for period %s: %w", m.PeriodID, err)
	}
	return nil
}
