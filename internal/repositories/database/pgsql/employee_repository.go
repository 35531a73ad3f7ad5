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
)

const employeeColumns = `employee_id, organization_id, document_type, document_number,
	first_name, middle_name, last_name, second_last_name, email, position,
	contract_type, hire_date, termination_date, base_salary,
	bank_name, bank_account_type, bank_account_number,
	payroll_eligible, active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.OrganizationID,
		&m.DocumentType,
		&m.DocumentNumber,
		&m.FirstName,
		&m.MiddleName,
		&m.LastName,
		&m.SecondLastName,
		&m.Email,
		&m.Position,
		&m.ContractType,
		&m.HireDate,
		&m.TerminationDate,
		&m.BaseSalary,
		&m.BankName,
		&m.BankAccountType,
		&m.BankAccountNumber,
		&m.PayrollEligible,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEmployee inserts a new employee row.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.OrganizationID, m.DocumentType, m.DocumentNumber,
		m.FirstName, m.MiddleName, m.LastName, m.SecondLastName, m.Email, m.Position,
		m.ContractType, m.HireDate, m.TerminationDate, m.BaseSalary,
		m.BankName, m.BankAccountType, m.BankAccountNumber,
		m.PayrollEligible, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: document number %s already registered", apperrors.ErrDuplicate, m.DocumentNumber)
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

// UpdateEmployee updates the mutable employee columns.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees SET
			first_name = $3, middle_name = $4, last_name = $5, second_last_name = $6,
			email = $7, position = $8, contract_type = $9, base_salary = $10,
			bank_name = $11, bank_account_type = $12, bank_account_number = $13,
			payroll_eligible = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE organization_id = $1 AND employee_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID, m.EmployeeID,
		m.FirstName, m.MiddleName, m.LastName, m.SecondLastName,
		m.Email, m.Position, m.ContractType, m.BaseSalary,
		m.BankName, m.BankAccountType, m.BankAccountNumber,
		m.PayrollEligible,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", m.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateEmployee marks the employee inactive; rows are never deleted.
func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, organizationID, employeeID string, terminationDate *time.Time, updatedBy string) error {
	query := `
		UPDATE employees SET
			active = FALSE,
			termination_date = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND employee_id = $2 AND active;
	`
	tag, err := r.Pool.Exec(ctx, query, organizationID, employeeID, terminationDate, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEmployeeByID retrieves one employee.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 AND employee_id = $2;`

	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, organizationID, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// FindEmployeeByDocument retrieves one employee by document number.
func (r *PgxEmployeeRepository) FindEmployeeByDocument(ctx context.Context, organizationID, documentNumber string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1 AND document_number = $2;`

	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, organizationID, documentNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by document %s: %w", documentNumber, err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// ListEmployees retrieves a page of employees using created_at token pagination.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, organizationID string, activeOnly bool, limit int, nextToken *string) ([]domain.Employee, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	args := []interface{}{organizationID}
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE organization_id = $1`
	if activeOnly {
		query += ` AND active AND payroll_eligible`
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursor)
		query += fmt.Sprintf(` AND created_at < $%d`, len(args))
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	var token *string
	if len(modelEmployees) > limit {
		modelEmployees = modelEmployees[:limit]
		t := pagination.EncodeDateBasedToken(modelEmployees[limit-1].CreatedAt)
		token = &t
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees), token, nil
}

// ListPayrollEligible retrieves every active, payroll-eligible employee.
func (r *PgxEmployeeRepository) ListPayrollEligible(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE organization_id = $1 AND active AND payroll_eligible
		ORDER BY last_name, first_name;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll-eligible employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payroll-eligible employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}
