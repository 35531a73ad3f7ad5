package pgsql

import (
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	employeeRepo := newPgxEmployeeRepository(dbPool)
	conceptRepo := newPgxConceptRepository(dbPool)
	periodRepo := newPgxPeriodRepository(dbPool)
	workflowRepo := newPgxWorkflowRepository(dbPool)
	benefitRepo := newPgxBenefitRepository(dbPool)
	configRepo := newPgxConfigRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EmployeeRepo: employeeRepo,
		ConceptRepo:  conceptRepo,
		PeriodRepo:   periodRepo,
		WorkflowRepo: workflowRepo,
		BenefitRepo:  benefitRepo,
		ConfigRepo:   configRepo,
	}
}
