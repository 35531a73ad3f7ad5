package services

import (
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repository dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portssvc.NotificationPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.EmployeeSvc = NewEmployeeService(repos.EmployeeRepo, repos.BenefitRepo)
	container.ConceptSvc = NewConceptService(repos.ConceptRepo)
	container.PeriodSvc = NewPeriodService(repos.PeriodRepo)
	container.EngineSvc = NewCalculationEngine(repos.PeriodRepo, repos.ConceptRepo, repos.ConfigRepo, repos.WorkflowRepo)
	container.WorkflowSvc = NewWorkflowService(repos.WorkflowRepo, repos.ConfigRepo, container.EngineSvc, publisher)
	container.AutomationSvc = NewAutomationService(repos.ConfigRepo, repos.EmployeeRepo, repos.PeriodRepo, container.ConceptSvc, container.EngineSvc, publisher)
	container.BenefitsSvc = NewSocialBenefitsService(repos.BenefitRepo, repos.EmployeeRepo, repos.PeriodRepo)
	container.ConfigSvc = NewAutoConfigService(repos.ConfigRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.EmployeeSvcFacade          = (*employeeService)(nil)
	_ portssvc.ConceptSvcFacade           = (*conceptService)(nil)
	_ portssvc.PeriodSvcFacade            = (*periodService)(nil)
	_ portssvc.CalculationEngineSvcFacade = (*calculationEngine)(nil)
	_ portssvc.WorkflowSvcFacade          = (*workflowService)(nil)
	_ portssvc.AutomationSvcFacade        = (*automationService)(nil)
	_ portssvc.SocialBenefitsSvcFacade    = (*socialBenefitsService)(nil)
	_ portssvc.AutoConfigSvcFacade        = (*autoConfigService)(nil)
)
