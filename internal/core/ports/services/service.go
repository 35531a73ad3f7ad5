package services

// ServiceContainer holds all service interfaces for dependency injection
// into the handler layer.
type ServiceContainer struct {
	EmployeeSvc   EmployeeSvcFacade
	ConceptSvc    ConceptSvcFacade
	PeriodSvc     PeriodSvcFacade
	EngineSvc     CalculationEngineSvcFacade
	WorkflowSvc   WorkflowSvcFacade
	AutomationSvc AutomationSvcFacade
	BenefitsSvc   SocialBenefitsSvcFacade
	ConfigSvc     AutoConfigSvcFacade
}
