package handlers

import (
	"net/http"

	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
	"github.com/NominaCol/payroll_automation_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the organization-scoped /api/v1 group and
// delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.ActorIdentity())

	// Every resource is scoped to one organization.
	org := v1.Group("/organizations/:orgID")

	registerEmployeeRoutes(org, services.EmployeeSvc)
	registerConceptRoutes(org, services.ConceptSvc)
	registerPeriodRoutes(org, services.PeriodSvc, services.EngineSvc, services.AutomationSvc)
	registerWorkflowRoutes(org, services.WorkflowSvc)
	registerBenefitRoutes(org, services.BenefitsSvc)
	registerConfigRoutes(org, services.ConfigSvc)
}
