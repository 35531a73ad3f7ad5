package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// configHandler handles HTTP requests for the automation configuration.
type configHandler struct {
	configService portssvc.AutoConfigSvcFacade
}

func newConfigHandler(cs portssvc.AutoConfigSvcFacade) *configHandler {
	return &configHandler{configService: cs}
}

// registerConfigRoutes registers automation configuration routes.
func registerConfigRoutes(rg *gin.RouterGroup, configService portssvc.AutoConfigSvcFacade) {
	h := newConfigHandler(configService)

	rg.GET("/automation-config", h.getConfig)
	rg.PUT("/automation-config", h.updateConfig)
}

// getConfig retrieves the effective configuration, defaults included.
func (h *configHandler) getConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	config, err := h.configService.GetConfig(c.Request.Context(), orgID)
	if err != nil {
		logger.Error("Failed to get automation config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve automation config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAutomationConfigResponse(config))
}

// updateConfig patches the configuration, creating it on first write.
func (h *configHandler) updateConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.UpdateAutomationConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAutomationConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	config, err := h.configService.UpdateConfig(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update automation config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update automation config"})
		}
		return
	}

	logger.Info("Automation config updated", slog.String("organization_id", orgID))
	c.JSON(http.StatusOK, dto.ToAutomationConfigResponse(config))
}
