package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// benefitHandler handles HTTP requests for social benefits: balances,
// liquidations and monthly provisions.
type benefitHandler struct {
	benefitsService portssvc.SocialBenefitsSvcFacade
}

func newBenefitHandler(bs portssvc.SocialBenefitsSvcFacade) *benefitHandler {
	return &benefitHandler{benefitsService: bs}
}

// registerBenefitRoutes registers social-benefit routes.
func registerBenefitRoutes(rg *gin.RouterGroup, benefitsService portssvc.SocialBenefitsSvcFacade) {
	h := newBenefitHandler(benefitsService)

	employees := rg.Group("/employees/:employeeID")
	{
		employees.GET("/benefits", h.getBenefitBalances)
		employees.POST("/liquidate", h.liquidate)
	}

	rg.POST("/periods/:periodID/provisions", h.generateProvisions)
}

// getBenefitBalances retrieves the employee's balances for all four kinds.
func (h *benefitHandler) getBenefitBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	employeeID := c.Param("employeeID")

	balances, err := h.benefitsService.BenefitBalances(c.Request.Context(), orgID, employeeID)
	if err != nil {
		logger.Error("Failed to get benefit balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve benefit balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBenefitBalancesResponse(employeeID, balances))
}

// liquidate computes and persists the employee's full termination settlement.
func (h *benefitHandler) liquidate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	employeeID := c.Param("employeeID")

	var req dto.LiquidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Liquidate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	cutoff := time.Now().UTC()
	if req.CutoffDate != nil {
		cutoff = *req.CutoffDate
	}
	actorID, _ := middleware.GetActorIDFromContext(c)
	logger = logger.With(slog.String("employee_id", employeeID))

	result, err := h.benefitsService.Liquidate(c.Request.Context(), orgID, employeeID, cutoff, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No active contract to liquidate")
			c.JSON(http.StatusNotFound, gin.H{"error": "No active contract found for employee"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to liquidate employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to liquidate employee"})
		}
		return
	}

	logger.Info("Employee liquidated", slog.String("total", result.Total.String()))
	c.JSON(http.StatusOK, dto.ToLiquidationResponse(result))
}

// generateProvisions computes the monthly benefit provision for every
// included employee of a period.
func (h *benefitHandler) generateProvisions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	actorID, _ := middleware.GetActorIDFromContext(c)

	created, err := h.benefitsService.GenerateProvisionsForPeriod(c.Request.Context(), orgID, periodID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to generate provisions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate provisions"})
		}
		return
	}

	logger.Info("Provisions generated",
		slog.String("period_id", periodID), slog.Int("count", created))
	c.JSON(http.StatusOK, gin.H{"provisionsGenerated": created})
}
