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

// conceptHandler handles HTTP requests related to the concept catalog.
type conceptHandler struct {
	conceptService portssvc.ConceptSvcFacade
}

func newConceptHandler(cs portssvc.ConceptSvcFacade) *conceptHandler {
	return &conceptHandler{conceptService: cs}
}

// registerConceptRoutes registers routes related to the concept catalog.
func registerConceptRoutes(rg *gin.RouterGroup, conceptService portssvc.ConceptSvcFacade) {
	h := newConceptHandler(conceptService)

	concepts := rg.Group("/concepts")
	{
		concepts.GET("", h.getCatalog)
		concepts.POST("/defaults", h.ensureDefaults)
		concepts.POST("/accruals", h.createAccrualConcept)
		concepts.POST("/deductions", h.createDeductionConcept)
	}
}

// getCatalog retrieves the organization's full concept catalog.
func (h *conceptHandler) getCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	catalog, err := h.conceptService.GetCatalog(c.Request.Context(), orgID)
	if err != nil {
		logger.Error("Failed to load concept catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load concept catalog"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogResponse(catalog))
}

// ensureDefaults seeds the statutory default concepts that are missing.
func (h *conceptHandler) ensureDefaults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	actorID, _ := middleware.GetActorIDFromContext(c)

	catalog, err := h.conceptService.EnsureDefaults(c.Request.Context(), orgID, actorID)
	if err != nil {
		logger.Error("Failed to seed default concepts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed default concepts"})
		return
	}

	logger.Info("Default concepts ensured", slog.String("organization_id", orgID))
	c.JSON(http.StatusOK, dto.ToCatalogResponse(catalog))
}

// createAccrualConcept adds a custom accrual concept to the catalog.
func (h *conceptHandler) createAccrualConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateAccrualConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccrualConcept", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	concept, err := h.conceptService.CreateAccrualConcept(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create accrual concept", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create accrual concept"})
		}
		return
	}

	logger.Info("Accrual concept created", slog.String("code", concept.Code))
	c.JSON(http.StatusCreated, dto.ToAccrualConceptResponse(concept))
}

// createDeductionConcept adds a custom deduction concept to the catalog.
func (h *conceptHandler) createDeductionConcept(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateDeductionConceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeductionConcept", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	concept, err := h.conceptService.CreateDeductionConcept(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create deduction concept", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deduction concept"})
		}
		return
	}

	logger.Info("Deduction concept created", slog.String("code", concept.Code))
	c.JSON(http.StatusCreated, dto.ToDeductionConceptResponse(concept))
}
