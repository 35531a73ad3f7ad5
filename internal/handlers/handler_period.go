package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests related to payroll periods, their
// assignments and calculation runs.
type periodHandler struct {
	periodService     portssvc.PeriodSvcFacade
	engineService     portssvc.CalculationEngineSvcFacade
	automationService portssvc.AutomationSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade, es portssvc.CalculationEngineSvcFacade, as portssvc.AutomationSvcFacade) *periodHandler {
	return &periodHandler{
		periodService:     ps,
		engineService:     es,
		automationService: as,
	}
}

// registerPeriodRoutes registers routes related to periods and assignments.
func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade, engineService portssvc.CalculationEngineSvcFacade, automationService portssvc.AutomationSvcFacade) {
	h := newPeriodHandler(periodService, engineService, automationService)

	periods := rg.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.POST("/generate-draft", h.generateDraft)
		periods.GET("/:periodID", h.getPeriod)
		periods.GET("/:periodID/assignments", h.listAssignments)
		periods.POST("/:periodID/calculate", h.calculatePeriod)
		periods.GET("/:periodID/validate", h.validatePeriod)
	}

	assignments := rg.Group("/assignments")
	{
		assignments.PUT("/:assignmentID", h.updateAssignment)
		assignments.POST("/:assignmentID/calculate", h.calculateAssignment)
		assignments.GET("/:assignmentID/entry", h.getEntry)
	}
}

// createPeriod creates a payroll period manually with its DRAFT workflow.
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	period, err := h.periodService.CreatePeriod(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create period"})
		}
		return
	}

	logger.Info("Period created", slog.String("period_id", period.PeriodID))
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods retrieves a token-paginated page of periods.
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	nextToken := c.Query("nextToken")

	periods, token, err := h.periodService.ListPeriods(c.Request.Context(), orgID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list periods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list periods"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPeriodsResponse{
		Periods:   dto.ToPeriodResponses(periods),
		NextToken: token,
	})
}

// getPeriod retrieves one period.
func (h *periodHandler) getPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	period, err := h.periodService.GetPeriod(c.Request.Context(), orgID, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to get period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve period"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// generateDraft runs the automation pipeline for one cycle: period creation,
// employee assignment and the initial calculation.
func (h *periodHandler) generateDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	at := time.Now().UTC()
	if req.At != nil {
		at = *req.At
	}
	actorID, _ := middleware.GetActorIDFromContext(c)

	draft, err := h.automationService.GenerateDraft(c.Request.Context(), orgID, req.Type, at, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Draft already generated for cycle", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to generate draft", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate draft"})
		}
		return
	}

	logger.Info("Draft generated",
		slog.String("period_id", draft.Period.PeriodID),
		slog.Int("employees_assigned", draft.EmployeesAssigned))
	c.JSON(http.StatusCreated, dto.DraftGenerationResponse{
		Period:            dto.ToPeriodResponse(&draft.Period),
		Workflow:          dto.ToWorkflowResponse(&draft.Workflow),
		EmployeesAssigned: draft.EmployeesAssigned,
		Calculation:       dto.ToCalculationResultResponse(&draft.Calculation),
	})
}

// listAssignments retrieves the assignments of a period.
func (h *periodHandler) listAssignments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")
	includedOnly := c.Query("includedOnly") == "true"

	assignments, err := h.periodService.ListAssignments(c.Request.Context(), orgID, periodID, includedOnly)
	if err != nil {
		logger.Error("Failed to list assignments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponses(assignments))
}

// calculatePeriod runs a batch calculation over the period. Per-employee
// failures come back inside the result; only fatal errors reach here.
func (h *periodHandler) calculatePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculatePeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}
	runType := req.RunType
	if runType == "" {
		runType = domain.RunManual
	}

	actorID, _ := middleware.GetActorIDFromContext(c)
	logger = logger.With(slog.String("period_id", periodID), slog.String("run_type", string(runType)))

	result, err := h.engineService.CalculatePeriod(c.Request.Context(), orgID, periodID, runType, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Calculation rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Calculation run failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation run failed"})
		}
		return
	}

	logger.Info("Calculation run finished",
		slog.Int("processed", result.EmployeesProcessed),
		slog.Int("failed", result.EmployeesFailed))
	c.JSON(http.StatusOK, dto.ToCalculationResultResponse(result))
}

// validatePeriod runs the pre-submission validation checks.
func (h *periodHandler) validatePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	result, err := h.engineService.ValidateCalculation(c.Request.Context(), orgID, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Period not found"})
		} else {
			logger.Error("Failed to validate period", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate period"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToValidationResultResponse(result))
}

// updateAssignment applies manual adjustments to an assignment while its
// period is still editable.
func (h *periodHandler) updateAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	assignmentID := c.Param("assignmentID")

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAssignment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	assignment, err := h.periodService.UpdateAssignment(c.Request.Context(), orgID, assignmentID, req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update assignment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
		}
		return
	}

	logger.Info("Assignment updated", slog.String("assignment_id", assignmentID))
	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// calculateAssignment recalculates a single employee without touching the
// rest of the period.
func (h *periodHandler) calculateAssignment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	assignmentID := c.Param("assignmentID")

	actorID, _ := middleware.GetActorIDFromContext(c)

	calc, err := h.engineService.CalculateAssignment(c.Request.Context(), orgID, assignmentID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to calculate assignment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate assignment"})
		}
		return
	}

	logger.Info("Assignment calculated", slog.String("assignment_id", assignmentID))
	c.JSON(http.StatusOK, dto.ToEmployeeCalculationResponse(calc))
}

// getEntry retrieves the computed entry with its line items.
func (h *periodHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	assignmentID := c.Param("assignmentID")

	entry, err := h.periodService.GetEntry(c.Request.Context(), orgID, assignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		} else {
			logger.Error("Failed to get entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}
