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

// workflowHandler handles HTTP requests for period approval workflows.
type workflowHandler struct {
	workflowService portssvc.WorkflowSvcFacade
}

func newWorkflowHandler(ws portssvc.WorkflowSvcFacade) *workflowHandler {
	return &workflowHandler{workflowService: ws}
}

// registerWorkflowRoutes registers workflow action routes under periods.
func registerWorkflowRoutes(rg *gin.RouterGroup, workflowService portssvc.WorkflowSvcFacade) {
	h := newWorkflowHandler(workflowService)

	workflow := rg.Group("/periods/:periodID/workflow")
	{
		workflow.GET("", h.getWorkflow)
		workflow.POST("/submit", h.submitForReview)
		workflow.POST("/approve", h.approve)
		workflow.POST("/reject", h.reject)
		workflow.POST("/process", h.process)
	}
}

// getWorkflow retrieves the approval record of a period.
func (h *workflowHandler) getWorkflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	workflow, err := h.workflowService.GetWorkflow(c.Request.Context(), orgID, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not found"})
		} else {
			logger.Error("Failed to get workflow", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workflow"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkflowResponse(workflow))
}

// submitForReview moves a DRAFT period into review after the validation gate.
func (h *workflowHandler) submitForReview(c *gin.Context) {
	h.transition(c, "submit", func(c *gin.Context, orgID, periodID, actorID, notes string) (interface{}, error) {
		workflow, err := h.workflowService.SubmitForReview(c.Request.Context(), orgID, periodID, actorID, notes)
		if err != nil {
			return nil, err
		}
		return dto.ToWorkflowResponse(workflow), nil
	})
}

// approve moves an IN_REVIEW period to APPROVED.
func (h *workflowHandler) approve(c *gin.Context) {
	h.transition(c, "approve", func(c *gin.Context, orgID, periodID, actorID, notes string) (interface{}, error) {
		workflow, err := h.workflowService.Approve(c.Request.Context(), orgID, periodID, actorID, notes)
		if err != nil {
			return nil, err
		}
		return dto.ToWorkflowResponse(workflow), nil
	})
}

// reject returns an IN_REVIEW period to REJECTED; the reason is mandatory.
func (h *workflowHandler) reject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	workflow, err := h.workflowService.Reject(c.Request.Context(), orgID, periodID, actorID, req.Reason)
	if err != nil {
		h.respondTransitionError(c, logger, "reject", err)
		return
	}

	logger.Info("Period rejected", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.ToWorkflowResponse(workflow))
}

// process marks an APPROVED period as PROCESSED, the terminal state.
func (h *workflowHandler) process(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	actorID, _ := middleware.GetActorIDFromContext(c)

	workflow, err := h.workflowService.Process(c.Request.Context(), orgID, periodID, actorID)
	if err != nil {
		h.respondTransitionError(c, logger, "process", err)
		return
	}

	logger.Info("Period processed", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.ToWorkflowResponse(workflow))
}

type transitionFunc func(c *gin.Context, orgID, periodID, actorID, notes string) (interface{}, error)

func (h *workflowHandler) transition(c *gin.Context, action string, fn transitionFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for workflow action",
			slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID, _ := middleware.GetActorIDFromContext(c)

	resp, err := fn(c, orgID, periodID, actorID, req.Notes)
	if err != nil {
		h.respondTransitionError(c, logger, action, err)
		return
	}

	logger.Info("Workflow action applied",
		slog.String("action", action), slog.String("period_id", periodID))
	c.JSON(http.StatusOK, resp)
}

func (h *workflowHandler) respondTransitionError(c *gin.Context, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Period workflow not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Workflow action rejected by validation",
			slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Illegal workflow transition",
			slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Workflow action failed",
			slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Workflow action failed"})
	}
}
