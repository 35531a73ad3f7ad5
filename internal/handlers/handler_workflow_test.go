package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/handlers"
	"github.com/NominaCol/payroll_automation_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WorkflowService ---
type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) SubmitForReview(ctx context.Context, organizationID, periodID, userID, notes string) (*domain.PeriodWorkflow, error) {
	args := m.Called(ctx, organizationID, periodID, userID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodWorkflow), args.Error(1)
}
func (m *MockWorkflowService) Approve(ctx context.Context, organizationID, periodID, userID, notes string) (*domain.PeriodWorkflow, error) {
	args := m.Called(ctx, organizationID, periodID, userID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodWorkflow), args.Error(1)
}
func (m *MockWorkflowService) Reject(ctx context.Context, organizationID, periodID, userID, reason string) (*domain.PeriodWorkflow, error) {
	args := m.Called(ctx, organizationID, periodID, userID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodWorkflow), args.Error(1)
}
func (m *MockWorkflowService) Process(ctx context.Context, organizationID, periodID, userID string) (*domain.PeriodWorkflow, error) {
	args := m.Called(ctx, organizationID, periodID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodWorkflow), args.Error(1)
}
func (m *MockWorkflowService) GetWorkflow(ctx context.Context, organizationID, periodID string) (*domain.PeriodWorkflow, error) {
	args := m.Called(ctx, organizationID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodWorkflow), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.WorkflowSvcFacade = (*MockWorkflowService)(nil)

// --- Test Suite ---
type WorkflowHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockWorkflowService *MockWorkflowService
}

func (suite *WorkflowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockWorkflowService = new(MockWorkflowService)

	// Only the workflow facade is exercised here; the rest stay nil.
	services := &portssvc.ServiceContainer{WorkflowSvc: suite.mockWorkflowService}
	handlers.RegisterRoutes(suite.router, &config.Config{}, services)
}

func (suite *WorkflowHandlerTestSuite) postJSON(url, actorID string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", actorID)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WorkflowHandlerTestSuite) TestApprove_Success() {
	orgID := uuid.NewString()
	periodID := uuid.NewString()
	actorID := uuid.NewString()
	now := time.Now()

	expected := &domain.PeriodWorkflow{
		WorkflowID:     uuid.NewString(),
		OrganizationID: orgID,
		PeriodID:       periodID,
		State:          domain.StateApproved,
		ApprovedAt:     &now,
		ApprovedBy:     actorID,
		ApprovalNotes:  "looks good",
	}

	suite.mockWorkflowService.On("Approve",
		mock.Anything, orgID, periodID, actorID, "looks good",
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/periods/%s/workflow/approve", orgID, periodID)
	w := suite.postJSON(url, actorID, dto.TransitionRequest{Notes: "looks good"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.WorkflowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StateApproved, resp.State)
	suite.Equal(actorID, resp.ApprovedBy)
	suite.mockWorkflowService.AssertExpectations(suite.T())
}

func (suite *WorkflowHandlerTestSuite) TestApprove_IllegalTransitionIsConflict() {
	orgID := uuid.NewString()
	periodID := uuid.NewString()
	actorID := uuid.NewString()

	suite.mockWorkflowService.On("Approve",
		mock.Anything, orgID, periodID, actorID, "",
	).Return(nil, fmt.Errorf("%w: workflow for period %s is no longer in state REVIEW", apperrors.ErrConflict, periodID)).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/periods/%s/workflow/approve", orgID, periodID)
	w := suite.postJSON(url, actorID, dto.TransitionRequest{})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockWorkflowService.AssertExpectations(suite.T())
}

func (suite *WorkflowHandlerTestSuite) TestReject_RequiresReason() {
	orgID := uuid.NewString()
	periodID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/organizations/%s/periods/%s/workflow/reject", orgID, periodID)
	w := suite.postJSON(url, uuid.NewString(), map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWorkflowService.AssertNotCalled(suite.T(), "Reject")
}

func (suite *WorkflowHandlerTestSuite) TestProcess_MissingActorFallsBackToSystem() {
	orgID := uuid.NewString()
	periodID := uuid.NewString()

	expected := &domain.PeriodWorkflow{
		WorkflowID:     uuid.NewString(),
		OrganizationID: orgID,
		PeriodID:       periodID,
		State:          domain.StateProcessed,
	}
	suite.mockWorkflowService.On("Process",
		mock.Anything, orgID, periodID, "system",
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/periods/%s/workflow/process", orgID, periodID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockWorkflowService.AssertExpectations(suite.T())
}

func (suite *WorkflowHandlerTestSuite) TestGetWorkflow_NotFound() {
	orgID := uuid.NewString()
	periodID := uuid.NewString()

	suite.mockWorkflowService.On("GetWorkflow",
		mock.Anything, orgID, periodID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/periods/%s/workflow", orgID, periodID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockWorkflowService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestWorkflowHandler(t *testing.T) {
	suite.Run(t, new(WorkflowHandlerTestSuite))
}
