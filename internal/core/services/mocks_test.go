package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, organizationID, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, organizationID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByDocument(ctx context.Context, organizationID, documentNumber string) (*domain.Employee, error) {
	args := m.Called(ctx, organizationID, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, organizationID string, activeOnly bool, limit int, nextToken *string) ([]domain.Employee, *string, error) {
	args := m.Called(ctx, organizationID, activeOnly, limit, nextToken)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return employees, token, args.Error(2)
}

func (m *MockEmployeeRepository) ListPayrollEligible(ctx context.Context, organizationID string) ([]domain.Employee, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, organizationID, employeeID string, terminationDate *time.Time, updatedBy string) error {
	args := m.Called(ctx, organizationID, employeeID, terminationDate, updatedBy)
	return args.Error(0)
}

// --- Mock ConceptRepository ---
type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) LoadCatalog(ctx context.Context, organizationID string) (*domain.ConceptCatalog, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConceptCatalog), args.Error(1)
}

func (m *MockConceptRepository) SaveAccrualConcept(ctx context.Context, concept domain.AccrualConcept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

func (m *MockConceptRepository) SaveDeductionConcept(ctx context.Context, concept domain.DeductionConcept) error {
	args := m.Called(ctx, concept)
	return args.Error(0)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.PayrollPeriod, error) {
	args := m.Called(ctx, organizationID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context, organizationID string, limit int, nextToken *string) ([]domain.PayrollPeriod, *string, error) {
	args := m.Called(ctx, organizationID, limit, nextToken)
	var periods []domain.PayrollPeriod
	if args.Get(0) != nil {
		periods = args.Get(0).([]domain.PayrollPeriod)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return periods, token, args.Error(2)
}

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.PayrollPeriod, workflow domain.PeriodWorkflow) error {
	args := m.Called(ctx, period, workflow)
	return args.Error(0)
}

func (m *MockPeriodRepository) UpdatePeriodTotals(ctx context.Context, organizationID, periodID string, accrued, deducted, net decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, organizationID, periodID, accrued, deducted, net, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockPeriodRepository) UpdatePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, organizationID, periodID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindAssignmentByID(ctx context.Context, organizationID, assignmentID string) (*domain.EmployeePeriodAssignment, error) {
	args := m.Called(ctx, organizationID, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeePeriodAssignment), args.Error(1)
}

func (m *MockPeriodRepository) ListAssignments(ctx context.Context, organizationID, periodID string, includedOnly bool) ([]domain.EmployeePeriodAssignment, error) {
	args := m.Called(ctx, organizationID, periodID, includedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeePeriodAssignment), args.Error(1)
}

func (m *MockPeriodRepository) SaveAssignment(ctx context.Context, assignment domain.EmployeePeriodAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockPeriodRepository) UpdateAssignment(ctx context.Context, assignment domain.EmployeePeriodAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockPeriodRepository) ReplaceEntryLines(ctx context.Context, assignment domain.EmployeePeriodAssignment, calc domain.EmployeeCalculation, calculatedAt time.Time) error {
	args := m.Called(ctx, assignment, calc, calculatedAt)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindEntry(ctx context.Context, organizationID, periodID, employeeID string) (*domain.PayrollEntry, error) {
	args := m.Called(ctx, organizationID, periodID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollEntry), args.Error(1)
}

func (m *MockPeriodRepository) AppendCalculationLog(ctx context.Context, log domain.CalculationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Mock WorkflowRepository ---
type MockWorkflowRepository struct {
	mock.Mock
}

func (m *MockWorkflowRepository) FindWorkflowByPeriod(ctx context.Context, organizationID, periodID string) (*domain.PeriodWorkflow, error) {
	args := m.Called(ctx, organizationID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodWorkflow), args.Error(1)
}

func (m *MockWorkflowRepository) TransitionWorkflow(ctx context.Context, fromState domain.WorkflowState, workflow domain.PeriodWorkflow) error {
	args := m.Called(ctx, fromState, workflow)
	return args.Error(0)
}

func (m *MockWorkflowRepository) ResetWorkflowToDraft(ctx context.Context, organizationID, periodID, updatedBy string) error {
	args := m.Called(ctx, organizationID, periodID, updatedBy)
	return args.Error(0)
}

// --- Mock ConfigRepository ---
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) FindConfig(ctx context.Context, organizationID string) (*domain.AutomationConfig, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationConfig), args.Error(1)
}

func (m *MockConfigRepository) SaveConfig(ctx context.Context, config domain.AutomationConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockConfigRepository) UpdateConfig(ctx context.Context, config domain.AutomationConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// --- Mock BenefitRepository ---
type MockBenefitRepository struct {
	mock.Mock
}

func (m *MockBenefitRepository) FindActiveContract(ctx context.Context, organizationID, employeeID string) (*domain.LaborContract, error) {
	args := m.Called(ctx, organizationID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LaborContract), args.Error(1)
}

func (m *MockBenefitRepository) SaveContract(ctx context.Context, contract domain.LaborContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockBenefitRepository) TerminateContract(ctx context.Context, organizationID, contractID, updatedBy string) error {
	args := m.Called(ctx, organizationID, contractID, updatedBy)
	return args.Error(0)
}

func (m *MockBenefitRepository) ListBenefits(ctx context.Context, organizationID, employeeID string) ([]domain.SocialBenefit, error) {
	args := m.Called(ctx, organizationID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SocialBenefit), args.Error(1)
}

func (m *MockBenefitRepository) SaveBenefit(ctx context.Context, benefit domain.SocialBenefit) error {
	args := m.Called(ctx, benefit)
	return args.Error(0)
}

func (m *MockBenefitRepository) FindProvision(ctx context.Context, organizationID, periodID, employeeID string) (*domain.MonthlyProvision, error) {
	args := m.Called(ctx, organizationID, periodID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyProvision), args.Error(1)
}

func (m *MockBenefitRepository) UpsertProvision(ctx context.Context, provision domain.MonthlyProvision) error {
	args := m.Called(ctx, provision)
	return args.Error(0)
}

// --- Mock NotificationPublisher ---
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event portssvc.PayrollEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Mock CalculationEngine ---
type MockCalculationEngine struct {
	mock.Mock
}

func (m *MockCalculationEngine) CalculatePeriod(ctx context.Context, organizationID, periodID string, runType domain.CalculationRunType, triggeredBy string) (*domain.CalculationResult, error) {
	args := m.Called(ctx, organizationID, periodID, runType, triggeredBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculationResult), args.Error(1)
}

func (m *MockCalculationEngine) CalculateAssignment(ctx context.Context, organizationID, assignmentID, triggeredBy string) (*domain.EmployeeCalculation, error) {
	args := m.Called(ctx, organizationID, assignmentID, triggeredBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeCalculation), args.Error(1)
}

func (m *MockCalculationEngine) ValidateCalculation(ctx context.Context, organizationID, periodID string) (*domain.ValidationResult, error) {
	args := m.Called(ctx, organizationID, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationResult), args.Error(1)
}

// --- Mock ConceptService ---
type MockConceptService struct {
	mock.Mock
}

func (m *MockConceptService) EnsureDefaults(ctx context.Context, organizationID, userID string) (*domain.ConceptCatalog, error) {
	args := m.Called(ctx, organizationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConceptCatalog), args.Error(1)
}

func (m *MockConceptService) GetCatalog(ctx context.Context, organizationID string) (*domain.ConceptCatalog, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConceptCatalog), args.Error(1)
}

func (m *MockConceptService) CreateAccrualConcept(ctx context.Context, organizationID string, req dto.CreateAccrualConceptRequest, userID string) (*domain.AccrualConcept, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccrualConcept), args.Error(1)
}

func (m *MockConceptService) CreateDeductionConcept(ctx context.Context, organizationID string, req dto.CreateDeductionConceptRequest, userID string) (*domain.DeductionConcept, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeductionConcept), args.Error(1)
}
