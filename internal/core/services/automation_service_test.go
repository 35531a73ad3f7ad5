package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/core/services"
)

type AutomationServiceTestSuite struct {
	suite.Suite
	configRepo   *MockConfigRepository
	employeeRepo *MockEmployeeRepository
	periodRepo   *MockPeriodRepository
	conceptSvc   *MockConceptService
	engine       *MockCalculationEngine
	publisher    *MockPublisher
	service      portssvc.AutomationSvcFacade

	orgID  string
	config *domain.AutomationConfig
}

func (s *AutomationServiceTestSuite) SetupTest() {
	s.configRepo = new(MockConfigRepository)
	s.employeeRepo = new(MockEmployeeRepository)
	s.periodRepo = new(MockPeriodRepository)
	s.conceptSvc = new(MockConceptService)
	s.engine = new(MockCalculationEngine)
	s.publisher = new(MockPublisher)
	s.service = services.NewAutomationService(s.configRepo, s.employeeRepo, s.periodRepo, s.conceptSvc, s.engine, s.publisher)

	s.orgID = uuid.NewString()
	cfg := domain.DefaultAutomationConfig(s.orgID)
	s.config = &cfg
}

func testEmployee(orgID, salary string, hired time.Time) domain.Employee {
	return domain.Employee{
		EmployeeID:      uuid.NewString(),
		OrganizationID:  orgID,
		DocumentType:    domain.DocCitizenID,
		DocumentNumber:  uuid.NewString(),
		FirstName:       "Carlos",
		LastName:        "Gómez",
		ContractType:    domain.ContractIndefinite,
		HireDate:        hired,
		BaseSalary:      decimal.RequireFromString(salary),
		PayrollEligible: true,
		Active:          true,
	}
}

func (s *AutomationServiceTestSuite) TestGenerateDraft_MonthlyCycle() {
	ctx := context.Background()
	at := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	veteran := testEmployee(s.orgID, "1300000", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	// Hired on the 16th: 16 inclusive days through Aug 31.
	newcomer := testEmployee(s.orgID, "2000000", time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC))

	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptSvc.On("EnsureDefaults", ctx, s.orgID, "scheduler").Return(&domain.ConceptCatalog{}, nil).Once()

	var savedPeriod domain.PayrollPeriod
	s.periodRepo.On("SavePeriod", ctx, mock.Anything, mock.MatchedBy(func(w domain.PeriodWorkflow) bool {
		return w.State == domain.StateDraft
	})).Run(func(args mock.Arguments) {
		savedPeriod = args.Get(1).(domain.PayrollPeriod)
	}).Return(nil).Once()

	s.employeeRepo.On("ListPayrollEligible", ctx, s.orgID).
		Return([]domain.Employee{veteran, newcomer}, nil).Once()

	var assignments []domain.EmployeePeriodAssignment
	s.periodRepo.On("SaveAssignment", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			assignments = append(assignments, args.Get(1).(domain.EmployeePeriodAssignment))
		}).Return(nil).Twice()

	s.engine.On("CalculatePeriod", ctx, s.orgID, mock.Anything, domain.RunAutomatic, "scheduler").
		Return(&domain.CalculationResult{EmployeesProcessed: 2}, nil).Once()
	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, mock.Anything).
		Return(&domain.PayrollPeriod{Status: domain.PeriodDraft}, nil).Once()
	s.publisher.On("Publish", ctx, mock.MatchedBy(func(e portssvc.PayrollEvent) bool {
		return e.Type == portssvc.EventDraftGenerated && e.RequiresAction
	})).Return(nil).Once()

	result, err := s.service.GenerateDraft(ctx, s.orgID, domain.PeriodMonthly, at, "scheduler")

	s.Require().NoError(err)
	s.Equal(2, result.EmployeesAssigned)
	s.Equal("Nómina 2026-08", savedPeriod.Name)
	s.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), savedPeriod.StartDate)
	s.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), savedPeriod.EndDate)
	s.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), savedPeriod.PayDate)

	s.Require().Len(assignments, 2)
	s.Equal(30, assignments[0].DaysWorked)
	s.Equal(16, assignments[1].DaysWorked)
	s.True(assignments[1].PeriodSalary.Equal(newcomer.BaseSalary))
	s.publisher.AssertExpectations(s.T())
}

func (s *AutomationServiceTestSuite) TestGenerateDraft_BiweeklySecondHalf() {
	ctx := context.Background()
	at := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	employee := testEmployee(s.orgID, "1300000", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptSvc.On("EnsureDefaults", ctx, s.orgID, "scheduler").Return(&domain.ConceptCatalog{}, nil).Once()

	var savedPeriod domain.PayrollPeriod
	s.periodRepo.On("SavePeriod", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedPeriod = args.Get(1).(domain.PayrollPeriod)
		}).Return(nil).Once()
	s.employeeRepo.On("ListPayrollEligible", ctx, s.orgID).Return([]domain.Employee{employee}, nil).Once()

	var assignment domain.EmployeePeriodAssignment
	s.periodRepo.On("SaveAssignment", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			assignment = args.Get(1).(domain.EmployeePeriodAssignment)
		}).Return(nil).Once()
	s.engine.On("CalculatePeriod", ctx, s.orgID, mock.Anything, domain.RunAutomatic, "scheduler").
		Return(&domain.CalculationResult{EmployeesProcessed: 1}, nil).Once()
	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, mock.Anything).
		Return(&domain.PayrollPeriod{Status: domain.PeriodDraft}, nil).Once()
	s.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.GenerateDraft(ctx, s.orgID, domain.PeriodBiweekly, at, "scheduler")

	s.Require().NoError(err)
	s.Equal("Nómina 2026-02 Q2", savedPeriod.Name)
	s.Equal(time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), savedPeriod.StartDate)
	// February: both the end date and the pay day clamp to the 28th.
	s.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), savedPeriod.EndDate)
	s.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), savedPeriod.PayDate)
	// A full second fortnight counts 15 commercial days.
	s.Equal(15, assignment.DaysWorked)
}

func (s *AutomationServiceTestSuite) TestGenerateDraft_CreatesDefaultConfigOnFirstUse() {
	ctx := context.Background()
	at := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	s.configRepo.On("FindConfig", ctx, s.orgID).Return(nil, apperrors.ErrNotFound).Once()
	var savedConfig domain.AutomationConfig
	s.configRepo.On("SaveConfig", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			savedConfig = args.Get(1).(domain.AutomationConfig)
		}).Return(nil).Once()
	s.conceptSvc.On("EnsureDefaults", ctx, s.orgID, "scheduler").Return(&domain.ConceptCatalog{}, nil).Once()
	s.periodRepo.On("SavePeriod", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	s.employeeRepo.On("ListPayrollEligible", ctx, s.orgID).Return([]domain.Employee{}, nil).Once()
	s.engine.On("CalculatePeriod", ctx, s.orgID, mock.Anything, domain.RunAutomatic, "scheduler").
		Return(&domain.CalculationResult{}, nil).Once()
	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, mock.Anything).
		Return(&domain.PayrollPeriod{Status: domain.PeriodDraft}, nil).Once()
	s.publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.GenerateDraft(ctx, s.orgID, domain.PeriodMonthly, at, "scheduler")

	s.Require().NoError(err)
	s.True(savedConfig.MinimumWage.Equal(decimal.RequireFromString("1300000")))
	s.True(savedConfig.TransportSubsidy.Equal(decimal.RequireFromString("162000")))
	s.Len(savedConfig.FSPBrackets, 6)
}

func (s *AutomationServiceTestSuite) TestGenerateDraft_DuplicateCycleFails() {
	ctx := context.Background()
	at := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptSvc.On("EnsureDefaults", ctx, s.orgID, "scheduler").Return(&domain.ConceptCatalog{}, nil).Once()
	s.periodRepo.On("SavePeriod", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.GenerateDraft(ctx, s.orgID, domain.PeriodMonthly, at, "scheduler")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.employeeRepo.AssertNotCalled(s.T(), "ListPayrollEligible", mock.Anything, mock.Anything)
}

func (s *AutomationServiceTestSuite) TestAssignEmployees_SkipsOutOfRangeAndDuplicates() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	active := testEmployee(s.orgID, "1300000", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	alreadyAssigned := testEmployee(s.orgID, "1500000", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	// Terminated before the period starts, so no overlap remains.
	gone := testEmployee(s.orgID, "1300000", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	termination := period.StartDate.AddDate(0, -1, 0)
	gone.TerminationDate = &termination

	s.employeeRepo.On("ListPayrollEligible", ctx, s.orgID).
		Return([]domain.Employee{active, alreadyAssigned, gone}, nil).Once()
	s.periodRepo.On("SaveAssignment", ctx, mock.MatchedBy(func(a domain.EmployeePeriodAssignment) bool {
		return a.EmployeeID == active.EmployeeID
	})).Return(nil).Once()
	s.periodRepo.On("SaveAssignment", ctx, mock.MatchedBy(func(a domain.EmployeePeriodAssignment) bool {
		return a.EmployeeID == alreadyAssigned.EmployeeID
	})).Return(apperrors.ErrDuplicate).Once()

	assigned, err := s.service.AssignEmployees(ctx, s.orgID, *period, "scheduler")

	s.Require().NoError(err)
	s.Equal(1, assigned)
	s.periodRepo.AssertExpectations(s.T())
}

func TestAutomationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AutomationServiceTestSuite))
}
