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

func testCatalog(orgID string) *domain.ConceptCatalog {
	pct := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	return &domain.ConceptCatalog{
		Accruals: []domain.AccrualConcept{
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeSalary, Kind: domain.AccrualSalary, Active: true, CountsSocialSecurity: true, CountsBenefitsBase: true},
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeTransportSubsidy, Kind: domain.AccrualSubsidy, Active: true, CountsSocialSecurity: false, CountsBenefitsBase: true},
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeOvertime, Kind: domain.AccrualOvertime, Active: true, CountsSocialSecurity: true, CountsBenefitsBase: true},
		},
		Deductions: []domain.DeductionConcept{
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeHealth, Kind: domain.DeductionHealth, Active: true, Mandatory: true, BasePercentage: pct("4.00"), Base: domain.BaseTotalAccrued},
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodePension, Kind: domain.DeductionPension, Active: true, Mandatory: true, BasePercentage: pct("4.00"), Base: domain.BaseTotalAccrued},
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeSolidarityFund, Kind: domain.DeductionSolidarity, Active: true, Mandatory: true, Base: domain.BaseTotalAccrued},
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeWithholding, Kind: domain.DeductionWithholding, Active: true, Base: domain.BaseFixedAmount},
			{ConceptID: uuid.NewString(), OrganizationID: orgID, Code: domain.ConceptCodeLoan, Kind: domain.DeductionLoan, Active: true, Base: domain.BaseFixedAmount},
		},
	}
}

func testPeriod(orgID string) *domain.PayrollPeriod {
	return &domain.PayrollPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: orgID,
		Name:           "Nómina 2026-08",
		Type:           domain.PeriodMonthly,
		StartDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		PayDate:        time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Status:         domain.PeriodDraft,
	}
}

func testAssignment(orgID, periodID string, salary string, days int) domain.EmployeePeriodAssignment {
	return domain.EmployeePeriodAssignment{
		AssignmentID:   uuid.NewString(),
		OrganizationID: orgID,
		PeriodID:       periodID,
		EmployeeID:     uuid.NewString(),
		EmployeeName:   "Ana María Pérez",
		Included:       true,
		PeriodSalary:   decimal.RequireFromString(salary),
		DaysWorked:     days,
	}
}

type CalculationEngineTestSuite struct {
	suite.Suite
	periodRepo   *MockPeriodRepository
	conceptRepo  *MockConceptRepository
	configRepo   *MockConfigRepository
	workflowRepo *MockWorkflowRepository
	engine       portssvc.CalculationEngineSvcFacade

	orgID  string
	config *domain.AutomationConfig
}

func (s *CalculationEngineTestSuite) SetupTest() {
	s.periodRepo = new(MockPeriodRepository)
	s.conceptRepo = new(MockConceptRepository)
	s.configRepo = new(MockConfigRepository)
	s.workflowRepo = new(MockWorkflowRepository)
	s.engine = services.NewCalculationEngine(s.periodRepo, s.conceptRepo, s.configRepo, s.workflowRepo)

	s.orgID = uuid.NewString()
	cfg := domain.DefaultAutomationConfig(s.orgID)
	s.config = &cfg
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_MinimumWageEmployee() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	assignment := testAssignment(s.orgID, period.PeriodID, "1300000", 30)

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()

	var captured domain.EmployeeCalculation
	s.periodRepo.On("ReplaceEntryLines", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(domain.EmployeeCalculation)
		}).Return(nil).Once()
	s.periodRepo.On("UpdatePeriodTotals", ctx, s.orgID, period.PeriodID, mock.Anything, mock.Anything, mock.Anything, "tester", mock.Anything).Return(nil).Once()
	s.periodRepo.On("AppendCalculationLog", ctx, mock.Anything).Return(nil).Once()

	result, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunInitial, "tester")

	s.Require().NoError(err)
	s.Equal(1, result.EmployeesProcessed)
	s.Equal(0, result.EmployeesFailed)

	// Salary 1,300,000 + subsidy 162,000; health and pension 4% of salary each.
	s.True(result.TotalAccrued.Equal(decimal.RequireFromString("1462000")), result.TotalAccrued.String())
	s.True(result.TotalDeducted.Equal(decimal.RequireFromString("104000")), result.TotalDeducted.String())
	s.True(result.TotalNet.Equal(decimal.RequireFromString("1358000")), result.TotalNet.String())

	s.Require().Len(captured.Accruals, 2)
	s.Equal(domain.ConceptCodeSalary, captured.Accruals[0].ConceptCode)
	s.Equal(domain.ConceptCodeTransportSubsidy, captured.Accruals[1].ConceptCode)
	s.False(captured.Accruals[1].CountsSocialSecurity)
	s.Require().Len(captured.Deductions, 2) // no solidarity fund at minimum wage
	s.periodRepo.AssertExpectations(s.T())
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_HalfPeriodProration() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	assignment := testAssignment(s.orgID, period.PeriodID, "2000000", 15)

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()

	var captured domain.EmployeeCalculation
	s.periodRepo.On("ReplaceEntryLines", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(domain.EmployeeCalculation)
		}).Return(nil).Once()
	s.periodRepo.On("UpdatePeriodTotals", ctx, s.orgID, period.PeriodID, mock.Anything, mock.Anything, mock.Anything, "tester", mock.Anything).Return(nil).Once()
	s.periodRepo.On("AppendCalculationLog", ctx, mock.Anything).Return(nil).Once()

	_, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunRecalc, "tester")
	s.Require().NoError(err)

	// Half the month: half salary and half subsidy; deductions follow the
	// prorated social-security base.
	s.True(captured.Accruals[0].Total.Equal(decimal.RequireFromString("1000000")), captured.Accruals[0].Total.String())
	s.True(captured.Accruals[1].Total.Equal(decimal.RequireFromString("81000")), captured.Accruals[1].Total.String())
	s.True(captured.Deductions[0].Total.Equal(decimal.RequireFromString("40000")), captured.Deductions[0].Total.String())
	s.True(captured.Deductions[1].Total.Equal(decimal.RequireFromString("40000")), captured.Deductions[1].Total.String())
	s.True(captured.NetPay.Equal(decimal.RequireFromString("1001000")), captured.NetPay.String())
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_HighEarnerPaysSolidarityFund() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	assignment := testAssignment(s.orgID, period.PeriodID, "30000000", 30)

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()

	var captured domain.EmployeeCalculation
	s.periodRepo.On("ReplaceEntryLines", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(domain.EmployeeCalculation)
		}).Return(nil).Once()
	s.periodRepo.On("UpdatePeriodTotals", ctx, s.orgID, period.PeriodID, mock.Anything, mock.Anything, mock.Anything, "tester", mock.Anything).Return(nil).Once()
	s.periodRepo.On("AppendCalculationLog", ctx, mock.Anything).Return(nil).Once()

	_, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunManual, "tester")
	s.Require().NoError(err)

	// No transport subsidy above 2x minimum wage; 30M is ~23x, so the top
	// solidarity bracket (2%) applies on top of health and pension.
	s.Require().Len(captured.Accruals, 1)
	s.Require().Len(captured.Deductions, 3)
	s.Equal(domain.ConceptCodeSolidarityFund, captured.Deductions[2].ConceptCode)
	s.True(captured.Deductions[2].Total.Equal(decimal.RequireFromString("600000")), captured.Deductions[2].Total.String())
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_PartialFailureContinuesBatch() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	good := testAssignment(s.orgID, period.PeriodID, "1300000", 30)
	bad := testAssignment(s.orgID, period.PeriodID, "0", 30)

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{bad, good}, nil).Once()
	s.periodRepo.On("ReplaceEntryLines", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.periodRepo.On("UpdatePeriodTotals", ctx, s.orgID, period.PeriodID, mock.Anything, mock.Anything, mock.Anything, "tester", mock.Anything).Return(nil).Once()

	var logged domain.CalculationLog
	s.periodRepo.On("AppendCalculationLog", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			logged = args.Get(1).(domain.CalculationLog)
		}).Return(nil).Once()

	result, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunInitial, "tester")

	s.Require().NoError(err)
	s.Equal(1, result.EmployeesProcessed)
	s.Equal(1, result.EmployeesFailed)
	s.Require().Len(result.Errors, 1)
	s.Equal(bad.EmployeeID, result.Errors[0].EmployeeID)
	// Failed employees never contribute to totals.
	s.True(result.TotalNet.Equal(decimal.RequireFromString("1358000")), result.TotalNet.String())
	s.Equal(1, logged.EmployeesFailed)
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_MissingConfigAborts() {
	ctx := context.Background()
	period := testPeriod(s.orgID)

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(nil, apperrors.ErrNotFound).Once()

	var logged domain.CalculationLog
	s.periodRepo.On("AppendCalculationLog", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			logged = args.Get(1).(domain.CalculationLog)
		}).Return(nil).Once()

	result, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunAutomatic, "tester")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(result)
	// The aborted run still leaves an audit record with zero employees.
	s.Equal(0, logged.EmployeesProcessed)
	s.NotEmpty(logged.Warnings)
	s.periodRepo.AssertNotCalled(s.T(), "UpdatePeriodTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_RejectedPeriodResetsToDraft() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	period.Status = domain.PeriodRejected
	assignment := testAssignment(s.orgID, period.PeriodID, "1300000", 30)

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()
	s.periodRepo.On("ReplaceEntryLines", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.periodRepo.On("UpdatePeriodTotals", ctx, s.orgID, period.PeriodID, mock.Anything, mock.Anything, mock.Anything, "tester", mock.Anything).Return(nil).Once()
	s.workflowRepo.On("ResetWorkflowToDraft", ctx, s.orgID, period.PeriodID, "tester").Return(nil).Once()
	s.periodRepo.On("AppendCalculationLog", ctx, mock.Anything).Return(nil).Once()

	_, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunRecalc, "tester")

	s.Require().NoError(err)
	s.workflowRepo.AssertExpectations(s.T())
}

func (s *CalculationEngineTestSuite) TestCalculatePeriod_ApprovedPeriodRejected() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	period.Status = domain.PeriodApproved

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()

	_, err := s.engine.CalculatePeriod(ctx, s.orgID, period.PeriodID, domain.RunManual, "tester")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CalculationEngineTestSuite) TestCalculateAssignment_ExtrasAndFixedDeductions() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	assignment := testAssignment(s.orgID, period.PeriodID, "3000000", 30)
	assignment.ExtraAccruals = []domain.ExtraAccrual{
		{ConceptCode: domain.ConceptCodeOvertime, Quantity: decimal.NewFromInt(10), UnitValue: decimal.RequireFromString("15625")},
	}
	assignment.FixedDeductions = []domain.FixedDeduction{
		{ConceptCode: domain.ConceptCodeLoan, Amount: decimal.RequireFromString("200000")},
	}

	s.periodRepo.On("FindAssignmentByID", ctx, s.orgID, assignment.AssignmentID).Return(&assignment, nil).Once()
	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	s.periodRepo.On("ReplaceEntryLines", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	calc, err := s.engine.CalculateAssignment(ctx, s.orgID, assignment.AssignmentID, "tester")

	s.Require().NoError(err)
	// Overtime 10 x 15,625 = 156,250 joins the social-security base.
	s.True(calc.TotalAccrued.Equal(decimal.RequireFromString("3156250")), calc.TotalAccrued.String())
	ssBase := decimal.RequireFromString("3156250")
	health := ssBase.Mul(decimal.RequireFromString("0.04")).Round(2)
	s.True(calc.Deductions[0].Total.Equal(health), calc.Deductions[0].Total.String())
	// The loan comes through as a flat amount.
	last := calc.Deductions[len(calc.Deductions)-1]
	s.Equal(domain.ConceptCodeLoan, last.ConceptCode)
	s.True(last.Total.Equal(decimal.RequireFromString("200000")))
}

func (s *CalculationEngineTestSuite) TestCalculateAssignment_ProcessedPeriodNotEditable() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	period.Status = domain.PeriodProcessed
	assignment := testAssignment(s.orgID, period.PeriodID, "1300000", 30)

	s.periodRepo.On("FindAssignmentByID", ctx, s.orgID, assignment.AssignmentID).Return(&assignment, nil).Once()
	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()

	_, err := s.engine.CalculateAssignment(ctx, s.orgID, assignment.AssignmentID, "tester")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.periodRepo.AssertNotCalled(s.T(), "ReplaceEntryLines", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CalculationEngineTestSuite) TestValidateCalculation_Approved() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	now := time.Now()
	assignment := testAssignment(s.orgID, period.PeriodID, "1300000", 30)
	assignment.CalculatedAt = &now
	assignment.TotalAccrued = decimal.RequireFromString("1462000")
	assignment.TotalDeducted = decimal.RequireFromString("104000")
	period.TotalAccrued = assignment.TotalAccrued
	period.TotalDeducted = assignment.TotalDeducted

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()

	result, err := s.engine.ValidateCalculation(ctx, s.orgID, period.PeriodID)

	s.Require().NoError(err)
	s.True(result.Approved)
	s.True(result.Validations[domain.CheckTotals])
	s.True(result.Validations[domain.CheckMinimumWage])
	s.Empty(result.Errors)
}

func (s *CalculationEngineTestSuite) TestValidateCalculation_BelowMinimumWage() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	now := time.Now()
	assignment := testAssignment(s.orgID, period.PeriodID, "900000", 30)
	assignment.CalculatedAt = &now
	assignment.TotalAccrued = decimal.RequireFromString("1062000")
	assignment.TotalDeducted = decimal.RequireFromString("72000")
	period.TotalAccrued = assignment.TotalAccrued
	period.TotalDeducted = assignment.TotalDeducted

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()

	result, err := s.engine.ValidateCalculation(ctx, s.orgID, period.PeriodID)

	s.Require().NoError(err)
	s.False(result.Approved)
	s.False(result.Validations[domain.CheckMinimumWage])
	s.NotEmpty(result.Errors)
}

func (s *CalculationEngineTestSuite) TestValidateCalculation_PendingRecalculation() {
	ctx := context.Background()
	period := testPeriod(s.orgID)
	assignment := testAssignment(s.orgID, period.PeriodID, "1300000", 30)
	assignment.NeedsRecalculation = true

	s.periodRepo.On("FindPeriodByID", ctx, s.orgID, period.PeriodID).Return(period, nil).Once()
	s.configRepo.On("FindConfig", ctx, s.orgID).Return(s.config, nil).Once()
	s.periodRepo.On("ListAssignments", ctx, s.orgID, period.PeriodID, true).
		Return([]domain.EmployeePeriodAssignment{assignment}, nil).Once()

	result, err := s.engine.ValidateCalculation(ctx, s.orgID, period.PeriodID)

	s.Require().NoError(err)
	s.False(result.Approved)
	s.False(result.Validations[domain.CheckTotals])
}

func TestCalculationEngineTestSuite(t *testing.T) {
	suite.Run(t, new(CalculationEngineTestSuite))
}
