package services_test

import (
	"context"
	"errors"
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

type SocialBenefitsTestSuite struct {
	suite.Suite
	benefitRepo  *MockBenefitRepository
	employeeRepo *MockEmployeeRepository
	periodRepo   *MockPeriodRepository
	service      portssvc.SocialBenefitsSvcFacade

	orgID string
}

func (s *SocialBenefitsTestSuite) SetupTest() {
	s.benefitRepo = new(MockBenefitRepository)
	s.employeeRepo = new(MockEmployeeRepository)
	s.periodRepo = new(MockPeriodRepository)
	s.service = services.NewSocialBenefitsService(s.benefitRepo, s.employeeRepo, s.periodRepo)
	s.orgID = uuid.NewString()
}

func (s *SocialBenefitsTestSuite) TestSeverance_HalfYear() {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("2000000")

	got := s.service.Severance(start, end, salary)

	s.Equal(180, got.Days)
	s.True(got.Value.Equal(decimal.RequireFromString("1000000")), got.Value.String())
}

func (s *SocialBenefitsTestSuite) TestSeveranceInterest_TwelvePercentAnnual() {
	got := s.service.SeveranceInterest(decimal.RequireFromString("1000000"), 180)

	// 1,000,000 x 180 x 12% / 360 = 60,000
	s.True(got.Value.Equal(decimal.RequireFromString("60000")), got.Value.String())
}

func (s *SocialBenefitsTestSuite) TestServiceBonus_ClippedToSemester() {
	// Hired the previous year; only the current semester accrues.
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("1800000")

	got := s.service.ServiceBonus(start, end, salary)

	// Jan 1 to Mar 31 is 89 end-exclusive days.
	s.Equal(89, got.Days)
	s.True(got.Value.Equal(decimal.RequireFromString("445000")), got.Value.String())
}

func (s *SocialBenefitsTestSuite) TestVacation_FullYearEarnsFifteenDays() {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("2400000")

	got := s.service.Vacation(start, end, salary)

	s.Equal(360, got.WorkedDays)
	s.True(got.VacationDays.Equal(decimal.RequireFromString("15")), got.VacationDays.String())
	// 15 days at a daily rate of 80,000.
	s.True(got.Value.Equal(decimal.RequireFromString("1200000")), got.Value.String())
}

func (s *SocialBenefitsTestSuite) TestLiquidate_FullSettlement() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	contract := &domain.LaborContract{
		ContractID:     uuid.NewString(),
		OrganizationID: s.orgID,
		EmployeeID:     employeeID,
		Type:           domain.ContractIndefinite,
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:         domain.ContractActive,
	}
	employee := &domain.Employee{
		EmployeeID: employeeID,
		BaseSalary: decimal.RequireFromString("1300000"),
	}
	cutoff := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	s.benefitRepo.On("FindActiveContract", ctx, s.orgID, employeeID).Return(contract, nil).Once()
	s.employeeRepo.On("FindEmployeeByID", ctx, s.orgID, employeeID).Return(employee, nil).Once()

	var kinds []domain.BenefitKind
	s.benefitRepo.On("SaveBenefit", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			kinds = append(kinds, args.Get(1).(domain.SocialBenefit).Kind)
		}).Return(nil).Times(4)

	result, err := s.service.Liquidate(ctx, s.orgID, employeeID, cutoff, "hr-user")

	s.Require().NoError(err)
	// 180 days of service at 1,300,000.
	s.True(result.Severance.Value.Equal(decimal.RequireFromString("650000")), result.Severance.Value.String())
	s.True(result.SeveranceInterest.Value.Equal(decimal.RequireFromString("39000")), result.SeveranceInterest.Value.String())
	s.True(result.ServiceBonus.Value.Equal(decimal.RequireFromString("650000")), result.ServiceBonus.Value.String())
	s.True(result.Vacation.Value.Equal(decimal.RequireFromString("325000")), result.Vacation.Value.String())
	s.True(result.Total.Equal(decimal.RequireFromString("1664000")), result.Total.String())
	s.ElementsMatch(domain.BenefitKinds, kinds)
}

func (s *SocialBenefitsTestSuite) TestLiquidate_NoActiveContract() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	s.benefitRepo.On("FindActiveContract", ctx, s.orgID, employeeID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Liquidate(ctx, s.orgID, employeeID, time.Now(), "hr-user")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.benefitRepo.AssertNotCalled(s.T(), "SaveBenefit", mock.Anything, mock.Anything)
}

func (s *SocialBenefitsTestSuite) TestGenerateProvisionsForPeriod() {
	ctx := context.Background()
	periodID := uuid.NewString()
	a1 := testAssignment(s.orgID, periodID, "1000000", 30)
	a2 := testAssignment(s.orgID, periodID, "1000000", 30)

	s.periodRepo.On("ListAssignments", ctx, s.orgID, periodID, true).
		Return([]domain.EmployeePeriodAssignment{a1, a2}, nil).Once()

	var provisions []domain.MonthlyProvision
	s.benefitRepo.On("UpsertProvision", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			provisions = append(provisions, args.Get(1).(domain.MonthlyProvision))
		}).Return(nil).Twice()

	created, err := s.service.GenerateProvisionsForPeriod(ctx, s.orgID, periodID, "scheduler")

	s.Require().NoError(err)
	s.Equal(2, created)
	s.Require().Len(provisions, 2)
	p := provisions[0]
	s.True(p.Severance.Equal(decimal.RequireFromString("83300")), p.Severance.String())
	s.True(p.SeveranceInterest.Equal(decimal.RequireFromString("833")), p.SeveranceInterest.String())
	s.True(p.ServiceBonus.Equal(decimal.RequireFromString("83300")), p.ServiceBonus.String())
	s.True(p.Vacation.Equal(decimal.RequireFromString("41700")), p.Vacation.String())
	s.True(p.Total.Equal(decimal.RequireFromString("209133")), p.Total.String())
	s.True(p.AutoCalculated)
}

func (s *SocialBenefitsTestSuite) TestGenerateProvisionsForPeriod_SkipsFailures() {
	ctx := context.Background()
	periodID := uuid.NewString()
	a1 := testAssignment(s.orgID, periodID, "1000000", 30)
	a2 := testAssignment(s.orgID, periodID, "2000000", 30)

	s.periodRepo.On("ListAssignments", ctx, s.orgID, periodID, true).
		Return([]domain.EmployeePeriodAssignment{a1, a2}, nil).Once()
	s.benefitRepo.On("UpsertProvision", ctx, mock.MatchedBy(func(p domain.MonthlyProvision) bool {
		return p.EmployeeID == a1.EmployeeID
	})).Return(errors.New("constraint violation")).Once()
	s.benefitRepo.On("UpsertProvision", ctx, mock.MatchedBy(func(p domain.MonthlyProvision) bool {
		return p.EmployeeID == a2.EmployeeID
	})).Return(nil).Once()

	created, err := s.service.GenerateProvisionsForPeriod(ctx, s.orgID, periodID, "scheduler")

	s.Require().NoError(err)
	s.Equal(1, created)
}

func (s *SocialBenefitsTestSuite) TestBenefitBalances_AggregatesByKind() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	benefits := []domain.SocialBenefit{
		{Kind: domain.BenefitSeverance, AccruedValue: decimal.RequireFromString("500000"), PaidValue: decimal.RequireFromString("200000")},
		{Kind: domain.BenefitSeverance, AccruedValue: decimal.RequireFromString("300000"), PaidValue: decimal.Zero},
		{Kind: domain.BenefitVacation, AccruedValue: decimal.RequireFromString("150000"), PaidValue: decimal.RequireFromString("150000")},
	}
	s.benefitRepo.On("ListBenefits", ctx, s.orgID, employeeID).Return(benefits, nil).Once()

	balances, err := s.service.BenefitBalances(ctx, s.orgID, employeeID)

	s.Require().NoError(err)
	s.Require().Len(balances, len(domain.BenefitKinds))
	s.Equal(domain.BenefitSeverance, balances[0].Kind)
	s.True(balances[0].Accrued.Equal(decimal.RequireFromString("800000")))
	s.True(balances[0].Balance.Equal(decimal.RequireFromString("600000")))
	// Kinds with no records report zero, not absence.
	s.Equal(domain.BenefitServiceBonus, balances[2].Kind)
	s.True(balances[2].Balance.IsZero())
	s.Equal(domain.BenefitVacation, balances[3].Kind)
	s.True(balances[3].Balance.IsZero())
}

func TestSocialBenefitsTestSuite(t *testing.T) {
	suite.Run(t, new(SocialBenefitsTestSuite))
}
