package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portssvc "github.com/NominaCol/payroll_automation_app/internal/core/ports/services"
	"github.com/NominaCol/payroll_automation_app/internal/core/services"
)

type ConceptServiceTestSuite struct {
	suite.Suite
	conceptRepo *MockConceptRepository
	service     portssvc.ConceptSvcFacade

	orgID  string
	userID string
}

func (s *ConceptServiceTestSuite) SetupTest() {
	s.conceptRepo = new(MockConceptRepository)
	s.service = services.NewConceptService(s.conceptRepo)
	s.orgID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *ConceptServiceTestSuite) TestEnsureDefaults_SeedsEmptyCatalog() {
	ctx := context.Background()

	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(&domain.ConceptCatalog{}, nil).Once()

	var accrualCodes, deductionCodes []string
	s.conceptRepo.On("SaveAccrualConcept", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			accrualCodes = append(accrualCodes, args.Get(1).(domain.AccrualConcept).Code)
		}).Return(nil).Times(5)
	s.conceptRepo.On("SaveDeductionConcept", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			deductionCodes = append(deductionCodes, args.Get(1).(domain.DeductionConcept).Code)
		}).Return(nil).Times(5)
	// Reloaded after seeding.
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()

	_, err := s.service.EnsureDefaults(ctx, s.orgID, s.userID)

	s.Require().NoError(err)
	s.Contains(accrualCodes, domain.ConceptCodeSalary)
	s.Contains(accrualCodes, domain.ConceptCodeTransportSubsidy)
	s.Contains(deductionCodes, domain.ConceptCodeHealth)
	s.Contains(deductionCodes, domain.ConceptCodePension)
	s.Contains(deductionCodes, domain.ConceptCodeSolidarityFund)
	// Fixed-amount concepts referenced by assignment-level deductions.
	s.Contains(deductionCodes, domain.ConceptCodeWithholding)
	s.Contains(deductionCodes, domain.ConceptCodeLoan)
	s.conceptRepo.AssertExpectations(s.T())
}

func (s *ConceptServiceTestSuite) TestEnsureDefaults_ExistingConceptsUntouched() {
	ctx := context.Background()

	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()
	// Only the two accruals missing from the test catalog get seeded.
	s.conceptRepo.On("SaveAccrualConcept", ctx, mock.MatchedBy(func(c domain.AccrualConcept) bool {
		return c.Code == domain.ConceptCodeBonus || c.Code == domain.ConceptCodeCommission
	})).Return(nil).Twice()
	s.conceptRepo.On("LoadCatalog", ctx, s.orgID).Return(testCatalog(s.orgID), nil).Once()

	_, err := s.service.EnsureDefaults(ctx, s.orgID, s.userID)

	s.Require().NoError(err)
	s.conceptRepo.AssertExpectations(s.T())
	s.conceptRepo.AssertNotCalled(s.T(), "SaveDeductionConcept", mock.Anything, mock.Anything)
}

func TestConceptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConceptServiceTestSuite))
}
