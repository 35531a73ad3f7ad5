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
	"github.com/NominaCol/payroll_automation_app/internal/dto"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	employeeRepo *MockEmployeeRepository
	benefitRepo  *MockBenefitRepository
	service      portssvc.EmployeeSvcFacade

	orgID  string
	userID string
}

func (s *EmployeeServiceTestSuite) SetupTest() {
	s.employeeRepo = new(MockEmployeeRepository)
	s.benefitRepo = new(MockBenefitRepository)
	s.service = services.NewEmployeeService(s.employeeRepo, s.benefitRepo)
	s.orgID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *EmployeeServiceTestSuite) createRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		DocumentType:   domain.DocCitizenID,
		DocumentNumber: "1020304050",
		FirstName:      "Laura",
		LastName:       "Restrepo",
		ContractType:   domain.ContractIndefinite,
		HireDate:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary:     decimal.RequireFromString("1800000"),
	}
}

func (s *EmployeeServiceTestSuite) TestCreateEmployee_OpensContract() {
	ctx := context.Background()
	req := s.createRequest()

	s.employeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.DocumentNumber == req.DocumentNumber && e.Active && e.PayrollEligible && e.CreatedBy == s.userID
	})).Return(nil).Once()
	s.benefitRepo.On("SaveContract", ctx, mock.MatchedBy(func(c domain.LaborContract) bool {
		return c.Status == domain.ContractActive && c.Type == req.ContractType && c.StartDate.Equal(req.HireDate)
	})).Return(nil).Once()

	employee, err := s.service.CreateEmployee(ctx, s.orgID, req, s.userID)

	s.Require().NoError(err)
	s.Equal("Laura Restrepo", employee.FullName())
	s.True(employee.PayrollEligible)
	s.benefitRepo.AssertExpectations(s.T())
}

func (s *EmployeeServiceTestSuite) TestCreateEmployee_DuplicateDocument() {
	ctx := context.Background()
	req := s.createRequest()

	s.employeeRepo.On("SaveEmployee", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := s.service.CreateEmployee(ctx, s.orgID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.benefitRepo.AssertNotCalled(s.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (s *EmployeeServiceTestSuite) TestCreateEmployee_NonPositiveSalary() {
	ctx := context.Background()
	req := s.createRequest()
	req.BaseSalary = decimal.Zero

	_, err := s.service.CreateEmployee(ctx, s.orgID, req, s.userID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *EmployeeServiceTestSuite) TestUpdateEmployee_PartialUpdate() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	existing := &domain.Employee{
		EmployeeID:     employeeID,
		OrganizationID: s.orgID,
		FirstName:      "Laura",
		LastName:       "Restrepo",
		Position:       "Analista",
		BaseSalary:     decimal.RequireFromString("1800000"),
	}
	newSalary := decimal.RequireFromString("2100000")

	s.employeeRepo.On("FindEmployeeByID", ctx, s.orgID, employeeID).Return(existing, nil).Once()
	s.employeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.BaseSalary.Equal(newSalary) && e.Position == "Analista" && e.LastUpdatedBy == s.userID
	})).Return(nil).Once()

	updated, err := s.service.UpdateEmployee(ctx, s.orgID, employeeID, dto.UpdateEmployeeRequest{BaseSalary: &newSalary}, s.userID)

	s.Require().NoError(err)
	s.True(updated.BaseSalary.Equal(newSalary))
}

func (s *EmployeeServiceTestSuite) TestDeactivateEmployee_TerminatesContract() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	termination := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	contract := &domain.LaborContract{ContractID: uuid.NewString(), EmployeeID: employeeID, Status: domain.ContractActive}

	s.employeeRepo.On("DeactivateEmployee", ctx, s.orgID, employeeID, &termination, s.userID).Return(nil).Once()
	s.benefitRepo.On("FindActiveContract", ctx, s.orgID, employeeID).Return(contract, nil).Once()
	s.benefitRepo.On("TerminateContract", ctx, s.orgID, contract.ContractID, s.userID).Return(nil).Once()

	err := s.service.DeactivateEmployee(ctx, s.orgID, employeeID, &termination, s.userID)

	s.Require().NoError(err)
	s.benefitRepo.AssertExpectations(s.T())
}

func (s *EmployeeServiceTestSuite) TestDeactivateEmployee_NoContractIsFine() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	s.employeeRepo.On("DeactivateEmployee", ctx, s.orgID, employeeID, (*time.Time)(nil), s.userID).Return(nil).Once()
	s.benefitRepo.On("FindActiveContract", ctx, s.orgID, employeeID).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeactivateEmployee(ctx, s.orgID, employeeID, nil, s.userID)

	s.Require().NoError(err)
	s.benefitRepo.AssertNotCalled(s.T(), "TerminateContract", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
