package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NominaCol/payroll_automation_app/internal/apperrors"
	"github.com/NominaCol/payroll_automation_app/internal/core/domain"
	portsrepo "github.com/NominaCol/payroll_automation_app/internal/core/ports/repositories"
	"github.com/NominaCol/payroll_automation_app/internal/dto"
	"github.com/NominaCol/payroll_automation_app/internal/middleware"
)

type conceptService struct {
	conceptRepo portsrepo.ConceptRepositoryFacade
}

// NewConceptService creates the concept catalog service.
func NewConceptService(conceptRepo portsrepo.ConceptRepositoryFacade) *conceptService {
	return &conceptService{conceptRepo: conceptRepo}
}

// EnsureDefaults seeds the statutory concepts the engine looks up by code.
// Concepts that already exist are left untouched.
func (s *conceptService) EnsureDefaults(ctx context.Context, organizationID, userID string) (*domain.ConceptCatalog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	catalog, err := s.conceptRepo.LoadCatalog(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load concept catalog: %w", err)
	}

	now := time.Now()
	seeded := 0
	for _, def := range defaultAccrualConcepts(organizationID) {
		if _, exists := catalog.AccrualByCode(def.Code); exists {
			continue
		}
		def.ConceptID = uuid.NewString()
		def.AuditFields = newAudit(userID, now)
		if err := s.conceptRepo.SaveAccrualConcept(ctx, def); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return nil, fmt.Errorf("failed to seed accrual concept %s: %w", def.Code, err)
		}
		seeded++
	}
	for _, def := range defaultDeductionConcepts(organizationID) {
		if _, exists := catalog.DeductionByCode(def.Code); exists {
			continue
		}
		def.ConceptID = uuid.NewString()
		def.AuditFields = newAudit(userID, now)
		if err := s.conceptRepo.SaveDeductionConcept(ctx, def); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return nil, fmt.Errorf("failed to seed deduction concept %s: %w", def.Code, err)
		}
		seeded++
	}

	if seeded > 0 {
		logger.Info("Default concepts seeded",
			slog.String("organization_id", organizationID), slog.Int("seeded", seeded))
		catalog, err = s.conceptRepo.LoadCatalog(ctx, organizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload concept catalog: %w", err)
		}
	}
	return catalog, nil
}

func (s *conceptService) GetCatalog(ctx context.Context, organizationID string) (*domain.ConceptCatalog, error) {
	catalog, err := s.conceptRepo.LoadCatalog(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load concept catalog: %w", err)
	}
	return catalog, nil
}

func (s *conceptService) CreateAccrualConcept(ctx context.Context, organizationID string, req dto.CreateAccrualConceptRequest, userID string) (*domain.AccrualConcept, error) {
	concept := domain.AccrualConcept{
		ConceptID:            uuid.NewString(),
		OrganizationID:       organizationID,
		Code:                 req.Code,
		Name:                 req.Name,
		Kind:                 req.Kind,
		Description:          req.Description,
		Active:               true,
		CountsSocialSecurity: req.CountsSocialSecurity,
		CountsBenefitsBase:   req.CountsBenefitsBase,
		AuditFields:          newAudit(userID, time.Now()),
	}
	if err := s.conceptRepo.SaveAccrualConcept(ctx, concept); err != nil {
		return nil, fmt.Errorf("failed to create accrual concept: %w", err)
	}
	return &concept, nil
}

func (s *conceptService) CreateDeductionConcept(ctx context.Context, organizationID string, req dto.CreateDeductionConceptRequest, userID string) (*domain.DeductionConcept, error) {
	concept := domain.DeductionConcept{
		ConceptID:      uuid.NewString(),
		OrganizationID: organizationID,
		Code:           req.Code,
		Name:           req.Name,
		Kind:           req.Kind,
		Description:    req.Description,
		Active:         true,
		Mandatory:      req.Mandatory,
		BasePercentage: req.BasePercentage,
		Base:           req.Base,
		AuditFields:    newAudit(userID, time.Now()),
	}
	if err := s.conceptRepo.SaveDeductionConcept(ctx, concept); err != nil {
		return nil, fmt.Errorf("failed to create deduction concept: %w", err)
	}
	return &concept, nil
}

// defaultAccrualConcepts is the statutory accrual catalog seeded for every
// organization.
func defaultAccrualConcepts(organizationID string) []domain.AccrualConcept {
	base := func(code, name string, kind domain.AccrualKind, countsSS bool) domain.AccrualConcept {
		return domain.AccrualConcept{
			OrganizationID:       organizationID,
			Code:                 code,
			Name:                 name,
			Kind:                 kind,
			Active:               true,
			CountsSocialSecurity: countsSS,
			CountsBenefitsBase:   true,
		}
	}
	return []domain.AccrualConcept{
		base(domain.ConceptCodeSalary, "Sueldo básico", domain.AccrualSalary, true),
		// The transport subsidy counts toward benefits but not social security.
		base(domain.ConceptCodeTransportSubsidy, "Auxilio de transporte", domain.AccrualSubsidy, false),
		base(domain.ConceptCodeOvertime, "Horas extra", domain.AccrualOvertime, true),
		base(domain.ConceptCodeBonus, "Bonificación", domain.AccrualBonus, true),
		base(domain.ConceptCodeCommission, "Comisiones", domain.AccrualCommission, true),
	}
}

// defaultDeductionConcepts is the statutory deduction catalog.
func defaultDeductionConcepts(organizationID string) []domain.DeductionConcept {
	pct := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	return []domain.DeductionConcept{
		{
			OrganizationID: organizationID,
			Code:           domain.ConceptCodeHealth,
			Name:           "Aporte salud",
			Kind:           domain.DeductionHealth,
			Active:         true,
			Mandatory:      true,
			BasePercentage: pct("4.00"),
			Base:           domain.BaseTotalAccrued,
		},
		{
			OrganizationID: organizationID,
			Code:           domain.ConceptCodePension,
			Name:           "Aporte pensión",
			Kind:           domain.DeductionPension,
			Active:         true,
			Mandatory:      true,
			BasePercentage: pct("4.00"),
			Base:           domain.BaseTotalAccrued,
		},
		{
			// The rate comes from the bracket table, not the concept.
			OrganizationID: organizationID,
			Code:           domain.ConceptCodeSolidarityFund,
			Name:           "Fondo de solidaridad pensional",
			Kind:           domain.DeductionSolidarity,
			Active:         true,
			Mandatory:      true,
			Base:           domain.BaseTotalAccrued,
		},
		{
			// Amount supplied per assignment; the concept carries no rate.
			OrganizationID: organizationID,
			Code:           domain.ConceptCodeWithholding,
			Name:           "Retención en la fuente",
			Kind:           domain.DeductionWithholding,
			Active:         true,
			Base:           domain.BaseFixedAmount,
		},
		{
			OrganizationID: organizationID,
			Code:           domain.ConceptCodeLoan,
			Name:           "Préstamo empresa",
			Kind:           domain.DeductionLoan,
			Active:         true,
			Base:           domain.BaseFixedAmount,
		},
	}
}
