package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samprox/erp_backend/internal/apperrors"
	"github.com/samprox/erp_backend/internal/core/domain"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/samprox/erp_backend/internal/core/ports/services"
	"github.com/samprox/erp_backend/internal/dto"
	"github.com/samprox/erp_backend/internal/utils/customercode"
)

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the company service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany registers a new group company. The code prefix becomes the
// namespace of every customer code the company will ever issue, so it is
// validated here and then never changed.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	if len(req.CodePrefix) > customercode.MaxPrefixLen {
		return nil, fmt.Errorf("code prefix %q exceeds %d characters: %w", req.CodePrefix, customercode.MaxPrefixLen, apperrors.ErrValidation)
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:  uuid.NewString(),
		Key:        req.Key,
		Name:       req.Name,
		CodePrefix: req.CodePrefix,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company %s: %w", req.Key, err)
	}

	return &company, nil
}

// GetCompanyByID retrieves a company by ID.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company %s: %w", companyID, err)
	}
	return company, nil
}

// ListCompanies retrieves all configured companies.
func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}
