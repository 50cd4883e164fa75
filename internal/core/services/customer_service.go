package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samprox/erp_backend/internal/apperrors"
	"github.com/samprox/erp_backend/internal/core/domain"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/samprox/erp_backend/internal/core/ports/services"
	"github.com/samprox/erp_backend/internal/dto"
	"github.com/samprox/erp_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// createAttempts bounds the allocate-then-insert loop. A duplicate code means
// another request won the race for the same number after our preview of it;
// one fresh allocation is normally enough.
const createAttempts = 2

type customerService struct {
	customerRepo  portsrepo.CustomerRepositoryFacade
	companyRepo   portsrepo.CompanyReader
	codeAllocator portssvc.CustomerCodeAllocatorSvc
}

// NewCustomerService creates the customer service.
func NewCustomerService(
	customerRepo portsrepo.CustomerRepositoryFacade,
	companyRepo portsrepo.CompanyReader,
	codeAllocator portssvc.CustomerCodeAllocatorSvc,
) portssvc.CustomerSvcFacade {
	return &customerService{
		customerRepo:  customerRepo,
		companyRepo:   companyRepo,
		codeAllocator: codeAllocator,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer creates a customer with a freshly allocated code. The
// CustomerCode field of the request is never read: the allocator's value is
// authoritative regardless of what the client sent.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to resolve company %s for customer creation: %w", req.CompanyID, err)
	}

	managedBy := req.ManagedByUserID
	if managedBy == "" {
		managedBy = creatorUserID
	}

	creditLimit := decimal.Zero
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("credit limit must not be negative: %w", apperrors.ErrValidation)
		}
		creditLimit = *req.CreditLimit
	}

	var lastErr error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		code, err := s.codeAllocator.AllocateCustomerCode(ctx, req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to allocate customer code: %w", err)
		}

		now := time.Now()
		customer := domain.Customer{
			CustomerID:      uuid.NewString(),
			CustomerCode:    code,
			Name:            req.Name,
			AreaCode:        req.AreaCode,
			City:            req.City,
			District:        req.District,
			Province:        req.Province,
			CompanyID:       req.CompanyID,
			ManagedByUserID: managedBy,
			CreditLimit:     creditLimit,
			IsActive:        true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}

		err = s.customerRepo.SaveCustomer(ctx, customer)
		if err == nil {
			return &customer, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("failed to save customer: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("customer code collided on %d consecutive attempts: %w", createAttempts, lastErr)
}

// GetCustomerByID retrieves a customer by ID.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

// ListCustomers retrieves a filtered page of customers plus the cursor for the
// next page.
func (s *customerService) ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, string, error) {
	filter := portsrepo.CustomerListFilter{
		Query:           params.Query,
		CompanyID:       params.CompanyID,
		ManagedByUserID: params.ManagedByUserID,
		Limit:           params.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	if params.NextToken != "" {
		afterCreatedAt, afterID, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("invalid nextToken: %w", apperrors.ErrValidation)
		}
		filter.AfterCreatedAt = &afterCreatedAt
		filter.AfterCustomerID = afterID
	}

	customers, err := s.customerRepo.ListCustomers(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list customers: %w", err)
	}

	nextToken := ""
	if len(customers) == filter.Limit {
		last := customers[len(customers)-1]
		nextToken = pagination.EncodeCursor(last.CreatedAt, last.CustomerID)
	}

	return customers, nextToken, nil
}

// UpdateCustomer applies the allowed field changes. The customer code is
// immutable: there is no path from the request to the code column.
func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s for update: %w", customerID, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("customer name must not be empty: %w", apperrors.ErrValidation)
		}
		customer.Name = *req.Name
	}
	if req.AreaCode != nil {
		customer.AreaCode = *req.AreaCode
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.District != nil {
		customer.District = *req.District
	}
	if req.Province != nil {
		customer.Province = *req.Province
	}
	if req.CompanyID != nil {
		if _, err := s.companyRepo.FindCompanyByID(ctx, *req.CompanyID); err != nil {
			return nil, fmt.Errorf("failed to resolve company %s for customer update: %w", *req.CompanyID, err)
		}
		customer.CompanyID = *req.CompanyID
	}
	if req.ManagedByUserID != nil {
		customer.ManagedByUserID = *req.ManagedByUserID
	}
	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, fmt.Errorf("credit limit must not be negative: %w", apperrors.ErrValidation)
		}
		customer.CreditLimit = *req.CreditLimit
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = updaterUserID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	return customer, nil
}
