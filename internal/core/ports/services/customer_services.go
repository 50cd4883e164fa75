package services

import (
	"context"

	"github.com/samprox/erp_backend/internal/core/domain"
	"github.com/samprox/erp_backend/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a specific customer by its ID.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a filtered page of customers plus the cursor for
	// the following page (empty when exhausted).
	ListCustomers(ctx context.Context, params dto.ListCustomersParams) ([]domain.Customer, string, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer creates a customer with a freshly allocated code. Any
	// client-supplied code is discarded.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// UpdateCustomer applies the allowed field changes; the customer code is
	// immutable.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, updaterUserID string) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
