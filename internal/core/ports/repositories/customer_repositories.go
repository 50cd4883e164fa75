package repositories

import (
	"context"
	"time"

	"github.com/samprox/erp_backend/internal/core/domain"
)

// CustomerListFilter narrows and paginates customer listings.
type CustomerListFilter struct {
	Query           string // Matches code, name, city or district (case-insensitive)
	CompanyID       string
	ManagedByUserID string
	Limit           int
	// Keyset cursor: rows strictly after (AfterCreatedAt, AfterCustomerID).
	AfterCreatedAt  *time.Time
	AfterCustomerID string
}

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by its ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByCode retrieves a specific customer by its assigned code.
	FindCustomerByCode(ctx context.Context, customerCode string) (*domain.Customer, error)

	// ListCustomers retrieves customers matching the filter, ordered by
	// creation time then ID for stable cursors.
	ListCustomers(ctx context.Context, filter CustomerListFilter) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer. A duplicate customer_code
	// surfaces as apperrors.ErrDuplicate so the caller can re-allocate.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer persists changes to an existing customer. The customer
	// code column is never touched.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// CustomerRepositoryWithTx extends CustomerRepositoryFacade with transaction capabilities
type CustomerRepositoryWithTx interface {
	CustomerRepositoryFacade
	TransactionManager
}
