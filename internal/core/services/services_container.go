package services

import (
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/samprox/erp_backend/internal/core/ports/services"
	"github.com/samprox/erp_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Company = NewCompanyService(repos.CompanyRepo)

	// The allocator derives the code year in the business time zone, not UTC.
	container.CustomerCode = NewCustomerCodeService(
		repos.CompanyRepo,
		repos.SequenceRepo,
		cfg.BusinessLocation,
	)

	container.Customer = NewCustomerService(repos.CustomerRepo, repos.CompanyRepo, container.CustomerCode)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CompanySvcFacade         = (*companyService)(nil)
	_ portssvc.CustomerSvcFacade        = (*customerService)(nil)
	_ portssvc.CustomerCodeAllocatorSvc = (*customerCodeService)(nil)
	_ portssvc.UserSvcFacade            = (*userService)(nil)
)
