package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	customerRepo := newPgxCustomerRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CompanyRepo:  companyRepo,
		CustomerRepo: customerRepo,
		SequenceRepo: sequenceRepo,
		UserRepo:     userRepo,
	}
}
