package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samprox/erp_backend/internal/apperrors"
	"github.com/samprox/erp_backend/internal/core/domain"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	"github.com/samprox/erp_backend/internal/models"
	"github.com/samprox/erp_backend/internal/utils/mapping"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryWithTx {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryWithTx = (*PgxCompanyRepository)(nil)

// SaveCompany inserts a new company. The code prefix is intentionally not part
// of any update path: it is fixed at onboarding.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	modelCompany := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (company_id, key, name, code_prefix, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCompany.CompanyID,
		modelCompany.Key,
		modelCompany.Name,
		modelCompany.CodePrefix,
		modelCompany.CreatedAt,
		modelCompany.CreatedBy,
		modelCompany.LastUpdatedAt,
		modelCompany.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save company %s: %w", modelCompany.Key, err)
	}
	return nil
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, key, name, code_prefix, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE company_id = $1;
	`
	return r.findCompany(ctx, query, companyID)
}

// FindCompanyByKey retrieves a company by its stable short key.
func (r *PgxCompanyRepository) FindCompanyByKey(ctx context.Context, key string) (*domain.Company, error) {
	query := `
		SELECT company_id, key, name, code_prefix, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE key = $1;
	`
	return r.findCompany(ctx, query, key)
}

func (r *PgxCompanyRepository) findCompany(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var modelCompany models.Company
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelCompany.CompanyID,
		&modelCompany.Key,
		&modelCompany.Name,
		&modelCompany.CodePrefix,
		&modelCompany.CreatedAt,
		&modelCompany.CreatedBy,
		&modelCompany.LastUpdatedAt,
		&modelCompany.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company %v: %w", arg, err)
	}

	domainCompany := mapping.ToDomainCompany(modelCompany)
	return &domainCompany, nil
}

// ListCompanies retrieves all companies ordered by name.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT company_id, key, name, code_prefix, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		var company models.Company
		err := row.Scan(
			&company.CompanyID,
			&company.Key,
			&company.Name,
			&company.CodePrefix,
			&company.CreatedAt,
			&company.CreatedBy,
			&company.LastUpdatedAt,
			&company.LastUpdatedBy,
		)
		return company, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Company{}, nil
		}
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}
