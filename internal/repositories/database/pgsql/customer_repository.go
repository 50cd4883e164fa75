package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samprox/erp_backend/internal/apperrors"
	"github.com/samprox/erp_backend/internal/core/domain"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	"github.com/samprox/erp_backend/internal/models"
	"github.com/samprox/erp_backend/internal/utils/mapping"
)

const customerColumns = `customer_id, customer_code, name, area_code, city, district, province,
	company_id, managed_by_user_id, credit_limit, is_active,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryWithTx {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepositoryWithTx = (*PgxCustomerRepository)(nil)

// SaveCustomer inserts a new customer. A duplicate customer_code surfaces as
// apperrors.ErrDuplicate so the caller can allocate a fresh code and retry.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, customer_code, name, area_code, city, district, province,
			company_id, managed_by_user_id, credit_limit, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.CustomerCode,
		m.Name,
		m.AreaCode,
		m.City,
		m.District,
		m.Province,
		m.CompanyID,
		m.ManagedByUserID,
		m.CreditLimit,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerCode, err)
	}
	return nil
}

// UpdateCustomer persists the mutable fields of an existing customer. The
// customer_code column is deliberately absent from the SET list.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers SET
			name = $2,
			area_code = $3,
			city = $4,
			district = $5,
			province = $6,
			company_id = $7,
			managed_by_user_id = $8,
			credit_limit = $9,
			is_active = $10,
			last_updated_at = $11,
			last_updated_by = $12
		WHERE customer_id = $1 AND deleted_at IS NULL;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.AreaCode,
		m.City,
		m.District,
		m.Province,
		m.CompanyID,
		m.ManagedByUserID,
		m.CreditLimit,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE customer_id = $1 AND deleted_at IS NULL;`, customerColumns)
	return r.findCustomer(ctx, query, customerID)
}

// FindCustomerByCode retrieves a customer by its assigned code.
func (r *PgxCustomerRepository) FindCustomerByCode(ctx context.Context, customerCode string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE customer_code = $1 AND deleted_at IS NULL;`, customerColumns)
	return r.findCustomer(ctx, query, customerCode)
}

func (r *PgxCustomerRepository) findCustomer(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.CustomerID,
		&m.CustomerCode,
		&m.Name,
		&m.AreaCode,
		&m.City,
		&m.District,
		&m.Province,
		&m.CompanyID,
		&m.ManagedByUserID,
		&m.CreditLimit,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %v: %w", arg, err)
	}

	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ListCustomers retrieves customers matching the filter, ordered by creation
// time then ID so keyset cursors stay stable.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.CustomerListFilter) ([]domain.Customer, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM customers WHERE deleted_at IS NULL`, customerColumns)
	args := []any{}

	if filter.CompanyID != "" {
		args = append(args, filter.CompanyID)
		query += ` AND company_id = $` + strconv.Itoa(len(args))
	}
	if filter.ManagedByUserID != "" {
		args = append(args, filter.ManagedByUserID)
		query += ` AND managed_by_user_id = $` + strconv.Itoa(len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (customer_code ILIKE $` + n +
			` OR name ILIKE $` + n +
			` OR city ILIKE $` + n +
			` OR district ILIKE $` + n + `)`
	}
	if filter.AfterCreatedAt != nil {
		args = append(args, *filter.AfterCreatedAt)
		tsArg := strconv.Itoa(len(args))
		args = append(args, filter.AfterCustomerID)
		idArg := strconv.Itoa(len(args))
		query += ` AND (created_at, customer_id) > ($` + tsArg + `, $` + idArg + `)`
	}

	args = append(args, limit)
	query += ` ORDER BY created_at, customer_id LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	modelCustomers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Customer, error) {
		var m models.Customer
		err := row.Scan(
			&m.CustomerID,
			&m.CustomerCode,
			&m.Name,
			&m.AreaCode,
			&m.City,
			&m.District,
			&m.Province,
			&m.CompanyID,
			&m.ManagedByUserID,
			&m.CreditLimit,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
		)
		return m, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Customer{}, nil
		}
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}
