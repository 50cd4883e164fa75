package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samprox/erp_backend/internal/apperrors"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates the repository backing customer code sequences.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryWithTx {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SequenceRepositoryWithTx = (*PgxSequenceRepository)(nil)

// AllocateNextNumber atomically increments the counter for the (company, year)
// pair in a single statement, creating the row on first use. The unique
// constraint on (company_id, year_yy) guarantees no two concurrent callers
// receive the same value; a lost insert race is reported as
// apperrors.ErrSequenceConflict for the allocator's retry loop.
func (r *PgxSequenceRepository) AllocateNextNumber(ctx context.Context, companyID string, yearYY string) (int64, error) {
	query := `
		INSERT INTO customer_code_sequences (company_id, year_yy, last_number)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, year_yy) DO UPDATE SET
			last_number = customer_code_sequences.last_number + 1
		RETURNING last_number;
	`
	var lastNumber int64
	err := r.Pool.QueryRow(ctx, query, companyID, yearYY).Scan(&lastNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrSequenceConflict
		}
		return 0, fmt.Errorf("failed to allocate sequence number for company %s year %s: %w", companyID, yearYY, err)
	}
	return lastNumber, nil
}

// PeekNextNumber returns last_number + 1 without mutating state, or 1 when no
// sequence row exists yet for the pair.
func (r *PgxSequenceRepository) PeekNextNumber(ctx context.Context, companyID string, yearYY string) (int64, error) {
	query := `
		SELECT last_number
		FROM customer_code_sequences
		WHERE company_id = $1 AND year_yy = $2;
	`
	var lastNumber int64
	err := r.Pool.QueryRow(ctx, query, companyID, yearYY).Scan(&lastNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to peek sequence number for company %s year %s: %w", companyID, yearYY, err)
	}
	return lastNumber + 1, nil
}
